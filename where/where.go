// Package where resolves the application's filesystem locations.
package where

import (
	"os"
	"path/filepath"

	"github.com/eztv-cli/eztv/constant"
	"github.com/eztv-cli/eztv/filesystem"
	"github.com/samber/lo"
)

// EnvConfigPath overrides the configuration directory.
const EnvConfigPath = "EZTV_CONFIG_PATH"

func mkdir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config is the configuration directory, $XDG_CONFIG_HOME/eztv unless EZTV_CONFIG_PATH is set.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return mkdir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return mkdir(filepath.Join(base, constant.Eztv))
}

// Cache is the cache directory. Falls back to ./cache when the user cache dir is unavailable.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = filepath.Join(".", "cache")
	}
	return mkdir(filepath.Join(base, constant.Eztv))
}

// Logs is the directory of daily log files.
func Logs() string {
	return mkdir(filepath.Join(Config(), "logs"))
}

// Queries is the file holding remembered series names.
func Queries() string {
	return filepath.Join(Cache(), "queries.json")
}

// VersionCache is the file holding the last seen release version.
func VersionCache() string {
	return filepath.Join(Cache(), "version.json")
}

// ConfigFile is the configuration file read at startup. It may not exist.
func ConfigFile() string {
	return filepath.Join(Config(), constant.Eztv+".toml")
}

// Package config registers the application settings and loads them with viper.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/eztv-cli/eztv/constant"
	"github.com/eztv-cli/eztv/filesystem"
	"github.com/eztv-cli/eztv/where"
	"github.com/spf13/viper"
)

// EnvKeyReplacer maps configuration keys to environment variable names.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Setup registers defaults, binds EZTV_* environment variables and reads eztv.toml if it exists.
func Setup() error {
	viper.SetConfigName(constant.Eztv)
	viper.SetConfigType("toml")
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.Eztv)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, env := range EnvExposed {
		viper.MustBindEnv(env)
	}

	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}

	return nil
}

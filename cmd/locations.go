package cmd

import (
	"github.com/eztv-cli/eztv/filesystem"
	"github.com/eztv-cli/eztv/where"
)

// location is a file or directory eztv keeps on disk.
type location struct {
	name  string
	flag  string
	short string
	path  func() string
	// clearable locations can be removed with eztv clear.
	clearable bool
	// listed locations are shown by a bare eztv where.
	listed bool
}

var locations = []location{
	{"Config", "config", "c", where.Config, false, true},
	{"Config file", "config-file", "f", where.ConfigFile, true, false},
	{"Logs", "logs", "l", where.Logs, true, true},
	{"Cache", "cache", "", where.Cache, false, true},
	{"Query history", "queries", "q", where.Queries, true, false},
	{"Version cache", "version-cache", "", where.VersionCache, true, false},
}

// clearLocation removes the location and reports whether there was anything to remove.
func clearLocation(l location) (bool, error) {
	fs := filesystem.API()

	path := l.path()
	exists, err := fs.Exists(path)
	if err != nil || !exists {
		return false, err
	}

	return true, fs.RemoveAll(path)
}

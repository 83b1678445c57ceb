package main

import (
	"fmt"
	"os"

	"github.com/eztv-cli/eztv/cmd"
	"github.com/eztv-cli/eztv/config"
	"github.com/eztv-cli/eztv/log"
	"github.com/eztv-cli/eztv/where"
)

func main() {
	// a broken eztv.toml is a user error, not a crash
	if err := config.Setup(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "%s: %v\nfix or remove %s\n", os.Args[0], err, where.ConfigFile())
		os.Exit(1)
	}

	if err := log.Setup(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "%s: logs: %v\n", os.Args[0], err)
	}

	cmd.Execute()
}

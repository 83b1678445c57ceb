package inline

import (
	"fmt"
	"os"

	"github.com/eztv-cli/eztv/log"
)

// Run selects episodes from the series and writes them to options.Out.
// Plain output is one magnet link per line, optionally followed by the mirror links.
func Run(options *Options) error {
	if options.Out == nil {
		options.Out = os.Stdout
	}

	episodes, err := options.Selector(options.Series)
	if err != nil {
		return err
	}
	log.Infof("inline: selected %d episodes of %q", len(episodes), options.Series.Name)

	if options.Json {
		return writeJson(options.Out, options.Series.Name, options.Catalog, episodes)
	}

	for _, e := range episodes {
		if _, err := fmt.Fprintln(options.Out, e.MagnetLink); err != nil {
			return err
		}
		if !options.Links {
			continue
		}
		for _, link := range e.Links {
			if _, err := fmt.Fprintln(options.Out, link); err != nil {
				return err
			}
		}
	}

	return nil
}

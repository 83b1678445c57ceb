package cmd

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/eztv-cli/eztv/filesystem"
	"github.com/eztv-cli/eztv/inline"
	"github.com/eztv-cli/eztv/key"
	"github.com/eztv-cli/eztv/log"
	"github.com/eztv-cli/eztv/provider"
	"github.com/eztv-cli/eztv/query"
	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(inlineCmd)

	inlineCmd.Flags().StringP("query", "q", "", "Series name to look up")
	inlineCmd.Flags().StringP("episodes", "e", "all", "Criteria for selecting episodes of the series")
	inlineCmd.Flags().BoolP("json", "j", false, "Format the output as a JSON object")
	inlineCmd.Flags().BoolP("links", "l", false, "Print mirror links after each magnet link")
	lo.Must0(viper.BindPFlag(key.OutputShowLinks, inlineCmd.Flags().Lookup("links")))
	inlineCmd.Flags().StringP("output", "o", "", "Write the output to a file")

	lo.Must0(inlineCmd.MarkFlagRequired("query"))
	lo.Must0(inlineCmd.RegisterFlagCompletionFunc("query", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return query.SuggestMany(toComplete), cobra.ShellCompDirectiveNoFileComp
	}))
}

var inlineCmd = &cobra.Command{
	Use:   "inline",
	Short: "Look up a series non-interactively, for scripts",
	Long: `Look up a series non-interactively and print the selected episodes.

Plain output prints one magnet link per line. JSON output groups the
selected episodes by season.

Episode selectors:
  all - all episodes, oldest first
  first - the oldest episode
  last - the newest episode
  SxxEyy - a single episode, e.g. S01E05
  season:[n] - every episode of season n
  [number] - select episode by index (starting from 0)
  [from]-[to] - select episodes by index range`,
	Example: "  eztv inline -q Lost -e season:1 --json",
	Run: func(cmd *cobra.Command, args []string) {
		p, err := provider.Default()
		handleErr(err)

		name := lo.Must(cmd.Flags().GetString("query"))
		s, err := p.Series(name)
		handleErr(err)

		selector, err := inline.ParseSelector(lo.Must(cmd.Flags().GetString("episodes")))
		handleErr(err)

		var writer io.Writer = os.Stdout
		if output := lo.Must(cmd.Flags().GetString("output")); output != "" {
			file, err := filesystem.API().Create(output)
			handleErr(err)
			defer file.Close()
			writer = file
		}

		handleErr(inline.Run(&inline.Options{
			Out:      writer,
			Series:   s,
			Catalog:  p.ID,
			Selector: selector,
			Json:     lo.Must(cmd.Flags().GetBool("json")),
			Links:    viper.GetBool(key.OutputShowLinks),
		}))

		if err := query.Remember(name, 1); err != nil {
			log.Warn(err)
		}
	},
}

func init() {
	inlineCmd.AddCommand(inlineSchemaCmd)
}

var inlineSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the inline JSON output",
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		reflector.Namer = func(t reflect.Type) string {
			name := t.Name()
			switch strings.ToLower(name) {
			case "episode", "season", "output":
				return filepath.Base(t.PkgPath()) + "." + name
			}

			return name
		}

		handleErr(json.NewEncoder(os.Stdout).Encode(reflector.Reflect(&inline.Output{})))
	},
}

package cmd

import (
	"fmt"

	"github.com/eztv-cli/eztv/icon"
	"github.com/eztv-cli/eztv/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(clearCmd)

	for _, l := range locations {
		if !l.clearable {
			continue
		}
		clearCmd.Flags().BoolP(l.flag, l.short, false, "Remove the "+l.name)
	}
	clearCmd.Flags().BoolP("all", "a", false, "Remove everything except the config file")
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the query history, version cache, logs or config file",
	Long: `Remove files eztv keeps on disk.

Episode listings are never stored, so there is no episode cache to clear.`,
	Example: "  eztv clear --queries",
	Run: func(cmd *cobra.Command, args []string) {
		all := lo.Must(cmd.Flags().GetBool("all"))

		selected := lo.Filter(locations, func(l location, _ int) bool {
			if !l.clearable {
				return false
			}
			if all && l.flag != "config-file" {
				return true
			}
			return lo.Must(cmd.Flags().GetBool(l.flag))
		})

		if len(selected) == 0 {
			handleErr(cmd.Help())
			return
		}

		for _, l := range selected {
			removed, err := clearLocation(l)
			handleErr(err)

			if removed {
				fmt.Printf("%s %s cleared\n", icon.Get(icon.Success), l.name)
			} else {
				fmt.Printf("%s %s\n", icon.Get(icon.Search), style.Faint(l.name+" is already empty"))
			}
		}
	},
}

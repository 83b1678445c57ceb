package cmd

import (
	"os"

	"github.com/eztv-cli/eztv/color"
	"github.com/eztv-cli/eztv/key"
	"github.com/eztv-cli/eztv/provider"
	"github.com/eztv-cli/eztv/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(providersCmd)

	providersCmd.Flags().BoolP("raw", "r", false, "Print only provider IDs")
	providersCmd.SetOut(os.Stdout)
}

var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "List the catalogs series can be looked up on",
	Run: func(cmd *cobra.Command, args []string) {
		current := viper.GetString(key.CatalogProvider)

		for _, p := range provider.Builtins() {
			if lo.Must(cmd.Flags().GetBool("raw")) {
				cmd.Println(p.ID)
				continue
			}

			line := style.New().Bold(true).Foreground(color.HiBlue).Render(p.ID) + " " + style.Faint(p.Name)
			if p.ID == current {
				line += " " + style.Fg(color.Green)("(current)")
			}
			cmd.Println(line)
		}
	},
}

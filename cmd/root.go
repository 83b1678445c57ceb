// Package cmd implements the command-line interface for eztv.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/eztv-cli/eztv/color"
	"github.com/eztv-cli/eztv/constant"
	"github.com/eztv-cli/eztv/icon"
	"github.com/eztv-cli/eztv/internal/scraper"
	"github.com/eztv-cli/eztv/key"
	"github.com/eztv-cli/eztv/log"
	"github.com/eztv-cli/eztv/provider"
	"github.com/eztv-cli/eztv/query"
	"github.com/eztv-cli/eztv/style"
	"github.com/eztv-cli/eztv/version"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the icon variant (e.g., nerd, emoji, plain)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().StringP("catalog", "C", "", "Catalog provider to search")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("catalog", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return lo.Map(provider.Builtins(), func(p *provider.Provider, _ int) string {
			return p.ID
		}), cobra.ShellCompDirectiveNoFileComp
	}))
	lo.Must0(viper.BindPFlag(key.CatalogProvider, rootCmd.PersistentFlags().Lookup("catalog")))

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify()
	})
}

var rootCmd = &cobra.Command{
	Use:   constant.Eztv,
	Short: "Look up TV series episodes and their magnet links on EZTV",
	Long: style.New().Bold(true).Foreground(color.HiCyan).Render(constant.Eztv) + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - Look up TV series episodes and their magnet links on EZTV"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		handleErr(cmd.Help())
	},
}

// Execute adds all child commands to the root command and runs it.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err == nil {
		return
	}

	log.Error(err)
	_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))

	var notFound *scraper.SeriesNotFoundError
	if errors.As(err, &notFound) {
		if closest, ok := query.Closest(notFound.Name).Get(); ok {
			_, _ = fmt.Fprintf(os.Stderr, "did you mean %s?\n", style.Fg(color.Yellow)(closest))
		}
	}

	os.Exit(1)
}

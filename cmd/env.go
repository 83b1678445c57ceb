package cmd

import (
	"os"

	"github.com/eztv-cli/eztv/color"
	"github.com/eztv-cli/eztv/config"
	"github.com/eztv-cli/eztv/style"
	"github.com/eztv-cli/eztv/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// envVar is an environment variable eztv reads, and the setting it overrides.
type envVar struct {
	name    string
	setting string
}

// envVars lists EZTV_CONFIG_PATH followed by the setting overrides in key order.
func envVars() []envVar {
	vars := []envVar{{name: where.EnvConfigPath}}
	for _, k := range sortedConfigKeys() {
		field := config.Default[k]
		vars = append(vars, envVar{name: field.Env(), setting: k})
	}
	return vars
}

func init() {
	rootCmd.AddCommand(envCmd)
	envCmd.Flags().BoolP("set-only", "s", false, "Only show variables that are set")
	envCmd.Flags().BoolP("unset-only", "u", false, "Only show variables that are not set")

	envCmd.MarkFlagsMutuallyExclusive("set-only", "unset-only")
	envCmd.SetOut(os.Stdout)
}

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Show the environment variables that override settings",
	Long: `Show the environment variables eztv reads and their current values.

Every setting can be overridden with EZTV_ followed by its key in upper case,
dots replaced by underscores: catalog.base_url becomes EZTV_CATALOG_BASE_URL.`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			setOnly   = lo.Must(cmd.Flags().GetBool("set-only"))
			unsetOnly = lo.Must(cmd.Flags().GetBool("unset-only"))
			name      = style.New().Bold(true).Foreground(color.Purple).Render
		)

		for _, v := range envVars() {
			value, present := os.LookupEnv(v.name)
			if (setOnly && !present) || (unsetOnly && present) {
				continue
			}

			line := name(v.name) + "="
			if present {
				line += style.Fg(color.Green)(value)
			} else {
				line += style.Fg(color.Red)("unset")
			}

			if v.setting != "" {
				line += " " + style.Faint("# "+v.setting)
			}

			cmd.Println(line)
		}
	},
}

package cmd

import (
	"encoding/json"
	"io"
	"os"
	"runtime"
	"strings"
	"text/template"

	"github.com/eztv-cli/eztv/color"
	"github.com/eztv-cli/eztv/constant"
	"github.com/eztv-cli/eztv/key"
	"github.com/eztv-cli/eztv/style"
	"github.com/eztv-cli/eztv/version"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type versionInfo struct {
	App      string `json:"app"`
	Version  string `json:"version"`
	Revision string `json:"revision"`
	BuiltAt  string `json:"built_at"`
	BuiltBy  string `json:"built_by"`
	Go       string `json:"go"`
	Platform string `json:"platform"`
	Catalog  string `json:"catalog"`
	Search   string `json:"search"`
}

func currentVersion() versionInfo {
	return versionInfo{
		App:      constant.Eztv,
		Version:  constant.Version,
		Revision: constant.Revision,
		BuiltAt:  strings.TrimSpace(constant.BuiltAt),
		BuiltBy:  constant.BuiltBy,
		Go:       runtime.Version(),
		Platform: runtime.GOOS + "/" + runtime.GOARCH,
		Catalog:  viper.GetString(key.CatalogProvider),
		Search:   strings.TrimSuffix(viper.GetString(key.CatalogBaseURL), "/") + viper.GetString(key.CatalogSearchPath),
	}
}

var versionTemplate = lo.Must(template.New("version").Funcs(template.FuncMap{
	"faint":   style.Faint,
	"bold":    style.Bold,
	"magenta": style.Fg(color.Purple),
}).Parse(`{{ magenta "▇▇▇" }} {{ magenta .App }} {{ bold .Version }}

  {{ faint "Git Commit" }}  {{ bold .Revision }}
  {{ faint "Build Date" }}  {{ bold .BuiltAt }}
  {{ faint "Built By" }}    {{ bold .BuiltBy }}
  {{ faint "Go" }}          {{ bold .Go }}
  {{ faint "Platform" }}    {{ bold .Platform }}
  {{ faint "Catalog" }}     {{ bold .Catalog }} {{ faint .Search }}
`))

func writeVersion(w io.Writer, asJson bool) error {
	info := currentVersion()
	if asJson {
		return json.NewEncoder(w).Encode(info)
	}
	return versionTemplate.Execute(w, info)
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.SetOut(os.Stdout)
	versionCmd.Flags().BoolP("short", "s", false, "Only print the version number")
	versionCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the version, build and catalog in use",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("short")) {
			cmd.Println(constant.Version)
			return
		}

		asJson := lo.Must(cmd.Flags().GetBool("json"))
		handleErr(writeVersion(cmd.OutOrStdout(), asJson))

		if !asJson {
			version.Notify()
		}
	},
}

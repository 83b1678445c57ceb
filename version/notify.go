package version

import (
	"fmt"

	"github.com/eztv-cli/eztv/color"
	"github.com/eztv-cli/eztv/constant"
	"github.com/eztv-cli/eztv/icon"
	"github.com/eztv-cli/eztv/key"
	"github.com/eztv-cli/eztv/log"
	"github.com/eztv-cli/eztv/style"
	"github.com/eztv-cli/eztv/util"
	"github.com/spf13/viper"
)

// Notify prints a notice when a newer release than the running one exists.
func Notify() {
	if !viper.GetBool(key.CliVersionCheck) {
		return
	}

	erase := util.PrintErasable(fmt.Sprintf("%s Checking if new version is available...", icon.Get(icon.Progress)))
	latest, err := Latest()
	erase()
	if err != nil {
		log.Warn(err)
		return
	}

	if comp, err := Compare(latest, constant.Version); err != nil || comp <= 0 {
		return
	}

	fmt.Printf(`
%s New version is available %s %s
%s

`,
		style.Fg(color.Green)("▇▇▇"),
		style.Bold(latest),
		style.Faint(fmt.Sprintf("(You're on %s)", constant.Version)),
		style.Faint(constant.ReleasesPage+"/tag/v"+latest),
	)
}

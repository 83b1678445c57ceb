package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/AlecAivazis/survey/v2"
	"github.com/eztv-cli/eztv/color"
	"github.com/eztv-cli/eztv/icon"
	"github.com/eztv-cli/eztv/key"
	"github.com/eztv-cli/eztv/log"
	"github.com/eztv-cli/eztv/open"
	"github.com/eztv-cli/eztv/provider"
	"github.com/eztv-cli/eztv/query"
	"github.com/eztv-cli/eztv/series"
	"github.com/eztv-cli/eztv/source"
	"github.com/eztv-cli/eztv/style"
	"github.com/eztv-cli/eztv/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func completionSeries(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return query.SuggestMany(toComplete), cobra.ShellCompDirectiveNoFileComp
}

// openSeries fetches the named series from the configured catalog and
// records the name in the query history once the fetch succeeded.
func openSeries(name string) *series.Series {
	p, err := provider.Default()
	handleErr(err)

	s, err := p.Series(name)
	handleErr(err)

	erase := util.PrintErasable(fmt.Sprintf("%s Searching %s for %s...", icon.Get(icon.Progress), p, style.Fg(color.Purple)(name)))
	episodes, err := s.Episodes()
	erase()
	handleErr(err)

	log.Infof("found %s of %q", util.Quantify(len(episodes), "episode", "episodes"), name)
	if err := query.Remember(name, 1); err != nil {
		log.Warn(err)
	}

	return s
}

type renderer struct {
	out       io.Writer
	showLinks bool
	width     int
}

func newRenderer(out io.Writer) *renderer {
	r := &renderer{
		out:       out,
		showLinks: viper.GetBool(key.OutputShowLinks),
	}

	if viper.GetBool(key.OutputTruncateLinks) {
		if width, ok := util.TerminalWidth(); ok {
			r.width = width - 4
		}
	}

	return r
}

func (r *renderer) episode(e *source.Episode) {
	_, _ = fmt.Fprintln(r.out, style.New().Bold(true).Foreground(color.Purple).Render(e.Token()))
	_, _ = fmt.Fprintf(r.out, "  %s %s\n", icon.Get(icon.Magnet), util.Truncate(e.MagnetLink, r.width))

	if !r.showLinks {
		return
	}

	for _, link := range e.Links {
		_, _ = fmt.Fprintf(r.out, "  %s %s\n", style.Faint(icon.Get(icon.Link)), style.Faint(util.Truncate(link, r.width)))
	}
}

func (r *renderer) season(episodes []*source.Episode) {
	if len(episodes) == 0 {
		return
	}

	header := fmt.Sprintf("Season %d", episodes[0].Season)
	_, _ = fmt.Fprintf(r.out, "%s %s %s\n",
		icon.Get(icon.Season),
		style.New().Bold(true).Foreground(color.HiBlue).Render(header),
		style.Faint(util.Quantify(len(episodes), "episode", "episodes")),
	)

	for _, e := range episodes {
		r.episode(e)
	}
}

func init() {
	rootCmd.AddCommand(episodesCmd)
	episodesCmd.SetOut(os.Stdout)
}

var episodesCmd = &cobra.Command{
	Use:               "episodes [series]",
	Short:             "List every episode of a series, oldest first",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionSeries,
	Run: func(cmd *cobra.Command, args []string) {
		s := openSeries(args[0])

		episodes, err := s.Episodes()
		handleErr(err)

		r := newRenderer(cmd.OutOrStdout())
		for _, e := range episodes {
			r.episode(e)
		}
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
	getCmd.Flags().BoolP("open", "o", false, "Open the magnet link with the torrent client")
	getCmd.SetOut(os.Stdout)
}

var getCmd = &cobra.Command{
	Use:               "get [series] [SxxEyy]",
	Short:             "Show a single episode by its token",
	Long:              "Show a single episode by its SxxEyy token. Without a token, pick one interactively.",
	Example:           "  eztv get Lost S01E05",
	Args:              cobra.RangeArgs(1, 2),
	ValidArgsFunction: completionSeries,
	Run: func(cmd *cobra.Command, args []string) {
		s := openSeries(args[0])

		var token string
		if len(args) == 2 {
			token = args[1]
		} else {
			episodes, err := s.Episodes()
			handleErr(err)

			if len(episodes) == 0 {
				handleErr(fmt.Errorf("no episodes of %s", s))
			}

			prompt := &survey.Select{
				Message: "Pick an episode",
				Options: lo.Map(episodes, func(e *source.Episode, _ int) string {
					return e.Token()
				}),
			}
			handleErr(survey.AskOne(prompt, &token))
		}

		found, err := s.Get(token)
		handleErr(err)

		e, ok := found.Get()
		if !ok {
			handleErr(fmt.Errorf("episode %s of %s not found", token, s))
		}

		newRenderer(cmd.OutOrStdout()).episode(e)

		if lo.Must(cmd.Flags().GetBool("open")) {
			handleErr(open.Start(e.MagnetLink, viper.GetString(key.OutputTorrentClient)))
		}
	},
}

func init() {
	rootCmd.AddCommand(seasonCmd)
	seasonCmd.SetOut(os.Stdout)
}

var seasonCmd = &cobra.Command{
	Use:               "season [series] [number]",
	Short:             "List the episodes of a single season",
	Args:              cobra.ExactArgs(2),
	ValidArgsFunction: completionSeries,
	Run: func(cmd *cobra.Command, args []string) {
		n, err := strconv.Atoi(args[1])
		if err != nil {
			handleErr(fmt.Errorf("invalid season number: %s", args[1]))
		}

		s := openSeries(args[0])

		episodes, err := s.Season(n)
		handleErr(err)

		if len(episodes) == 0 {
			cmd.Printf("%s season %d of %s has no episodes\n", icon.Get(icon.Search), n, s)
			return
		}

		newRenderer(cmd.OutOrStdout()).season(episodes)
	},
}

func init() {
	rootCmd.AddCommand(seasonsCmd)
	seasonsCmd.SetOut(os.Stdout)
}

var seasonsCmd = &cobra.Command{
	Use:               "seasons [series]",
	Short:             "List every episode grouped by season",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionSeries,
	Run: func(cmd *cobra.Command, args []string) {
		s := openSeries(args[0])

		seasons, err := s.Seasons()
		handleErr(err)

		r := newRenderer(cmd.OutOrStdout())
		for i, episodes := range seasons {
			r.season(episodes)
			if i < len(seasons)-1 {
				cmd.Println()
			}
		}
	},
}

// Package inline runs a single non-interactive lookup and writes the result for scripts.
package inline

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/eztv-cli/eztv/series"
	"github.com/eztv-cli/eztv/source"
	"github.com/eztv-cli/eztv/util"
	"github.com/samber/lo"
)

// tokenSelector accepts a whole SxxEyy token and nothing around it.
var tokenSelector = regexp.MustCompile(`^S\d{1,2}E\d{1,2}$`)

// Selector picks episodes out of a series.
type Selector func(*series.Series) ([]*source.Episode, error)

type Options struct {
	Out      io.Writer
	Series   *series.Series
	Catalog  string
	Selector Selector
	Json     bool
	// Links prints mirror links after the magnet link in plain output.
	Links bool
}

// ParseSelector parses an episode selector:
//
//	all           every episode, oldest first
//	first, last   the oldest or newest episode
//	SxxEyy        a single episode
//	season:N      every episode of season N
//	N             the episode at index N of the collection
//	A-B           the episodes at indexes A through B
func ParseSelector(description string) (Selector, error) {
	switch description {
	case "", "all":
		return func(s *series.Series) ([]*source.Episode, error) {
			return s.Episodes()
		}, nil
	case "first":
		return pick(func(episodes []*source.Episode) []*source.Episode {
			return lo.Subset(episodes, 0, 1)
		}), nil
	case "last":
		return pick(func(episodes []*source.Episode) []*source.Episode {
			return lo.Subset(episodes, -1, 1)
		}), nil
	}

	if strings.HasPrefix(description, "season:") {
		n, err := strconv.Atoi(strings.TrimPrefix(description, "season:"))
		if err != nil {
			return nil, fmt.Errorf("invalid season selector: %s", description)
		}
		return func(s *series.Series) ([]*source.Episode, error) {
			return s.Season(n)
		}, nil
	}

	if tokenSelector.MatchString(description) {
		return func(s *series.Series) ([]*source.Episode, error) {
			found, err := s.Get(description)
			if err != nil {
				return nil, err
			}
			return lo.Compact([]*source.Episode{found.OrEmpty()}), nil
		}, nil
	}

	if from, to, ok := strings.Cut(description, "-"); ok {
		start, err1 := strconv.ParseUint(from, 10, 16)
		end, err2 := strconv.ParseUint(to, 10, 16)
		if err1 == nil && err2 == nil {
			return pick(func(episodes []*source.Episode) []*source.Episode {
				lower := util.Min(start, uint64(len(episodes)))
				upper := util.Min(end+1, uint64(len(episodes)))
				if lower > upper {
					return []*source.Episode{}
				}
				return episodes[lower:upper]
			}), nil
		}
	}

	if idx, err := strconv.ParseUint(description, 10, 16); err == nil {
		return pick(func(episodes []*source.Episode) []*source.Episode {
			if uint64(len(episodes)) <= idx {
				return []*source.Episode{}
			}
			return episodes[idx : idx+1]
		}), nil
	}

	return nil, fmt.Errorf("invalid episode selector: %s", description)
}

func pick(f func([]*source.Episode) []*source.Episode) Selector {
	return func(s *series.Series) ([]*source.Episode, error) {
		episodes, err := s.Episodes()
		if err != nil {
			return nil, err
		}
		return f(episodes), nil
	}
}

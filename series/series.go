// Package series provides season and episode lookups over the releases of one television series.
package series

import (
	"slices"
	"sync"

	"github.com/eztv-cli/eztv/internal/scraper"
	"github.com/eztv-cli/eztv/log"
	"github.com/eztv-cli/eztv/markup"
	"github.com/eztv-cli/eztv/source"
	"github.com/samber/lo"
	"github.com/samber/mo"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Series is a named show on a catalog.
//
// The episode collection is fetched on first use and kept for the lifetime of the value.
// Concurrent first use results in a single fetch; a failed fetch is not remembered,
// so the next lookup tries again.
type Series struct {
	Name string

	fetcher source.Fetcher
	parser  markup.Parser

	mu       sync.Mutex
	episodes mo.Option[[]*source.Episode]
}

// New returns an unfetched series.
func New(name string, fetcher source.Fetcher, parser markup.Parser) *Series {
	return &Series{
		Name:    name,
		fetcher: fetcher,
		parser:  parser,
	}
}

func (s *Series) String() string {
	return s.Name
}

// Fetched reports whether the episode collection has been loaded.
func (s *Series) Fetched() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.episodes.IsPresent()
}

// Episodes returns the unique episodes of the series, oldest first.
// The returned slice is a copy; reordering it does not affect later lookups.
func (s *Series) Episodes() ([]*source.Episode, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if episodes, ok := s.episodes.Get(); ok {
		return slices.Clone(episodes), nil
	}

	episodes, err := s.fetch()
	if err != nil {
		return nil, err
	}

	s.episodes = mo.Some(episodes)
	return slices.Clone(episodes), nil
}

func (s *Series) fetch() ([]*source.Episode, error) {
	log.Infof("fetching %q from %s", s.Name, s.fetcher.Name())

	raw, err := s.fetcher.PostSearch(s.Name)
	if err != nil {
		log.Error(err)
		return nil, err
	}

	root, err := s.parser.Parse(raw)
	if err != nil {
		return nil, err
	}

	episodes, err := scraper.Scrape(root, s.Name, s.fetcher.Name())
	if err != nil {
		log.Error(err)
		return nil, err
	}

	log.Infof("found %d episodes of %q", len(episodes), s.Name)
	return episodes, nil
}

// Episode returns the episode with the given season and number.
func (s *Series) Episode(season, number int) (mo.Option[*source.Episode], error) {
	episodes, err := s.Episodes()
	if err != nil {
		return mo.None[*source.Episode](), err
	}

	want := source.EpisodeKey{Season: season, Number: number}
	return mo.TupleToOption(lo.Find(episodes, func(e *source.Episode) bool {
		return e.Key() == want
	})), nil
}

// Get returns the episode identified by an SxxEyy token.
// A malformed token is a *source.TokenError, distinct from an episode that does not exist.
func (s *Series) Get(token string) (mo.Option[*source.Episode], error) {
	key, err := source.ParseToken(token)
	if err != nil {
		return mo.None[*source.Episode](), err
	}
	return s.Episode(key.Season, key.Number)
}

// Season returns the episodes of one season, oldest first.
func (s *Series) Season(season int) ([]*source.Episode, error) {
	episodes, err := s.Episodes()
	if err != nil {
		return nil, err
	}

	return lo.Filter(episodes, func(e *source.Episode, _ int) bool {
		return e.Season == season
	}), nil
}

// Seasons groups the episodes by season. Groups are ordered by the first appearance of
// each season in the collection, not numerically.
func (s *Series) Seasons() ([][]*source.Episode, error) {
	episodes, err := s.Episodes()
	if err != nil {
		return nil, err
	}
	return GroupBySeason(episodes), nil
}

// GroupBySeason splits episodes into per-season groups, keeping the input order inside
// each group and ordering groups by the first appearance of their season.
func GroupBySeason(episodes []*source.Episode) [][]*source.Episode {
	groups := orderedmap.New[int, []*source.Episode]()
	for _, e := range episodes {
		group, _ := groups.Get(e.Season)
		groups.Set(e.Season, append(group, e))
	}

	result := make([][]*source.Episode, 0, groups.Len())
	for pair := groups.Oldest(); pair != nil; pair = pair.Next() {
		result = append(result, pair.Value)
	}
	return result
}

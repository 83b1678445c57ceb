// Package query remembers the series names that were found and suggests them back.
package query

import (
	"strings"

	"github.com/eztv-cli/eztv/filesystem"
	"github.com/eztv-cli/eztv/key"
	"github.com/eztv-cli/eztv/where"
	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

type queryRecord struct {
	Rank  int    `json:"rank"`
	Query string `json:"query"`
}

var cacher = gache.New[map[string]*queryRecord](
	&gache.Options{
		Path:       where.Queries(),
		FileSystem: &filesystem.GacheFs{},
	},
)

// Remember records a series name, or bumps its rank if it is already known.
// The original spelling of the first lookup is kept for display.
func Remember(q string, weight int) error {
	if !viper.GetBool(key.SearchRememberQueries) {
		return nil
	}

	id := sanitize(q)
	if id == "" {
		return nil
	}

	cached := records()
	if record, ok := cached[id]; ok {
		record.Rank += weight
	} else {
		cached[id] = &queryRecord{Rank: weight, Query: strings.TrimSpace(q)}
	}

	return cacher.Set(cached)
}

// SuggestMany returns remembered names fuzzily matching the input, most used first.
func SuggestMany(q string) []string {
	if !viper.GetBool(key.SearchShowQuerySuggestions) {
		return []string{}
	}

	q = sanitize(q)
	matched := lo.Filter(lo.Values(records()), func(r *queryRecord, _ int) bool {
		return fuzzy.MatchNormalizedFold(q, r.Query)
	})

	slices.SortFunc(matched, func(a, b *queryRecord) int {
		if a.Rank != b.Rank {
			return b.Rank - a.Rank
		}
		return strings.Compare(a.Query, b.Query)
	})

	return lo.Map(matched, func(r *queryRecord, _ int) string {
		return r.Query
	})
}

// Closest returns the remembered name with the smallest edit distance to q.
func Closest(q string) mo.Option[string] {
	if !viper.GetBool(key.SearchShowQuerySuggestions) {
		return mo.None[string]()
	}

	known := lo.Values(records())
	if len(known) == 0 {
		return mo.None[string]()
	}

	q = sanitize(q)
	best := lo.MinBy(known, func(a, b *queryRecord) bool {
		da, db := levenshtein.Distance(q, sanitize(a.Query)), levenshtein.Distance(q, sanitize(b.Query))
		if da != db {
			return da < db
		}
		return a.Rank > b.Rank
	})

	if sanitize(best.Query) == q {
		return mo.None[string]()
	}
	return mo.Some(best.Query)
}

func records() map[string]*queryRecord {
	cached, expired, err := cacher.Get()
	if expired || err != nil || cached == nil {
		return make(map[string]*queryRecord)
	}
	return cached
}

func sanitize(q string) string {
	return strings.TrimSpace(strings.ToLower(q))
}

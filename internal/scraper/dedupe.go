package scraper

import (
	"github.com/eztv-cli/eztv/source"
	"github.com/samber/lo"
	"github.com/samber/lo/mutable"
)

// Deduplicate turns the newest-first listing into an oldest-first collection with one
// episode per season/episode pair. When a pair was posted more than once, the earliest
// posting is kept.
func Deduplicate(newestFirst []*source.Episode) []*source.Episode {
	oldestFirst := make([]*source.Episode, len(newestFirst))
	copy(oldestFirst, newestFirst)
	mutable.Reverse(oldestFirst)

	return lo.UniqBy(oldestFirst, func(e *source.Episode) source.EpisodeKey {
		return e.Key()
	})
}

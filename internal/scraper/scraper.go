// Package scraper turns a catalog search results page into a deduplicated episode collection.
//
// The pipeline is all-or-nothing: a page without listing rows is a SeriesNotFoundError,
// and any row of the series that cannot be extracted aborts the scrape with an ExtractionError.
package scraper

import (
	"github.com/eztv-cli/eztv/log"
	"github.com/eztv-cli/eztv/markup"
	"github.com/eztv-cli/eztv/source"
)

// Scrape extracts the episodes of the named series from a parsed results page.
// The result is ordered oldest to newest with unique season/episode pairs.
func Scrape(root markup.Node, name, catalog string) ([]*source.Episode, error) {
	rows, err := SelectRows(root, name, catalog)
	if err != nil {
		return nil, err
	}

	filtered := FilterRows(rows, NewMarker(name))
	log.Debugf("%s: %d of %d rows belong to %q", catalog, len(filtered), len(rows), name)

	newestFirst, err := ExtractEpisodes(filtered)
	if err != nil {
		return nil, err
	}

	episodes := Deduplicate(newestFirst)
	log.Debugf("%s: %d unique episodes of %q", catalog, len(episodes), name)
	return episodes, nil
}

package scraper

import (
	"regexp"

	"github.com/eztv-cli/eztv/markup"
	"github.com/samber/lo"
)

// EpisodesPath selects the listing rows of a search results page.
const EpisodesPath = "html body div#header_holder table.forum_header_border tr.forum_header_border"

// SelectRows returns the listing rows of the page, newest first.
func SelectRows(root markup.Node, name, catalog string) ([]markup.Node, error) {
	rows := root.Select(EpisodesPath)
	if len(rows) == 0 {
		return nil, &SeriesNotFoundError{Name: name, Catalog: catalog}
	}
	return rows, nil
}

// Marker recognizes the description image title the catalog attaches to every row of a show.
type Marker struct {
	pattern *regexp.Regexp
}

// NewMarker returns a marker for the series name. The name is matched literally and
// case-insensitively; regexp metacharacters in it have no special meaning.
func NewMarker(name string) Marker {
	return Marker{
		pattern: regexp.MustCompile("(?i)" + regexp.QuoteMeta("Show Description about "+name)),
	}
}

// Matches reports whether the row's description image belongs to the series.
// Rows without a description image or title never match.
func (m Marker) Matches(row markup.Node) bool {
	images := row.Select("img")
	if len(images) == 0 {
		return false
	}

	title, ok := images[0].Attr("title")
	if !ok {
		return false
	}

	return m.pattern.MatchString(title)
}

// FilterRows keeps the rows belonging to the series, preserving order.
func FilterRows(rows []markup.Node, marker Marker) []markup.Node {
	return lo.Filter(rows, func(row markup.Node, _ int) bool {
		return marker.Matches(row)
	})
}

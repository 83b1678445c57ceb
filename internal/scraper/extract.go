package scraper

import (
	"errors"
	"fmt"

	"github.com/eztv-cli/eztv/markup"
	"github.com/eztv-cli/eztv/source"
)

const (
	cellSelector  = "td.forum_thread_post"
	labelSelector = "td.forum_thread_post a.epinfo"

	// linksCell is the index of the cell holding the download anchors.
	linksCell = 2
	// leadingAnchors are skipped before the mirror links start.
	leadingAnchors = 2
)

// ExtractEpisode builds an episode from a listing row.
func ExtractEpisode(row markup.Node) (*source.Episode, error) {
	key, err := extractKey(row)
	if err != nil {
		return nil, err
	}

	magnet, links, err := extractLinks(row)
	if err != nil {
		return nil, err
	}

	return &source.Episode{
		Season:     key.Season,
		Number:     key.Number,
		Links:      links,
		MagnetLink: magnet,
	}, nil
}

// ExtractEpisodes builds episodes from the rows in the same order. The first failing row aborts extraction.
func ExtractEpisodes(rows []markup.Node) ([]*source.Episode, error) {
	episodes := make([]*source.Episode, 0, len(rows))
	for i, row := range rows {
		episode, err := ExtractEpisode(row)
		if err != nil {
			var extractionErr *ExtractionError
			if errors.As(err, &extractionErr) {
				extractionErr.Row = i
			}
			return nil, err
		}
		episodes = append(episodes, episode)
	}
	return episodes, nil
}

func extractKey(row markup.Node) (source.EpisodeKey, error) {
	labels := row.Select(labelSelector)
	if len(labels) == 0 {
		return source.EpisodeKey{}, &ExtractionError{Reason: "no episode label"}
	}

	text := labels[0].Text()
	if key, ok := source.MatchKey(text, source.SEFormat); ok {
		return key, nil
	}
	if key, ok := source.MatchKey(text, source.XFormat); ok {
		return key, nil
	}

	return source.EpisodeKey{}, &ExtractionError{Reason: fmt.Sprintf("unrecognized episode label %q", text)}
}

func extractLinks(row markup.Node) (magnet string, links []string, err error) {
	cells := row.Select(cellSelector)
	if len(cells) <= linksCell {
		return "", nil, &ExtractionError{Reason: "no links cell"}
	}
	cell := cells[linksCell]

	magnets := cell.Select("a.magnet")
	if len(magnets) == 0 {
		return "", nil, &ExtractionError{Reason: "no magnet link"}
	}
	magnet, ok := magnets[0].Attr("href")
	if !ok {
		return "", nil, &ExtractionError{Reason: "magnet link without href"}
	}

	anchors := cell.Select("a")
	if len(anchors) < leadingAnchors {
		return "", nil, &ExtractionError{Reason: "missing download anchors"}
	}

	links = make([]string, 0, len(anchors)-leadingAnchors)
	for _, a := range anchors[leadingAnchors:] {
		if href, ok := a.Attr("href"); ok {
			links = append(links, href)
		}
	}

	return magnet, links, nil
}

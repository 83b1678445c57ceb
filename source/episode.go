package source

import "fmt"

// EpisodeKey is the identity of an episode within a series.
type EpisodeKey struct {
	Season int `json:"season"`
	Number int `json:"episode"`
}

// Token returns the compact SxxEyy form of the key.
func (k EpisodeKey) Token() string {
	return fmt.Sprintf("S%02dE%02d", k.Season, k.Number)
}

// Episode is one published release of a series episode.
//
// Two episodes with the same Key are the same episode even if their links differ;
// compare keys, not values.
type Episode struct {
	// Season number, 1-99.
	Season int `json:"season"`
	// Episode number within the season, 1-99.
	Number int `json:"episode"`
	// Links in the order they appear in the listing. May be empty.
	Links []string `json:"links"`
	// MagnetLink is the primary resource of the release.
	MagnetLink string `json:"magnet"`
}

// Key returns the identity of the episode.
func (e *Episode) Key() EpisodeKey {
	return EpisodeKey{Season: e.Season, Number: e.Number}
}

// Token returns the compact SxxEyy form (e.g. "S01E01").
func (e *Episode) Token() string {
	return e.Key().Token()
}

// String returns the token of the episode.
func (e *Episode) String() string {
	return e.Token()
}

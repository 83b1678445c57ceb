// Package source defines the episode domain model and the catalog capabilities it is scraped from.
package source

// Fetcher issues a single search query against a torrent catalog and returns the raw result page.
//
// Transport failures are returned as-is; callers must not expect them to be wrapped or retried.
type Fetcher interface {
	// Name returns the catalog identifier (e.g. "eztv").
	Name() string

	// PostSearch submits the series name as the search string and returns the markup of the results page.
	PostSearch(series string) ([]byte, error)
}

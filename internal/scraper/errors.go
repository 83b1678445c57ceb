package scraper

import "fmt"

// SeriesNotFoundError is returned when the results page contains no listing rows at all.
type SeriesNotFoundError struct {
	Name    string
	Catalog string
}

func (e *SeriesNotFoundError) Error() string {
	return fmt.Sprintf("unable to find '%s' on %s", e.Name, e.Catalog)
}

// ExtractionError is returned when a listing row that belongs to the series cannot be
// turned into an episode. It aborts the whole scrape.
type ExtractionError struct {
	// Row is the position of the row among the filtered rows, newest first.
	Row    int
	Reason string
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("row %d: %s", e.Row, e.Reason)
}

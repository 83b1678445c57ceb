package network

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/eztv-cli/eztv/constant"
	"github.com/eztv-cli/eztv/log"
)

// StatusError is returned when the catalog answers a search with a non-2xx status.
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: unexpected status %d %s", e.URL, e.Code, http.StatusText(e.Code))
}

// Catalog searches a catalog site through its search form.
type Catalog struct {
	name      string
	searchURL string
	userAgent string
	client    *http.Client
}

// NewCatalog returns a catalog whose search form lives at baseURL joined with searchPath.
func NewCatalog(name, baseURL, searchPath, userAgent string, client *http.Client) (*Catalog, error) {
	searchURL, err := url.JoinPath(baseURL, searchPath)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", name, err)
	}

	return &Catalog{
		name:      name,
		searchURL: searchURL,
		userAgent: userAgent,
		client:    client,
	}, nil
}

func (c *Catalog) Name() string {
	return c.name
}

// SearchURL is the address search requests are posted to.
func (c *Catalog) SearchURL() string {
	return c.searchURL
}

// PostSearch posts the series name in the SearchString form field and returns the results page.
// Errors from the HTTP client are returned unwrapped.
func (c *Catalog) PostSearch(series string) ([]byte, error) {
	form := url.Values{constant.SearchField: {series}}

	req, err := http.NewRequest(http.MethodPost, c.searchURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	log.Debugf("POST %s %s", c.searchURL, form.Encode())
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{URL: c.searchURL, Code: resp.StatusCode}
	}

	return io.ReadAll(resp.Body)
}

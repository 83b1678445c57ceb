// Package constant defines immutable application-level identifiers and catalog defaults.
package constant

const (
	// Eztv is the canonical application identifier used for filesystem paths, env prefixes and CLI branding.
	Eztv = "eztv"

	// Version is the current application semantic version string.
	Version = "0.3.0"

	// UserAgent is the default HTTP User-Agent sent to catalogs.
	UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// Build metadata, set with -ldflags "-X".
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)

// Catalog defaults.
const (
	DefaultCatalog    = "eztv"
	DefaultBaseURL    = "https://eztv.it"
	DefaultSearchPath = "/search/"

	// SearchField is the form field carrying the series name in a search request.
	SearchField = "SearchString"
)

// Release discovery.
const (
	ReleasesPage = "https://github.com/eztv-cli/eztv/releases"
	ReleasesURL  = "https://api.github.com/repos/eztv-cli/eztv/releases/latest"
)

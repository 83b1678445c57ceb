// Package key defines the canonical set of configuration identifiers.
package key

// Catalog - where and how series are searched.
const (
	CatalogProvider   = "catalog.provider"
	CatalogBaseURL    = "catalog.base_url"
	CatalogSearchPath = "catalog.search_path"
)

// Network - the shared HTTP client.
const (
	NetworkTimeout        = "network.timeout"
	NetworkUserAgent      = "network.user_agent"
	NetworkTLSFingerprint = "network.tls_fingerprint"
)

// Search - query history and suggestions.
const (
	SearchShowQuerySuggestions = "search.show_query_suggestions"
	SearchRememberQueries      = "search.remember_queries"
)

// Output - how episodes are printed.
const (
	OutputShowLinks     = "output.show_links"
	OutputTorrentClient = "output.torrent_client"
	OutputTruncateLinks = "output.truncate_links"
)

// Iconography.
const (
	IconsVariant = "icons.variant"
)

// Logging.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI execution environment.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)

package editais

import "context"

// Fetcher retrieves HTML content from URLs.
type Fetcher interface {
	// Fetch retrieves the page at url. Network errors, timeouts, and
	// non-2xx responses are returned as errors; the scan layer degrades
	// the affected source to zero records.
	Fetch(ctx context.Context, url string) (string, error)

	// Close releases resources held by the fetcher.
	Close() error
}

// PageCleaner produces boilerplate-free page text. The strict extraction
// tier evaluates the relevance gate against cleaned main content instead of
// navigation chrome.
type PageCleaner interface {
	CleanText(html string) (string, error)
}

// ResultCache memoizes per-source scan results for a bounded duration.
// Lookups and writes are not exclusive; last write wins on races.
type ResultCache interface {
	// Get returns the cached records for a source URL and search term.
	// ok is false on a miss or an expired entry.
	Get(ctx context.Context, sourceURL, term string) (records []Record, ok bool, err error)

	// Put stores the records for a source URL and search term.
	Put(ctx context.Context, sourceURL, term string, records []Record) error
}

// SitemapProber discovers edict-related page URLs from a site's sitemap.
// It is an enrichment step: a site without a sitemap yields no paths and
// no error.
type SitemapProber interface {
	ProbeEdictPaths(ctx context.Context, siteURL string, limit int) ([]string, error)
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}

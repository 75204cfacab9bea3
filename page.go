package pagesum

import "context"

// Fetcher retrieves raw HTML from URLs.
type Fetcher interface {
	// Fetch retrieves the page at url and returns its raw HTML.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}

// URLSource produces the ordered list of URLs for a batch.
// Implementations hide the input format (list file vs sitemap).
// Order and duplicates are preserved; blank entries are dropped.
type URLSource interface {
	URLs(ctx context.Context) ([]string, error)
}

// DomainLimiter throttles requests per domain.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	Wait(ctx context.Context, domain string) error
}

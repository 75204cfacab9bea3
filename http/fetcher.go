// Package http provides HTTP-based implementations of pagesum.Fetcher and
// pagesum.URLSource for plain GET fetching and sitemap expansion.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/pagesum"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// userAgent identifies the tool to origin servers.
const userAgent = "pagesum/1.0 (+https://github.com/fwojciec/pagesum)"

// Ensure Fetcher implements pagesum.Fetcher at compile time.
var _ pagesum.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using plain HTTP requests.
// It does not execute JavaScript and is suitable for static pages only.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithClient sets a custom HTTP client. The client's own timeout is kept.
func WithClient(client *http.Client) Option {
	return func(f *Fetcher) {
		f.client = client
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	if f.client == nil {
		f.client = &http.Client{
			Timeout: f.timeout,
		}
	}

	return f
}

// Fetch retrieves the HTML content from the given URL.
// Non-2xx responses surface as application errors so callers can
// distinguish missing pages from throttling and server outages.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", pagesum.Errorf(pagesum.EINVALID, "invalid URL %q: %v", url, err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", pagesum.Errorf(pagesum.EUNAVAILABLE, "fetch %s: %v", url, err)
	}
	defer resp.Body.Close()

	if err := statusError(resp.StatusCode, url); err != nil {
		return "", err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", pagesum.Errorf(pagesum.EUNAVAILABLE, "read %s: %v", url, err)
	}

	return string(body), nil
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}

// statusError maps a non-2xx HTTP status to an application error.
func statusError(status int, url string) error {
	switch {
	case status >= 200 && status < 300:
		return nil
	case status == http.StatusNotFound || status == http.StatusGone:
		return pagesum.Errorf(pagesum.ENOTFOUND, "HTTP %d for %s", status, url)
	case status == http.StatusTooManyRequests:
		return pagesum.Errorf(pagesum.ERATELIMIT, "HTTP %d for %s", status, url)
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return pagesum.Errorf(pagesum.EUNAUTHORIZED, "HTTP %d for %s", status, url)
	case status >= 500:
		return pagesum.Errorf(pagesum.EUNAVAILABLE, "HTTP %d for %s", status, url)
	default:
		return pagesum.Errorf(pagesum.EINTERNAL, "HTTP %d for %s", status, url)
	}
}

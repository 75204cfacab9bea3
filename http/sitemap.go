package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/pagesum"
)

// Ensure SitemapSource implements pagesum.URLSource at compile time.
var _ pagesum.URLSource = (*SitemapSource)(nil)

// SitemapSource expands a sitemap.xml URL into the list of page URLs it
// references. Sitemap index files are followed recursively.
type SitemapSource struct {
	client     *http.Client
	sitemapURL string
}

// NewSitemapSource creates a SitemapSource for the given sitemap URL.
// If client is nil, http.DefaultClient is used.
func NewSitemapSource(client *http.Client, sitemapURL string) *SitemapSource {
	if client == nil {
		client = http.DefaultClient
	}
	return &SitemapSource{client: client, sitemapURL: sitemapURL}
}

// URLs fetches and parses the sitemap, returning page URLs in document order.
// URLs repeated across nested sitemaps are deduplicated on first occurrence.
func (s *SitemapSource) URLs(ctx context.Context) ([]string, error) {
	seenSitemaps := make(map[string]bool)
	seenURLs := make(map[string]bool)

	urls, err := s.process(ctx, s.sitemapURL, seenSitemaps)
	if err != nil {
		return nil, err
	}

	result := make([]string, 0, len(urls))
	for _, u := range urls {
		if !seenURLs[u] {
			seenURLs[u] = true
			result = append(result, u)
		}
	}
	return result, nil
}

// process fetches and parses a sitemap, handling both urlset and sitemapindex.
func (s *SitemapSource) process(ctx context.Context, sitemapURL string, seen map[string]bool) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Avoid processing the same sitemap twice
	if seen[sitemapURL] {
		return nil, nil
	}
	seen[sitemapURL] = true

	body, err := s.fetch(ctx, sitemapURL)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(body); err != nil {
		return nil, fmt.Errorf("parsing sitemap XML: %w", err)
	}

	root := doc.Root()
	if root == nil {
		return nil, pagesum.Errorf(pagesum.EINVALID, "empty sitemap XML at %s", sitemapURL)
	}

	if root.Tag == "sitemapindex" {
		return s.processIndex(ctx, root, seen)
	}

	return parseURLSet(root), nil
}

// processIndex processes a <sitemapindex> element recursively.
func (s *SitemapSource) processIndex(ctx context.Context, root *etree.Element, seen map[string]bool) ([]string, error) {
	var all []string

	for _, sitemap := range root.SelectElements("sitemap") {
		loc := sitemap.SelectElement("loc")
		if loc == nil {
			continue
		}
		sitemapURL := strings.TrimSpace(loc.Text())
		if sitemapURL == "" {
			continue
		}

		urls, err := s.process(ctx, sitemapURL, seen)
		if err != nil {
			return nil, err
		}
		all = append(all, urls...)
	}

	return all, nil
}

// parseURLSet extracts URLs from a <urlset> element.
func parseURLSet(root *etree.Element) []string {
	var urls []string
	for _, urlEl := range root.SelectElements("url") {
		loc := urlEl.SelectElement("loc")
		if loc == nil {
			continue
		}
		u := strings.TrimSpace(loc.Text())
		if u != "" {
			urls = append(urls, u)
		}
	}
	return urls
}

// fetch retrieves a sitemap document body.
func (s *SitemapSource) fetch(ctx context.Context, targetURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, pagesum.Errorf(pagesum.EUNAVAILABLE, "fetch %s: %v", targetURL, err)
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, statusError(resp.StatusCode, targetURL)
	}

	return resp.Body, nil
}

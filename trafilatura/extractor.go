// Package trafilatura provides a pagesum.Extractor backed by go-trafilatura,
// the default content extraction strategy.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/pagesum"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements pagesum.Extractor at compile time.
var _ pagesum.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
// Pages with no extractable text yield an empty result, not an error.
func (e *Extractor) Extract(rawHTML string) (*pagesum.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return &pagesum.ExtractResult{}, nil
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		// Trafilatura reports "no content" as an error. The batch treats
		// empty extraction as a skip, so normalize to an empty result.
		return &pagesum.ExtractResult{}, nil
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	return &pagesum.ExtractResult{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Package readability provides a pagesum.Extractor backed by go-readability.
package readability

import (
	"strings"

	"github.com/fwojciec/pagesum"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements pagesum.Extractor at compile time.
var _ pagesum.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
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

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return &pagesum.ExtractResult{}, nil
	}

	return &pagesum.ExtractResult{
		Title:       article.Title,
		ContentHTML: article.Content,
	}, nil
}

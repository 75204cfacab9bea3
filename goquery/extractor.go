// Package goquery provides a paragraph-harvesting pagesum.Extractor.
// It keeps every non-empty <p> element in reading order after stripping
// script, style, and navigation noise. Simpler and more predictable than
// statistical extraction, at the cost of missing non-paragraph content.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagesum"
)

// noiseSelector matches elements that never contain readable article text.
const noiseSelector = "script, style, noscript, template, nav, header, footer, aside, form"

// Ensure Extractor implements pagesum.Extractor at compile time.
var _ pagesum.Extractor = (*Extractor)(nil)

// Extractor extracts paragraph content from HTML using CSS selection.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the paragraph content.
// Empty or markup-free input yields an empty result, not an error.
func (e *Extractor) Extract(rawHTML string) (*pagesum.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return &pagesum.ExtractResult{}, nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return &pagesum.ExtractResult{}, nil
	}

	doc.Find(noiseSelector).Remove()

	title := strings.TrimSpace(doc.Find("title").First().Text())

	var parts []string
	doc.Find("p").Each(func(_ int, sel *goquery.Selection) {
		if strings.TrimSpace(sel.Text()) == "" {
			return
		}
		outer, err := goquery.OuterHtml(sel)
		if err != nil {
			return
		}
		parts = append(parts, strings.TrimSpace(outer))
	})

	return &pagesum.ExtractResult{
		Title:       title,
		ContentHTML: strings.Join(parts, "\n"),
	}, nil
}

package pagesum

// ExtractResult holds the extracted content from an HTML page.
type ExtractResult struct {
	// Title is the page title extracted from metadata.
	Title string

	// ContentHTML is the main content as clean HTML.
	// Boilerplate (nav, footer, sidebar, ads, script, style) has been removed.
	// Empty when the page has no extractable text content.
	ContentHTML string
}

// Extractor extracts main content from HTML pages, removing boilerplate.
type Extractor interface {
	// Extract processes raw HTML and returns the main content.
	// A page with no extractable text yields an empty ContentHTML,
	// not an error.
	Extract(html string) (*ExtractResult, error)
}

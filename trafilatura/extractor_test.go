package trafilatura_test

import (
	"testing"

	"github.com/fwojciec/pagesum"
	"github.com/fwojciec/pagesum/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Extractor implements pagesum.Extractor at compile time.
var _ pagesum.Extractor = (*trafilatura.Extractor)(nil)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts main content and title", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Understanding Goroutines</title></head>
<body>
<nav><a href="/">Home</a><a href="/blog">Blog</a></nav>
<article>
<h1>Understanding Goroutines</h1>
<p>Goroutines are lightweight threads managed by the Go runtime, and this
article explains how the scheduler multiplexes them onto OS threads.</p>
<pre><code>go func() { work() }()</code></pre>
</article>
<aside>Sidebar content</aside>
<footer>Copyright 2025</footer>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.NotEmpty(t, result.Title)
		assert.Contains(t, result.ContentHTML, "lightweight threads")
	})

	t.Run("excludes script and style content", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head>
<title>Test</title>
<style>.hidden { display: none; }</style>
<script>window.analytics = true;</script>
</head>
<body>
<article>
<p>The only visible sentence on this page, long enough to be kept.</p>
</article>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.NotContains(t, result.ContentHTML, "analytics")
		assert.NotContains(t, result.ContentHTML, "display: none")
	})

	t.Run("empty input yields empty result", func(t *testing.T) {
		t.Parallel()

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract("")

		require.NoError(t, err)
		assert.Empty(t, result.ContentHTML)
	})

	t.Run("content-free input yields empty result", func(t *testing.T) {
		t.Parallel()

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract("<html><body></body></html>")

		require.NoError(t, err)
		assert.Empty(t, result.ContentHTML)
	})
}

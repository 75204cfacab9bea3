package fs

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/pagesum"
)

// URLToSlug converts a URL to a deterministic filesystem-safe filename.
// Example: https://example.com/blog/my-post → example-com-blog-my-post.md
// Query strings and fragments are ignored, so the same page always maps to
// the same file and re-runs overwrite rather than accumulate.
func URLToSlug(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", pagesum.Errorf(pagesum.EINVALID, "invalid URL %q: %v", rawURL, err)
	}

	var b strings.Builder
	b.WriteString(u.Host)
	b.WriteString("-")
	b.WriteString(u.Path)

	slug := slugify(b.String())
	if slug == "" {
		return "", pagesum.Errorf(pagesum.EINVALID, "URL %q produces empty slug", rawURL)
	}

	return slug + ".md", nil
}

// slugify lowercases the input and collapses every run of non-alphanumeric
// characters into a single hyphen.
func slugify(s string) string {
	s = strings.ToLower(s)

	var b strings.Builder
	lastHyphen := true // suppress leading hyphen
	for _, r := range s {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteRune('-')
				lastHyphen = true
			}
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}

// FormatSummary formats a summary with YAML frontmatter followed by the
// verbatim summary content.
func FormatSummary(summary *pagesum.Summary) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("source: ")
	b.WriteString(summary.SourceURL)
	if summary.Title != "" {
		b.WriteString("\ntitle: ")
		b.WriteString(summary.Title)
	}
	if summary.Model != "" {
		b.WriteString("\nmodel: ")
		b.WriteString(summary.Model)
	}
	if !summary.CreatedAt.IsZero() {
		b.WriteString("\ncreated: ")
		b.WriteString(summary.CreatedAt.Format("2006-01-02"))
	}
	b.WriteString("\n---\n\n")
	b.WriteString(summary.Content)
	return b.String()
}

// Ensure Writer implements pagesum.SummaryWriter at compile time.
var _ pagesum.SummaryWriter = (*Writer)(nil)

// Writer writes summaries as markdown files to a directory.
// Filenames are derived deterministically from the source URL, so writing
// the same URL twice overwrites the earlier file.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WriteSummary writes a summary to disk and returns the path written.
func (w *Writer) WriteSummary(ctx context.Context, summary *pagesum.Summary) (string, error) {
	if err := summary.Validate(); err != nil {
		return "", err
	}

	name, err := URLToSlug(summary.SourceURL)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(w.baseDir, 0755); err != nil {
		return "", err
	}

	fullPath := filepath.Join(w.baseDir, name)
	if err := os.WriteFile(fullPath, []byte(FormatSummary(summary)), 0644); err != nil {
		return "", err
	}

	return fullPath, nil
}

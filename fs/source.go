// Package fs provides file-based input and output: the URL list source and
// the markdown summary writer.
package fs

import (
	"bufio"
	"context"
	"os"
	"strings"

	"github.com/fwojciec/pagesum"
)

// Ensure ListSource implements pagesum.URLSource at compile time.
var _ pagesum.URLSource = (*ListSource)(nil)

// ListSource reads URLs from a newline-delimited text file.
// Blank lines and lines starting with # are skipped; everything else is
// treated as a candidate URL. Order and duplicates are preserved.
type ListSource struct {
	path string
}

// NewListSource creates a ListSource reading from the given file path.
func NewListSource(path string) *ListSource {
	return &ListSource{path: path}
}

// URLs reads the list file and returns its URLs in file order.
func (s *ListSource) URLs(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, pagesum.Errorf(pagesum.ENOTFOUND, "URL list file %q not found", s.path)
		}
		return nil, err
	}
	defer f.Close()

	var urls []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		urls = append(urls, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return urls, nil
}

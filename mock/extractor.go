package mock

import "github.com/fwojciec/pagesum"

var _ pagesum.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of pagesum.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*pagesum.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*pagesum.ExtractResult, error) {
	return e.ExtractFn(html)
}

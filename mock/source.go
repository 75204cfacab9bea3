package mock

import (
	"context"

	"github.com/fwojciec/pagesum"
)

var _ pagesum.URLSource = (*URLSource)(nil)

// URLSource is a mock implementation of pagesum.URLSource.
type URLSource struct {
	URLsFn func(ctx context.Context) ([]string, error)
}

func (s *URLSource) URLs(ctx context.Context) ([]string, error) {
	return s.URLsFn(ctx)
}

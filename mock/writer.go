package mock

import (
	"context"

	"github.com/fwojciec/pagesum"
)

var _ pagesum.SummaryWriter = (*SummaryWriter)(nil)

// SummaryWriter is a mock implementation of pagesum.SummaryWriter.
type SummaryWriter struct {
	WriteSummaryFn func(ctx context.Context, summary *pagesum.Summary) (string, error)
}

func (w *SummaryWriter) WriteSummary(ctx context.Context, summary *pagesum.Summary) (string, error) {
	return w.WriteSummaryFn(ctx, summary)
}

package mock

import (
	"context"

	"github.com/fwojciec/pagesum"
)

var _ pagesum.SummaryService = (*SummaryService)(nil)

// SummaryService is a mock implementation of pagesum.SummaryService.
type SummaryService struct {
	CreateSummaryFn    func(ctx context.Context, summary *pagesum.Summary) error
	FindSummaryByURLFn func(ctx context.Context, sourceURL string) (*pagesum.Summary, error)
	FindSummariesFn    func(ctx context.Context, filter pagesum.SummaryFilter) ([]*pagesum.Summary, error)
}

func (s *SummaryService) CreateSummary(ctx context.Context, summary *pagesum.Summary) error {
	return s.CreateSummaryFn(ctx, summary)
}

func (s *SummaryService) FindSummaryByURL(ctx context.Context, sourceURL string) (*pagesum.Summary, error) {
	return s.FindSummaryByURLFn(ctx, sourceURL)
}

func (s *SummaryService) FindSummaries(ctx context.Context, filter pagesum.SummaryFilter) ([]*pagesum.Summary, error) {
	return s.FindSummariesFn(ctx, filter)
}

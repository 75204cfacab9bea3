package pagesum

import (
	"context"
	"time"
)

// Summary represents a generated summary of a single page.
type Summary struct {
	ID          string    `json:"id"`
	SourceURL   string    `json:"sourceUrl"`
	Title       string    `json:"title"`
	Content     string    `json:"content"` // Markdown
	ContentHash string    `json:"contentHash"`
	Model       string    `json:"model"`
	Position    int       `json:"position"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Validate returns an error if the summary contains invalid fields.
func (s *Summary) Validate() error {
	if s.SourceURL == "" {
		return Errorf(EINVALID, "summary source URL required")
	}
	if s.Content == "" {
		return Errorf(EINVALID, "summary content required")
	}
	return nil
}

// SummaryWriter persists summaries as files.
type SummaryWriter interface {
	// WriteSummary writes a summary to its deterministic location,
	// overwriting any previous summary for the same source URL.
	// Returns the path written.
	WriteSummary(ctx context.Context, summary *Summary) (string, error)
}

// SummaryService represents a catalog of generated summaries.
type SummaryService interface {
	// CreateSummary records a summary, replacing any prior record for the
	// same source URL.
	CreateSummary(ctx context.Context, summary *Summary) error

	// FindSummaryByURL retrieves the latest summary for a source URL.
	// Returns ENOTFOUND if no summary exists.
	FindSummaryByURL(ctx context.Context, sourceURL string) (*Summary, error)

	// FindSummaries retrieves summaries matching the filter.
	FindSummaries(ctx context.Context, filter SummaryFilter) ([]*Summary, error)
}

// SortOrder represents the sort order for summary queries.
type SortOrder string

// SortOrder constants for SummaryFilter.
const (
	SortByCreatedAt SortOrder = "created_at"
	SortByPosition  SortOrder = "position"
)

// SummaryFilter represents a filter for FindSummaries.
type SummaryFilter struct {
	ID        *string `json:"id"`
	SourceURL *string `json:"sourceUrl"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`

	SortBy SortOrder `json:"sortBy"`
}

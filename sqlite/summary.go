package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/pagesum"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ pagesum.SummaryService = (*SummaryService)(nil)

// SummaryService implements pagesum.SummaryService using SQLite.
type SummaryService struct {
	db *DB
}

// NewSummaryService creates a new SummaryService.
func NewSummaryService(db *DB) *SummaryService {
	return &SummaryService{db: db}
}

// hashContent computes xxHash of content and returns a hex string.
func hashContent(content string) string {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, xxhash.Sum64String(content))
	return hex.EncodeToString(b)
}

// CreateSummary records a summary. A prior record for the same source URL is
// replaced, mirroring the overwrite semantics of the file output.
func (s *SummaryService) CreateSummary(ctx context.Context, summary *pagesum.Summary) error {
	if err := summary.Validate(); err != nil {
		return err
	}

	summary.ID = uuid.New().String()
	summary.CreatedAt = time.Now().UTC()
	summary.ContentHash = hashContent(summary.Content)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO summaries (id, source_url, title, content, content_hash, model, position, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(source_url) DO UPDATE SET
			id = excluded.id,
			title = excluded.title,
			content = excluded.content,
			content_hash = excluded.content_hash,
			model = excluded.model,
			position = excluded.position,
			created_at = excluded.created_at
	`, summary.ID, summary.SourceURL, summary.Title, summary.Content, summary.ContentHash,
		summary.Model, summary.Position, summary.CreatedAt.Format(time.RFC3339))

	return err
}

// FindSummaryByURL retrieves the latest summary for a source URL.
func (s *SummaryService) FindSummaryByURL(ctx context.Context, sourceURL string) (*pagesum.Summary, error) {
	var summary pagesum.Summary
	var createdAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, source_url, title, content, content_hash, model, position, created_at
		FROM summaries
		WHERE source_url = ?
	`, sourceURL).Scan(&summary.ID, &summary.SourceURL, &summary.Title, &summary.Content,
		&summary.ContentHash, &summary.Model, &summary.Position, &createdAt)

	if err == sql.ErrNoRows {
		return nil, pagesum.Errorf(pagesum.ENOTFOUND, "no summary for %q", sourceURL)
	}
	if err != nil {
		return nil, err
	}

	summary.CreatedAt, err = parseRFC3339(createdAt, "created_at")
	if err != nil {
		return nil, err
	}

	return &summary, nil
}

// FindSummaries retrieves summaries matching the filter.
func (s *SummaryService) FindSummaries(ctx context.Context, filter pagesum.SummaryFilter) ([]*pagesum.Summary, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, source_url, title, content, content_hash, model, position, created_at FROM summaries WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.SourceURL != nil {
		query.WriteString(" AND source_url = ?")
		args = append(args, *filter.SourceURL)
	}

	switch filter.SortBy {
	case pagesum.SortByPosition:
		query.WriteString(" ORDER BY position ASC")
	default:
		query.WriteString(" ORDER BY created_at DESC")
	}

	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []*pagesum.Summary
	for rows.Next() {
		var summary pagesum.Summary
		var createdAt string

		if err := rows.Scan(&summary.ID, &summary.SourceURL, &summary.Title, &summary.Content,
			&summary.ContentHash, &summary.Model, &summary.Position, &createdAt); err != nil {
			return nil, err
		}

		summary.CreatedAt, err = parseRFC3339(createdAt, "created_at")
		if err != nil {
			return nil, err
		}

		summaries = append(summaries, &summary)
	}

	return summaries, rows.Err()
}

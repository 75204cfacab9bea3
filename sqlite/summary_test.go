package sqlite_test

import (
	"context"
	"testing"

	"github.com/fwojciec/pagesum"
	"github.com/fwojciec/pagesum/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummaryService_CreateSummary(t *testing.T) {
	t.Parallel()

	t.Run("assigns ID, timestamp, and content hash", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewSummaryService(MustOpenDB(t))

		s := &pagesum.Summary{
			SourceURL: "https://example.com/a",
			Title:     "A",
			Content:   "summary text",
			Model:     "gemini-2.5-flash",
		}
		require.NoError(t, svc.CreateSummary(context.Background(), s))

		assert.NotEmpty(t, s.ID)
		assert.NotEmpty(t, s.ContentHash)
		assert.False(t, s.CreatedAt.IsZero())
	})

	t.Run("replaces prior record for same source URL", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewSummaryService(MustOpenDB(t))
		ctx := context.Background()

		require.NoError(t, svc.CreateSummary(ctx, &pagesum.Summary{
			SourceURL: "https://example.com/a",
			Content:   "first",
		}))
		require.NoError(t, svc.CreateSummary(ctx, &pagesum.Summary{
			SourceURL: "https://example.com/a",
			Content:   "second",
		}))

		all, err := svc.FindSummaries(ctx, pagesum.SummaryFilter{})
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, "second", all[0].Content)
	})

	t.Run("rejects invalid summary", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewSummaryService(MustOpenDB(t))

		err := svc.CreateSummary(context.Background(), &pagesum.Summary{Content: "no URL"})
		require.Error(t, err)
		assert.Equal(t, pagesum.EINVALID, pagesum.ErrorCode(err))
	})

	t.Run("identical content yields identical hash", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewSummaryService(MustOpenDB(t))
		ctx := context.Background()

		a := &pagesum.Summary{SourceURL: "https://example.com/a", Content: "same"}
		b := &pagesum.Summary{SourceURL: "https://example.com/b", Content: "same"}
		require.NoError(t, svc.CreateSummary(ctx, a))
		require.NoError(t, svc.CreateSummary(ctx, b))

		assert.Equal(t, a.ContentHash, b.ContentHash)
	})
}

func TestSummaryService_FindSummaryByURL(t *testing.T) {
	t.Parallel()

	t.Run("finds existing summary", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewSummaryService(MustOpenDB(t))
		ctx := context.Background()

		require.NoError(t, svc.CreateSummary(ctx, &pagesum.Summary{
			SourceURL: "https://example.com/a",
			Title:     "A",
			Content:   "text",
		}))

		got, err := svc.FindSummaryByURL(ctx, "https://example.com/a")
		require.NoError(t, err)
		assert.Equal(t, "A", got.Title)
		assert.Equal(t, "text", got.Content)
	})

	t.Run("missing summary is ENOTFOUND", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewSummaryService(MustOpenDB(t))

		_, err := svc.FindSummaryByURL(context.Background(), "https://example.com/missing")
		require.Error(t, err)
		assert.Equal(t, pagesum.ENOTFOUND, pagesum.ErrorCode(err))
	})
}

func TestSummaryService_FindSummaries(t *testing.T) {
	t.Parallel()

	t.Run("sorts by position when requested", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewSummaryService(MustOpenDB(t))
		ctx := context.Background()

		require.NoError(t, svc.CreateSummary(ctx, &pagesum.Summary{
			SourceURL: "https://example.com/b", Content: "b", Position: 1,
		}))
		require.NoError(t, svc.CreateSummary(ctx, &pagesum.Summary{
			SourceURL: "https://example.com/a", Content: "a", Position: 0,
		}))

		got, err := svc.FindSummaries(ctx, pagesum.SummaryFilter{SortBy: pagesum.SortByPosition})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "https://example.com/a", got[0].SourceURL)
		assert.Equal(t, "https://example.com/b", got[1].SourceURL)
	})

	t.Run("filters by source URL", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewSummaryService(MustOpenDB(t))
		ctx := context.Background()

		require.NoError(t, svc.CreateSummary(ctx, &pagesum.Summary{SourceURL: "https://example.com/a", Content: "a"}))
		require.NoError(t, svc.CreateSummary(ctx, &pagesum.Summary{SourceURL: "https://example.com/b", Content: "b"}))

		target := "https://example.com/b"
		got, err := svc.FindSummaries(ctx, pagesum.SummaryFilter{SourceURL: &target})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "b", got[0].Content)
	})

	t.Run("applies limit and offset", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewSummaryService(MustOpenDB(t))
		ctx := context.Background()

		for _, u := range []string{"https://e.com/1", "https://e.com/2", "https://e.com/3"} {
			require.NoError(t, svc.CreateSummary(ctx, &pagesum.Summary{SourceURL: u, Content: u, Position: len(u)}))
		}

		got, err := svc.FindSummaries(ctx, pagesum.SummaryFilter{
			SortBy: pagesum.SortByPosition,
			Limit:  1,
			Offset: 1,
		})
		require.NoError(t, err)
		require.Len(t, got, 1)
	})
}

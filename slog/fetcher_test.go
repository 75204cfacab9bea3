package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/pagesum"
	"github.com/fwojciec/pagesum/mock"
	pagesumslog "github.com/fwojciec/pagesum/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingFetcher(t *testing.T) {
	t.Parallel()

	t.Run("logs fetch and delegates", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))

		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "<html></html>", nil
			},
		}
		f := pagesumslog.NewLoggingFetcher(inner, logger)

		html, err := f.Fetch(context.Background(), "https://example.com/a")
		require.NoError(t, err)
		assert.Equal(t, "<html></html>", html)
		assert.Contains(t, buf.String(), "fetch")
		assert.Contains(t, buf.String(), "https://example.com/a")
	})

	t.Run("logs errors", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))

		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "", pagesum.Errorf(pagesum.EUNAVAILABLE, "down")
			},
		}
		f := pagesumslog.NewLoggingFetcher(inner, logger)

		_, err := f.Fetch(context.Background(), "https://example.com/a")
		require.Error(t, err)
		assert.Contains(t, buf.String(), "down")
	})
}

func TestLoggingCompleter(t *testing.T) {
	t.Parallel()

	t.Run("logs completion and delegates", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))

		inner := &mock.Completer{
			CompleteFn: func(ctx context.Context, prompt string) (string, error) {
				return "the summary", nil
			},
		}
		c := pagesumslog.NewLoggingCompleter(inner, logger)

		text, err := c.Complete(context.Background(), "prompt")
		require.NoError(t, err)
		assert.Equal(t, "the summary", text)
		assert.Contains(t, buf.String(), "completion")
		assert.Contains(t, buf.String(), "mock-model")
	})
}

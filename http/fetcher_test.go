package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fwojciec/pagesum"
	pagesumhttp "github.com/fwojciec/pagesum/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns body on success", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<html><body>hello</body></html>"))
		}))
		defer srv.Close()

		f := pagesumhttp.NewFetcher()
		defer f.Close()

		html, err := f.Fetch(context.Background(), srv.URL)
		require.NoError(t, err)
		assert.Equal(t, "<html><body>hello</body></html>", html)
	})

	t.Run("sends user agent header", func(t *testing.T) {
		t.Parallel()

		var gotUA string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUA = r.Header.Get("User-Agent")
		}))
		defer srv.Close()

		f := pagesumhttp.NewFetcher()
		defer f.Close()

		_, err := f.Fetch(context.Background(), srv.URL)
		require.NoError(t, err)
		assert.Contains(t, gotUA, "pagesum")
	})

	t.Run("maps 404 to ENOTFOUND", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		f := pagesumhttp.NewFetcher()
		defer f.Close()

		_, err := f.Fetch(context.Background(), srv.URL)
		require.Error(t, err)
		assert.Equal(t, pagesum.ENOTFOUND, pagesum.ErrorCode(err))
	})

	t.Run("maps 429 to ERATELIMIT", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer srv.Close()

		f := pagesumhttp.NewFetcher()
		defer f.Close()

		_, err := f.Fetch(context.Background(), srv.URL)
		require.Error(t, err)
		assert.Equal(t, pagesum.ERATELIMIT, pagesum.ErrorCode(err))
	})

	t.Run("maps 500 to EUNAVAILABLE", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		f := pagesumhttp.NewFetcher()
		defer f.Close()

		_, err := f.Fetch(context.Background(), srv.URL)
		require.Error(t, err)
		assert.Equal(t, pagesum.EUNAVAILABLE, pagesum.ErrorCode(err))
	})

	t.Run("maps connection failure to EUNAVAILABLE", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close() // Stop before fetching

		f := pagesumhttp.NewFetcher(pagesumhttp.WithTimeout(time.Second))
		defer f.Close()

		_, err := f.Fetch(context.Background(), srv.URL)
		require.Error(t, err)
		assert.Equal(t, pagesum.EUNAVAILABLE, pagesum.ErrorCode(err))
	})

	t.Run("rejects malformed URL", func(t *testing.T) {
		t.Parallel()

		f := pagesumhttp.NewFetcher()
		defer f.Close()

		_, err := f.Fetch(context.Background(), "http://exa mple.com/\x7f")
		require.Error(t, err)
		assert.Equal(t, pagesum.EINVALID, pagesum.ErrorCode(err))
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
		}))
		defer srv.Close()

		f := pagesumhttp.NewFetcher()
		defer f.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		_, err := f.Fetch(ctx, srv.URL)
		require.Error(t, err)
	})
}

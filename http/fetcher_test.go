package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/galscrape/galscrape"
	galhttp "github.com/galscrape/galscrape/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Compile-time verification that Fetcher implements galscrape.Fetcher.
var _ galscrape.Fetcher = (*galhttp.Fetcher)(nil)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns body, final URL and status", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte("<html><body>gallery</body></html>"))
		}))
		defer server.Close()

		fetcher := galhttp.NewFetcher()

		page, err := fetcher.Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, "<html><body>gallery</body></html>", page.Body)
		assert.Equal(t, server.URL+"/", page.FinalURL)
		assert.Equal(t, http.StatusOK, page.StatusCode)
		assert.True(t, page.OK())
	})

	t.Run("non-2xx status is not an error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte("not here"))
		}))
		defer server.Close()

		fetcher := galhttp.NewFetcher()

		page, err := fetcher.Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, page.StatusCode)
		assert.False(t, page.OK())
	})

	t.Run("follows redirects and reports the final URL", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		mux.HandleFunc("/old", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/new", http.StatusMovedPermanently)
		})
		mux.HandleFunc("/new", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("moved"))
		})
		server := httptest.NewServer(mux)
		defer server.Close()

		fetcher := galhttp.NewFetcher()

		page, err := fetcher.Fetch(context.Background(), server.URL+"/old")
		require.NoError(t, err)
		assert.Equal(t, server.URL+"/new", page.FinalURL)
		assert.Equal(t, "moved", page.Body)
	})

	t.Run("sends the configured User-Agent", func(t *testing.T) {
		t.Parallel()

		var gotUA string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUA = r.Header.Get("User-Agent")
		}))
		defer server.Close()

		fetcher := galhttp.NewFetcher(galhttp.WithUserAgent("galscrape-test"))

		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, "galscrape-test", gotUA)
	})

	t.Run("network-level failure is an error", func(t *testing.T) {
		t.Parallel()

		fetcher := galhttp.NewFetcher(galhttp.WithTimeout(100 * time.Millisecond))

		_, err := fetcher.Fetch(context.Background(), "http://non-existent-host.invalid/page")
		require.Error(t, err)
	})

	t.Run("respects custom timeout option", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			_, _ = w.Write([]byte("slow"))
		}))
		defer server.Close()

		fetcher := galhttp.NewFetcher(galhttp.WithTimeout(10 * time.Millisecond))

		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.Error(t, err)
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			_, _ = w.Write([]byte("slow"))
		}))
		defer server.Close()

		fetcher := galhttp.NewFetcher()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := fetcher.Fetch(ctx, server.URL)
		require.Error(t, err)
	})
}

func TestFetcher_Check(t *testing.T) {
	t.Parallel()

	t.Run("sends a range-limited request and returns the status", func(t *testing.T) {
		t.Parallel()

		var gotRange string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotRange = r.Header.Get("Range")
			w.WriteHeader(http.StatusPartialContent)
			_, _ = w.Write([]byte{0xff})
		}))
		defer server.Close()

		fetcher := galhttp.NewFetcher()

		status, err := fetcher.Check(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, http.StatusPartialContent, status)
		assert.Equal(t, "bytes=0-0", gotRange)
	})

	t.Run("reports non-success statuses", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusGone)
		}))
		defer server.Close()

		fetcher := galhttp.NewFetcher()

		status, err := fetcher.Check(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, http.StatusGone, status)
	})

	t.Run("network-level failure is an error", func(t *testing.T) {
		t.Parallel()

		fetcher := galhttp.NewFetcher(galhttp.WithTimeout(100 * time.Millisecond))

		_, err := fetcher.Check(context.Background(), "http://non-existent-host.invalid/a.jpg")
		require.Error(t, err)
	})
}

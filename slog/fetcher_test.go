package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/galscrape/galscrape"
	"github.com/galscrape/galscrape/mock"
	galslog "github.com/galscrape/galscrape/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("logs url, status, bytes and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (*galscrape.Page, error) {
				return &galscrape.Page{Body: "<html>content</html>", FinalURL: url, StatusCode: 200}, nil
			},
		}

		fetcher := galslog.NewLoggingFetcher(inner, logger)
		page, err := fetcher.Fetch(context.Background(), "https://www.erome.com/a/a1")

		require.NoError(t, err)
		assert.Equal(t, "<html>content</html>", page.Body)
		output := buf.String()
		assert.Contains(t, output, "fetch")
		assert.Contains(t, output, "url=https://www.erome.com/a/a1")
		assert.Contains(t, output, "status=200")
		assert.Contains(t, output, "bytes=20")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (*galscrape.Page, error) {
				return nil, errors.New("network error")
			},
		}

		fetcher := galslog.NewLoggingFetcher(inner, logger)
		_, err := fetcher.Fetch(context.Background(), "https://www.erome.com/a/a1")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=\"network error\"")
	})

	t.Run("logs probe status", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		inner := &mock.Fetcher{
			CheckFn: func(ctx context.Context, url string) (int, error) {
				return 206, nil
			},
		}

		fetcher := galslog.NewLoggingFetcher(inner, logger)
		status, err := fetcher.Check(context.Background(), "https://cdn.erome.com/full/1.jpg")

		require.NoError(t, err)
		assert.Equal(t, 206, status)
		assert.Contains(t, buf.String(), "status=206")
	})
}

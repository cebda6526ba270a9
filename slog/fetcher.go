package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/galscrape/galscrape"
)

// Ensure LoggingFetcher implements galscrape.Fetcher.
var _ galscrape.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with debug logging for every request.
type LoggingFetcher struct {
	next   galscrape.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next galscrape.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the request.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (page *galscrape.Page, err error) {
	defer func(begin time.Time) {
		status := 0
		bytes := 0
		if page != nil {
			status = page.StatusCode
			bytes = len(page.Body)
		}
		f.logger.Debug("fetch",
			"url", url,
			"status", status,
			"bytes", bytes,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Check delegates to the wrapped fetcher and logs the probe.
func (f *LoggingFetcher) Check(ctx context.Context, url string) (status int, err error) {
	defer func(begin time.Time) {
		f.logger.Debug("check",
			"url", url,
			"status", status,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Check(ctx, url)
}

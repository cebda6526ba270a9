// Package slog provides log/slog-based logging decorators for the
// galscrape interfaces. The pipeline itself stays silent; callers opt
// into logging by wrapping the implementations.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/galscrape/galscrape"
	"github.com/google/uuid"
)

// Ensure LoggingGalleryService implements galscrape.GalleryService.
var _ galscrape.GalleryService = (*LoggingGalleryService)(nil)

// LoggingGalleryService wraps a GalleryService with per-operation
// logging. Each invocation gets a unique crawl id so its log lines can
// be correlated.
type LoggingGalleryService struct {
	next   galscrape.GalleryService
	logger *slog.Logger
}

// NewLoggingGalleryService creates a new LoggingGalleryService.
func NewLoggingGalleryService(next galscrape.GalleryService, logger *slog.Logger) *LoggingGalleryService {
	return &LoggingGalleryService{next: next, logger: logger}
}

// ListAlbums delegates to the wrapped service and logs the operation.
func (s *LoggingGalleryService) ListAlbums(ctx context.Context, source galscrape.Source, query string) (albums []galscrape.AlbumRef, err error) {
	defer func(begin time.Time, crawlID string) {
		s.logger.Info("list albums",
			"crawl_id", crawlID,
			"source", source,
			"query", query,
			"count", len(albums),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now(), uuid.NewString())
	return s.next.ListAlbums(ctx, source, query)
}

// ListAssets delegates to the wrapped service and logs the operation.
func (s *LoggingGalleryService) ListAssets(ctx context.Context, source galscrape.Source, query string) (assets []galscrape.Asset, err error) {
	defer func(begin time.Time, crawlID string) {
		s.logger.Info("list assets",
			"crawl_id", crawlID,
			"source", source,
			"query", query,
			"count", len(assets),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now(), uuid.NewString())
	return s.next.ListAssets(ctx, source, query)
}

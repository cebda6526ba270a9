package mock

import (
	"context"

	"github.com/galscrape/galscrape"
)

var _ galscrape.GalleryService = (*GalleryService)(nil)

// GalleryService is a mock implementation of galscrape.GalleryService.
type GalleryService struct {
	ListAlbumsFn func(ctx context.Context, source galscrape.Source, query string) ([]galscrape.AlbumRef, error)
	ListAssetsFn func(ctx context.Context, source galscrape.Source, query string) ([]galscrape.Asset, error)
}

func (s *GalleryService) ListAlbums(ctx context.Context, source galscrape.Source, query string) ([]galscrape.AlbumRef, error) {
	return s.ListAlbumsFn(ctx, source, query)
}

func (s *GalleryService) ListAssets(ctx context.Context, source galscrape.Source, query string) ([]galscrape.Asset, error) {
	return s.ListAssetsFn(ctx, source, query)
}

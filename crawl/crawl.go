// Package crawl provides the crawl-and-aggregate pipeline
// orchestration. It composes the pagination walker, the fan-out
// aggregator and the asset validator over a Fetcher and a source
// adapter registry.
package crawl

import (
	"context"
	"net/url"

	"github.com/galscrape/galscrape"
)

// DefaultConcurrency bounds the fan-out width when none is configured.
const DefaultConcurrency = 10

// Ensure Service implements galscrape.GalleryService at compile time.
var _ galscrape.GalleryService = (*Service)(nil)

// Service implements the pipeline. All state is created per invocation
// and discarded at its end; a Service holds no mutable state and is
// safe for concurrent use.
//
// The pipeline never surfaces partial fetch failures: a failing page
// simply contributes nothing. The only reportable error is a query
// that cannot be classified for the requested source.
type Service struct {
	Fetcher  galscrape.Fetcher
	Adapters galscrape.AdapterRegistry

	// Limiter, when set, throttles outbound fetches per host.
	Limiter galscrape.HostLimiter

	// Concurrency bounds the fan-out worker pool.
	// Defaults to DefaultConcurrency when <= 0.
	Concurrency int
}

// ListAlbums returns the album references discovered for the query.
// A direct album URL yields itself; an identifier runs search
// pagination or maps to the user's profile URL, per source.
func (s *Service) ListAlbums(ctx context.Context, source galscrape.Source, rawQuery string) ([]galscrape.AlbumRef, error) {
	query, adapter, err := s.resolve(source, rawQuery)
	if err != nil {
		return nil, err
	}
	return s.listAlbums(ctx, adapter, query)
}

// ListAssets returns the deduplicated, validated asset URLs discovered
// for the query. It composes album discovery, the two-round fan-out
// aggregator and the asset validator.
func (s *Service) ListAssets(ctx context.Context, source galscrape.Source, rawQuery string) ([]galscrape.Asset, error) {
	query, adapter, err := s.resolve(source, rawQuery)
	if err != nil {
		return nil, err
	}

	albums, err := s.listAlbums(ctx, adapter, query)
	if err != nil {
		return nil, err
	}

	candidates := s.aggregate(ctx, adapter, albums, query.Raw)
	return s.validate(ctx, candidates), nil
}

func (s *Service) resolve(source galscrape.Source, rawQuery string) (galscrape.Query, galscrape.SourceAdapter, error) {
	query, err := galscrape.ClassifyQuery(source, rawQuery)
	if err != nil {
		return galscrape.Query{}, nil, err
	}
	adapter, ok := s.Adapters.Get(source)
	if !ok {
		return galscrape.Query{}, nil, galscrape.Errorf(galscrape.EINVALID, "no adapter registered for source %q", source)
	}
	return query, adapter, nil
}

func (s *Service) listAlbums(ctx context.Context, adapter galscrape.SourceAdapter, query galscrape.Query) ([]galscrape.AlbumRef, error) {
	if query.IsDirect() {
		return []galscrape.AlbumRef{{URL: query.URL}}, nil
	}
	if _, ok := adapter.SearchURL(query.Raw, 1); ok {
		return s.walkSearch(ctx, adapter, query), nil
	}
	if profileURL, ok := adapter.ProfileURL(query.Raw); ok {
		return []galscrape.AlbumRef{{URL: profileURL}}, nil
	}
	return nil, galscrape.Errorf(galscrape.EINVALID, "source %q cannot resolve identifier %q", adapter.Source(), query.Raw)
}

func (s *Service) concurrency() int {
	if s.Concurrency > 0 {
		return s.Concurrency
	}
	return DefaultConcurrency
}

// fetch applies the optional per-host rate limit before delegating to
// the Fetcher.
func (s *Service) fetch(ctx context.Context, rawURL string) (*galscrape.Page, error) {
	if s.Limiter != nil {
		if host := hostOf(rawURL); host != "" {
			if err := s.Limiter.Wait(ctx, host); err != nil {
				return nil, err
			}
		}
	}
	return s.Fetcher.Fetch(ctx, rawURL)
}

func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Host
}

package crawl

import (
	"context"

	"github.com/galscrape/galscrape"
	"golang.org/x/sync/errgroup"
)

// validate concurrently probes each candidate with a lightweight
// existence check and keeps only the ones whose status indicates
// success. Thumbnail-marked URLs are excluded even when the probe
// would succeed for them; the filter runs both before and after the
// probes in case an adapter let one slip through. Probe failures of
// any kind silently drop the candidate.
func (s *Service) validate(ctx context.Context, candidates []galscrape.Asset) []galscrape.Asset {
	alive := make([]bool, len(candidates))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency())
	for i, candidate := range candidates {
		i, candidate := i, candidate
		if galscrape.IsThumbnail(candidate.URL) {
			continue
		}
		g.Go(func() error {
			status, err := s.check(gctx, candidate.URL)
			if err == nil && status >= 200 && status < 300 {
				alive[i] = true
			}
			return nil
		})
	}
	_ = g.Wait()

	valid := make([]galscrape.Asset, 0, len(candidates))
	for i, candidate := range candidates {
		if alive[i] && !galscrape.IsThumbnail(candidate.URL) {
			valid = append(valid, candidate)
		}
	}
	return valid
}

// check applies the optional per-host rate limit before probing.
func (s *Service) check(ctx context.Context, rawURL string) (int, error) {
	if s.Limiter != nil {
		if host := hostOf(rawURL); host != "" {
			if err := s.Limiter.Wait(ctx, host); err != nil {
				return 0, err
			}
		}
	}
	return s.Fetcher.Check(ctx, rawURL)
}

// Package mock provides function-field mock implementations of the
// galscrape interfaces for testing.
package mock

import (
	"context"

	"github.com/galscrape/galscrape"
)

var _ galscrape.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of galscrape.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*galscrape.Page, error)
	CheckFn func(ctx context.Context, url string) (int, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*galscrape.Page, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Check(ctx context.Context, url string) (int, error) {
	if f.CheckFn == nil {
		return 200, nil
	}
	return f.CheckFn(ctx, url)
}

package crawl

import (
	"context"

	"github.com/cespare/xxhash/v2"
	"github.com/galscrape/galscrape"
)

// walkSearch drives the adapter across successive search-result pages,
// accumulating album references in discovery order. The cursor starts
// at page 1 and only ever increments; it is owned by this loop and
// discarded when it terminates.
//
// The walk stops when a fetch fails, a page yields nothing new, the
// adapter signals no successor, or a page body repeats verbatim. There
// is no page cap: the crawl is exhaustive and callers needing an upper
// bound impose one through ctx.
func (s *Service) walkSearch(ctx context.Context, adapter galscrape.SourceAdapter, query galscrape.Query) []galscrape.AlbumRef {
	var albums []galscrape.AlbumRef
	seen := make(map[string]bool)
	fingerprints := make(map[uint64]bool)

	for page := 1; ; page++ {
		if ctx.Err() != nil {
			return albums
		}

		searchURL, ok := adapter.SearchURL(query.Raw, page)
		if !ok {
			return albums
		}

		fetched, err := s.fetch(ctx, searchURL)
		if err != nil || !fetched.OK() {
			return albums
		}

		// A body identical to one already consumed means the source is
		// serving the same page again; treat it as a stall.
		fp := xxhash.Sum64String(fetched.Body)
		if fingerprints[fp] {
			return albums
		}
		fingerprints[fp] = true

		res := adapter.Parse(fetched, galscrape.ParseContext{
			Kind:  galscrape.PageSearch,
			Query: query.Raw,
			Page:  page,
		})

		grew := false
		for _, album := range res.Albums {
			if seen[album.URL] {
				continue
			}
			seen[album.URL] = true
			albums = append(albums, album)
			grew = true
		}

		if res.Empty() || !grew || !res.HasNext {
			return albums
		}
	}
}

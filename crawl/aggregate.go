package crawl

import (
	"context"
	"strings"
	"sync"

	"github.com/galscrape/galscrape"
	"golang.org/x/sync/errgroup"
)

// Frontier sizing for leaf-page deduplication.
const (
	frontierExpectedURLs      = 10000
	frontierFalsePositiveRate = 0.01
)

// assetSet merges assets concurrently, keyed by URL string. Thumbnail
// URLs are rejected at construction; the validator re-applies the
// filter afterwards.
type assetSet struct {
	mu     sync.Mutex
	seen   map[string]bool
	assets []galscrape.Asset
}

func newAssetSet() *assetSet {
	return &assetSet{seen: make(map[string]bool)}
}

// add inserts the asset unless its URL was already merged or carries
// the thumbnail marker. Returns true when the set grew.
func (s *assetSet) add(asset galscrape.Asset) bool {
	if galscrape.IsThumbnail(asset.URL) {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.seen[asset.URL] {
		return false
	}
	s.seen[asset.URL] = true
	s.assets = append(s.assets, asset)
	return true
}

func (s *assetSet) list() []galscrape.Asset {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.assets
}

// aggregate fans out one fetch+parse per album reference concurrently
// and merges the resulting assets into one deduplicated set. Sources
// with a second level of indirection contribute leaf references, which
// are deduplicated in a frontier and fanned out in a second round.
// Individual fetch failures contribute nothing and never abort the
// batch; the output is best-effort completeness.
func (s *Service) aggregate(ctx context.Context, adapter galscrape.SourceAdapter, albums []galscrape.AlbumRef, query string) []galscrape.Asset {
	merged := newAssetSet()
	frontier := NewFrontier(frontierExpectedURLs, frontierFalsePositiveRate)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency())
	for _, album := range albums {
		albumURL := album.URL
		g.Go(func() error {
			s.crawlAlbum(gctx, adapter, albumURL, query, merged, frontier)
			return nil
		})
	}
	_ = g.Wait()

	// Second round over the merged leaf set.
	var leaves []string
	for {
		leaf, ok := frontier.Pop()
		if !ok {
			break
		}
		leaves = append(leaves, leaf)
	}

	g, gctx = errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency())
	for _, leaf := range leaves {
		leafURL := leaf
		g.Go(func() error {
			page, err := s.fetch(gctx, leafURL)
			if err != nil || !page.OK() {
				return nil
			}
			res := adapter.Parse(page, galscrape.ParseContext{
				Kind:  galscrape.PageLeaf,
				Query: query,
			})
			for _, asset := range res.Assets {
				merged.add(asset)
			}
			return nil
		})
	}
	_ = g.Wait()

	return merged.list()
}

// crawlAlbum walks one album reference, following explicit next-page
// controls when the source paginates album content (jpg-host style).
// The chain stops when a page fails, repeats a URL, yields no new
// asset, or carries no control.
func (s *Service) crawlAlbum(ctx context.Context, adapter galscrape.SourceAdapter, albumURL, query string, merged *assetSet, frontier *Frontier) {
	pageURL := strings.TrimSuffix(albumURL, "/")
	visited := make(map[string]bool)
	chainSeen := make(map[string]bool)

	for pageURL != "" && !visited[pageURL] {
		visited[pageURL] = true

		page, err := s.fetch(ctx, pageURL)
		if err != nil || !page.OK() {
			return
		}

		res := adapter.Parse(page, galscrape.ParseContext{
			Kind:  galscrape.PageAlbum,
			Query: query,
		})

		grew := false
		for _, asset := range res.Assets {
			if !chainSeen[asset.URL] {
				chainSeen[asset.URL] = true
				grew = true
			}
			merged.add(asset)
		}
		for _, leaf := range res.Leaves {
			if frontier.Push(leaf.URL) {
				grew = true
			}
		}

		if res.Empty() || !grew || !res.HasNext || res.NextPage == "" {
			return
		}
		pageURL = res.NextPage
	}
}

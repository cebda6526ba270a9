package goquery

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/galscrape/galscrape"
)

// Bunkr markup conventions. Search runs on the bunkr-albums.io index
// site; albums and files live on bunkr.cr.
const (
	bunkrAlbumPrefix    = "https://bunkr.cr/a/"
	bunkrFileHost       = "https://bunkr.cr"
	bunkrFilePath       = "/f/"
	bunkrSearchTemplate = "https://bunkr-albums.io/?search=%s&page=%d"
)

var _ galscrape.SourceAdapter = (*BunkrAdapter)(nil)

// BunkrAdapter extracts albums, leaf pages and assets from bunkr pages.
// Album pages link to per-file leaf pages which must be fetched again
// to find the terminal asset URL.
type BunkrAdapter struct{}

// NewBunkrAdapter creates a new BunkrAdapter.
func NewBunkrAdapter() *BunkrAdapter {
	return &BunkrAdapter{}
}

// Source returns the tag this adapter handles.
func (a *BunkrAdapter) Source() galscrape.Source {
	return galscrape.SourceBunkr
}

// SearchURL returns the search-results URL for (query, page).
func (a *BunkrAdapter) SearchURL(query string, page int) (string, bool) {
	return fmt.Sprintf(bunkrSearchTemplate, url.QueryEscape(query), page), true
}

// ProfileURL reports that bunkr identifiers resolve through search.
func (a *BunkrAdapter) ProfileURL(identifier string) (string, bool) {
	return "", false
}

// Parse extracts albums from search pages, leaf references from album
// pages and the terminal asset URL from leaf pages.
func (a *BunkrAdapter) Parse(page *galscrape.Page, pctx galscrape.ParseContext) *galscrape.ParseResult {
	res := &galscrape.ParseResult{}
	doc, ok := parseDoc(page.Body)
	if !ok {
		return res
	}

	switch pctx.Kind {
	case galscrape.PageSearch:
		a.parseSearch(doc, pctx, res)
	case galscrape.PageAlbum:
		a.parseAlbum(doc, res)
	case galscrape.PageLeaf:
		a.parseLeaf(doc, res)
	}
	return res
}

func (a *BunkrAdapter) parseSearch(doc *goquery.Document, pctx galscrape.ParseContext, res *galscrape.ParseResult) {
	// Titles live in separate elements from the album anchors and are
	// paired positionally: the Nth matching anchor gets the Nth title.
	// Nothing validates that the two counts agree; when they diverge the
	// extra anchors get empty titles. Known correctness gap, kept for
	// compatibility with the site's card layout.
	titles := doc.Find("p.truncate")

	index := 0
	doc.Find(`a[href^="` + bunkrAlbumPrefix + `"]`).Each(func(_ int, sel *goquery.Selection) {
		href, exists := sel.Attr("href")
		if !exists {
			return
		}
		title := ""
		if index < titles.Length() {
			title = strings.TrimSpace(titles.Eq(index).Text())
		}
		index++
		res.Albums = append(res.Albums, galscrape.AlbumRef{URL: href, Title: title})
	})

	// Pagination is signalled by an explicit control naming the next
	// page number.
	nextMarker := fmt.Sprintf("page=%d", pctx.Page+1)
	doc.Find("a.btn-main[href]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		href, _ := sel.Attr("href")
		if strings.Contains(href, nextMarker) {
			res.HasNext = true
			return false
		}
		return true
	})
}

func (a *BunkrAdapter) parseAlbum(doc *goquery.Document, res *galscrape.ParseResult) {
	seen := make(map[string]bool)
	doc.Find(`a[aria-label="download"][href]`).Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		switch {
		case strings.HasPrefix(href, bunkrFilePath):
			href = bunkrFileHost + href
		case strings.HasPrefix(href, bunkrFileHost+bunkrFilePath):
			// Already absolute.
		default:
			return
		}
		if seen[href] {
			return
		}
		seen[href] = true
		res.Leaves = append(res.Leaves, galscrape.LeafRef{URL: href})
	})
}

func (a *BunkrAdapter) parseLeaf(doc *goquery.Document, res *galscrape.ParseResult) {
	sel := doc.Find(`img[class*="object-cover"]`).First()
	src, exists := sel.Attr("src")
	if !exists || src == "" {
		return
	}
	res.Assets = append(res.Assets, galscrape.Asset{
		URL:  src,
		Kind: galscrape.AssetImage,
	})
}

package goquery

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/galscrape/galscrape"
)

// Erome markup conventions.
const (
	eromeAlbumPrefix    = "https://www.erome.com/a/"
	eromeSearchTemplate = "https://www.erome.com/search?q=%s&page=%d"
)

var _ galscrape.SourceAdapter = (*EromeAdapter)(nil)

// EromeAdapter extracts albums and assets from erome pages. Search
// pages list albums as a.album-link anchors; album pages embed assets
// as data-src attributes on div.img containers, relative to the page's
// post-redirect URL.
type EromeAdapter struct{}

// NewEromeAdapter creates a new EromeAdapter.
func NewEromeAdapter() *EromeAdapter {
	return &EromeAdapter{}
}

// Source returns the tag this adapter handles.
func (a *EromeAdapter) Source() galscrape.Source {
	return galscrape.SourceErome
}

// SearchURL returns the search-results URL for (query, page).
func (a *EromeAdapter) SearchURL(query string, page int) (string, bool) {
	return fmt.Sprintf(eromeSearchTemplate, url.QueryEscape(query), page), true
}

// ProfileURL reports that erome identifiers resolve through search.
func (a *EromeAdapter) ProfileURL(identifier string) (string, bool) {
	return "", false
}

// Parse extracts albums from search pages and image assets from album
// pages.
func (a *EromeAdapter) Parse(page *galscrape.Page, pctx galscrape.ParseContext) *galscrape.ParseResult {
	res := &galscrape.ParseResult{}
	doc, ok := parseDoc(page.Body)
	if !ok {
		return res
	}

	if pctx.Kind == galscrape.PageSearch {
		seen := make(map[string]bool)
		doc.Find("a.album-link").Each(func(_ int, sel *goquery.Selection) {
			href, exists := sel.Attr("href")
			if !exists || !strings.HasPrefix(href, eromeAlbumPrefix) {
				return
			}
			if seen[href] {
				return
			}
			seen[href] = true
			res.Albums = append(res.Albums, galscrape.AlbumRef{
				URL:   href,
				Title: strings.TrimSpace(sel.Text()),
			})
		})
		// Erome search pages have no explicit next control; a non-empty
		// page is assumed to have a successor.
		res.HasNext = len(res.Albums) > 0
		return res
	}

	// Album page. data-src values may be relative to the final URL
	// since the requested URL can redirect.
	seen := make(map[string]bool)
	doc.Find("div.img").Each(func(_ int, sel *goquery.Selection) {
		src, exists := sel.Attr("data-src")
		if !exists || src == "" {
			return
		}
		resolved := resolveURL(page.FinalURL, src)
		if resolved == "" || seen[resolved] {
			return
		}
		seen[resolved] = true
		res.Assets = append(res.Assets, galscrape.Asset{
			URL:  resolved,
			Kind: galscrape.AssetImage,
		})
	})
	return res
}

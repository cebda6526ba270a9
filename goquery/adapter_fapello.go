package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/galscrape/galscrape"
)

// Fapello markup conventions. Profiles live at fapello.com/<username>/
// and paginate by numeric sub-pages; media is served from the content
// host with the username as a path segment.
const (
	fapelloContentPrefix = "https://fapello.com/content/"
	fapelloProfilePrefix = "https://fapello.com/"
)

// numericTail matches sub-page links ending in a numeric path segment.
var numericTail = regexp.MustCompile(`/\d+/?$`)

var _ galscrape.SourceAdapter = (*FapelloAdapter)(nil)

// FapelloAdapter extracts media from fapello profiles. A profile page
// links to numbered sub-pages, each of which carries images and mp4
// sources. Both the content-host prefix and the username path segment
// are required on every media URL to exclude cross-user content.
type FapelloAdapter struct{}

// NewFapelloAdapter creates a new FapelloAdapter.
func NewFapelloAdapter() *FapelloAdapter {
	return &FapelloAdapter{}
}

// Source returns the tag this adapter handles.
func (a *FapelloAdapter) Source() galscrape.Source {
	return galscrape.SourceFapello
}

// SearchURL reports that fapello has no search pagination; identifiers
// map directly to profile URLs.
func (a *FapelloAdapter) SearchURL(query string, page int) (string, bool) {
	return "", false
}

// ProfileURL returns the album URL for a bare username query.
func (a *FapelloAdapter) ProfileURL(username string) (string, bool) {
	return fapelloProfilePrefix + username + "/", true
}

// Parse extracts numbered sub-page references from profile pages and
// user-scoped media from sub-pages. A profile page without sub-pages is
// scanned for media itself, so small profiles still yield assets.
func (a *FapelloAdapter) Parse(page *galscrape.Page, pctx galscrape.ParseContext) *galscrape.ParseResult {
	res := &galscrape.ParseResult{}
	doc, ok := parseDoc(page.Body)
	if !ok {
		return res
	}

	// The query is only usable as a username when it is a bare
	// identifier; a direct profile URL query carries the username in
	// its path instead.
	username := pctx.Query
	if username == "" || strings.Contains(username, "://") {
		username = usernameFromURL(page.FinalURL)
	}
	if username == "" {
		return res
	}

	if pctx.Kind == galscrape.PageAlbum {
		prefix := strings.TrimSuffix(page.FinalURL, "/")
		seen := make(map[string]bool)
		doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
			href, _ := sel.Attr("href")
			if !strings.HasPrefix(strings.TrimSuffix(href, "/"), prefix) {
				return
			}
			if !numericTail.MatchString(href) {
				return
			}
			if seen[href] {
				return
			}
			seen[href] = true
			res.Leaves = append(res.Leaves, galscrape.LeafRef{URL: href})
		})

		// When sub-pages exist they carry the full-size media; the
		// profile grid shows downscaled variants of the same shots, so
		// scanning it too would pollute the output.
		if len(res.Leaves) > 0 {
			return res
		}
	}

	a.parseMedia(doc, username, res)
	return res
}

func (a *FapelloAdapter) parseMedia(doc *goquery.Document, username string, res *galscrape.ParseResult) {
	userSegment := "/" + username + "/"
	seen := make(map[string]bool)

	doc.Find("img[src]").Each(func(_ int, sel *goquery.Selection) {
		src, _ := sel.Attr("src")
		if !strings.HasPrefix(src, fapelloContentPrefix) || !strings.Contains(src, userSegment) {
			return
		}
		if seen[src] {
			return
		}
		seen[src] = true
		res.Assets = append(res.Assets, galscrape.Asset{URL: src, Kind: galscrape.AssetImage})
	})

	doc.Find(`source[type="video/mp4"][src]`).Each(func(_ int, sel *goquery.Selection) {
		src, _ := sel.Attr("src")
		if !strings.HasPrefix(src, "https://") || !strings.Contains(src, userSegment) {
			return
		}
		if seen[src] {
			return
		}
		seen[src] = true
		res.Assets = append(res.Assets, galscrape.Asset{URL: src, Kind: galscrape.AssetVideo})
	})
}

package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/galscrape/galscrape"
)

// JPG-host markup conventions. Every page directly embeds assets; an
// explicit data-pagination control points at the next page.
const (
	jpgHostMarker = "jpg5.su"
	jpgHostBase   = "https://jpg5.su"
)

var _ galscrape.SourceAdapter = (*JPGHostAdapter)(nil)

// JPGHostAdapter extracts assets from jpg-host album pages. There is no
// album or leaf indirection: pages yield asset URLs directly, and
// pagination strictly follows the next-page control. The walker stops
// on stall even when a control is present.
type JPGHostAdapter struct{}

// NewJPGHostAdapter creates a new JPGHostAdapter.
func NewJPGHostAdapter() *JPGHostAdapter {
	return &JPGHostAdapter{}
}

// Source returns the tag this adapter handles.
func (a *JPGHostAdapter) Source() galscrape.Source {
	return galscrape.SourceJPGHost
}

// SearchURL reports that jpg-host has no search pagination; only
// direct album URLs are crawlable.
func (a *JPGHostAdapter) SearchURL(query string, page int) (string, bool) {
	return "", false
}

// ProfileURL reports that jpg-host has no user profiles.
func (a *JPGHostAdapter) ProfileURL(identifier string) (string, bool) {
	return "", false
}

// Parse extracts asset URLs and the next-page control from any page.
func (a *JPGHostAdapter) Parse(page *galscrape.Page, pctx galscrape.ParseContext) *galscrape.ParseResult {
	res := &galscrape.ParseResult{}
	doc, ok := parseDoc(page.Body)
	if !ok {
		return res
	}

	seen := make(map[string]bool)
	doc.Find("img[src]").Each(func(_ int, sel *goquery.Selection) {
		src, _ := sel.Attr("src")
		if !strings.Contains(src, jpgHostMarker) || seen[src] {
			return
		}
		seen[src] = true
		res.Assets = append(res.Assets, galscrape.Asset{URL: src, Kind: galscrape.AssetImage})
	})

	next := doc.Find(`a[data-pagination="next"]`).First()
	if href, exists := next.Attr("href"); exists && href != "" {
		if !strings.HasPrefix(href, "http") {
			href = jpgHostBase + href
		}
		res.NextPage = href
		res.HasNext = true
	}

	return res
}

// Package goquery provides goquery-based galscrape.SourceAdapter
// implementations, one per supported gallery site, plus a Registry
// mapping source tags to adapters.
//
// Adapters are tolerant by construction: malformed or unexpected markup
// and missing attributes yield an empty ParseResult, never an error.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// parseDoc parses HTML into a goquery document.
// The bool result is false if the HTML cannot be parsed at all.
func parseDoc(html string) (*goquery.Document, bool) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, false
	}
	return doc, true
}

// resolveURL resolves href against base, stripping any fragment.
// Returns empty string if either URL cannot be parsed.
func resolveURL(base string, href string) string {
	b, err := url.Parse(base)
	if err != nil {
		return ""
	}
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	resolved := b.ResolveReference(ref)
	resolved.Fragment = ""
	return resolved.String()
}

// usernameFromURL returns the first path segment of a URL, which on
// profile-per-path sources identifies the user.
func usernameFromURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	for _, segment := range strings.Split(u.Path, "/") {
		if segment != "" {
			return segment
		}
	}
	return ""
}

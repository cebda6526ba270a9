package mock

import "github.com/galscrape/galscrape"

var _ galscrape.SourceAdapter = (*SourceAdapter)(nil)

// SourceAdapter is a mock implementation of galscrape.SourceAdapter.
type SourceAdapter struct {
	SourceFn     func() galscrape.Source
	SearchURLFn  func(query string, page int) (string, bool)
	ProfileURLFn func(identifier string) (string, bool)
	ParseFn      func(page *galscrape.Page, pctx galscrape.ParseContext) *galscrape.ParseResult
}

func (a *SourceAdapter) Source() galscrape.Source {
	if a.SourceFn == nil {
		return galscrape.SourceErome
	}
	return a.SourceFn()
}

func (a *SourceAdapter) SearchURL(query string, page int) (string, bool) {
	return a.SearchURLFn(query, page)
}

func (a *SourceAdapter) ProfileURL(identifier string) (string, bool) {
	if a.ProfileURLFn == nil {
		return "", false
	}
	return a.ProfileURLFn(identifier)
}

func (a *SourceAdapter) Parse(page *galscrape.Page, pctx galscrape.ParseContext) *galscrape.ParseResult {
	return a.ParseFn(page, pctx)
}

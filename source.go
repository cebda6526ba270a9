package galscrape

import "strings"

// Source identifies one supported gallery-hosting site.
type Source string

// Supported sources.
const (
	SourceErome   Source = "erome"
	SourceBunkr   Source = "bunkr"
	SourceFapello Source = "fapello"
	SourceJPGHost Source = "jpghost"
)

// Sources returns all supported source tags.
func Sources() []Source {
	return []Source{SourceErome, SourceBunkr, SourceFapello, SourceJPGHost}
}

// ParseSource converts a user-supplied name to a Source tag.
// Returns EINVALID for unknown names.
func ParseSource(name string) (Source, error) {
	s := Source(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Sources() {
		if s == known {
			return s, nil
		}
	}
	return "", Errorf(EINVALID, "unknown source %q (supported: erome, bunkr, fapello, jpghost)", name)
}

// ThumbMarker is the path substring that identifies thumbnail or
// low-resolution variants of an asset. URLs containing it are excluded
// from pipeline output.
const ThumbMarker = "/thumb/"

// IsThumbnail reports whether url points at a thumbnail variant.
func IsThumbnail(url string) bool {
	return strings.Contains(url, ThumbMarker)
}

// AssetKind distinguishes media types.
type AssetKind string

// Asset kinds.
const (
	AssetImage AssetKind = "image"
	AssetVideo AssetKind = "video"
)

// Asset is a terminal media URL discovered by the pipeline.
type Asset struct {
	URL  string    `json:"url"`
	Kind AssetKind `json:"kind"`
}

// AlbumRef identifies an album on a source. Uniqueness is by URL;
// Title is best-effort metadata and may be empty.
type AlbumRef struct {
	URL   string `json:"url"`
	Title string `json:"title,omitempty"`
}

// LeafRef identifies an intermediate page that must itself be fetched
// to reveal one or more asset URLs.
type LeafRef struct {
	URL string `json:"url"`
}

// PageKind tells an adapter what role a fetched page plays.
type PageKind int

// Page roles.
const (
	// PageSearch is a search-results page listing albums.
	PageSearch PageKind = iota
	// PageAlbum is an album page listing assets or leaf pages.
	PageAlbum
	// PageLeaf is a per-asset page resolving to a terminal asset URL.
	PageLeaf
)

// ParseContext carries per-crawl information an adapter needs beyond
// the page itself.
type ParseContext struct {
	// Kind is the role of the page being parsed.
	Kind PageKind

	// Query is the identifier associated with the crawl. Adapters that
	// scope extraction to a user (fapello) require it; others ignore it.
	Query string

	// Page is the 1-based pagination cursor for search pages. Adapters
	// whose next-page control names an explicit page number need it.
	Page int
}

// ParseResult is the structured outcome of parsing one page.
// A page with malformed or unexpected markup yields an empty result,
// never an error.
type ParseResult struct {
	Albums []AlbumRef
	Leaves []LeafRef
	Assets []Asset

	// NextPage is the absolute URL of an explicit next-page control,
	// when the source paginates by control rather than page number.
	NextPage string

	// HasNext reports whether the source indicated a successor page.
	HasNext bool
}

// Empty reports whether the result carries no albums, leaves or assets.
func (r *ParseResult) Empty() bool {
	return len(r.Albums) == 0 && len(r.Leaves) == 0 && len(r.Assets) == 0
}

// SourceAdapter extracts structured results from one source's pages.
// Implementations hold the source-specific markup conventions and must
// tolerate missing elements and attributes.
type SourceAdapter interface {
	// Source returns the tag this adapter handles.
	Source() Source

	// SearchURL returns the search-results URL for (query, page).
	// ok is false when the source has no search pagination.
	SearchURL(query string, page int) (url string, ok bool)

	// ProfileURL maps a bare identifier to the album URL hosting the
	// user's media, for sources that have no search pagination.
	// ok is false when the source does not support the mapping.
	ProfileURL(identifier string) (url string, ok bool)

	// Parse extracts albums, leaf pages and assets from a fetched page.
	// Relative URLs are resolved against page.FinalURL, which may differ
	// from the requested URL after redirects.
	Parse(page *Page, pctx ParseContext) *ParseResult
}

// AdapterRegistry maps a source tag to its adapter.
type AdapterRegistry interface {
	// Get returns the adapter for a source.
	// The bool result is false if no adapter is registered.
	Get(source Source) (SourceAdapter, bool)

	// Register adds an adapter, replacing any existing one for its source.
	Register(adapter SourceAdapter)

	// List returns all registered source tags.
	List() []Source
}

package galscrape

import (
	"context"
	"strings"
)

// Query is a classified crawl input: either a bare identifier
// (username/handle) or a fully-qualified URL naming a specific album
// on the requested source. Queries are immutable once classified.
type Query struct {
	// Source is the gallery site the query targets.
	Source Source

	// Raw is the input string as received.
	Raw string

	// URL is non-empty when Raw is a direct URL on the source. A direct
	// URL bypasses search pagination entirely.
	URL string
}

// IsDirect reports whether the query names a specific album URL.
func (q Query) IsDirect() bool {
	return q.URL != ""
}

// queryURLPrefixes lists, per source, the URL prefixes accepted as
// direct album URLs for that source.
var queryURLPrefixes = map[Source][]string{
	SourceErome:   {"https://www.erome.com/", "https://erome.com/"},
	SourceBunkr:   {"https://bunkr.cr/", "https://bunkr-albums.io/"},
	SourceFapello: {"https://fapello.com/"},
	SourceJPGHost: {"https://jpg5.su/"},
}

// ClassifyQuery validates raw input against the requested source and
// returns a classified Query. A string that can be read neither as an
// identifier nor as a URL on the source returns EINVALID; this is the
// only condition the pipeline ever surfaces to callers, since no fetch
// can even be attempted for it.
func ClassifyQuery(source Source, raw string) (Query, error) {
	prefixes, ok := queryURLPrefixes[source]
	if !ok {
		return Query{}, Errorf(EINVALID, "unknown source %q", source)
	}

	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Query{}, Errorf(EINVALID, "empty query for source %q", source)
	}

	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		for _, prefix := range prefixes {
			if strings.HasPrefix(raw, prefix) {
				return Query{Source: source, Raw: raw, URL: raw}, nil
			}
		}
		return Query{}, Errorf(EINVALID, "URL %q does not belong to source %q", raw, source)
	}

	// Bare identifier. jpghost has no search, so only URLs are usable.
	if source == SourceJPGHost {
		return Query{}, Errorf(EINVALID, "source %q requires a direct album URL", source)
	}
	if strings.ContainsAny(raw, " \t\n/") {
		return Query{}, Errorf(EINVALID, "query %q cannot be classified as identifier or URL", raw)
	}

	return Query{Source: source, Raw: raw}, nil
}

// GalleryService is the pipeline's public surface, consumed by an
// external front end. Zero results is a valid non-error outcome,
// indistinguishable from "nothing existed"; partial fetch failures
// during crawling never surface as errors.
type GalleryService interface {
	// ListAlbums returns the album references discovered for the query.
	ListAlbums(ctx context.Context, source Source, query string) ([]AlbumRef, error)

	// ListAssets returns the deduplicated, validated asset URLs
	// discovered for the query.
	ListAssets(ctx context.Context, source Source, query string) ([]Asset, error)
}

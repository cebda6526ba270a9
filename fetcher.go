package galscrape

import "context"

// Page is the outcome of fetching a URL.
type Page struct {
	// Body is the response body as text.
	Body string

	// FinalURL is the URL after following redirects. Adapters resolve
	// relative links against it, not against the requested URL.
	FinalURL string

	// StatusCode is the HTTP response status.
	StatusCode int
}

// OK reports whether the page is usable for parsing.
func (p *Page) OK() bool {
	return p != nil && p.StatusCode >= 200 && p.StatusCode < 300 && p.Body != ""
}

// Fetcher is the pipeline's sole I/O primitive.
// A non-2xx response is reported through Page.StatusCode, not as an
// error; errors indicate network-level failure (DNS, reset, timeout).
// Callers treat both the same way: skip the unit of work and continue.
// No retries happen at this layer or anywhere above it.
type Fetcher interface {
	// Fetch retrieves the URL with a GET request, following redirects.
	Fetch(ctx context.Context, url string) (*Page, error)

	// Check probes the URL with a lightweight range-limited request and
	// returns the response status code without reading the body.
	Check(ctx context.Context, url string) (int, error)
}

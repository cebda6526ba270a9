// Package http provides the net/http implementation of
// galscrape.Fetcher, the pipeline's sole I/O primitive.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/galscrape/galscrape"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// DefaultUserAgent is sent with every request. Several gallery hosts
// refuse requests without a browser-like User-Agent.
const DefaultUserAgent = "Mozilla/5.0"

// Ensure Fetcher implements galscrape.Fetcher at compile time.
var _ galscrape.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves pages over HTTP with redirect following. Non-2xx
// responses are reported through the returned Page's StatusCode, never
// as errors; only network-level failures produce errors.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the per-request timeout.
// Defaults to DefaultFetchTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the URL with a GET request, following redirects.
// The returned Page carries the post-redirect URL so callers can
// resolve relative links correctly.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*galscrape.Page, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return &galscrape.Page{
		Body:       string(body),
		FinalURL:   resp.Request.URL.String(),
		StatusCode: resp.StatusCode,
	}, nil
}

// Check probes the URL with a range-limited GET and returns the status
// code without reading the body. A single byte is requested so hosts
// that reject HEAD still answer cheaply.
func (f *Fetcher) Check(ctx context.Context, url string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Range", "bytes=0-0")

	resp, err := f.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	// Drain at most the single requested byte so the connection can be reused.
	_, _ = io.CopyN(io.Discard, resp.Body, 1)

	return resp.StatusCode, nil
}

package crawl

import (
	"context"
	"strings"
	"sync"

	"github.com/galscrape/galscrape"
	"golang.org/x/time/rate"
)

var _ galscrape.HostLimiter = (*HostRateLimiter)(nil)

// HostRateLimiter throttles outbound requests with one token bucket
// per canonical host. Hosts are canonicalized before lookup, so the
// bare and www forms of a site share a bucket, while genuinely
// distinct hosts (a source's CDN, its search frontend) proceed
// independently. Limiting only reshapes the schedule; the set of
// fetched URLs is unchanged.
type HostRateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      float64
	burst    int
}

// LimiterOption configures a HostRateLimiter.
type LimiterOption func(*HostRateLimiter)

// WithBurst sets how many requests a cold bucket admits immediately.
// Values below 1 are ignored.
func WithBurst(n int) LimiterOption {
	return func(l *HostRateLimiter) {
		if n >= 1 {
			l.burst = n
		}
	}
}

// NewHostRateLimiter creates a new HostRateLimiter with the specified
// requests per second limit. The default burst is 1.
func NewHostRateLimiter(rps float64, opts ...LimiterOption) *HostRateLimiter {
	l := &HostRateLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
		burst:    1,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Wait blocks until the rate limit allows a request to the host.
// Returns an error if the context is canceled before the wait
// completes.
func (l *HostRateLimiter) Wait(ctx context.Context, host string) error {
	key := canonicalHost(host)

	l.mu.Lock()
	limiter, ok := l.limiters[key]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(l.rps), l.burst)
		l.limiters[key] = limiter
	}
	l.mu.Unlock()

	return limiter.Wait(ctx)
}

// canonicalHost folds the host forms that serve the same origin onto
// one bucket key.
func canonicalHost(host string) string {
	host = strings.ToLower(host)
	if h, _, ok := strings.Cut(host, ":"); ok {
		host = h
	}
	return strings.TrimPrefix(host, "www.")
}

package crawl_test

import (
	"context"
	"testing"
	"time"

	"github.com/galscrape/galscrape"
	"github.com/galscrape/galscrape/crawl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ galscrape.HostLimiter = (*crawl.HostRateLimiter)(nil)

func TestHostRateLimiter(t *testing.T) {
	t.Parallel()

	t.Run("allows immediate request when under limit", func(t *testing.T) {
		t.Parallel()

		limiter := crawl.NewHostRateLimiter(10) // 10 req/sec

		start := time.Now()
		err := limiter.Wait(context.Background(), "www.erome.com")
		elapsed := time.Since(start)

		require.NoError(t, err)
		assert.Less(t, elapsed, 50*time.Millisecond, "first request should be immediate")
	})

	t.Run("rate limits requests to the same host", func(t *testing.T) {
		t.Parallel()

		limiter := crawl.NewHostRateLimiter(10) // 100ms between requests

		err := limiter.Wait(context.Background(), "www.erome.com")
		require.NoError(t, err)

		start := time.Now()
		err = limiter.Wait(context.Background(), "www.erome.com")
		elapsed := time.Since(start)

		require.NoError(t, err)
		assert.GreaterOrEqual(t, elapsed, 80*time.Millisecond, "should wait for rate limit")
	})

	t.Run("different hosts have independent limits", func(t *testing.T) {
		t.Parallel()

		limiter := crawl.NewHostRateLimiter(10)

		err := limiter.Wait(context.Background(), "www.erome.com")
		require.NoError(t, err)

		start := time.Now()
		err = limiter.Wait(context.Background(), "bunkr.cr")
		elapsed := time.Since(start)

		require.NoError(t, err)
		assert.Less(t, elapsed, 50*time.Millisecond, "other host should not wait")
	})

	t.Run("bare and www forms of a host share one bucket", func(t *testing.T) {
		t.Parallel()

		limiter := crawl.NewHostRateLimiter(10)

		err := limiter.Wait(context.Background(), "www.erome.com")
		require.NoError(t, err)

		start := time.Now()
		err = limiter.Wait(context.Background(), "erome.com")
		elapsed := time.Since(start)

		require.NoError(t, err)
		assert.GreaterOrEqual(t, elapsed, 80*time.Millisecond, "www and bare host must not double the budget")
	})

	t.Run("configured burst admits requests immediately", func(t *testing.T) {
		t.Parallel()

		limiter := crawl.NewHostRateLimiter(10, crawl.WithBurst(3))

		start := time.Now()
		for i := 0; i < 3; i++ {
			require.NoError(t, limiter.Wait(context.Background(), "bunkr.cr"))
		}
		elapsed := time.Since(start)

		assert.Less(t, elapsed, 50*time.Millisecond, "burst-sized batch should not wait")
	})

	t.Run("returns an error when the context is canceled", func(t *testing.T) {
		t.Parallel()

		limiter := crawl.NewHostRateLimiter(1)

		err := limiter.Wait(context.Background(), "www.erome.com")
		require.NoError(t, err)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		err = limiter.Wait(ctx, "www.erome.com")
		require.Error(t, err)
	})
}

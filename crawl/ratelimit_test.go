package crawl_test

import (
	"context"
	"testing"
	"time"

	"github.com/contactfind/contactfind/crawl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainLimiter_Wait(t *testing.T) {
	t.Parallel()

	t.Run("first request passes immediately", func(t *testing.T) {
		t.Parallel()

		limiter := crawl.NewDomainLimiter(1)

		start := time.Now()
		err := limiter.Wait(context.Background(), "acme.in")
		require.NoError(t, err)
		assert.Less(t, time.Since(start), 100*time.Millisecond)
	})

	t.Run("different domains do not block each other", func(t *testing.T) {
		t.Parallel()

		limiter := crawl.NewDomainLimiter(1)

		require.NoError(t, limiter.Wait(context.Background(), "acme.in"))

		start := time.Now()
		require.NoError(t, limiter.Wait(context.Background(), "widgets.co.in"))
		assert.Less(t, time.Since(start), 100*time.Millisecond)
	})

	t.Run("same domain is throttled", func(t *testing.T) {
		t.Parallel()

		limiter := crawl.NewDomainLimiter(10) // 100ms between requests

		require.NoError(t, limiter.Wait(context.Background(), "acme.in"))

		start := time.Now()
		require.NoError(t, limiter.Wait(context.Background(), "acme.in"))
		assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
	})

	t.Run("canceled context returns error", func(t *testing.T) {
		t.Parallel()

		limiter := crawl.NewDomainLimiter(0.001)

		require.NoError(t, limiter.Wait(context.Background(), "acme.in"))

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()
		err := limiter.Wait(ctx, "acme.in")
		assert.Error(t, err)
	})
}

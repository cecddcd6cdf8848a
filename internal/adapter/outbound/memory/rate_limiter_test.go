package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiter_Take(t *testing.T) {
	now := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(time.Minute).(*rateLimiter)
	limiter.now = func() time.Time { return now }
	ctx := context.Background()

	t.Run("allows up to the limit", func(t *testing.T) {
		for i := 2; i >= 0; i-- {
			res, err := limiter.Take(ctx, "ip:1.2.3.4", 3, time.Minute)
			require.NoError(t, err)
			assert.True(t, res.Allowed)
			assert.Equal(t, i, res.Remaining)
		}

		res, err := limiter.Take(ctx, "ip:1.2.3.4", 3, time.Minute)
		require.NoError(t, err)
		assert.False(t, res.Allowed)
		assert.Equal(t, 0, res.Remaining)
		assert.True(t, res.ResetAt.After(now))
	})

	t.Run("keys are independent", func(t *testing.T) {
		res, err := limiter.Take(ctx, "ip:5.6.7.8", 3, time.Minute)
		require.NoError(t, err)
		assert.True(t, res.Allowed)
		assert.Equal(t, 2, res.Remaining)
	})

	t.Run("refills over the window", func(t *testing.T) {
		now = now.Add(time.Minute)

		res, err := limiter.Take(ctx, "ip:1.2.3.4", 3, time.Minute)
		require.NoError(t, err)
		assert.True(t, res.Allowed)
	})

	t.Run("zero limit denies", func(t *testing.T) {
		res, err := limiter.Take(ctx, "ip:9.9.9.9", 0, time.Minute)
		require.NoError(t, err)
		assert.False(t, res.Allowed)
	})
}

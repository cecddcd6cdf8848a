package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/darkroom/server/internal/port/outbound"
)

const rateLimitKeyPrefix = "darkroom:ratelimit:"

// rateLimiter implements outbound.RateLimiterPort with a sliding window log
// kept in a sorted set per key.
type rateLimiter struct {
	client redis.UniversalClient
	now    func() time.Time
}

// NewRateLimiter creates a new rate limiter adapter.
func NewRateLimiter(client redis.UniversalClient) outbound.RateLimiterPort {
	return &rateLimiter{client: client, now: time.Now}
}

func (r *rateLimiter) Take(ctx context.Context, key string, limit int, window time.Duration) (*outbound.RateLimitResult, error) {
	fullKey := rateLimitKeyPrefix + key
	now := r.now()
	windowStart := now.Add(-window).UnixNano()
	member := strconv.FormatInt(now.UnixNano(), 10) + "-" + uuid.NewString()

	var countCmd *redis.IntCmd
	var oldestCmd *redis.ZSliceCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZRemRangeByScore(ctx, fullKey, "-inf", strconv.FormatInt(windowStart, 10))
		pipe.ZAdd(ctx, fullKey, redis.Z{Score: float64(now.UnixNano()), Member: member})
		countCmd = pipe.ZCard(ctx, fullKey)
		oldestCmd = pipe.ZRangeWithScores(ctx, fullKey, 0, 0)
		pipe.PExpire(ctx, fullKey, window)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("rate limit %s: %w", key, err)
	}

	count := int(countCmd.Val())
	result := &outbound.RateLimitResult{
		Allowed:   count <= limit,
		Remaining: max(limit-count, 0),
		ResetAt:   now.Add(window),
	}
	if oldest := oldestCmd.Val(); len(oldest) > 0 {
		result.ResetAt = time.Unix(0, int64(oldest[0].Score)).Add(window)
	}

	// Rejected requests do not consume budget.
	if !result.Allowed {
		if err := r.client.ZRem(ctx, fullKey, member).Err(); err != nil {
			return nil, fmt.Errorf("rate limit %s: %w", key, err)
		}
	}

	return result, nil
}

// Compile-time check
var _ outbound.RateLimiterPort = (*rateLimiter)(nil)

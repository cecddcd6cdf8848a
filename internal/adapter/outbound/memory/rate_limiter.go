// Package memory holds in-process adapters used when no shared backend is configured.
package memory

import (
	"context"
	"math"
	"sync"
	"time"

	ttlworker "github.com/FloatTech/ttl"
	"golang.org/x/time/rate"

	"github.com/darkroom/server/internal/port/outbound"
)

// rateLimiter implements outbound.RateLimiterPort with one token bucket per key.
// Idle buckets expire from the cache.
type rateLimiter struct {
	mu       sync.Mutex
	limiters *ttlworker.Cache[string, *rate.Limiter]
	now      func() time.Time
}

// NewRateLimiter creates an in-process rate limiter. Buckets idle for longer
// than idle are dropped.
func NewRateLimiter(idle time.Duration) outbound.RateLimiterPort {
	if idle <= 0 {
		idle = 10 * time.Minute
	}
	return &rateLimiter{
		limiters: ttlworker.NewCache[string, *rate.Limiter](idle),
		now:      time.Now,
	}
}

func (r *rateLimiter) Take(_ context.Context, key string, limit int, window time.Duration) (*outbound.RateLimitResult, error) {
	if limit <= 0 {
		return &outbound.RateLimitResult{Allowed: false, ResetAt: r.now().Add(window)}, nil
	}

	lim := r.limiter(key, limit, window)
	now := r.now()
	allowed := lim.AllowN(now, 1)
	tokens := lim.TokensAt(now)

	// Time until the bucket is full again.
	missing := float64(limit) - tokens
	refill := time.Duration(missing * float64(window) / float64(limit))

	return &outbound.RateLimitResult{
		Allowed:   allowed,
		Remaining: max(int(math.Floor(tokens)), 0),
		ResetAt:   now.Add(refill),
	}, nil
}

func (r *rateLimiter) limiter(key string, limit int, window time.Duration) *rate.Limiter {
	r.mu.Lock()
	defer r.mu.Unlock()

	lim := r.limiters.Get(key)
	if lim == nil {
		lim = rate.NewLimiter(rate.Limit(float64(limit)/window.Seconds()), limit)
	}
	// Refresh on every access so active keys never expire.
	r.limiters.Set(key, lim)
	return lim
}

// Compile-time check
var _ outbound.RateLimiterPort = (*rateLimiter)(nil)

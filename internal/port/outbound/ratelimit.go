package outbound

import (
	"context"
	"time"
)

// RateLimitResult is the outcome of one rate limit check.
type RateLimitResult struct {
	Allowed   bool
	Remaining int
	ResetAt   time.Time
}

// RateLimiterPort defines rate limiting operations.
type RateLimiterPort interface {
	// Take consumes one request from key's budget of limit per window.
	Take(ctx context.Context, key string, limit int, window time.Duration) (*RateLimitResult, error)
}

package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/darkroom/server/internal/model"
	"github.com/darkroom/server/internal/port/outbound"
	"github.com/darkroom/server/internal/shared/logger"
	"github.com/darkroom/server/internal/utils/metrics"
)

const (
	// RateLimitRemaining is the header for remaining requests.
	RateLimitRemaining = "X-RateLimit-Remaining"
	// RateLimitLimit is the header for the limit.
	RateLimitLimit = "X-RateLimit-Limit"
	// RateLimitReset is the header for reset time.
	RateLimitReset = "X-RateLimit-Reset"
	// RetryAfter is the header for retry time.
	RetryAfter = "Retry-After"
)

// RateLimitConfig holds rate limit configuration.
type RateLimitConfig struct {
	// Limit is the maximum number of requests per window.
	Limit int
	// Window is the time window.
	Window time.Duration
	// KeyFunc generates the rate limit key from request.
	// Default uses client IP and route.
	KeyFunc func(*gin.Context) string
	// Metrics records rejected requests. Optional.
	Metrics *metrics.Metrics
	// Logger reports limiter backend failures. Optional.
	Logger *logger.Logger
}

// RateLimit returns a middleware that limits requests using the given limiter.
// Requests are let through when the limiter itself fails.
func RateLimit(limiter outbound.RateLimiterPort, cfg RateLimitConfig) gin.HandlerFunc {
	if cfg.KeyFunc == nil {
		cfg.KeyFunc = func(c *gin.Context) string {
			return "ip:" + c.ClientIP() + ":" + c.FullPath()
		}
	}
	if cfg.Logger == nil {
		cfg.Logger = logger.New(nil)
	}

	return func(c *gin.Context) {
		if limiter == nil {
			c.Next()
			return
		}

		res, err := limiter.Take(c.Request.Context(), cfg.KeyFunc(c), cfg.Limit, cfg.Window)
		if err != nil {
			cfg.Logger.ForRequest(c.Request.Context()).Warn("Rate limiter unavailable", logger.Err(err))
			c.Next()
			return
		}

		c.Header(RateLimitLimit, strconv.Itoa(cfg.Limit))
		c.Header(RateLimitRemaining, strconv.Itoa(res.Remaining))
		c.Header(RateLimitReset, strconv.FormatInt(res.ResetAt.Unix(), 10))

		if !res.Allowed {
			retry := int(time.Until(res.ResetAt).Seconds())
			if retry < 1 {
				retry = 1
			}
			c.Header(RetryAfter, strconv.Itoa(retry))
			cfg.Metrics.RecordRateLimited(c.FullPath())
			c.AbortWithStatusJSON(http.StatusTooManyRequests, model.ErrorResponse{
				Error: "Too many requests, please try again later",
			})
			return
		}

		c.Next()
	}
}

package notify

import "time"

// Config holds notify domain configuration.
type Config struct {
	// BreakerFailures is the number of consecutive store failures that opens the breaker.
	BreakerFailures uint32
	// BreakerTimeout is how long the breaker stays open before probing again.
	BreakerTimeout time.Duration
	// BreakerInterval resets the closed-state counters periodically.
	BreakerInterval time.Duration
}

// DefaultConfig returns default notify configuration.
func DefaultConfig() *Config {
	return &Config{
		BreakerFailures: 5,
		BreakerTimeout:  30 * time.Second,
		BreakerInterval: 60 * time.Second,
	}
}

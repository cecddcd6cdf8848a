// Package countdown computes the "developing" countdown shown to guests.
// Everything here is pure: callers own the clock and the tick cadence.
package countdown

import (
	"context"
	"fmt"
	"time"
)

// DevelopDuration is the cosmetic delay before photos are "developed".
const DevelopDuration = 24 * time.Hour

// DefaultRevealAt is the page-level reveal instant (10:00 US Eastern).
var DefaultRevealAt = time.Date(2025, time.March, 2, 10, 0, 0, 0, time.FixedZone("EST", -5*60*60))

// Remaining returns the whole seconds left until target, never negative.
func Remaining(target, now time.Time) int64 {
	diff := target.Sub(now)
	if diff <= 0 {
		return 0
	}
	return int64(diff / time.Second)
}

// Countdown holds a number of remaining seconds that only moves towards zero.
type Countdown struct {
	remaining int64
}

// New creates a countdown starting at the given number of seconds.
func New(seconds int64) *Countdown {
	if seconds < 0 {
		seconds = 0
	}
	return &Countdown{remaining: seconds}
}

// FromDuration creates a countdown from a duration, truncated to seconds.
func FromDuration(d time.Duration) *Countdown {
	return New(int64(d / time.Second))
}

// FromTarget creates a countdown for a fixed wall-clock instant.
// The distance is computed once; afterwards the value only changes on Tick.
func FromTarget(target, now time.Time) *Countdown {
	return New(Remaining(target, now))
}

// Tick advances the countdown by one second. Ticks at zero are no-ops.
func (c *Countdown) Tick() {
	if c.remaining > 0 {
		c.remaining--
	}
}

// Seconds returns the remaining seconds.
func (c *Countdown) Seconds() int64 {
	return c.remaining
}

// Done reports whether the countdown reached zero.
func (c *Countdown) Done() bool {
	return c.remaining == 0
}

// Parts splits the remaining time into hours, minutes and seconds.
func (c *Countdown) Parts() (hours, minutes, seconds int64) {
	return split(c.remaining)
}

// String renders the remaining time as hh:mm:ss.
func (c *Countdown) String() string {
	return Format(c.remaining)
}

// Format renders seconds as zero-padded hh:mm:ss. Hours are not wrapped.
func Format(total int64) string {
	if total < 0 {
		total = 0
	}
	h, m, s := split(total)
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

func split(total int64) (int64, int64, int64) {
	return total / 3600, (total % 3600) / 60, total % 60
}

// Ticker drives a Countdown on a fixed cadence.
type Ticker struct {
	Interval time.Duration
}

// NewTicker returns a ticker with the one-second cadence.
func NewTicker() *Ticker {
	return &Ticker{Interval: time.Second}
}

// Run ticks c every interval and calls onTick after each tick until ctx ends.
// The ticker keeps firing once the countdown reaches zero.
func (t *Ticker) Run(ctx context.Context, c *Countdown, onTick func(*Countdown)) error {
	interval := t.Interval
	if interval <= 0 {
		interval = time.Second
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			c.Tick()
			if onTick != nil {
				onTick(c)
			}
			if err := ctx.Err(); err != nil {
				return err
			}
		}
	}
}

package countdown

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountdown_TicksToZeroAndClamps(t *testing.T) {
	for _, d := range []int64{0, 1, 2, 59, 61, 3600} {
		c := New(d)
		for i := int64(0); i < d; i++ {
			assert.False(t, c.Done())
			c.Tick()
			assert.GreaterOrEqual(t, c.Seconds(), int64(0))
		}
		assert.Equal(t, int64(0), c.Seconds(), "duration %d", d)
		assert.True(t, c.Done())

		for i := 0; i < 5; i++ {
			c.Tick()
		}
		assert.Equal(t, int64(0), c.Seconds())
	}
}

func TestNew_NegativeClampsToZero(t *testing.T) {
	c := New(-10)
	assert.Equal(t, int64(0), c.Seconds())
	assert.Equal(t, "00:00:00", c.String())
}

func TestRemaining(t *testing.T) {
	now := time.Date(2025, time.March, 1, 10, 0, 0, 0, time.UTC)

	t.Run("future target", func(t *testing.T) {
		assert.Equal(t, int64(90), Remaining(now.Add(90*time.Second+400*time.Millisecond), now))
	})

	t.Run("past target clamps", func(t *testing.T) {
		assert.Equal(t, int64(0), Remaining(now.Add(-time.Hour), now))
	})

	t.Run("exact target", func(t *testing.T) {
		assert.Equal(t, int64(0), Remaining(now, now))
	})
}

func TestFromTarget(t *testing.T) {
	now := DefaultRevealAt.Add(-25 * time.Hour)
	c := FromTarget(DefaultRevealAt, now)
	assert.Equal(t, "25:00:00", c.String())

	c = FromTarget(DefaultRevealAt, DefaultRevealAt.Add(time.Minute))
	assert.True(t, c.Done())
}

func TestFromDuration(t *testing.T) {
	c := FromDuration(DevelopDuration)
	h, m, s := c.Parts()
	assert.Equal(t, int64(24), h)
	assert.Equal(t, int64(0), m)
	assert.Equal(t, int64(0), s)

	c.Tick()
	assert.Equal(t, "23:59:59", c.String())
}

func TestFormat(t *testing.T) {
	tests := []struct {
		seconds  int64
		expected string
	}{
		{0, "00:00:00"},
		{5, "00:00:05"},
		{65, "00:01:05"},
		{3600, "01:00:00"},
		{86399, "23:59:59"},
		{86400, "24:00:00"},
		{360000, "100:00:00"},
		{-3, "00:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, Format(tt.seconds))
		})
	}
}

func TestTicker_Run(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c := New(2)
	ticks := 0
	ticker := &Ticker{Interval: time.Millisecond}

	err := ticker.Run(ctx, c, func(c *Countdown) {
		ticks++
		if ticks == 4 {
			cancel()
		}
	})

	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 4, ticks)
	assert.Equal(t, int64(0), c.Seconds())
}

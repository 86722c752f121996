package engine

import (
	"time"
)

// Clock measures the time elapsed between frames.
type Clock struct {
	provider TimeProvider
	fallback time.Duration
	maxDelta time.Duration

	last    time.Time
	delta   time.Duration
	elapsed time.Duration
	frame   uint64
}

// NewClock creates a clock. fallback is reported as the first frame's delta,
// since there is no previous frame to measure against. Deltas larger than
// maxDelta are clamped; a zero maxDelta disables clamping.
func NewClock(provider TimeProvider, fallback, maxDelta time.Duration) *Clock {
	return &Clock{
		provider: provider,
		fallback: fallback,
		maxDelta: maxDelta,
	}
}

// Tick starts a new frame and records its delta.
func (c *Clock) Tick() {
	now := c.provider.Now()
	if c.frame == 0 {
		c.delta = c.fallback
	} else {
		c.delta = now.Sub(c.last)
		if c.delta < 0 {
			c.delta = 0
		}
	}
	if c.maxDelta > 0 && c.delta > c.maxDelta {
		c.delta = c.maxDelta
	}
	c.last = now
	c.elapsed += c.delta
	c.frame++
}

// Delta is the duration of the current frame.
func (c *Clock) Delta() time.Duration { return c.delta }

// DeltaSeconds is Delta in seconds.
func (c *Clock) DeltaSeconds() float64 { return c.delta.Seconds() }

// Elapsed is the sum of all frame deltas so far.
func (c *Clock) Elapsed() time.Duration { return c.elapsed }

// Frame is the number of ticks so far.
func (c *Clock) Frame() uint64 { return c.frame }

package quiz

import (
	"math"
	"time"
)

// DefaultDuration is the length of a journey.
const DefaultDuration = 30 * time.Second

// Countdown counts whole seconds down to zero. It reaches zero exactly once
// and never goes below it.
type Countdown struct {
	total     int
	remaining int
	stopped   bool
}

// NewCountdown creates a countdown of d, rounded up to whole seconds. A
// non-positive d uses DefaultDuration.
func NewCountdown(d time.Duration) *Countdown {
	if d <= 0 {
		d = DefaultDuration
	}
	secs := int(math.Ceil(d.Seconds()))
	return &Countdown{total: secs, remaining: secs}
}

// Tick removes one second. It returns true only for the tick that reaches
// zero; ticks after that, or after Stop, change nothing.
func (c *Countdown) Tick() bool {
	if c.stopped || c.remaining == 0 {
		return false
	}
	c.remaining--
	if c.remaining == 0 {
		c.stopped = true
		return true
	}
	return false
}

// Stop halts the countdown where it is.
func (c *Countdown) Stop() {
	c.stopped = true
}

// Stopped reports whether further ticks are ignored.
func (c *Countdown) Stopped() bool {
	return c.stopped
}

// Expired reports whether the countdown reached zero.
func (c *Countdown) Expired() bool {
	return c.remaining == 0
}

// Remaining returns the seconds left.
func (c *Countdown) Remaining() int {
	return c.remaining
}

// Total returns the starting number of seconds.
func (c *Countdown) Total() int {
	return c.total
}

// Elapsed returns the seconds that have passed.
func (c *Countdown) Elapsed() int {
	return c.total - c.remaining
}

// Fraction returns the share of time left, from 1 down to 0.
func (c *Countdown) Fraction() float64 {
	if c.total == 0 {
		return 0
	}
	return float64(c.remaining) / float64(c.total)
}

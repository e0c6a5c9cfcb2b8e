package core

import "time"

// Countdown tracks elapsed simulation time against a fixed duration.
// It advances only by explicit deltas, so pausing the host loop pauses it.
type Countdown struct {
	Duration time.Duration
	Elapsed  time.Duration
	active   bool
}

// NewCountdown returns an inactive countdown with the given duration
func NewCountdown(d time.Duration) Countdown {
	return Countdown{Duration: d}
}

// Start resets elapsed time and activates the countdown
func (c *Countdown) Start() {
	c.Elapsed = 0
	c.active = true
}

// Stop deactivates the countdown without clearing elapsed time
func (c *Countdown) Stop() {
	c.active = false
}

// Active reports whether the countdown is running
func (c *Countdown) Active() bool {
	return c.active
}

// Advance accumulates dt. Returns true on the tick the countdown expires;
// subsequent calls return false until Start is called again.
func (c *Countdown) Advance(dt time.Duration) bool {
	if !c.active {
		return false
	}
	c.Elapsed += dt
	if c.Elapsed >= c.Duration {
		c.active = false
		return true
	}
	return false
}

// Remaining returns time left, clamped to zero
func (c *Countdown) Remaining() time.Duration {
	if !c.active {
		return 0
	}
	r := c.Duration - c.Elapsed
	if r < 0 {
		return 0
	}
	return r
}

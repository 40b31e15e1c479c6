// Package clock implements the countdown that paces letter drops.
package clock

// Clock counts down from a maximum, in milliseconds. It never goes below
// zero.
type Clock struct {
	max       uint32
	remaining uint32
}

func New(ms uint32) *Clock {
	return &Clock{max: ms, remaining: ms}
}

// Subtract removes ms from the remaining time, saturating at zero.
func (c *Clock) Subtract(ms uint32) {
	if ms >= c.remaining {
		c.remaining = 0
		return
	}
	c.remaining -= ms
}

func (c *Clock) RemainingMs() uint32 {
	return c.remaining
}

func (c *Clock) MaxMs() uint32 {
	return c.max
}

func (c *Clock) Expired() bool {
	return c.remaining == 0
}

// Reset sets the remaining time back to the maximum.
func (c *Clock) Reset() {
	c.remaining = c.max
}

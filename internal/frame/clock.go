package frame

import "time"

const (
	// FrameDTMax caps one frame's wall time so a stall does not replay
	// hundreds of ticks at once.
	FrameDTMax = 100 * time.Millisecond
	// MaxTicksPerFrame bounds catch-up work per frame.
	MaxTicksPerFrame = 10
)

// Clock accumulates frame time and converts it into whole simulation ticks.
type Clock struct {
	Period   time.Duration
	MaxTicks int

	acc time.Duration
}

func NewClock(period time.Duration) *Clock {
	return &Clock{Period: period, MaxTicks: MaxTicksPerFrame}
}

// Advance adds one frame of wall time and returns how many ticks are due.
// Frames longer than FrameDTMax are clamped and backlog beyond MaxTicks
// is dropped.
func (c *Clock) Advance(dt time.Duration) int {
	if c.Period <= 0 {
		return 0
	}
	dt = min(dt, FrameDTMax)
	if dt > 0 {
		c.acc += dt
	}
	n := int(c.acc / c.Period)
	c.acc -= time.Duration(n) * c.Period
	if c.MaxTicks > 0 && n > c.MaxTicks {
		n = c.MaxTicks
		c.acc = 0
	}
	return n
}

package ui

import "time"

// Clock paces frames for a target frame rate.
type Clock struct {
	interval time.Duration
	last     time.Time
	now      func() time.Time
}

// NewClock creates a clock for frameRate frames per second.
// A zero or negative rate means no pacing.
func NewClock(frameRate float64) *Clock {
	c := &Clock{now: time.Now}
	if frameRate > 0 {
		c.interval = time.Duration(float64(time.Second) / frameRate)
	}
	return c
}

// Interval is the target time between two frames.
func (c *Clock) Interval() time.Duration {
	return c.interval
}

// Tick marks the start of a frame and returns the time since the previous
// one. The first tick returns zero.
func (c *Clock) Tick() time.Duration {
	now := c.now()
	var dt time.Duration
	if !c.last.IsZero() {
		dt = now.Sub(c.last)
	}
	c.last = now
	return dt
}

// Wait returns how long to sleep before the next frame is due.
func (c *Clock) Wait() time.Duration {
	if c.interval == 0 || c.last.IsZero() {
		return 0
	}
	d := c.last.Add(c.interval).Sub(c.now())
	if d < 0 {
		return 0
	}
	return d
}

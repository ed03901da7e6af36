// Package clock provides the time source injected into the order core.
// Production code uses System; tests pin time with Fixed.
package clock

import "time"

// System reads the wall clock.
type System struct{}

// NewSystem returns the wall clock.
func NewSystem() System {
	return System{}
}

// Now returns the current local time.
func (System) Now() time.Time {
	return time.Now()
}

// Fixed always returns the same instant until moved with Set or Advance.
type Fixed struct {
	now time.Time
}

// NewFixed returns a clock frozen at now.
func NewFixed(now time.Time) *Fixed {
	return &Fixed{now: now}
}

func (c *Fixed) Now() time.Time {
	return c.now
}

// Set moves the clock to now.
func (c *Fixed) Set(now time.Time) {
	c.now = now
}

// Advance moves the clock forward by d.
func (c *Fixed) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

package calendar

import (
	"sync"
	"time"
)

// Clock supplies the current calendar day.
type Clock interface {
	Today() Day
}

// SystemClock reads the wall clock and truncates it to a day in Location.
// A nil Location means time.Local.
type SystemClock struct {
	Location *time.Location
}

// Today returns the current day in the clock's location.
func (c SystemClock) Today() Day {
	loc := c.Location
	if loc == nil {
		loc = time.Local
	}
	return DayOf(time.Now().In(loc))
}

// FixedClock is a settable Clock for tests and replays.
//
// Thread-safety: all methods are safe for concurrent use.
type FixedClock struct {
	mu  sync.Mutex
	day Day
}

// NewFixedClock creates a clock stopped at day.
func NewFixedClock(day Day) *FixedClock {
	return &FixedClock{day: day}
}

// Today returns the day the clock is set to.
func (c *FixedClock) Today() Day {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.day
}

// Set moves the clock to day.
func (c *FixedClock) Set(day Day) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.day = day
}

// Advance moves the clock n days forward.
func (c *FixedClock) Advance(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.day = c.day.AddDays(n)
}

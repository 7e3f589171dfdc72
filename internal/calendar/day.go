// Package calendar provides civil calendar days and the clock that tells the
// scheduler which day it is.
package calendar

import (
	"fmt"
	"time"
)

// Layout is the textual form of a Day, used for storage and CLI arguments.
const Layout = "2006-01-02"

// Day is a calendar day (era/year/month/day) with no time-of-day component.
// The zero value is not a valid day; use IsZero to test for it.
type Day struct {
	Year  int
	Month time.Month
	Dom   int
}

// Date returns the normalized Day for the given year, month and day of month.
// Out-of-range values roll over the same way time.Date does.
func Date(year int, month time.Month, dom int) Day {
	return DayOf(time.Date(year, month, dom, 0, 0, 0, 0, time.UTC))
}

// DayOf truncates t to its calendar day in t's own location.
func DayOf(t time.Time) Day {
	y, m, d := t.Date()
	return Day{Year: y, Month: m, Dom: d}
}

// Parse reads a Day in Layout form.
func Parse(s string) (Day, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return Day{}, fmt.Errorf("parse day %q: %w", s, err)
	}
	return DayOf(t), nil
}

// MustParse is Parse for constants and tests. It panics on malformed input.
func MustParse(s string) Day {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

// IsZero reports whether d is the zero Day.
func (d Day) IsZero() bool {
	return d == Day{}
}

// Time returns midnight of d in loc.
func (d Day) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(d.Year, d.Month, d.Dom, 0, 0, 0, 0, loc)
}

// AddDays returns the day n days after d (before d for negative n).
func (d Day) AddDays(n int) Day {
	return Date(d.Year, d.Month, d.Dom+n)
}

// Equal reports whether d and o are the same calendar day.
func (d Day) Equal(o Day) bool {
	return d == o
}

// Before reports whether d is strictly earlier than o.
func (d Day) Before(o Day) bool {
	if d.Year != o.Year {
		return d.Year < o.Year
	}
	if d.Month != o.Month {
		return d.Month < o.Month
	}
	return d.Dom < o.Dom
}

// After reports whether d is strictly later than o.
func (d Day) After(o Day) bool {
	return o.Before(d)
}

// Weekday returns the day of the week of d.
func (d Day) Weekday() time.Weekday {
	return d.Time(time.UTC).Weekday()
}

// StartOfWeek returns the latest day on or before d that falls on start.
func (d Day) StartOfWeek(start time.Weekday) Day {
	offset := (int(d.Weekday()) - int(start) + 7) % 7
	return d.AddDays(-offset)
}

func (d Day) String() string {
	return d.Time(time.UTC).Format(Layout)
}

// DaysBetween returns the number of days from a to b. It is negative when b
// is before a.
func DaysBetween(a, b Day) int {
	// Both sides are UTC midnights, so the difference is a whole number of days.
	return int(b.Time(time.UTC).Sub(a.Time(time.UTC)).Hours() / 24)
}

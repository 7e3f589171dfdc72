package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayOf_TruncatesTime(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*60*60)
	ts := time.Date(2025, 3, 1, 23, 59, 59, 0, loc)
	assert.Equal(t, Date(2025, time.March, 1), DayOf(ts))
}

func TestDate_Normalizes(t *testing.T) {
	assert.Equal(t, Date(2025, time.March, 1), Date(2025, time.February, 29))
	assert.Equal(t, Date(2024, time.December, 31), Date(2025, time.January, 0))
}

func TestAddDays(t *testing.T) {
	tests := []struct {
		name string
		from Day
		n    int
		want Day
	}{
		{"same day", MustParse("2025-01-01"), 0, MustParse("2025-01-01")},
		{"next day", MustParse("2025-01-01"), 1, MustParse("2025-01-02")},
		{"month rollover", MustParse("2025-01-31"), 1, MustParse("2025-02-01")},
		{"leap day", MustParse("2024-02-28"), 1, MustParse("2024-02-29")},
		{"year rollover", MustParse("2024-12-31"), 1, MustParse("2025-01-01")},
		{"backwards", MustParse("2025-03-01"), -1, MustParse("2025-02-28")},
		{"far", MustParse("2025-01-01"), 64, MustParse("2025-03-06")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.AddDays(tt.n))
		})
	}
}

func TestBeforeAfterEqual(t *testing.T) {
	a := MustParse("2025-01-31")
	b := MustParse("2025-02-01")

	assert.True(t, a.Before(b))
	assert.False(t, b.Before(a))
	assert.True(t, b.After(a))
	assert.False(t, a.Before(a))
	assert.False(t, a.After(a))
	assert.True(t, a.Equal(MustParse("2025-01-31")))
	assert.True(t, MustParse("2024-12-31").Before(MustParse("2025-01-01")))
}

func TestDaysBetween(t *testing.T) {
	assert.Equal(t, 0, DaysBetween(MustParse("2025-01-01"), MustParse("2025-01-01")))
	assert.Equal(t, 3, DaysBetween(MustParse("2025-01-01"), MustParse("2025-01-04")))
	assert.Equal(t, -3, DaysBetween(MustParse("2025-01-04"), MustParse("2025-01-01")))
	assert.Equal(t, 366, DaysBetween(MustParse("2024-01-01"), MustParse("2025-01-01")))
}

func TestParse(t *testing.T) {
	d, err := Parse("2025-07-04")
	require.NoError(t, err)
	assert.Equal(t, Day{Year: 2025, Month: time.July, Dom: 4}, d)
	assert.Equal(t, "2025-07-04", d.String())

	_, err = Parse("07/04/2025")
	assert.Error(t, err)
}

func TestStartOfWeek(t *testing.T) {
	// 2025-01-15 is a Wednesday.
	wed := MustParse("2025-01-15")
	assert.Equal(t, time.Wednesday, wed.Weekday())
	assert.Equal(t, MustParse("2025-01-13"), wed.StartOfWeek(time.Monday))
	assert.Equal(t, MustParse("2025-01-12"), wed.StartOfWeek(time.Sunday))
	assert.Equal(t, wed, wed.StartOfWeek(time.Wednesday))
}

func TestIsZero(t *testing.T) {
	assert.True(t, Day{}.IsZero())
	assert.False(t, MustParse("2025-01-01").IsZero())
}

func TestFixedClock(t *testing.T) {
	c := NewFixedClock(MustParse("2025-01-01"))
	assert.Equal(t, MustParse("2025-01-01"), c.Today())

	c.Advance(3)
	assert.Equal(t, MustParse("2025-01-04"), c.Today())

	c.Set(MustParse("2024-06-01"))
	assert.Equal(t, MustParse("2024-06-01"), c.Today())
}

func TestSystemClock_UsesLocation(t *testing.T) {
	loc := time.FixedZone("edge", 14*60*60)
	got := SystemClock{Location: loc}.Today()
	assert.Equal(t, DayOf(time.Now().In(loc)), got)
}

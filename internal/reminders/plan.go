package reminders

import (
	"context"
	"fmt"
	"time"

	"github.com/cardcycle/cardcycle/internal/calendar"
	"github.com/cardcycle/cardcycle/internal/spacedrep"
)

// lookahead is how many days Plan searches for a day with cards to review.
const lookahead = spacedrep.CycleLength + 1

// Notification titles and bodies.
const (
	Title      = "Reminder"
	MissedBody = "You did not complete yesterday's review. You won't receive any more reminders until you complete it."
)

// Notification is one local notification the host should deliver.
type Notification struct {
	At     time.Time
	Title  string
	Body   string
	Badge  int
	Sound  bool
	Missed bool
}

// Forecaster projects the review cycle forward from today.
type Forecaster interface {
	Today() calendar.Day
	CompletionState(ctx context.Context, day calendar.Day) spacedrep.CompletionState
	Forecast(ctx context.Context, days int) []spacedrep.DayPlan
}

// Plan computes the notifications to schedule as of now. It finds the first
// day from today (tomorrow if today is already completed) whose levels have
// cards and emits one notification per enabled reminder on it, followed by a
// single missed-review notification the next day. Notifications not after
// now are dropped. The host replaces all pending notifications with the
// result.
func (s *Service) Plan(ctx context.Context, sched Forecaster, counter spacedrep.CardCounter, now time.Time) ([]Notification, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	var active []Reminder
	for _, r := range all {
		if r.Enabled {
			active = append(active, r)
		}
	}
	if len(active) == 0 {
		return nil, nil
	}

	loc := now.Location()
	today := sched.Today()
	start := 0
	if sched.CompletionState(ctx, today) == spacedrep.StateCompleted {
		start = 1
	}

	forecast := sched.Forecast(ctx, start+lookahead)
	for _, day := range forecast[start:] {
		n, err := counter.NumberOfDueCards(ctx, day.Levels)
		if err != nil {
			return nil, fmt.Errorf("plan reminders for %s: %w", day.Day, err)
		}
		if n == 0 {
			continue
		}

		var out []Notification
		badge := 0
		for _, r := range active {
			if r.Badge {
				badge++
			}
			out = append(out, Notification{
				At:    at(day.Day, r, loc),
				Title: Title,
				Body:  reviewBody(n),
				Badge: badge,
				Sound: r.Sound,
			})
		}

		first := active[0]
		missedBadge := 0
		for _, r := range active {
			if r.Badge {
				missedBadge = 1
				break
			}
		}
		out = append(out, Notification{
			At:     at(day.Day.AddDays(1), first, loc),
			Title:  Title,
			Body:   MissedBody,
			Badge:  missedBadge,
			Sound:  first.Sound,
			Missed: true,
		})
		return future(out, now), nil
	}
	return nil, nil
}

func reviewBody(n int) string {
	if n == 1 {
		return "1 card to review today"
	}
	return fmt.Sprintf("%d cards to review today", n)
}

func at(day calendar.Day, r Reminder, loc *time.Location) time.Time {
	return time.Date(day.Year, day.Month, day.Dom, r.Hour, r.Minute, 0, 0, loc)
}

func future(ns []Notification, now time.Time) []Notification {
	out := ns[:0]
	for _, n := range ns {
		if n.At.After(now) {
			out = append(out, n)
		}
	}
	return out
}

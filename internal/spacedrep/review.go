package spacedrep

import "github.com/cardcycle/cardcycle/internal/calendar"

// CompletionState is the review outcome of one calendar day.
// Only StateCompleted and StateSkipped are ever persisted.
type CompletionState string

const (
	StateNothing   CompletionState = "nothing"
	StateCompleted CompletionState = "completed"
	StateSkipped   CompletionState = "skipped"
	StateMissed    CompletionState = "missed"
)

// Persisted reports whether the state is a durable fact rather than derived.
func (s CompletionState) Persisted() bool {
	return s == StateCompleted || s == StateSkipped
}

// DayPlan describes one calendar day for display: its completion state and
// the levels it reviews. Levels is nil for past days that never consumed a
// cycle slot.
type DayPlan struct {
	Day    calendar.Day
	State  CompletionState
	Levels LevelSet
	Today  bool
}

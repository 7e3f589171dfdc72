package spacedrep

import (
	"context"
	"slices"
	"sync"

	"github.com/cardcycle/cardcycle/internal/calendar"
)

// LogStore persists the two append-only day sequences. Reads of a log that
// was never written return empty slices, not errors. Appending a day already
// present in either sequence fails with ErrDayLogged; stores shared between
// processes must enforce this themselves.
type LogStore interface {
	CompletedDays(ctx context.Context) ([]calendar.Day, error)
	SkippedDays(ctx context.Context) ([]calendar.Day, error)
	AppendCompleted(ctx context.Context, day calendar.Day) error
	AppendSkipped(ctx context.Context, day calendar.Day) error
}

// CardCounter reports how many cards sit at any of the given levels.
type CardCounter interface {
	NumberOfDueCards(ctx context.Context, levels LevelSet) (int, error)
}

// DayLog is an in-memory snapshot of the persisted sequences.
type DayLog struct {
	Completed []calendar.Day
	Skipped   []calendar.Day
}

// Len returns the number of days that consumed a cycle slot.
func (l DayLog) Len() int {
	return len(l.Completed) + len(l.Skipped)
}

// Contains reports whether day is in either sequence.
func (l DayLog) Contains(day calendar.Day) bool {
	eq := func(d calendar.Day) bool { return d.Equal(day) }
	return slices.ContainsFunc(l.Completed, eq) || slices.ContainsFunc(l.Skipped, eq)
}

// MemoryLog is a LogStore held in process memory.
type MemoryLog struct {
	mu  sync.Mutex
	log DayLog
}

// NewMemoryLog creates a MemoryLog seeded with log. The slices are copied.
func NewMemoryLog(log DayLog) *MemoryLog {
	return &MemoryLog{log: DayLog{
		Completed: slices.Clone(log.Completed),
		Skipped:   slices.Clone(log.Skipped),
	}}
}

func (m *MemoryLog) CompletedDays(_ context.Context) ([]calendar.Day, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.log.Completed), nil
}

func (m *MemoryLog) SkippedDays(_ context.Context) ([]calendar.Day, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.log.Skipped), nil
}

func (m *MemoryLog) AppendCompleted(_ context.Context, day calendar.Day) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.log.Contains(day) {
		return ErrDayLogged
	}
	m.log.Completed = append(m.log.Completed, day)
	return nil
}

func (m *MemoryLog) AppendSkipped(_ context.Context, day calendar.Day) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.log.Contains(day) {
		return ErrDayLogged
	}
	m.log.Skipped = append(m.log.Skipped, day)
	return nil
}

package spacedrep

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"sync"
	"time"

	"github.com/cardcycle/cardcycle/internal/calendar"
)

// Scheduler decides which levels are due on which day. It keeps no derived
// state between calls: every query re-reads the log and the clock.
//
// All methods are serialized by one mutex so the check-then-append in
// MarkCompleted and MarkSkipped cannot interleave with another writer in the
// process. Writers in other processes are held off by the LogStore, which
// refuses a second row for the same day.
type Scheduler struct {
	mu    sync.Mutex
	log   LogStore
	cards CardCounter
	clock calendar.Clock
	cycle [CycleLength]LevelSet
	warn  io.Writer
}

// NewScheduler creates a scheduler over the given log, card store and clock.
// cards may be nil when the host never calls BackfillSkips.
func NewScheduler(log LogStore, cards CardCounter, clock calendar.Clock) *Scheduler {
	return &Scheduler{
		log:   log,
		cards: cards,
		clock: clock,
		cycle: ReviewCycle,
		warn:  os.Stderr,
	}
}

// SetWarningOutput redirects fail-open warnings. A nil writer discards them.
func (s *Scheduler) SetWarningOutput(w io.Writer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if w == nil {
		w = io.Discard
	}
	s.warn = w
}

// Today returns the clock's current day.
func (s *Scheduler) Today() calendar.Day {
	return s.clock.Today()
}

// CompletionState returns the state of day as of today.
func (s *Scheduler) CompletionState(ctx context.Context, day calendar.Day) CompletionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return stateOf(s.readLog(ctx), day, s.clock.Today())
}

// CycleIndex returns today's position in the review cycle.
func (s *Scheduler) CycleIndex(ctx context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cycleIndex(s.readLog(ctx), s.clock.Today())
}

// LevelsForToday returns the levels to review today. The result is a copy.
func (s *Scheduler) LevelsForToday(ctx context.Context) LevelSet {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.levelsAt(cycleIndex(s.readLog(ctx), s.clock.Today()))
}

// NextReviewDate returns the next day on which level is due, today included
// when today is still pending. ok is false for levels outside MinLevel..MaxLevel.
func (s *Scheduler) NextReviewDate(ctx context.Context, level int) (day calendar.Day, ok bool, err error) {
	if !IsScheduledLevel(level) {
		return calendar.Day{}, false, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	log := s.readLog(ctx)
	today := s.clock.Today()
	idx := cycleIndex(log, today)

	if stateOf(log, today, today) != StateCompleted && s.cycle[idx].Contains(level) {
		return today, true, nil
	}
	for i := 1; i <= maxScanDays; i++ {
		if s.cycle[wrap(idx+i)].Contains(level) {
			return today.AddDays(i), true, nil
		}
	}
	return calendar.Day{}, false, fmt.Errorf("next review of level %d: %w", level, ErrCycleExhausted)
}

// MarkCompleted records day as completed. It returns false without writing
// when day is already completed or skipped.
func (s *Scheduler) MarkCompleted(ctx context.Context, day calendar.Day) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mark(ctx, day, StateCompleted)
}

// MarkSkipped records day as skipped. It returns false without writing when
// day is already completed or skipped.
func (s *Scheduler) MarkSkipped(ctx context.Context, day calendar.Day) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mark(ctx, day, StateSkipped)
}

// BackfillSkips marks as skipped every day between the last completed day and
// today on which no cards were due. The walk stops at the first day that had
// cards; today itself is never touched. It returns the days it skipped.
func (s *Scheduler) BackfillSkips(ctx context.Context) ([]calendar.Day, error) {
	if s.cards == nil {
		return nil, errors.New("spacedrep: backfill needs a card counter")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	log, err := s.loadLog(ctx)
	if err != nil {
		return nil, fmt.Errorf("backfill: %w", err)
	}
	if len(log.Completed) == 0 {
		return nil, nil
	}

	today := s.clock.Today()
	day := log.Completed[len(log.Completed)-1].AddDays(1)

	var skipped []calendar.Day
	for ; day.Before(today); day = day.AddDays(1) {
		if stateOf(log, day, today).Persisted() {
			// Already holds its slot from an earlier pass.
			continue
		}
		levels := s.levelsAt(log.Len())
		n, err := s.cards.NumberOfDueCards(ctx, levels)
		if err != nil {
			return skipped, fmt.Errorf("count due cards for %s: %w", day, err)
		}
		if n > 0 {
			break
		}
		err = s.log.AppendSkipped(ctx, day)
		if errors.Is(err, ErrDayLogged) {
			// Another writer logged it after our read.
			continue
		}
		if err != nil {
			return skipped, fmt.Errorf("skip %s: %w", day, err)
		}
		log.Skipped = append(log.Skipped, day)
		skipped = append(skipped, day)
	}
	return skipped, nil
}

// Week returns the seven days of the week containing today, beginning on
// start. Past days carry levels only if they consumed a cycle slot.
func (s *Scheduler) Week(ctx context.Context, start time.Weekday) []DayPlan {
	s.mu.Lock()
	defer s.mu.Unlock()

	log := s.readLog(ctx)
	today := s.clock.Today()
	idx := cycleIndex(log, today)
	first := today.StartOfWeek(start)

	plans := make([]DayPlan, 7)
	for i := range plans {
		d := first.AddDays(i)
		plans[i] = DayPlan{Day: d, State: stateOf(log, d, today), Today: d.Equal(today)}
		if !d.Before(today) {
			plans[i].Levels = s.levelsAt(idx + calendar.DaysBetween(today, d))
		}
	}

	// Past days fill the slots before today's.
	slot := log.Len()
	if stateOf(log, today, today).Persisted() {
		slot--
	}
	for i := calendar.DaysBetween(first, today) - 1; i >= 0; i-- {
		if plans[i].State.Persisted() {
			slot--
			plans[i].Levels = s.levelsAt(slot)
		}
	}
	return plans
}

// Forecast returns today and the following days-1 days with the levels each
// would review if every day from today on is completed.
func (s *Scheduler) Forecast(ctx context.Context, days int) []DayPlan {
	s.mu.Lock()
	defer s.mu.Unlock()

	log := s.readLog(ctx)
	today := s.clock.Today()
	idx := cycleIndex(log, today)

	plans := make([]DayPlan, 0, max(days, 0))
	for i := 0; i < days; i++ {
		d := today.AddDays(i)
		plans = append(plans, DayPlan{
			Day:    d,
			State:  stateOf(log, d, today),
			Levels: s.levelsAt(idx + i),
			Today:  i == 0,
		})
	}
	return plans
}

func (s *Scheduler) mark(ctx context.Context, day calendar.Day, to CompletionState) (bool, error) {
	log, err := s.loadLog(ctx)
	if err != nil {
		return false, fmt.Errorf("mark %s %s: %w", day, to, err)
	}
	if stateOf(log, day, s.clock.Today()).Persisted() {
		return false, nil
	}

	switch to {
	case StateCompleted:
		err = s.log.AppendCompleted(ctx, day)
	case StateSkipped:
		err = s.log.AppendSkipped(ctx, day)
	default:
		return false, fmt.Errorf("mark %s: state %q is derived, not stored", day, to)
	}
	if errors.Is(err, ErrDayLogged) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("mark %s %s: %w", day, to, err)
	}
	return true, nil
}

// loadLog reads both sequences, returning the first read failure.
func (s *Scheduler) loadLog(ctx context.Context) (DayLog, error) {
	completed, err := s.log.CompletedDays(ctx)
	if err != nil {
		return DayLog{}, &LogReadError{Sequence: "completed", Err: err}
	}
	skipped, err := s.log.SkippedDays(ctx)
	if err != nil {
		return DayLog{}, &LogReadError{Sequence: "skipped", Err: err}
	}
	return DayLog{Completed: completed, Skipped: skipped}, nil
}

// readLog is loadLog for queries: an unreadable log is an empty log.
func (s *Scheduler) readLog(ctx context.Context) DayLog {
	log, err := s.loadLog(ctx)
	if err != nil {
		fmt.Fprintf(s.warn, "warning: %v (treating day log as empty)\n", err)
		return DayLog{}
	}
	return log
}

func (s *Scheduler) levelsAt(index int) LevelSet {
	return slices.Clone(s.cycle[wrap(index)])
}

func stateOf(log DayLog, day, today calendar.Day) CompletionState {
	// Newest first.
	for i := len(log.Completed) - 1; i >= 0; i-- {
		if log.Completed[i].Equal(day) {
			return StateCompleted
		}
	}
	for i := len(log.Skipped) - 1; i >= 0; i-- {
		if log.Skipped[i].Equal(day) {
			return StateSkipped
		}
	}
	if len(log.Completed) > 0 {
		first := slices.MinFunc(log.Completed, compareDays)
		if first.Before(day) && day.Before(today) {
			return StateMissed
		}
	}
	return StateNothing
}

func cycleIndex(log DayLog, today calendar.Day) int {
	n := log.Len()
	if stateOf(log, today, today) == StateCompleted {
		n--
	}
	return wrap(n)
}

func compareDays(a, b calendar.Day) int {
	switch {
	case a.Before(b):
		return -1
	case b.Before(a):
		return 1
	}
	return 0
}

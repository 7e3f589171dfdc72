package reminders

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardcycle/cardcycle/internal/calendar"
	"github.com/cardcycle/cardcycle/internal/spacedrep"
	"github.com/cardcycle/cardcycle/internal/store"
)

// levelCounter reports a fixed number of cards per level.
type levelCounter map[int]int

func (c levelCounter) NumberOfDueCards(_ context.Context, levels spacedrep.LevelSet) (int, error) {
	n := 0
	for _, l := range levels {
		n += c[l]
	}
	return n, nil
}

func newTestService(t *testing.T) *Service {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "reminders.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return NewService(st.ReminderRepo())
}

func newTestScheduler(today string, log spacedrep.DayLog) *spacedrep.Scheduler {
	clock := calendar.NewFixedClock(calendar.MustParse(today))
	return spacedrep.NewScheduler(spacedrep.NewMemoryLog(log), nil, clock)
}

func TestService_CRUD(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	r, err := svc.Add(ctx, 9, 5, true, false)
	require.NoError(t, err)
	assert.True(t, r.Enabled)
	assert.Equal(t, "09:05", r.Clock())

	_, err = svc.Add(ctx, 24, 0, false, false)
	assert.ErrorIs(t, err, ErrInvalidTime)
	_, err = svc.Add(ctx, 10, 60, false, false)
	assert.ErrorIs(t, err, ErrInvalidTime)

	require.NoError(t, svc.SetEnabled(ctx, r.ID, false))
	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.False(t, list[0].Enabled)

	require.NoError(t, svc.Remove(ctx, r.ID))
	assert.ErrorIs(t, svc.Remove(ctx, r.ID), ErrReminderNotFound)
	assert.ErrorIs(t, svc.SetEnabled(ctx, r.ID, true), ErrReminderNotFound)
}

func TestPlan_NoEnabledReminders(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	r, err := svc.Add(ctx, 8, 0, true, true)
	require.NoError(t, err)
	require.NoError(t, svc.SetEnabled(ctx, r.ID, false))

	sched := newTestScheduler("2025-01-01", spacedrep.DayLog{})
	got, err := svc.Plan(ctx, sched, levelCounter{1: 3}, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestPlan_TodayHasCards(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, 8, 0, true, true)
	require.NoError(t, err)
	_, err = svc.Add(ctx, 19, 30, true, false)
	require.NoError(t, err)

	sched := newTestScheduler("2025-01-01", spacedrep.DayLog{})
	now := time.Date(2025, 1, 1, 6, 0, 0, 0, time.UTC)
	got, err := svc.Plan(ctx, sched, levelCounter{1: 1}, now)
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC), got[0].At)
	assert.Equal(t, "1 card to review today", got[0].Body)
	assert.Equal(t, 1, got[0].Badge)
	assert.True(t, got[0].Sound)

	assert.Equal(t, time.Date(2025, 1, 1, 19, 30, 0, 0, time.UTC), got[1].At)
	assert.Equal(t, 2, got[1].Badge)
	assert.False(t, got[1].Sound)

	assert.True(t, got[2].Missed)
	assert.Equal(t, time.Date(2025, 1, 2, 8, 0, 0, 0, time.UTC), got[2].At)
	assert.Equal(t, MissedBody, got[2].Body)
	assert.Equal(t, 1, got[2].Badge)
}

func TestPlan_SkipsCompletedTodayAndEmptyDays(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, 7, 15, false, false)
	require.NoError(t, err)

	// Today (index 0 after the completion) is done; tomorrow reviews [3,1],
	// the day after [2,1]. Only level 2 has cards.
	sched := newTestScheduler("2025-01-01", spacedrep.DayLog{
		Completed: []calendar.Day{calendar.MustParse("2025-01-01")},
	})
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	got, err := svc.Plan(ctx, sched, levelCounter{2: 4}, now)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, time.Date(2025, 1, 3, 7, 15, 0, 0, time.UTC), got[0].At)
	assert.Equal(t, "4 cards to review today", got[0].Body)
	assert.Equal(t, 0, got[0].Badge)
	assert.Equal(t, time.Date(2025, 1, 4, 7, 15, 0, 0, time.UTC), got[1].At)
	assert.Equal(t, 0, got[1].Badge)
}

func TestPlan_DropsPastTimes(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, 8, 0, false, false)
	require.NoError(t, err)
	_, err = svc.Add(ctx, 20, 0, false, false)
	require.NoError(t, err)

	sched := newTestScheduler("2025-01-01", spacedrep.DayLog{})
	now := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	got, err := svc.Plan(ctx, sched, levelCounter{1: 2}, now)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 20, got[0].At.Hour())
	assert.True(t, got[1].Missed)
}

func TestPlan_NoCardsAnywhere(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, 8, 0, true, true)
	require.NoError(t, err)

	sched := newTestScheduler("2025-01-01", spacedrep.DayLog{})
	got, err := svc.Plan(ctx, sched, levelCounter{}, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Empty(t, got)
}

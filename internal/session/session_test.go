package session

import (
	"context"
	"errors"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardcycle/cardcycle/internal/calendar"
	"github.com/cardcycle/cardcycle/internal/cards"
	"github.com/cardcycle/cardcycle/internal/spacedrep"
)

// memCards is an in-memory CardStore keeping cards in insertion order.
type memCards struct {
	cards   []cards.Card
	moveErr error
}

func newMemCards(levels ...int) *memCards {
	m := &memCards{}
	for i, l := range levels {
		m.cards = append(m.cards, cards.Card{ID: string(rune('a' + i)), Name: string(rune('a' + i)), Level: l})
	}
	return m
}

func (m *memCards) Deck(_ context.Context, levels ...int) ([]cards.Card, error) {
	var out []cards.Card
	for _, c := range m.cards {
		if slices.Contains(levels, c.Level) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *memCards) Move(_ context.Context, id string, level int) error {
	if m.moveErr != nil {
		return m.moveErr
	}
	for i := range m.cards {
		if m.cards[i].ID == id {
			m.cards[i].Level = level
			return nil
		}
	}
	return cards.ErrCardNotFound
}

func (m *memCards) level(id string) int {
	for _, c := range m.cards {
		if c.ID == id {
			return c.Level
		}
	}
	return -1
}

func newTestScheduler() (*spacedrep.Scheduler, *calendar.FixedClock) {
	clock := calendar.NewFixedClock(calendar.MustParse("2025-03-10"))
	return spacedrep.NewScheduler(spacedrep.NewMemoryLog(spacedrep.DayLog{}), nil, clock), clock
}

func TestStart_EmptyDeckCompletesToday(t *testing.T) {
	ctx := context.Background()
	sched, clock := newTestScheduler()

	s, err := Start(ctx, newMemCards(5), sched, spacedrep.LevelSet{2, 1}, Options{})
	require.NoError(t, err)

	assert.True(t, s.Done())
	assert.Equal(t, spacedrep.StateCompleted, sched.CompletionState(ctx, clock.Today()))
	assert.ErrorIs(t, s.Answer(ctx, true), ErrSessionDone)
}

func TestAnswer_AllCorrectCompletes(t *testing.T) {
	ctx := context.Background()
	sched, clock := newTestScheduler()
	store := newMemCards(1, 2, 7)

	s, err := Start(ctx, store, sched, spacedrep.LevelSet{7, 2, 1}, Options{})
	require.NoError(t, err)
	assert.Equal(t, 3, s.Remaining())

	for !s.Done() {
		require.NoError(t, s.Answer(ctx, true))
	}

	assert.Equal(t, 2, store.level("a"))
	assert.Equal(t, 3, store.level("b"))
	assert.Equal(t, cards.LevelFinished, store.level("c"))
	assert.Equal(t, spacedrep.StateCompleted, sched.CompletionState(ctx, clock.Today()))

	sum := BuildSummary(s)
	assert.Equal(t, 3, sum.Reviewed)
	assert.Equal(t, 3, sum.Correct)
	assert.Equal(t, 3, sum.Total)
	assert.InDelta(t, 1.0, sum.Accuracy, 0.0001)
	assert.True(t, sum.Completed)
	assert.Equal(t, clock.Today(), sum.Day)
}

func TestAnswer_WrongCardComesBackUntilKnown(t *testing.T) {
	ctx := context.Background()
	sched, clock := newTestScheduler()
	store := newMemCards(3, 2)

	s, err := Start(ctx, store, sched, spacedrep.LevelSet{3, 1}, Options{})
	require.NoError(t, err)
	require.Equal(t, 1, s.Remaining())

	card, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, "a", card.ID)

	require.NoError(t, s.Answer(ctx, false))
	assert.Equal(t, cards.LevelFirst, store.level("a"))
	assert.False(t, s.Done())
	assert.Equal(t, spacedrep.StateNothing, sched.CompletionState(ctx, clock.Today()))

	card, ok = s.Current()
	require.True(t, ok)
	assert.Equal(t, "a", card.ID)
	assert.Equal(t, cards.LevelFirst, card.Level)

	require.NoError(t, s.Answer(ctx, true))
	assert.True(t, s.Done())
	assert.Equal(t, 2, store.level("a"))
	assert.Equal(t, 2, store.level("b"))

	sum := BuildSummary(s)
	assert.Equal(t, 2, sum.Reviewed)
	assert.Equal(t, 1, sum.Correct)
	assert.Equal(t, 1, sum.Refills)
	assert.Equal(t, spacedrep.StateCompleted, sched.CompletionState(ctx, clock.Today()))
}

func TestAnswer_MoveFailureKeepsCard(t *testing.T) {
	ctx := context.Background()
	sched, _ := newTestScheduler()
	store := newMemCards(1)

	s, err := Start(ctx, store, sched, spacedrep.LevelSet{1}, Options{})
	require.NoError(t, err)

	store.moveErr = errors.New("disk full")
	assert.Error(t, s.Answer(ctx, true))
	assert.Equal(t, 1, s.Remaining())
	assert.False(t, s.Done())
}

func TestStart_ShuffleIsDeterministicWithSeed(t *testing.T) {
	ctx := context.Background()
	order := func() []string {
		sched, _ := newTestScheduler()
		s, err := Start(ctx, newMemCards(1, 1, 1, 1, 1, 1), sched, spacedrep.LevelSet{1},
			Options{Shuffle: true, Rand: rand.New(rand.NewPCG(1, 2))})
		require.NoError(t, err)
		var ids []string
		for !s.Done() {
			c, _ := s.Current()
			ids = append(ids, c.ID)
			require.NoError(t, s.Answer(ctx, true))
		}
		return ids
	}

	first := order()
	assert.Len(t, first, 6)
	assert.Equal(t, first, order())
	assert.ElementsMatch(t, []string{"a", "b", "c", "d", "e", "f"}, first)
}

// Package session runs one daily review: it walks the deck of cards due
// today, moves each card by the answer given and completes the day once
// nothing is left to review.
package session

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/cardcycle/cardcycle/internal/calendar"
	"github.com/cardcycle/cardcycle/internal/cards"
	"github.com/cardcycle/cardcycle/internal/spacedrep"
)

// ErrSessionDone is returned by Answer once the session has finished.
var ErrSessionDone = errors.New("review session is done")

// CardStore is the card collection as seen by a review.
type CardStore interface {
	Deck(ctx context.Context, levels ...int) ([]cards.Card, error)
	Move(ctx context.Context, id string, level int) error
}

// DayMarker records that today's review is finished.
type DayMarker interface {
	Today() calendar.Day
	MarkCompleted(ctx context.Context, day calendar.Day) (bool, error)
}

// Options configures a session.
type Options struct {
	// Shuffle randomizes the deck order and every refill.
	Shuffle bool

	// Rand is the shuffle source. Nil uses the global generator.
	Rand *rand.Rand
}

// Session is an in-progress review. It is not safe for concurrent use.
type Session struct {
	cards CardStore
	days  DayMarker
	opts  Options

	levels   spacedrep.LevelSet
	deck     []cards.Card
	total    int
	reviewed int
	correct  int
	refills  int
	done     bool

	startTime     time.Time
	completedTime time.Time
	completedDay  calendar.Day
}

// Start loads the deck for levels. With no cards due the day is completed
// right away and the returned session is already done.
func Start(ctx context.Context, store CardStore, days DayMarker, levels spacedrep.LevelSet, opts Options) (*Session, error) {
	s := &Session{
		cards:     store,
		days:      days,
		opts:      opts,
		levels:    levels,
		startTime: time.Now(),
	}

	deck, err := store.Deck(ctx, levels...)
	if err != nil {
		return nil, fmt.Errorf("start review: %w", err)
	}
	s.deck = s.shuffle(deck)
	s.total = len(s.deck)

	if len(s.deck) == 0 {
		if err := s.finish(ctx); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Current returns the card under review.
func (s *Session) Current() (cards.Card, bool) {
	if s.done || len(s.deck) == 0 {
		return cards.Card{}, false
	}
	return s.deck[0], true
}

// Answer grades the current card. A correct answer promotes it one level,
// a wrong one sends it back to the first level. When the deck runs out it
// is refilled with first-level cards, and when none are left the day is
// marked completed.
func (s *Session) Answer(ctx context.Context, correct bool) error {
	card, ok := s.Current()
	if !ok {
		return ErrSessionDone
	}

	to := cards.LevelFirst
	if correct {
		to = min(card.Level+1, cards.LevelFinished)
	}
	if err := s.cards.Move(ctx, card.ID, to); err != nil {
		return fmt.Errorf("answer card %s: %w", card.Name, err)
	}

	s.deck = s.deck[1:]
	s.reviewed++
	if correct {
		s.correct++
	}

	if len(s.deck) > 0 {
		return nil
	}

	refill, err := s.cards.Deck(ctx, cards.LevelFirst)
	if err != nil {
		return fmt.Errorf("refill deck: %w", err)
	}
	if len(refill) > 0 {
		s.deck = s.shuffle(refill)
		s.total += len(refill)
		s.refills++
		return nil
	}
	return s.finish(ctx)
}

// Done reports whether the review is over.
func (s *Session) Done() bool { return s.done }

// Remaining is the number of cards left in the current deck.
func (s *Session) Remaining() int { return len(s.deck) }

// Levels returns the levels the session was started for.
func (s *Session) Levels() spacedrep.LevelSet { return s.levels }

func (s *Session) finish(ctx context.Context) error {
	day := s.days.Today()
	if _, err := s.days.MarkCompleted(ctx, day); err != nil {
		return fmt.Errorf("complete review: %w", err)
	}
	s.done = true
	s.completedDay = day
	s.completedTime = time.Now()
	return nil
}

func (s *Session) shuffle(deck []cards.Card) []cards.Card {
	if !s.opts.Shuffle {
		return deck
	}
	swap := func(i, j int) { deck[i], deck[j] = deck[j], deck[i] }
	if s.opts.Rand != nil {
		s.opts.Rand.Shuffle(len(deck), swap)
	} else {
		rand.Shuffle(len(deck), swap)
	}
	return deck
}

package cards

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/cardcycle/cardcycle/internal/spacedrep"
	"github.com/cardcycle/cardcycle/internal/store"
)

// Service manages the card collection.
type Service struct {
	repo store.CardRepo
	now  func() time.Time
}

// NewService creates a card service backed by repo.
func NewService(repo store.CardRepo) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Add creates a card at the first review level. An empty name is replaced
// by the next free number.
func (s *Service) Add(ctx context.Context, name, front, back string) (*Card, error) {
	return s.create(ctx, name, front, back, LevelFirst)
}

// AddDraft creates a card that is kept out of reviews until moved.
func (s *Service) AddDraft(ctx context.Context, name, front, back string) (*Card, error) {
	return s.create(ctx, name, front, back, LevelDraft)
}

func (s *Service) create(ctx context.Context, name, front, back string, level int) (*Card, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		next, err := s.nextName(ctx)
		if err != nil {
			return nil, err
		}
		name = next
	}

	now := s.now().UTC()
	card := Card{
		ID:        uuid.New().String(),
		Name:      name,
		Level:     level,
		Front:     front,
		Back:      back,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, toData(card)); err != nil {
		return nil, fmt.Errorf("add card: %w", err)
	}
	return &card, nil
}

// nextName is one more than the largest number found in any card name.
func (s *Service) nextName(ctx context.Context) (string, error) {
	names, err := s.repo.Names(ctx)
	if err != nil {
		return "", fmt.Errorf("list card names: %w", err)
	}
	largest := 0
	for _, n := range names {
		if v, ok := (Card{Name: n}).Number(); ok {
			largest = max(largest, v)
		}
	}
	return strconv.Itoa(largest + 1), nil
}

// Get returns a card by id.
func (s *Service) Get(ctx context.Context, id string) (*Card, error) {
	data, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, mapErr(id, err)
	}
	c := fromData(*data)
	return &c, nil
}

// Move puts a card at level. Moving to the level it is already at does nothing.
func (s *Service) Move(ctx context.Context, id string, level int) error {
	if !ValidLevel(level) {
		return fmt.Errorf("move card %s to %d: %w", id, level, ErrInvalidLevel)
	}
	c, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if c.Level == level {
		return nil
	}
	if err := s.repo.SetLevel(ctx, id, level); err != nil {
		return mapErr(id, err)
	}
	return nil
}

// Delete removes a card.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return mapErr(id, err)
	}
	return nil
}

// Deck returns the cards at any of levels, oldest first.
func (s *Service) Deck(ctx context.Context, levels ...int) ([]Card, error) {
	for _, l := range levels {
		if !ValidLevel(l) {
			return nil, fmt.Errorf("deck at level %d: %w", l, ErrInvalidLevel)
		}
	}
	if len(levels) == 0 {
		return nil, nil
	}
	data, err := s.repo.ListByLevels(ctx, levels...)
	if err != nil {
		return nil, fmt.Errorf("load deck: %w", err)
	}
	deck := make([]Card, len(data))
	for i, d := range data {
		deck[i] = fromData(d)
	}
	return deck, nil
}

// All returns every card.
func (s *Service) All(ctx context.Context) ([]Card, error) {
	data, err := s.repo.ListByLevels(ctx)
	if err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}
	out := make([]Card, len(data))
	for i, d := range data {
		out[i] = fromData(d)
	}
	return out, nil
}

// CountAt returns how many cards sit at level.
func (s *Service) CountAt(ctx context.Context, level int) (int, error) {
	if !ValidLevel(level) {
		return 0, fmt.Errorf("count level %d: %w", level, ErrInvalidLevel)
	}
	n, err := s.repo.CountByLevels(ctx, level)
	if err != nil {
		return 0, fmt.Errorf("count level %d: %w", level, err)
	}
	return n, nil
}

// NumberOfDueCards counts the cards at any of levels. An empty set counts
// nothing.
func (s *Service) NumberOfDueCards(ctx context.Context, levels spacedrep.LevelSet) (int, error) {
	if len(levels) == 0 {
		return 0, nil
	}
	n, err := s.repo.CountByLevels(ctx, levels...)
	if err != nil {
		return 0, fmt.Errorf("count due cards at %s: %w", levels, err)
	}
	return n, nil
}

func mapErr(id string, err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("card %s: %w", id, ErrCardNotFound)
	}
	return fmt.Errorf("card %s: %w", id, err)
}

func toData(c Card) store.CardData {
	return store.CardData{
		ID:        c.ID,
		Name:      c.Name,
		Level:     c.Level,
		Front:     c.Front,
		Back:      c.Back,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func fromData(d store.CardData) Card {
	return Card{
		ID:        d.ID,
		Name:      d.Name,
		Level:     d.Level,
		Front:     d.Front,
		Back:      d.Back,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

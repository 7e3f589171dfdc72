package reminders

import (
	"context"
	"errors"
	"fmt"

	"github.com/cardcycle/cardcycle/internal/store"
)

var (
	// ErrInvalidTime is returned for an hour outside 0..23 or a minute outside 0..59.
	ErrInvalidTime = errors.New("invalid reminder time")

	// ErrReminderNotFound is returned when no reminder has the requested id.
	ErrReminderNotFound = errors.New("reminder not found")
)

// Reminder is a daily time at which the host should nudge the user to review.
type Reminder struct {
	ID      int64
	Hour    int
	Minute  int
	Badge   bool
	Sound   bool
	Enabled bool
}

// Clock formats the reminder time as HH:MM.
func (r Reminder) Clock() string {
	return fmt.Sprintf("%02d:%02d", r.Hour, r.Minute)
}

// Service manages stored reminders and plans notifications from them.
type Service struct {
	repo store.ReminderRepo
}

// NewService creates a reminder service backed by repo.
func NewService(repo store.ReminderRepo) *Service {
	return &Service{repo: repo}
}

// Add stores an enabled reminder.
func (s *Service) Add(ctx context.Context, hour, minute int, badge, sound bool) (Reminder, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return Reminder{}, fmt.Errorf("add reminder %02d:%02d: %w", hour, minute, ErrInvalidTime)
	}
	data, err := s.repo.Create(ctx, store.ReminderData{
		Hour:    hour,
		Minute:  minute,
		Badge:   badge,
		Sound:   sound,
		Enabled: true,
	})
	if err != nil {
		return Reminder{}, fmt.Errorf("add reminder: %w", err)
	}
	return Reminder(data), nil
}

// List returns all reminders in creation order.
func (s *Service) List(ctx context.Context) ([]Reminder, error) {
	data, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list reminders: %w", err)
	}
	out := make([]Reminder, len(data))
	for i, d := range data {
		out[i] = Reminder(d)
	}
	return out, nil
}

// SetEnabled turns a reminder on or off.
func (s *Service) SetEnabled(ctx context.Context, id int64, enabled bool) error {
	if err := s.repo.SetEnabled(ctx, id, enabled); err != nil {
		return mapErr(id, err)
	}
	return nil
}

// Remove deletes a reminder.
func (s *Service) Remove(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return mapErr(id, err)
	}
	return nil
}

func mapErr(id int64, err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("reminder %d: %w", id, ErrReminderNotFound)
	}
	return fmt.Errorf("reminder %d: %w", id, err)
}

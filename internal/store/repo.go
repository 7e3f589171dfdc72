package store

import (
	"context"
	"errors"
	"time"
)

// Day log entry kinds as stored in day_log.kind.
const (
	KindCompleted = "completed"
	KindSkipped   = "skipped"
)

// ErrNotFound is returned when a row addressed by id does not exist.
var ErrNotFound = errors.New("store: not found")

// QueryOpts configures log queries with filtering and pagination.
type QueryOpts struct {
	Limit  int    // max results (0 = unlimited)
	After  int64  // sequence > After
	Before int64  // sequence < Before
	From   string // day >= From (YYYY-MM-DD)
	To     string // day <= To (YYYY-MM-DD)
	Kind   string // KindCompleted, KindSkipped or "" for both
}

// DayLogEntry is one persisted day outcome.
type DayLogEntry struct {
	Sequence   int64
	Day        string
	Kind       string
	RecordedAt time.Time
}

// CardData is a stored flashcard.
type CardData struct {
	ID        string
	Name      string
	Level     int
	Front     string
	Back      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CardRepo manages flashcards.
type CardRepo interface {
	// Create stores a new card. ID, timestamps and level must be set.
	Create(ctx context.Context, card CardData) error

	// Get returns the card with id, or ErrNotFound.
	Get(ctx context.Context, id string) (*CardData, error)

	// ListByLevels returns cards at any of the levels, oldest first.
	// No levels means every card.
	ListByLevels(ctx context.Context, levels ...int) ([]CardData, error)

	// CountByLevels counts cards at any of the levels.
	CountByLevels(ctx context.Context, levels ...int) (int, error)

	// SetLevel moves a card to level, or returns ErrNotFound.
	SetLevel(ctx context.Context, id string, level int) error

	// Delete removes a card, or returns ErrNotFound.
	Delete(ctx context.Context, id string) error

	// Names returns the names of all cards.
	Names(ctx context.Context) ([]string, error)
}

// ReminderData is a stored daily reminder time.
type ReminderData struct {
	ID      int64
	Hour    int
	Minute  int
	Badge   bool
	Sound   bool
	Enabled bool
}

// ReminderRepo manages reminder settings.
type ReminderRepo interface {
	// Create stores a reminder and returns it with its assigned id.
	Create(ctx context.Context, r ReminderData) (ReminderData, error)

	// List returns all reminders in creation order.
	List(ctx context.Context) ([]ReminderData, error)

	// SetEnabled turns a reminder on or off, or returns ErrNotFound.
	SetEnabled(ctx context.Context, id int64, enabled bool) error

	// Delete removes a reminder, or returns ErrNotFound.
	Delete(ctx context.Context, id int64) error
}

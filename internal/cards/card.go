package cards

import (
	"errors"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"
)

// Card levels. Drafts are never reviewed, finished cards graduated past the
// last scheduled level.
const (
	LevelDraft    = 0
	LevelFirst    = 1
	LevelLast     = 7
	LevelFinished = 8
)

var (
	// ErrCardNotFound is returned when no card has the requested id.
	ErrCardNotFound = errors.New("card not found")

	// ErrInvalidLevel is returned for levels outside LevelDraft..LevelFinished.
	ErrInvalidLevel = errors.New("invalid card level")
)

// Card is one flashcard.
type Card struct {
	ID        string
	Name      string
	Level     int
	Front     string
	Back      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

var nameNumber = regexp.MustCompile(`\b\d+\b`)

// Number returns the first standalone integer in the card's name.
func (c Card) Number() (int, bool) {
	m := nameNumber.FindString(c.Name)
	if m == "" {
		return 0, false
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0, false
	}
	return n, true
}

// ValidLevel reports whether level is a level a card can live at.
func ValidLevel(level int) bool {
	return level >= LevelDraft && level <= LevelFinished
}

// LevelName is the display name of a level.
func LevelName(level int) string {
	switch level {
	case LevelDraft:
		return "drafts"
	case LevelFinished:
		return "finished"
	default:
		return "level " + strconv.Itoa(level)
	}
}

// SortByName orders cards for listing: cards without a number in their name
// come first in descending name order, then numbered cards, highest first.
func SortByName(cards []Card) {
	slices.SortStableFunc(cards, func(a, b Card) int {
		na, okA := a.Number()
		nb, okB := b.Number()
		switch {
		case !okA && !okB:
			return strings.Compare(b.Name, a.Name)
		case !okA:
			return -1
		case !okB:
			return 1
		default:
			return nb - na
		}
	})
}

package session

import (
	"time"

	"github.com/cardcycle/cardcycle/internal/calendar"
)

// Summary describes a review for display after it ends.
type Summary struct {
	Duration  time.Duration
	Reviewed  int
	Correct   int
	Total     int
	Refills   int
	Accuracy  float64
	Completed bool
	Day       calendar.Day
}

// BuildSummary creates a Summary from the session's current state.
func BuildSummary(s *Session) *Summary {
	var accuracy float64
	if s.reviewed > 0 {
		accuracy = float64(s.correct) / float64(s.reviewed)
	}

	end := s.completedTime
	if end.IsZero() {
		end = time.Now()
	}

	return &Summary{
		Duration:  end.Sub(s.startTime),
		Reviewed:  s.reviewed,
		Correct:   s.correct,
		Total:     s.total,
		Refills:   s.refills,
		Accuracy:  accuracy,
		Completed: s.done,
		Day:       s.completedDay,
	}
}

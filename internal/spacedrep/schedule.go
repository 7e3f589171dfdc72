package spacedrep

import (
	"slices"
	"strconv"
	"strings"
)

// Level bounds. Levels 1-7 are scheduled by the review cycle; drafts and
// finished cards are never due.
const (
	LevelDrafts   = 0
	MinLevel      = 1
	MaxLevel      = 7
	LevelFinished = 8
)

// CycleLength is the period of the review cycle in days.
const CycleLength = 64

// maxScanDays bounds the forward walk in NextReviewDate. Every level appears
// within one cycle, so hitting this means ReviewCycle is broken.
const maxScanDays = 2 * CycleLength

// LevelSet is the set of levels due on one cycle day, most significant first.
type LevelSet []int

// Contains reports whether level is in the set.
func (ls LevelSet) Contains(level int) bool {
	return slices.Contains(ls, level)
}

func (ls LevelSet) String() string {
	parts := make([]string, len(ls))
	for i, l := range ls {
		parts[i] = strconv.Itoa(l)
	}
	return "[" + strings.Join(parts, ",") + "]"
}

// ReviewCycle lists the levels to review on each day of the 64-day cycle.
var ReviewCycle = [CycleLength]LevelSet{
	{2, 1}, {3, 1}, {2, 1}, {4, 1}, {2, 1}, {3, 1}, {2, 1}, {1}, {2, 1}, {3, 1}, {2, 1}, {5, 1}, {4, 2, 1}, {3, 1}, {2, 1}, {1},
	{2, 1}, {3, 1}, {2, 1}, {4, 1}, {2, 1}, {3, 1}, {2, 1}, {6, 1}, {2, 1}, {3, 1}, {2, 1}, {5, 1}, {4, 2, 1}, {3, 1}, {2, 1}, {1},
	{2, 1}, {3, 1}, {2, 1}, {4, 1}, {2, 1}, {3, 1}, {2, 1}, {1}, {2, 1}, {3, 1}, {2, 1}, {5, 1}, {4, 2, 1}, {3, 1}, {2, 1}, {1},
	{2, 1}, {3, 1}, {2, 1}, {4, 1}, {2, 1}, {3, 1}, {2, 1}, {7, 1}, {2, 1}, {3, 1}, {6, 2, 1}, {5, 1}, {4, 2, 1}, {3, 1}, {2, 1}, {1},
}

// LevelsAt returns a copy of the cycle entry for index, reduced mod CycleLength.
// Negative indexes wrap backwards.
func LevelsAt(index int) LevelSet {
	return slices.Clone(ReviewCycle[wrap(index)])
}

// IsScheduledLevel reports whether level is one the cycle can make due.
func IsScheduledLevel(level int) bool {
	return MinLevel <= level && level <= MaxLevel
}

func wrap(index int) int {
	return ((index % CycleLength) + CycleLength) % CycleLength
}

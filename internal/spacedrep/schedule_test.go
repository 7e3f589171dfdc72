package spacedrep

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const reviewCycleText = "[2,1],[3,1],[2,1],[4,1],[2,1],[3,1],[2,1],[1],[2,1],[3,1],[2,1],[5,1],[4,2,1],[3,1],[2,1],[1]," +
	"[2,1],[3,1],[2,1],[4,1],[2,1],[3,1],[2,1],[6,1],[2,1],[3,1],[2,1],[5,1],[4,2,1],[3,1],[2,1],[1]," +
	"[2,1],[3,1],[2,1],[4,1],[2,1],[3,1],[2,1],[1],[2,1],[3,1],[2,1],[5,1],[4,2,1],[3,1],[2,1],[1]," +
	"[2,1],[3,1],[2,1],[4,1],[2,1],[3,1],[2,1],[7,1],[2,1],[3,1],[6,2,1],[5,1],[4,2,1],[3,1],[2,1],[1]"

func TestReviewCycle_MatchesReference(t *testing.T) {
	parts := make([]string, len(ReviewCycle))
	for i, ls := range ReviewCycle {
		parts[i] = ls.String()
	}
	assert.Equal(t, reviewCycleText, strings.Join(parts, ","))
}

func TestReviewCycle_EveryLevelAppears(t *testing.T) {
	for level := MinLevel; level <= MaxLevel; level++ {
		found := false
		for _, ls := range ReviewCycle {
			if ls.Contains(level) {
				found = true
				break
			}
		}
		assert.True(t, found, "level %d never appears in the review cycle", level)
	}
}

func TestReviewCycle_EntriesNonEmptyAndInRange(t *testing.T) {
	for i, ls := range ReviewCycle {
		assert.NotEmpty(t, ls, "entry %d", i)
		for _, l := range ls {
			assert.True(t, IsScheduledLevel(l), "entry %d has level %d", i, l)
		}
		assert.True(t, ls.Contains(1), "entry %d should review level 1", i)
	}
}

func TestLevelsAt_Wraps(t *testing.T) {
	tests := []struct {
		index int
		want  LevelSet
	}{
		{0, LevelSet{2, 1}},
		{1, LevelSet{3, 1}},
		{12, LevelSet{4, 2, 1}},
		{55, LevelSet{7, 1}},
		{58, LevelSet{6, 2, 1}},
		{63, LevelSet{1}},
		{64, LevelSet{2, 1}},
		{65, LevelSet{3, 1}},
		{-1, LevelSet{1}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LevelsAt(tt.index), "index %d", tt.index)
	}
}

func TestLevelsAt_ReturnsCopy(t *testing.T) {
	ls := LevelsAt(0)
	ls[0] = 99
	assert.Equal(t, LevelSet{2, 1}, ReviewCycle[0])
}

func TestIsScheduledLevel(t *testing.T) {
	tests := []struct {
		level int
		want  bool
	}{
		{LevelDrafts, false},
		{1, true},
		{4, true},
		{7, true},
		{LevelFinished, false},
		{-1, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsScheduledLevel(tt.level), "level %d", tt.level)
	}
}

func TestCompletionState_Persisted(t *testing.T) {
	assert.True(t, StateCompleted.Persisted())
	assert.True(t, StateSkipped.Persisted())
	assert.False(t, StateMissed.Persisted())
	assert.False(t, StateNothing.Persisted())
}

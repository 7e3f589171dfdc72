package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelColor(t *testing.T) {
	assert.Equal(t, LevelColors[0], LevelColor(1))
	assert.Equal(t, LevelColors[6], LevelColor(7))
	assert.Equal(t, TextDim, LevelColor(0))
	assert.Equal(t, TextDim, LevelColor(8))
}

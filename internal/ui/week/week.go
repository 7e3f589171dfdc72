// Package week renders the seven-day strip shown by the week command.
package week

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/cardcycle/cardcycle/internal/spacedrep"
	"github.com/cardcycle/cardcycle/internal/ui/theme"
)

const dot = "●"

// Glyph is the one-character marker for a completion state.
func Glyph(state spacedrep.CompletionState) string {
	switch state {
	case spacedrep.StateCompleted:
		return "✓"
	case spacedrep.StateSkipped:
		return "–"
	case spacedrep.StateMissed:
		return "✗"
	default:
		return "·"
	}
}

// Render draws one column per day: weekday initial, state glyph and a
// colored dot per level, highest level on top.
func Render(plans []spacedrep.DayPlan) string {
	height := 0
	for _, p := range plans {
		height = max(height, len(p.Levels))
	}

	cols := make([]string, len(plans))
	for i, p := range plans {
		cols[i] = column(p, height)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

func column(p spacedrep.DayPlan, height int) string {
	head := lipgloss.NewStyle()
	if p.Today {
		head = theme.Today
	}

	lines := []string{
		head.Render(p.Day.Weekday().String()[:1]),
		stateStyle(p.State).Render(Glyph(p.State)),
	}
	for i := 0; i < height-len(p.Levels); i++ {
		lines = append(lines, " ")
	}
	for _, l := range p.Levels {
		lines = append(lines, theme.Level(l).Render(dot))
	}

	return lipgloss.NewStyle().
		Width(3).
		Align(lipgloss.Center).
		Render(strings.Join(lines, "\n"))
}

func stateStyle(state spacedrep.CompletionState) lipgloss.Style {
	switch state {
	case spacedrep.StateCompleted:
		return theme.Correct
	case spacedrep.StateMissed:
		return theme.Incorrect
	default:
		return theme.Dim
	}
}

// Legend lists the level colors, e.g. "● 1  ● 2 ...".
func Legend() string {
	parts := make([]string, len(theme.LevelColors))
	for i := range theme.LevelColors {
		parts[i] = theme.Level(i+1).Render(dot) + " " + string(rune('1'+i))
	}
	return strings.Join(parts, "  ")
}

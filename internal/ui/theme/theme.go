package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette
var (
	Primary   = lipgloss.Color("#8B5CF6") // Vivid Purple
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// LevelColors holds one color per scheduled level, 1 through 7.
var LevelColors = [...]color.Color{
	lipgloss.Color("#EE4035"), // Red
	lipgloss.Color("#F37737"), // Orange
	lipgloss.Color("#FFDB13"), // Yellow
	lipgloss.Color("#7BC043"), // Green
	lipgloss.Color("#0292CF"), // Blue
	lipgloss.Color("#673888"), // Purple
	lipgloss.Color("#EF4F91"), // Pink
}

// LevelColor returns the color of a scheduled level, or TextDim for drafts
// and finished cards.
func LevelColor(level int) color.Color {
	if level < 1 || level > len(LevelColors) {
		return TextDim
	}
	return LevelColors[level-1]
}

// Level returns the style used to draw a level marker.
func Level(level int) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(LevelColor(level)).Bold(true)
}

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// States
var (
	Today = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true).
		Underline(true)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	Dim = lipgloss.NewStyle().
		Foreground(TextDim)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette: bright for small kids, high contrast on dark terminals.
var (
	Primary   = lipgloss.Color("#8B5CF6") // Vivid Purple
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F97316") // Orange
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0F172A") // Deep Navy
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate

	ArcadeYellow = lipgloss.Color("#FACC15")
	ArcadeCyan   = lipgloss.Color("#22D3EE")
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(ArcadeYellow).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Warning = lipgloss.NewStyle().
		Foreground(Accent).
		Bold(true)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	Disabled = lipgloss.NewStyle().
			Foreground(TextDim).
			Strikethrough(true)
)

// Game
var (
	Problem = lipgloss.NewStyle().
		Foreground(Text).
		Bold(true).
		Padding(1, 4).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Primary)

	Clock = lipgloss.NewStyle().
		Foreground(ArcadeCyan).
		Bold(true)

	Score = lipgloss.NewStyle().
		Foreground(ArcadeYellow).
		Bold(true)

	Link = lipgloss.NewStyle().
		Foreground(ArcadeCyan).
		Underline(true)
)

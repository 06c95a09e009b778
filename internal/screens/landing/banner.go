package landing

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathtime/internal/ui/theme"
)

// glyphs are six-row block letters for the title words.
var glyphs = map[rune][6]string{
	'M': {"███╗   ███╗", "████╗ ████║", "██╔████╔██║", "██║╚██╔╝██║", "██║ ╚═╝ ██║", "╚═╝     ╚═╝"},
	'A': {" █████╗ ", "██╔══██╗", "███████║", "██╔══██║", "██║  ██║", "╚═╝  ╚═╝"},
	'T': {"████████╗", "╚══██╔══╝", "   ██║   ", "   ██║   ", "   ██║   ", "   ╚═╝   "},
	'H': {"██╗  ██╗", "██║  ██║", "███████║", "██╔══██║", "██║  ██║", "╚═╝  ╚═╝"},
	'I': {"██╗", "██║", "██║", "██║", "██║", "╚═╝"},
	'E': {"███████╗", "██╔════╝", "█████╗  ", "██╔══╝  ", "███████╗", "╚══════╝"},
}

const titleCompact = "M · A · T · H · T · I · M · E"

// bannerWidth is the widest block word.
const bannerWidth = 36

// banner renders word in block letters.
func banner(word string) string {
	var rows [6]strings.Builder
	for _, r := range word {
		g, ok := glyphs[r]
		if !ok {
			continue
		}
		for i := range rows {
			rows[i].WriteString(g[i])
		}
	}
	lines := make([]string, len(rows))
	for i := range rows {
		lines[i] = rows[i].String()
	}
	return strings.Join(lines, "\n")
}

// renderTitle stacks MATH over TIME, or falls back to spaced letters.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true)

	text := titleCompact
	if !compact && cw >= bannerWidth {
		text = banner("MATH") + "\n" + banner("TIME")
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(text))
}

// mascotVariant selects which mascot art to display.
type mascotVariant int

const (
	mascotIdle        mascotVariant = iota
	mascotCelebrating               // minutes banked
)

const artIdle = `┌─────┐
│ ◉ ◉ │
│  ▽  │
│ +−= │
└─────┘`

const artCelebrating = `┌─────┐
│ ★ ★ │
│  ▿  │
│ +−= │
└─╥═╥─┘
  ╚═╝`

func renderMascot(v mascotVariant) string {
	art, fg := artIdle, theme.Primary
	if v == mascotCelebrating {
		art, fg = artCelebrating, theme.ArcadeYellow
	}
	return lipgloss.NewStyle().Foreground(fg).Render(art)
}

package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathtime/internal/ui/theme"
)

// ProgressBar shows how far through the current stage the child is, as
// filled cells plus a "done/total" counter.
type ProgressBar struct {
	Label   string
	Percent float64
	Steps   int // 0 hides the counter
	Width   int
}

// NewProgressBar creates a new progress bar.
func NewProgressBar(label string, percent float64, steps, width int) ProgressBar {
	return ProgressBar{
		Label:   label,
		Percent: percent,
		Steps:   steps,
		Width:   width,
	}
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var result string

	if p.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}

	counter := ""
	if p.Steps > 0 {
		done := int(p.Percent*float64(p.Steps) + 0.5)
		counter = fmt.Sprintf("  %d/%d", done, p.Steps)
	}

	barWidth := p.Width - lipgloss.Width(result) - len(counter)
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * p.Percent)
	filled = max(0, min(filled, barWidth))

	result += lipgloss.NewStyle().
		Background(theme.Secondary).
		Render(strings.Repeat(" ", filled))
	result += lipgloss.NewStyle().
		Background(theme.Border).
		Render(strings.Repeat(" ", barWidth-filled))

	if counter != "" {
		result += lipgloss.NewStyle().Foreground(theme.TextDim).Render(counter)
	}
	return result
}

package settings

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathtime/internal/ui/components"
	"github.com/abhisek/mathtime/internal/ui/theme"
)

func (s *SettingsScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString(theme.Title.Width(cw).Render("SETTINGS"))
	b.WriteString("\n\n")

	b.WriteString(s.sectionLabel("Operator", s.focus == focusOperator, cw))
	b.WriteString("\n")
	ops := s.operators
	if s.focus != focusOperator {
		ops.Selected = -1
	}
	b.WriteString(components.Centered(ops.ViewRow(20), cw))
	b.WriteString("\n")
	current := fmt.Sprintf("Playing: %s", s.draft.Operator().DisplayName())
	b.WriteString(components.Centered(theme.Hint.Render(current), cw))
	b.WriteString("\n")
	if s.warn {
		b.WriteString(components.Centered(theme.Warning.Render(
			"Changing the operator empties the timer pool"), cw))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(s.sectionLabel("Reward videos", s.focus > focusOperator && s.focus < focusActions, cw))
	b.WriteString("\n")
	var rows []string
	for i, in := range s.inputs {
		marker := "  "
		if s.focus == i+1 {
			marker = theme.Selected.Render("▸ ")
		}
		rows = append(rows, fmt.Sprintf("%s%d. %s", marker, i+1, in.View()))
	}
	b.WriteString(components.ArcadeCard(strings.Join(rows, "\n"), cw))
	b.WriteString("\n\n")

	if s.err != "" {
		b.WriteString(components.Centered(theme.Incorrect.Render(s.err), cw))
		b.WriteString("\n")
	}

	actions := s.actions
	if s.focus != focusActions {
		actions.Selected = -1
	}
	b.WriteString(components.Centered(actions.ViewRow(16), cw))

	return components.CabinetFrame(b.String(), width, height)
}

func (s *SettingsScreen) sectionLabel(label string, focused bool, cw int) string {
	style := lipgloss.NewStyle().Foreground(theme.TextDim)
	if focused {
		style = style.Foreground(theme.ArcadeCyan).Bold(true)
	}
	return components.Centered(style.Render(label), cw)
}

package game

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathtime/internal/session"
	"github.com/abhisek/mathtime/internal/ui/components"
	"github.com/abhisek/mathtime/internal/ui/theme"
)

func (g *GameScreen) View(width, height int) string {
	e := g.deps.Engine
	st := e.Status()
	cw := components.ContentWidth(width)

	var b strings.Builder

	// Info line: stage, score, clock.
	stage := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(st.StageLabel())
	score := theme.Score.Render(fmt.Sprintf("★ %d", st.Score))
	clock := theme.Clock.Render(session.FormatClock(g.elapsed))
	gap := cw - lipgloss.Width(stage) - lipgloss.Width(score) - lipgloss.Width(clock)
	if gap < 2 {
		gap = 2
	}
	b.WriteString(stage + strings.Repeat(" ", gap/2) + score + strings.Repeat(" ", gap-gap/2) + clock)
	b.WriteString("\n\n")

	b.WriteString(components.NewProgressBar("", st.Progress, session.ProblemsPerStage, cw).View())
	b.WriteString("\n\n")

	b.WriteString(components.Centered(g.renderProblem(st), cw))
	b.WriteString("\n\n")

	answer := "Answer: " + g.input.View()
	b.WriteString(components.Centered(answer, cw))
	b.WriteString("\n\n")

	b.WriteString(components.Centered(g.renderFeedback(), cw))

	return components.CabinetFrame(b.String(), width, height)
}

func (g *GameScreen) renderProblem(st session.Status) string {
	text := st.ProblemText
	if text == "" {
		text = "Done!"
	}

	style := theme.Problem
	switch g.flash {
	case flashCorrect:
		style = style.BorderForeground(theme.Success).Foreground(theme.Success)
	case flashIncorrect:
		style = style.BorderForeground(theme.Error).Foreground(theme.Error)
	}
	return style.Render(text)
}

func (g *GameScreen) renderFeedback() string {
	var line string
	switch g.flash {
	case flashCorrect:
		line = theme.Correct.Render(fmt.Sprintf("Correct! +%d", g.lastPts))
	case flashIncorrect:
		line = theme.Incorrect.Render("Not quite")
	}
	if g.notice != "" {
		if line != "" {
			line += "   "
		}
		line += theme.Warning.Render(g.notice)
	}
	return line
}

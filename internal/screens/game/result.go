package game

import (
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathtime/internal/reward"
	"github.com/abhisek/mathtime/internal/router"
	"github.com/abhisek/mathtime/internal/screen"
	"github.com/abhisek/mathtime/internal/session"
	"github.com/abhisek/mathtime/internal/ui/components"
	"github.com/abhisek/mathtime/internal/ui/layout"
	"github.com/abhisek/mathtime/internal/ui/theme"
)

const (
	focusVideos = iota
	focusActions
)

// ResultScreen shows the end-of-session summary and the reward link.
type ResultScreen struct {
	deps    Deps
	summary session.Summary

	videos  components.Menu
	actions components.Menu
	focus   int

	link   string
	notice string
}

var (
	_ screen.Screen          = (*ResultScreen)(nil)
	_ screen.KeyHintProvider = (*ResultScreen)(nil)
)

// NewResult builds the result screen for sum. Video buttons are disabled
// when the score is below the reward threshold.
func NewResult(deps Deps, sum session.Summary) *ResultScreen {
	r := &ResultScreen{deps: deps, summary: sum}

	var items []components.MenuItem
	for _, label := range deps.prefs().VideoChoices {
		if strings.TrimSpace(label) == "" {
			continue
		}
		label := label
		items = append(items, components.MenuItem{
			Label:    label,
			Disabled: !sum.RewardEligible,
			Action: func() tea.Cmd {
				return func() tea.Msg { return videoChosenMsg{label: label} }
			},
		})
	}
	r.videos = components.NewMenu(items)

	r.actions = components.NewMenu([]components.MenuItem{
		{Label: "PLAY AGAIN", Action: func() tea.Cmd {
			next := NewReplay(deps)
			return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
		}},
		{Label: "HOME", Action: func() tea.Cmd {
			return func() tea.Msg { return router.PopScreenMsg{} }
		}},
	})

	r.focus = focusActions
	if sum.RewardEligible && len(items) > 0 {
		r.focus = focusVideos
	}
	return r
}

func (r *ResultScreen) Init() tea.Cmd {
	return nil
}

func (r *ResultScreen) Title() string {
	return "Result"
}

func (r *ResultScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→", Description: "Choose"},
		{Key: "Tab", Description: "Videos/Actions"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Home"},
	}
}

// Link returns the reward link, empty until a video is chosen.
func (r *ResultScreen) Link() string {
	return r.link
}

func (r *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case videoChosenMsg:
		r.chooseVideo(msg.label)
		return r, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "tab", "shift+tab", "up", "down":
			r.toggleFocus()
			return r, nil
		}
		var cmd tea.Cmd
		if r.focus == focusVideos {
			r.videos, cmd = r.videos.Update(msg)
		} else {
			r.actions, cmd = r.actions.Update(msg)
		}
		return r, cmd
	}
	return r, nil
}

func (r *ResultScreen) toggleFocus() {
	if r.focus == focusActions && r.summary.RewardEligible && len(r.videos.Items) > 0 {
		r.focus = focusVideos
		return
	}
	r.focus = focusActions
}

func (r *ResultScreen) chooseVideo(label string) {
	link, err := reward.Gate(r.deps.SearchURL, r.summary, label)
	switch {
	case errors.Is(err, reward.ErrNotEligible):
		r.notice = fmt.Sprintf("Score %d or more to unlock a video", session.RewardThreshold)
		return
	case err != nil:
		r.notice = "Pick a video first"
		return
	}

	r.link = link
	r.notice = ""
	r.deps.log().Info("Reward link opened", "video", label)

	if r.deps.Clipboard == nil {
		return
	}
	if err := r.deps.Clipboard.Copy(link); err != nil {
		r.deps.log().Warn("Failed to copy reward link", "err", err)
		return
	}
	r.notice = "Link copied to clipboard"
}

func (r *ResultScreen) View(width, height int) string {
	sum := r.summary
	cw := components.ContentWidth(width)

	var b strings.Builder

	b.WriteString(theme.Title.Width(cw).Render("GAME OVER"))
	b.WriteString("\n\n")

	rows := [][2]string{
		{"Score", theme.Score.Render(fmt.Sprintf("%d", sum.Score))},
		{"Accuracy", sum.AccuracyLabel()},
		{"Time", session.FormatDuration(sum.ElapsedSeconds)},
		{"Earned", fmt.Sprintf("%d min", sum.EarnedMinutes)},
		{"Timer pool", theme.Clock.Render(fmt.Sprintf("%d min", sum.TimerPoolValue))},
	}
	var stats []string
	for _, row := range rows {
		label := lipgloss.NewStyle().Foreground(theme.TextDim).Width(12).Render(row[0])
		stats = append(stats, label+row[1])
	}
	b.WriteString(components.ArcadeCard(strings.Join(stats, "\n"), cw))
	b.WriteString("\n")

	if sum.PoolFull {
		b.WriteString(components.Centered(theme.Warning.Render(
			fmt.Sprintf("Timer pool is full! (max %d min)", session.PoolCap)), cw))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if len(r.videos.Items) > 0 {
		b.WriteString(components.Centered(theme.Body.Render("Pick a video:"), cw))
		b.WriteString("\n")
		videos := r.videos
		if r.focus != focusVideos {
			videos.Selected = -1
		}
		b.WriteString(components.Centered(videos.ViewRow(18), cw))
		b.WriteString("\n")
	}

	b.WriteString(components.Centered(r.renderLink(), cw))
	b.WriteString("\n")
	if r.notice != "" {
		b.WriteString(components.Centered(theme.Hint.Render(r.notice), cw))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	actions := r.actions
	if r.focus != focusActions {
		actions.Selected = -1
	}
	b.WriteString(components.Centered(actions.ViewRow(16), cw))

	return components.CabinetFrame(b.String(), width, height)
}

func (r *ResultScreen) renderLink() string {
	if !r.summary.RewardEligible {
		return theme.Disabled.Render(fmt.Sprintf("Watch a video (needs %d points)", session.RewardThreshold))
	}
	if r.link == "" {
		return theme.Hint.Render("Choose a video to get your link")
	}
	return theme.Link.Render(r.link)
}

// Package landing is the root screen: the child picks an age, then a
// stage, and the game starts.
package landing

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathtime/internal/problemgen"
	"github.com/abhisek/mathtime/internal/router"
	"github.com/abhisek/mathtime/internal/screen"
	"github.com/abhisek/mathtime/internal/screens/game"
	settingsscreen "github.com/abhisek/mathtime/internal/screens/settings"
	"github.com/abhisek/mathtime/internal/ui/components"
	"github.com/abhisek/mathtime/internal/ui/layout"
	"github.com/abhisek/mathtime/internal/ui/theme"
)

type step int

const (
	stepAge step = iota
	stepStage
)

type (
	ageChosenMsg   struct{ age problemgen.Age }
	stageChosenMsg struct{ stage problemgen.Stage }
	previousMsg    struct{}
)

// LandingScreen is the two-step age and stage picker.
type LandingScreen struct {
	game     game.Deps
	settings settingsscreen.Deps

	step step
	age  problemgen.Age

	ages    components.Menu
	stages  components.Menu
	actions components.Menu
	onMenu  bool // focus on the choice row rather than the actions row
}

var (
	_ screen.Screen          = (*LandingScreen)(nil)
	_ screen.KeyHintProvider = (*LandingScreen)(nil)
	_ screen.BackHandler     = (*LandingScreen)(nil)
)

// New creates the landing screen.
func New(gameDeps game.Deps, settingsDeps settingsscreen.Deps) *LandingScreen {
	l := &LandingScreen{
		game:     gameDeps,
		settings: settingsDeps,
		onMenu:   true,
	}

	var ages []components.MenuItem
	for _, a := range problemgen.Ages {
		a := a
		ages = append(ages, components.MenuItem{
			Label: fmt.Sprintf("AGE %d", int(a)),
			Action: func() tea.Cmd {
				return func() tea.Msg { return ageChosenMsg{age: a} }
			},
		})
	}
	l.ages = components.NewMenu(ages)

	var stages []components.MenuItem
	for _, s := range problemgen.Stages {
		s := s
		stages = append(stages, components.MenuItem{
			Label: fmt.Sprintf("%d", int(s)),
			Action: func() tea.Cmd {
				return func() tea.Msg { return stageChosenMsg{stage: s} }
			},
		})
	}
	l.stages = components.NewMenu(stages)
	l.setStep(stepAge)
	return l
}

func (l *LandingScreen) setStep(s step) {
	l.step = s
	l.onMenu = true
	if s == stepAge {
		l.actions = components.NewMenu([]components.MenuItem{
			{Label: "SETTINGS", Action: func() tea.Cmd {
				next := settingsscreen.New(l.settings)
				return func() tea.Msg { return router.PushScreenMsg{Screen: next} }
			}},
			{Label: "QUIT", Action: func() tea.Cmd { return tea.Quit }},
		})
		return
	}
	l.stages.Selected = 0
	l.actions = components.NewMenu([]components.MenuItem{
		{Label: "PREVIOUS", Action: func() tea.Cmd {
			return func() tea.Msg { return previousMsg{} }
		}},
	})
}

// startGame pushes a new game. The picker resets to the age step so that
// coming home lands on a fresh start.
func (l *LandingScreen) startGame(s problemgen.Stage) tea.Cmd {
	next := game.New(l.game, l.age, s)
	l.setStep(stepAge)
	return func() tea.Msg { return router.PushScreenMsg{Screen: next} }
}

func (l *LandingScreen) Init() tea.Cmd {
	return nil
}

func (l *LandingScreen) Title() string {
	if l.step == stepStage {
		return "Pick a stage"
	}
	return "Home"
}

func (l *LandingScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "←→", Description: "Choose"},
		{Key: "Tab", Description: "Switch row"},
		{Key: "Enter", Description: "Select"},
	}
	if l.step == stepStage {
		hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Previous"})
	}
	return hints
}

// Back returns from the stage step to the age step. At the age step it
// does nothing.
func (l *LandingScreen) Back() tea.Cmd {
	if l.step == stepStage {
		l.setStep(stepAge)
	}
	return nil
}

// AwaitingStage reports whether the picker is waiting for a stage.
func (l *LandingScreen) AwaitingStage() bool {
	return l.step == stepStage
}

func (l *LandingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case ageChosenMsg:
		l.age = msg.age
		l.setStep(stepStage)
		return l, nil

	case stageChosenMsg:
		return l, l.startGame(msg.stage)

	case previousMsg:
		return l, l.Back()

	case tea.KeyPressMsg:
		switch msg.String() {
		case "tab", "shift+tab", "up", "down":
			l.onMenu = !l.onMenu
			return l, nil
		}
		var cmd tea.Cmd
		switch {
		case !l.onMenu:
			l.actions, cmd = l.actions.Update(msg)
		case l.step == stepAge:
			l.ages, cmd = l.ages.Update(msg)
		default:
			l.stages, cmd = l.stages.Update(msg)
		}
		return l, cmd
	}
	return l, nil
}

func (l *LandingScreen) View(width, height int) string {
	// height is the content area; add back header and footer.
	termHeight := height + 8
	compact := termHeight < 34 || width < 80
	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(cw, compact))

	if !compact {
		variant := mascotIdle
		if l.game.Engine != nil && l.game.Engine.Pool().Minutes() > 0 {
			variant = mascotCelebrating
		}
		sections = append(sections, components.Centered(renderMascot(variant), cw))
	}

	prompt := "How old are you?"
	choices, buttonWidth := l.ages, 10
	if l.step == stepStage {
		prompt = fmt.Sprintf("Age %d. Pick a stage!", int(l.age))
		choices, buttonWidth = l.stages, 6
	}
	if !l.onMenu {
		choices.Selected = -1
	}
	actions := l.actions
	if l.onMenu {
		actions.Selected = -1
	}

	picker := lipgloss.JoinVertical(lipgloss.Center,
		theme.Subtitle.Render(prompt),
		"",
		choices.ViewRow(buttonWidth),
	)
	sections = append(sections, components.Centered(picker, cw))
	sections = append(sections, components.Centered(actions.ViewRow(14), cw))

	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}

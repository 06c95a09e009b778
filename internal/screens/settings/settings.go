// Package settings is the screen where a parent picks the operator and the
// reward video labels.
package settings

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/log"

	"github.com/abhisek/mathtime/internal/logging"
	"github.com/abhisek/mathtime/internal/problemgen"
	"github.com/abhisek/mathtime/internal/router"
	"github.com/abhisek/mathtime/internal/screen"
	"github.com/abhisek/mathtime/internal/settings"
	"github.com/abhisek/mathtime/internal/ui/components"
	"github.com/abhisek/mathtime/internal/ui/layout"
)

// labelLimit caps a video label.
const labelLimit = 30

// Deps are the collaborators of the settings screen. Store and Logger may
// be nil.
type Deps struct {
	Store         settings.Store
	Prefs         *settings.Preferences
	Pool          settings.Pool
	DefaultVideos []string
	Logger        *log.Logger
}

type operatorChosenMsg struct {
	op problemgen.Operator
}

type saveMsg struct{}

// Focus positions, top to bottom.
const (
	focusOperator = 0
	focusActions  = focusOperator + settings.VideoSlots + 1
)

// SettingsScreen edits a settings.Draft and saves it on request.
type SettingsScreen struct {
	deps  Deps
	draft *settings.Draft

	operators components.Menu
	inputs    [settings.VideoSlots]components.TextInput
	actions   components.Menu
	focus     int

	warn bool
	err  string
}

var (
	_ screen.Screen          = (*SettingsScreen)(nil)
	_ screen.KeyHintProvider = (*SettingsScreen)(nil)
)

// New opens the settings page on a fresh draft of the saved preferences.
func New(deps Deps) *SettingsScreen {
	saved := settings.Options{DefaultVideos: deps.DefaultVideos}.Defaults()
	if deps.Prefs != nil {
		saved = *deps.Prefs
	}
	s := &SettingsScreen{
		deps:  deps,
		draft: settings.NewDraft(saved, deps.DefaultVideos, deps.Pool),
	}

	var ops []components.MenuItem
	for _, op := range problemgen.Operators {
		op := op
		ops = append(ops, components.MenuItem{
			Label: fmt.Sprintf("%s  %s", op, strings.ToUpper(op.DisplayName())),
			Action: func() tea.Cmd {
				return func() tea.Msg { return operatorChosenMsg{op: op} }
			},
		})
	}
	s.operators = components.NewMenu(ops)
	if s.draft.Operator() == problemgen.OpSubtract {
		s.operators.Selected = 1
	}

	defaults := deps.DefaultVideos
	if len(defaults) == 0 {
		defaults = settings.DefaultVideos
	}
	for i := range s.inputs {
		placeholder := ""
		if i < len(defaults) {
			placeholder = defaults[i]
		}
		in := components.NewTextInput(placeholder, false, labelLimit)
		in.SetValue(s.draft.VideoChoice(i))
		in.Blur()
		s.inputs[i] = in
	}

	s.actions = components.NewMenu([]components.MenuItem{
		{Label: "SAVE", Action: func() tea.Cmd {
			return func() tea.Msg { return saveMsg{} }
		}},
		{Label: "BACK", Action: func() tea.Cmd {
			return func() tea.Msg { return router.PopScreenMsg{} }
		}},
	})
	return s
}

func (s *SettingsScreen) log() *log.Logger {
	if s.deps.Logger == nil {
		return logging.Discard()
	}
	return s.deps.Logger
}

func (s *SettingsScreen) Init() tea.Cmd {
	return nil
}

func (s *SettingsScreen) Title() string {
	return "Settings"
}

func (s *SettingsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Move"},
		{Key: "←→", Description: "Choose"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Back"},
	}
}

// Warning reports whether the operator-change warning is showing.
func (s *SettingsScreen) Warning() bool {
	return s.warn
}

func (s *SettingsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case operatorChosenMsg:
		warn, err := s.draft.StageOperator(msg.op)
		if err != nil {
			s.err = err.Error()
			return s, nil
		}
		s.warn = warn
		if warn {
			s.log().Info("Operator change staged, timer pool emptied", "op", string(msg.op))
		}
		return s, nil

	case saveMsg:
		return s, s.save()

	case tea.KeyPressMsg:
		switch msg.String() {
		case "up", "shift+tab":
			return s, s.moveFocus(-1)
		case "down", "tab":
			return s, s.moveFocus(1)
		}
		return s, s.updateFocused(msg)
	}
	return s, nil
}

func (s *SettingsScreen) updateFocused(msg tea.KeyPressMsg) tea.Cmd {
	var cmd tea.Cmd
	switch {
	case s.focus == focusOperator:
		s.operators, cmd = s.operators.Update(msg)
	case s.focus == focusActions:
		s.actions, cmd = s.actions.Update(msg)
	default:
		i := s.focus - 1
		if msg.String() == "enter" {
			return s.moveFocus(1)
		}
		s.inputs[i], cmd = s.inputs[i].Update(msg)
		s.draft.SetVideoChoice(i, s.inputs[i].Value())
	}
	return cmd
}

func (s *SettingsScreen) moveFocus(delta int) tea.Cmd {
	next := s.focus + delta
	if next < focusOperator || next > focusActions {
		return nil
	}
	if s.focus > focusOperator && s.focus < focusActions {
		s.inputs[s.focus-1].Blur()
	}
	s.focus = next
	if s.focus > focusOperator && s.focus < focusActions {
		return s.inputs[s.focus-1].Focus()
	}
	return nil
}

// save commits the draft and returns to the landing screen. A failed
// write keeps the page open with the error shown.
func (s *SettingsScreen) save() tea.Cmd {
	prefs := s.draft.Commit()
	if s.deps.Store != nil {
		if err := s.deps.Store.Save(context.Background(), prefs); err != nil {
			s.log().Error("Failed to save settings", "err", err)
			s.err = fmt.Sprintf("Could not save: %v", err)
			return nil
		}
	}
	if s.deps.Prefs != nil {
		*s.deps.Prefs = prefs
	}
	s.log().Info("Settings saved", "op", string(prefs.Operator), "videos", prefs.VideoChoices)
	return func() tea.Msg { return router.PopScreenMsg{} }
}

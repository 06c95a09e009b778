package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/log"

	"github.com/abhisek/mathtime/internal/config"
	"github.com/abhisek/mathtime/internal/logging"
	"github.com/abhisek/mathtime/internal/problemgen"
	"github.com/abhisek/mathtime/internal/reward"
	"github.com/abhisek/mathtime/internal/router"
	"github.com/abhisek/mathtime/internal/screen"
	"github.com/abhisek/mathtime/internal/screens/game"
	"github.com/abhisek/mathtime/internal/screens/landing"
	settingsscreen "github.com/abhisek/mathtime/internal/screens/settings"
	"github.com/abhisek/mathtime/internal/session"
	"github.com/abhisek/mathtime/internal/settings"
	"github.com/abhisek/mathtime/internal/store"
	"github.com/abhisek/mathtime/internal/ui/layout"
)

// Options holds the dependencies the TUI is built from. Events, Settings,
// Logger and Clipboard may be nil.
type Options struct {
	Engine    *session.Engine
	Events    store.EventRepo
	Settings  settings.Store
	Prefs     settings.Preferences
	Logger    *log.Logger
	Clipboard reward.Copier
	Config    config.Config

	// StartAge and StartStage skip the landing screen when both are valid.
	StartAge   problemgen.Age
	StartStage problemgen.Stage
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	engine *session.Engine
	start  screen.Screen
	width  int
	height int
}

// newAppModel creates a new AppModel with the landing screen at the root.
func newAppModel(opts Options) AppModel {
	if opts.Engine == nil {
		opts.Engine = session.New(problemgen.New(), session.NewTimerPool(opts.Prefs.TimerPool), nil)
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	prefs := opts.Prefs

	gameDeps := game.Deps{
		Engine:          opts.Engine,
		Events:          opts.Events,
		Settings:        opts.Settings,
		Prefs:           &prefs,
		Logger:          opts.Logger,
		Clipboard:       opts.Clipboard,
		SearchURL:       opts.Config.Reward.SearchURL,
		RefreshInterval: opts.Config.Game.RefreshInterval,
		PersistPool:     opts.Config.Reward.PersistTimerPool,
	}
	settingsDeps := settingsscreen.Deps{
		Store:         opts.Settings,
		Prefs:         &prefs,
		Pool:          opts.Engine.Pool(),
		DefaultVideos: opts.Config.Reward.DefaultVideos,
		Logger:        opts.Logger,
	}

	m := AppModel{
		router: router.New(landing.New(gameDeps, settingsDeps)),
		engine: opts.Engine,
	}
	if opts.StartAge.Valid() && opts.StartStage.Valid() {
		m.start = game.New(gameDeps, opts.StartAge, opts.StartStage)
	}
	return m
}

func (m AppModel) Init() tea.Cmd {
	if m.start == nil {
		return nil
	}
	next := m.start
	return func() tea.Msg { return router.PushScreenMsg{Screen: next} }
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			// Let an active game record its abandonment before exiting.
			if h, ok := m.router.Active().(screen.BackHandler); ok {
				h.Back()
			}
			return m, tea.Quit
		case "esc":
			if h, ok := m.router.Active().(screen.BackHandler); ok {
				return m, h.Back()
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	v.SetContent(m.render())
	return v
}

// render draws the full frame, or nothing before the first size message.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.engine.Pool().Minutes(), m.width)

	var footerHints []layout.KeyHint
	if p, ok := active.(screen.KeyHintProvider); ok {
		footerHints = p.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "←→", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
		}
	}
	footerHints = append(footerHints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}

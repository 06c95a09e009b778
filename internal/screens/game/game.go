package game

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/abhisek/mathtime/internal/problemgen"
	"github.com/abhisek/mathtime/internal/router"
	"github.com/abhisek/mathtime/internal/screen"
	"github.com/abhisek/mathtime/internal/session"
	"github.com/abhisek/mathtime/internal/store"
	"github.com/abhisek/mathtime/internal/ui/components"
	"github.com/abhisek/mathtime/internal/ui/layout"
)

// flashDuration is how long the problem card stays green or red.
const flashDuration = 600 * time.Millisecond

type flash int

const (
	flashNone flash = iota
	flashCorrect
	flashIncorrect
)

// GameScreen serves problems, runs the clock and hands off to the result
// screen when the last stage is done.
type GameScreen struct {
	deps Deps

	age      problemgen.Age
	maxStage problemgen.Stage
	replay   bool

	sessionID string
	input     components.TextInput
	elapsed   time.Duration

	tickGen  int
	flash    flash
	flashGen int
	lastPts  int
	notice   string
	done     bool
}

var (
	_ screen.Screen          = (*GameScreen)(nil)
	_ screen.KeyHintProvider = (*GameScreen)(nil)
	_ screen.BackHandler     = (*GameScreen)(nil)
)

// New creates a game for age that finishes after maxStage. The operator
// comes from the saved preferences.
func New(deps Deps, age problemgen.Age, maxStage problemgen.Stage) *GameScreen {
	return &GameScreen{
		deps:     deps,
		age:      age,
		maxStage: maxStage,
		input:    newAnswerInput(),
	}
}

// NewReplay creates a game that repeats the engine's last settings.
func NewReplay(deps Deps) *GameScreen {
	g := New(deps, deps.Engine.Age(), deps.Engine.MaxStage())
	g.replay = true
	return g
}

func newAnswerInput() components.TextInput {
	return components.NewTextInput("???", true, problemgen.MaxAnswerDigits)
}

func (g *GameScreen) Init() tea.Cmd {
	e := g.deps.Engine
	if g.replay {
		e.PlayAgain()
	} else {
		e.Start(g.age, g.maxStage, g.deps.prefs().Operator)
	}
	g.sessionID = uuid.New().String()
	g.elapsed = 0

	g.deps.appendSession(store.SessionEventData{
		SessionID: g.sessionID,
		Action:    store.ActionStart,
		Age:       int(e.Age()),
		MaxStage:  int(e.MaxStage()),
		Operator:  string(e.Operator()),
	})
	g.deps.log().Info("Session started",
		"session", g.sessionID, "age", int(e.Age()), "max_stage", int(e.MaxStage()), "op", string(e.Operator()))

	return tea.Batch(g.input.Init(), g.tick())
}

func (g *GameScreen) Title() string {
	return "Game"
}

func (g *GameScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "0-9", Description: "Type"},
		{Key: "Enter", Description: "Submit"},
		{Key: "Ctrl+R", Description: "Retry"},
		{Key: "Esc", Description: "Home"},
	}
}

func (g *GameScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if msg.gen != g.tickGen || g.deps.Engine.Phase() != session.PhaseInProgress {
			return g, nil
		}
		g.elapsed = g.deps.Engine.Elapsed()
		return g, g.tick()

	case flashDoneMsg:
		if msg.gen == g.flashGen {
			g.flash = flashNone
		}
		return g, nil

	case tea.KeyPressMsg:
		return g.handleKey(msg)
	}
	return g, nil
}

func (g *GameScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	if g.done {
		return g, nil
	}

	switch msg.String() {
	case "enter":
		return g.submit()
	case "ctrl+r":
		return g.retry()
	}

	var cmd tea.Cmd
	g.input, cmd = g.input.Update(msg)
	return g, cmd
}

// submit checks the typed answer. Blank input is ignored rather than
// counted as wrong.
func (g *GameScreen) submit() (screen.Screen, tea.Cmd) {
	value, err := problemgen.ParseAnswer(g.input.Value())
	if err != nil {
		g.input.Reset()
		return g, nil
	}
	g.input.Reset()

	e := g.deps.Engine
	stage := e.Stage()
	res := e.Submit(value)

	g.deps.appendAnswer(store.AnswerEventData{
		SessionID:     g.sessionID,
		Stage:         int(stage),
		QuestionText:  res.Problem.Text(),
		CorrectAnswer: res.Problem.Answer,
		Given:         value,
		Correct:       res.Correct,
		Points:        res.Points,
	})

	g.notice = ""
	if res.Advanced {
		g.notice = e.Stage().String() + "!"
	}
	g.lastPts = res.Points

	if res.Finished {
		return g, g.finish()
	}
	return g, g.startFlash(res.Correct)
}

func (g *GameScreen) retry() (screen.Screen, tea.Cmd) {
	e := g.deps.Engine
	stage := e.Stage()
	p, _ := e.CurrentProblem()
	penalty := session.RetryPenalty(stage)

	e.Retry()
	g.input.Reset()
	g.flash = flashNone
	g.notice = fmt.Sprintf("Retry  -%d points", penalty)

	g.deps.appendAnswer(store.AnswerEventData{
		SessionID:     g.sessionID,
		Stage:         int(stage),
		QuestionText:  p.Text(),
		CorrectAnswer: p.Answer,
		Retry:         true,
		Points:        -penalty,
	})
	return g, nil
}

// finish stops the clock, ends the session and swaps in the result screen.
func (g *GameScreen) finish() tea.Cmd {
	g.done = true
	g.tickGen++

	sum := g.deps.Engine.End()
	g.elapsed = sum.Elapsed

	g.deps.appendSession(store.SessionEventData{
		SessionID:     g.sessionID,
		Action:        store.ActionEnd,
		Age:           int(sum.Age),
		MaxStage:      int(sum.MaxStage),
		Operator:      string(sum.Operator),
		Score:         sum.Score,
		CorrectCount:  sum.CorrectCount,
		TotalCount:    sum.TotalCount,
		DurationSecs:  sum.ElapsedSeconds,
		EarnedMinutes: sum.EarnedMinutes,
	})
	g.deps.savePool()
	g.deps.log().Info("Session finished",
		"session", g.sessionID, "score", sum.Score, "accuracy", sum.Accuracy,
		"earned", sum.EarnedMinutes, "pool", sum.TimerPoolValue, "pool_full", sum.PoolFull)

	result := NewResult(g.deps, sum)
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: result}
	}
}

// Back abandons the session and returns home.
func (g *GameScreen) Back() tea.Cmd {
	g.tickGen++
	e := g.deps.Engine
	if !g.done && e.Phase() == session.PhaseInProgress {
		g.deps.appendSession(store.SessionEventData{
			SessionID:    g.sessionID,
			Action:       store.ActionAbandon,
			Age:          int(e.Age()),
			MaxStage:     int(e.MaxStage()),
			Operator:     string(e.Operator()),
			Score:        e.Score(),
			CorrectCount: e.CorrectCount(),
			TotalCount:   e.TotalCount(),
			DurationSecs: session.ElapsedSeconds(e.Elapsed()),
		})
		e.Abandon()
		g.deps.log().Info("Session abandoned", "session", g.sessionID)
	}
	g.done = true
	return func() tea.Msg { return router.PopScreenMsg{} }
}

func (g *GameScreen) tick() tea.Cmd {
	gen := g.tickGen
	return tea.Tick(g.deps.refresh(), func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}

func (g *GameScreen) startFlash(correct bool) tea.Cmd {
	g.flashGen++
	if correct {
		g.flash = flashCorrect
	} else {
		g.flash = flashIncorrect
	}
	gen := g.flashGen
	return tea.Tick(flashDuration, func(time.Time) tea.Msg {
		return flashDoneMsg{gen: gen}
	})
}

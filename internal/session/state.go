package session

import (
	"time"

	"github.com/coder/quartz"

	"github.com/abhisek/mathtime/internal/problemgen"
)

// Phase represents where the engine is in its lifecycle.
type Phase int

const (
	PhaseNotStarted Phase = iota // No session, or abandoned
	PhaseInProgress              // Serving problems
	PhaseFinished                // End() has produced a summary
)

func (p Phase) String() string {
	switch p {
	case PhaseInProgress:
		return "in-progress"
	case PhaseFinished:
		return "finished"
	default:
		return "not-started"
	}
}

// ProblemsPerStage is the number of submitted answers that make up a stage.
const ProblemsPerStage = 5

// Engine owns all game state for one child at the keyboard. It is driven
// synchronously by the UI layer and is not safe for concurrent use.
type Engine struct {
	gen   problemgen.Generator
	pool  *TimerPool
	clock quartz.Clock

	phase    Phase
	age      problemgen.Age
	maxStage problemgen.Stage
	stage    problemgen.Stage
	operator problemgen.Operator

	score        int
	correctCount int
	totalCount   int

	// current is nil before Start and after the final stage boundary.
	current *problemgen.Problem

	startedAt time.Time
	endedAt   time.Time
}

// New creates an Engine. The pool is shared across sessions and is only
// mutated by End. A nil clock uses the real clock.
func New(gen problemgen.Generator, pool *TimerPool, clock quartz.Clock) *Engine {
	if clock == nil {
		clock = quartz.NewReal()
	}
	if pool == nil {
		pool = NewTimerPool(0)
	}
	return &Engine{
		gen:   gen,
		pool:  pool,
		clock: clock,
	}
}

// Phase returns the current lifecycle phase.
func (e *Engine) Phase() Phase { return e.phase }

// Age returns the age bracket of the current or last session.
func (e *Engine) Age() problemgen.Age { return e.age }

// MaxStage returns the stage the session finishes at.
func (e *Engine) MaxStage() problemgen.Stage { return e.maxStage }

// Stage returns the current stage.
func (e *Engine) Stage() problemgen.Stage { return e.stage }

// Operator returns the operator fixed for the session.
func (e *Engine) Operator() problemgen.Operator { return e.operator }

// Score returns the running score.
func (e *Engine) Score() int { return e.score }

// CorrectCount returns the number of correct answers.
func (e *Engine) CorrectCount() int { return e.correctCount }

// TotalCount returns the number of submitted answers.
func (e *Engine) TotalCount() int { return e.totalCount }

// Pool returns the shared timer pool.
func (e *Engine) Pool() *TimerPool { return e.pool }

// CurrentProblem returns the active problem, if any.
func (e *Engine) CurrentProblem() (problemgen.Problem, bool) {
	if e.current == nil {
		return problemgen.Problem{}, false
	}
	return *e.current, true
}

// Elapsed returns the time since Start. It is frozen once the session
// ends and is zero before the first Start.
func (e *Engine) Elapsed() time.Duration {
	switch e.phase {
	case PhaseInProgress:
		return e.clock.Now().Sub(e.startedAt)
	case PhaseFinished:
		return e.endedAt.Sub(e.startedAt)
	default:
		return 0
	}
}

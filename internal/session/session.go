package session

import (
	"fmt"

	"github.com/abhisek/mathtime/internal/problemgen"
)

// Result describes the outcome of a single submitted answer.
type Result struct {
	// Problem is the problem that was answered.
	Problem problemgen.Problem

	// Given is the value the child entered.
	Given int

	// Correct is true when Given matched the precomputed answer.
	Correct bool

	// Points awarded for this answer (0 when wrong).
	Points int

	// Advanced is set when this answer closed a stage and the session
	// moved on to the next one.
	Advanced bool

	// Finished is set when this answer closed the last stage. No further
	// problem is generated; the caller should call End.
	Finished bool
}

// Start resets all counters and generates the first problem.
// age and maxStage must already be validated.
func (e *Engine) Start(age problemgen.Age, maxStage problemgen.Stage, op problemgen.Operator) {
	if !age.Valid() || !maxStage.Valid() {
		panic(fmt.Sprintf("session: start with invalid age %d or max stage %d", age, maxStage))
	}

	e.age = age
	e.maxStage = maxStage
	e.operator = op
	e.stage = problemgen.MinStage
	e.score = 0
	e.correctCount = 0
	e.totalCount = 0
	e.startedAt = e.clock.Now()
	e.endedAt = e.startedAt
	e.phase = PhaseInProgress
	e.nextProblem()
}

// PlayAgain restarts with the same age, max stage and operator.
func (e *Engine) PlayAgain() {
	if !e.age.Valid() {
		panic("session: play again before any session was started")
	}
	e.Start(e.age, e.maxStage, e.operator)
}

// Submit checks value against the active problem and advances the session.
// Every answer counts toward the stage, right or wrong. Calling Submit
// with no active problem is a contract violation and panics.
func (e *Engine) Submit(value int) Result {
	p := e.mustActive("submit")

	res := Result{Problem: p, Given: value}
	if p.Check(value) {
		res.Correct = true
		res.Points = Points(e.stage)
		e.correctCount++
		e.score += res.Points
	}
	e.totalCount++

	if e.totalCount%ProblemsPerStage != 0 {
		e.nextProblem()
		return res
	}

	if e.stage < e.maxStage {
		e.stage++
		e.nextProblem()
		res.Advanced = true
		return res
	}

	e.current = nil
	res.Finished = true
	return res
}

// Retry is the penalty undo: it takes back half a stage's worth of points
// and one answer, then serves a fresh problem at the same stage. All
// counters clamp at zero.
func (e *Engine) Retry() {
	e.mustActive("retry")

	e.score = max(0, e.score-RetryPenalty(e.stage))
	e.correctCount = max(0, e.correctCount-1)
	e.totalCount = max(0, e.totalCount-1)
	e.nextProblem()
}

// End stops the session clock, credits earned minutes to the timer pool
// and returns the summary.
func (e *Engine) End() Summary {
	if e.phase != PhaseInProgress {
		panic(fmt.Sprintf("session: end while %s", e.phase))
	}

	e.endedAt = e.clock.Now()
	e.current = nil
	e.phase = PhaseFinished

	earned := EarnedMinutes(e.score)
	full := e.pool.Add(earned)

	return Summary{
		Age:            e.age,
		MaxStage:       e.maxStage,
		Operator:       e.operator,
		Score:          e.score,
		Accuracy:       Accuracy(e.correctCount, e.totalCount),
		CorrectCount:   e.correctCount,
		TotalCount:     e.totalCount,
		Elapsed:        e.endedAt.Sub(e.startedAt),
		ElapsedSeconds: ElapsedSeconds(e.endedAt.Sub(e.startedAt)),
		EarnedMinutes:  earned,
		TimerPoolValue: e.pool.Minutes(),
		PoolFull:       full,
		RewardEligible: e.score >= RewardThreshold,
	}
}

// Abandon leaves a session without a summary, e.g. when the child goes
// back home mid-game. The timer pool is untouched.
func (e *Engine) Abandon() {
	e.current = nil
	e.phase = PhaseNotStarted
}

func (e *Engine) nextProblem() {
	p := e.gen.Generate(e.age, e.stage, e.operator)
	e.current = &p
}

func (e *Engine) mustActive(op string) problemgen.Problem {
	if e.phase != PhaseInProgress || e.current == nil {
		panic(fmt.Sprintf("session: %s with no active problem (phase %s)", op, e.phase))
	}
	return *e.current
}

package session

import (
	"fmt"
	"time"

	"github.com/abhisek/mathtime/internal/problemgen"
)

// Summary holds the data displayed on the result screen.
type Summary struct {
	Age      problemgen.Age
	MaxStage problemgen.Stage
	Operator problemgen.Operator

	Score          int
	Accuracy       int // percent, rounded
	CorrectCount   int
	TotalCount     int
	Elapsed        time.Duration
	ElapsedSeconds int

	EarnedMinutes  int
	TimerPoolValue int
	PoolFull       bool

	// RewardEligible gates the reward link downstream.
	RewardEligible bool
}

// AccuracyLabel renders accuracy as "60% (3/5)".
func (s Summary) AccuracyLabel() string {
	return fmt.Sprintf("%d%% (%d/%d)", s.Accuracy, s.CorrectCount, s.TotalCount)
}

// Status is the render snapshot the game screen reads after every
// operation.
type Status struct {
	Phase        Phase
	Stage        problemgen.Stage
	MaxStage     problemgen.Stage
	Score        int
	CorrectCount int
	TotalCount   int

	// Progress is the fraction of the current stage answered.
	Progress float64

	// ProblemText is empty when no problem is active.
	ProblemText string
}

// StageLabel returns e.g. "Stage 2".
func (s Status) StageLabel() string {
	return s.Stage.String()
}

// Status returns a snapshot of the engine for rendering.
func (e *Engine) Status() Status {
	st := Status{
		Phase:        e.phase,
		Stage:        e.stage,
		MaxStage:     e.maxStage,
		Score:        e.score,
		CorrectCount: e.correctCount,
		TotalCount:   e.totalCount,
		Progress:     Progress(e.totalCount),
	}
	if e.current != nil {
		st.ProblemText = e.current.Text()
	}
	return st
}

// ElapsedSeconds truncates d to whole seconds.
func ElapsedSeconds(d time.Duration) int {
	if d < 0 {
		return 0
	}
	return int(d / time.Second)
}

// FormatClock renders the running timer as mm:ss:cc.
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	ms := d.Milliseconds()
	return fmt.Sprintf("%02d:%02d:%02d", ms/60000, (ms%60000)/1000, (ms%1000)/10)
}

// FormatDuration renders a finished session's time as mm:ss.
func FormatDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

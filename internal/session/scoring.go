package session

import (
	"math"

	"github.com/abhisek/mathtime/internal/problemgen"
)

// RewardThreshold is the score needed to unlock the reward link.
const RewardThreshold = 50

// PointsPerMinute is the score that converts into one reward minute.
const PointsPerMinute = 50

// Points returns the award for a correct answer at stage. Stages 1-2 are
// worth stage*10; from stage 3 the award is flat (10, 15, 20) and does
// not follow the linear formula.
func Points(stage problemgen.Stage) int {
	switch stage {
	case 3:
		return 10
	case 4:
		return 15
	case 5:
		return 20
	default:
		return int(stage) * 10
	}
}

// RetryPenalty is the score deducted by a retry at stage.
func RetryPenalty(stage problemgen.Stage) int {
	return int(stage) * 10 / 2
}

// Accuracy returns correct/total as a rounded percentage, 0 when nothing
// was answered.
func Accuracy(correct, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(correct) / float64(total) * 100))
}

// EarnedMinutes converts a final score into reward minutes.
func EarnedMinutes(score int) int {
	if score <= 0 {
		return 0
	}
	return score / PointsPerMinute
}

// Progress returns how far through the current stage total is, in [0, 1).
func Progress(total int) float64 {
	return float64(total%ProblemsPerStage) / ProblemsPerStage
}

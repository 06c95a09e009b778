package problemgen

import (
	"fmt"
	"strconv"
	"strings"
)

// Age is the child's age bracket. It selects which difficulty table
// governs operand ranges.
type Age int

const (
	Age5 Age = 5
	Age6 Age = 6
	Age7 Age = 7
	Age8 Age = 8
)

// Ages lists the supported age brackets in display order.
var Ages = []Age{Age5, Age6, Age7, Age8}

// Valid reports whether a is one of the supported brackets.
func (a Age) Valid() bool {
	return a >= Age5 && a <= Age8
}

// String returns the label shown on the landing screen.
func (a Age) String() string {
	return fmt.Sprintf("%d years", int(a))
}

// ParseAge converts user input to an Age.
func ParseAge(s string) (Age, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid age %q: %w", s, err)
	}
	a := Age(n)
	if !a.Valid() {
		return 0, fmt.Errorf("invalid age %d: must be 5-8", n)
	}
	return a, nil
}

// Stage is a difficulty tier within a session.
type Stage int

const (
	MinStage Stage = 1
	MaxStage Stage = 5
)

// Stages lists every stage in order.
var Stages = []Stage{1, 2, 3, 4, 5}

// Valid reports whether s is within 1-5.
func (s Stage) Valid() bool {
	return s >= MinStage && s <= MaxStage
}

// String returns the stage label, e.g. "Stage 3".
func (s Stage) String() string {
	return fmt.Sprintf("Stage %d", int(s))
}

// ParseStage converts user input to a Stage.
func ParseStage(v string) (Stage, error) {
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid stage %q: %w", v, err)
	}
	s := Stage(n)
	if !s.Valid() {
		return 0, fmt.Errorf("invalid stage %d: must be 1-5", n)
	}
	return s, nil
}

// Operator is the arithmetic operation applied for a whole session.
// The value is the symbol persisted in the preference store.
type Operator string

const (
	OpAdd      Operator = "+"
	OpSubtract Operator = "-"
)

// Operators lists the selectable operators.
var Operators = []Operator{OpAdd, OpSubtract}

// Valid reports whether op is a known operator.
func (op Operator) Valid() bool {
	return op == OpAdd || op == OpSubtract
}

// ParseOperator accepts a symbol or a name such as "add" or "subtraction".
func ParseOperator(s string) (Operator, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "+", "add", "addition", "plus":
		return OpAdd, nil
	case "-", "sub", "subtract", "subtraction", "minus":
		return OpSubtract, nil
	}
	return "", fmt.Errorf("invalid operator %q: must be + or -", s)
}

// DisplayName returns the label used on the settings screen.
func (op Operator) DisplayName() string {
	switch op {
	case OpSubtract:
		return "Subtraction"
	default:
		return "Addition"
	}
}

// Problem is a single generated arithmetic problem. The answer is
// precomputed so checking is a pure comparison.
type Problem struct {
	Operand1 int
	Operand2 int
	Operator Operator
	Answer   int
}

// Text renders the problem the way it is shown to the child.
func (p Problem) Text() string {
	return fmt.Sprintf("%d %s %d = ?", p.Operand1, p.Operator, p.Operand2)
}

// Check reports whether value is the correct answer.
func (p Problem) Check(value int) bool {
	return value == p.Answer
}

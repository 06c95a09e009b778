package problemgen

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// MaxAnswerDigits is the longest answer the keypad accepts.
const MaxAnswerDigits = 3

// ErrEmptyAnswer is returned by ParseAnswer for blank input.
var ErrEmptyAnswer = errors.New("empty answer")

// ParseAnswer normalizes the child's typed answer into an integer.
//
// Normalization rules:
//   - Whitespace is trimmed
//   - Leading zeros are ignored ("007" is 7)
//   - Only non-negative whole numbers are accepted
func ParseAnswer(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrEmptyAnswer
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("invalid answer %q: digits only", s)
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid answer %q: %w", s, err)
	}
	return n, nil
}

// CheckAnswer parses input and compares it against the problem.
// Unparseable input is simply wrong.
func CheckAnswer(input string, p Problem) bool {
	n, err := ParseAnswer(input)
	if err != nil {
		return false
	}
	return p.Check(n)
}

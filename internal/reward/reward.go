// Package reward builds the video search link a child unlocks at the end
// of a session.
package reward

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/abhisek/mathtime/internal/session"
)

// DefaultSearchURL is the search endpoint the label is appended to.
const DefaultSearchURL = "https://www.youtube.com/results?search_query="

var (
	// ErrNotEligible means the session scored below session.RewardThreshold.
	ErrNotEligible = errors.New("score too low for a reward")

	// ErrNoChoice means no video label was selected.
	ErrNoChoice = errors.New("no video selected")
)

// SearchURL appends the query-escaped label to base.
func SearchURL(base, label string) string {
	if base == "" {
		base = DefaultSearchURL
	}
	return base + url.QueryEscape(label)
}

// Gate returns the reward link for selected when the summary allows it.
func Gate(base string, sum session.Summary, selected string) (string, error) {
	if !sum.RewardEligible {
		return "", fmt.Errorf("%w: %d < %d", ErrNotEligible, sum.Score, session.RewardThreshold)
	}
	selected = strings.TrimSpace(selected)
	if selected == "" {
		return "", ErrNoChoice
	}
	return SearchURL(base, selected), nil
}

// Copier writes text to the system clipboard.
type Copier interface {
	Copy(text string) error
}

// SystemClipboard copies through the OS clipboard.
type SystemClipboard struct{}

func (SystemClipboard) Copy(text string) error {
	if clipboard.Unsupported {
		return errors.New("clipboard unsupported on this system")
	}
	return clipboard.WriteAll(text)
}

package settings

import (
	"strings"

	"github.com/abhisek/mathtime/internal/problemgen"
)

// Pool is the slice of the timer pool the settings page touches.
type Pool interface {
	Minutes() int
	Reset()
}

// Draft holds unsaved edits made on the settings page.
type Draft struct {
	saved    Preferences
	defaults []string
	pool     Pool

	operator problemgen.Operator
	videos   [VideoSlots]string
}

// NewDraft starts editing from the saved preferences.
func NewDraft(saved Preferences, defaults []string, pool Pool) *Draft {
	if len(defaults) == 0 {
		defaults = DefaultVideos
	}
	d := &Draft{
		saved:    saved,
		defaults: defaults,
		pool:     pool,
		operator: saved.Operator,
	}
	if !d.operator.Valid() {
		d.operator = problemgen.OpAdd
	}
	for i := 0; i < VideoSlots && i < len(saved.VideoChoices); i++ {
		d.videos[i] = saved.VideoChoices[i]
	}
	return d
}

// Operator returns the staged operator.
func (d *Draft) Operator() problemgen.Operator { return d.operator }

// VideoChoice returns the label in slot i as currently typed.
func (d *Draft) VideoChoice(i int) string {
	if i < 0 || i >= VideoSlots {
		return ""
	}
	return d.videos[i]
}

// StageOperator selects op without saving. It reports whether the
// operator-change warning should be visible. Choosing an operator other
// than the saved one empties the timer pool immediately, even if the draft
// is later discarded.
func (d *Draft) StageOperator(op problemgen.Operator) (warn bool, err error) {
	if !op.Valid() {
		return false, ErrInvalidOperator
	}
	d.operator = op
	if op == d.saved.Operator {
		return false, nil
	}
	if d.pool != nil {
		d.pool.Reset()
	}
	return true, nil
}

// SetVideoChoice updates slot i. Out-of-range slots are ignored.
func (d *Draft) SetVideoChoice(i int, label string) {
	if i < 0 || i >= VideoSlots {
		return
	}
	d.videos[i] = label
}

// Commit returns the preferences to save. Labels are trimmed and blank
// slots take the default label for that slot.
func (d *Draft) Commit() Preferences {
	p := Preferences{Operator: d.operator}
	for i, label := range d.videos {
		label = strings.TrimSpace(label)
		if label == "" && i < len(d.defaults) {
			label = d.defaults[i]
		}
		if label != "" {
			p.VideoChoices = append(p.VideoChoices, label)
		}
	}
	if d.pool != nil {
		p.TimerPool = d.pool.Minutes()
	} else {
		p.TimerPool = d.saved.TimerPool
	}
	return p
}

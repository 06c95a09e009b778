// Package settings persists the player's preferences: the operator used
// for new sessions, the three reward video labels and, optionally, the
// timer pool.
package settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/abhisek/mathtime/internal/problemgen"
)

// Preference keys.
const (
	KeyOperator     = "currentOperator"
	KeyVideoChoices = "customVideoChoices"
	KeyTimerPool    = "timerPool"
)

// VideoSlots is the number of video labels the settings page edits.
const VideoSlots = 3

// ErrInvalidOperator is returned when saving an operator other than + or -.
var ErrInvalidOperator = errors.New("invalid operator")

// DefaultVideos are used when no labels are configured.
var DefaultVideos = []string{"Pororo", "Numberblocks", "Super Simple Songs"}

// Preferences is the full persisted preference set.
type Preferences struct {
	Operator     problemgen.Operator
	VideoChoices []string

	// TimerPool is only loaded and saved when pool persistence is enabled.
	TimerPool int
}

// Store loads and saves preferences.
type Store interface {
	Load(ctx context.Context) (Preferences, error)
	Save(ctx context.Context, p Preferences) error
}

// KV is the string key/value backend. store.PreferenceRepo satisfies it.
type KV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// Options controls defaults and pool persistence.
type Options struct {
	DefaultVideos    []string
	PersistTimerPool bool
}

type kvStore struct {
	kv   KV
	opts Options
}

// NewStore returns a Store backed by kv.
func NewStore(kv KV, opts Options) Store {
	if len(opts.DefaultVideos) == 0 {
		opts.DefaultVideos = DefaultVideos
	}
	return &kvStore{kv: kv, opts: opts}
}

// Defaults returns the preferences used when nothing has been saved.
func (o Options) Defaults() Preferences {
	videos := o.DefaultVideos
	if len(videos) == 0 {
		videos = DefaultVideos
	}
	return Preferences{
		Operator:     problemgen.OpAdd,
		VideoChoices: append([]string(nil), videos...),
	}
}

// Load reads preferences. Missing or unreadable values fall back to the
// defaults; only backend failures are returned as errors.
func (s *kvStore) Load(ctx context.Context) (Preferences, error) {
	p := s.opts.Defaults()

	if v, ok, err := s.kv.Get(ctx, KeyOperator); err != nil {
		return p, fmt.Errorf("load operator: %w", err)
	} else if ok && problemgen.Operator(v).Valid() {
		p.Operator = problemgen.Operator(v)
	}

	if v, ok, err := s.kv.Get(ctx, KeyVideoChoices); err != nil {
		return p, fmt.Errorf("load video choices: %w", err)
	} else if ok {
		var choices []string
		if err := json.Unmarshal([]byte(v), &choices); err == nil && len(choices) > 0 {
			p.VideoChoices = choices
		}
	}

	if s.opts.PersistTimerPool {
		if v, ok, err := s.kv.Get(ctx, KeyTimerPool); err != nil {
			return p, fmt.Errorf("load timer pool: %w", err)
		} else if ok {
			if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && n >= 0 {
				p.TimerPool = n
			}
		}
	}

	return p, nil
}

func (s *kvStore) Save(ctx context.Context, p Preferences) error {
	if !p.Operator.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidOperator, p.Operator)
	}
	if err := s.kv.Set(ctx, KeyOperator, string(p.Operator)); err != nil {
		return fmt.Errorf("save operator: %w", err)
	}

	data, err := json.Marshal(p.VideoChoices)
	if err != nil {
		return fmt.Errorf("encode video choices: %w", err)
	}
	if err := s.kv.Set(ctx, KeyVideoChoices, string(data)); err != nil {
		return fmt.Errorf("save video choices: %w", err)
	}

	if s.opts.PersistTimerPool {
		if err := s.kv.Set(ctx, KeyTimerPool, strconv.Itoa(p.TimerPool)); err != nil {
			return fmt.Errorf("save timer pool: %w", err)
		}
	}
	return nil
}

package settings

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathtime/internal/problemgen"
	"github.com/abhisek/mathtime/internal/router"
	"github.com/abhisek/mathtime/internal/session"
	"github.com/abhisek/mathtime/internal/settings"
)

type memStore struct {
	saved []settings.Preferences
	err   error
}

func (m *memStore) Load(context.Context) (settings.Preferences, error) {
	return settings.Options{}.Defaults(), nil
}

func (m *memStore) Save(_ context.Context, p settings.Preferences) error {
	if m.err != nil {
		return m.err
	}
	m.saved = append(m.saved, p)
	return nil
}

func newTestScreen(pool int) (*SettingsScreen, *memStore, *settings.Preferences, *session.TimerPool) {
	store := &memStore{}
	prefs := settings.Options{}.Defaults()
	p := session.NewTimerPool(pool)
	s := New(Deps{Store: store, Prefs: &prefs, Pool: p})
	return s, store, &prefs, p
}

func press(s *SettingsScreen, code rune) tea.Cmd {
	_, cmd := s.Update(tea.KeyPressMsg{Code: code})
	return cmd
}

// run feeds cmd's message back into the screen and returns the follow-up.
func run(t *testing.T, s *SettingsScreen, cmd tea.Cmd) tea.Msg {
	t.Helper()
	require.NotNil(t, cmd)
	msg := cmd()
	_, next := s.Update(msg)
	if next == nil {
		return msg
	}
	return next()
}

func TestSettingsScreen_StageOperatorWarnsAndEmptiesPool(t *testing.T) {
	s, _, _, pool := newTestScreen(12)

	press(s, tea.KeyRight)
	run(t, s, press(s, tea.KeyEnter))

	assert.True(t, s.Warning())
	assert.Equal(t, problemgen.OpSubtract, s.draft.Operator())
	assert.Equal(t, 0, pool.Minutes(), "operator change empties the pool before save")
	assert.Contains(t, s.View(80, 40), "empties the timer pool")
}

func TestSettingsScreen_SameOperatorNoWarning(t *testing.T) {
	s, _, _, pool := newTestScreen(12)

	run(t, s, press(s, tea.KeyEnter))

	assert.False(t, s.Warning())
	assert.Equal(t, 12, pool.Minutes())
}

func TestSettingsScreen_SaveCommitsDraft(t *testing.T) {
	s, store, prefs, _ := newTestScreen(0)

	press(s, tea.KeyDown)
	// Clear slot 1 and type a new label.
	s.inputs[0].Reset()
	for _, r := range "Bluey" {
		s.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	press(s, tea.KeyDown)
	s.inputs[1].Reset()
	s.Update(tea.KeyPressMsg{Code: ' ', Text: " "})

	// Jump to the actions row and hit SAVE.
	press(s, tea.KeyDown)
	press(s, tea.KeyDown)
	require.Equal(t, focusActions, s.focus)

	msg := run(t, s, press(s, tea.KeyEnter))
	_, ok := msg.(router.PopScreenMsg)
	assert.True(t, ok, "save returns to the landing screen")

	require.Len(t, store.saved, 1)
	got := store.saved[0].VideoChoices
	assert.Equal(t, []string{"Bluey", settings.DefaultVideos[1], settings.DefaultVideos[2]}, got)
	assert.Equal(t, got, prefs.VideoChoices)
}

func TestSettingsScreen_SaveFailureStays(t *testing.T) {
	s, store, prefs, _ := newTestScreen(0)
	store.err = errors.New("readonly database")
	before := *prefs

	cmd := s.save()

	assert.Nil(t, cmd)
	assert.Equal(t, before, *prefs)
	assert.True(t, strings.Contains(s.View(80, 40), "readonly database"))
}

func TestSettingsScreen_BackDiscardsEdits(t *testing.T) {
	s, store, prefs, _ := newTestScreen(0)

	press(s, tea.KeyDown)
	for _, r := range "X" {
		s.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	for s.focus != focusActions {
		press(s, tea.KeyDown)
	}
	press(s, tea.KeyRight)

	cmd := press(s, tea.KeyEnter)
	require.NotNil(t, cmd)
	_, ok := cmd().(router.PopScreenMsg)
	assert.True(t, ok)
	assert.Empty(t, store.saved)
	assert.Equal(t, settings.DefaultVideos, prefs.VideoChoices)
}

func TestSettingsScreen_FocusBounds(t *testing.T) {
	s, _, _, _ := newTestScreen(0)

	press(s, tea.KeyUp)
	assert.Equal(t, focusOperator, s.focus)

	for i := 0; i < 10; i++ {
		press(s, tea.KeyDown)
	}
	assert.Equal(t, focusActions, s.focus)
	for _, in := range s.inputs {
		assert.False(t, in.Focused())
	}
}

func TestSettingsScreen_EnterInInputMovesOn(t *testing.T) {
	s, _, _, _ := newTestScreen(0)

	press(s, tea.KeyDown)
	require.True(t, s.inputs[0].Focused())
	press(s, tea.KeyEnter)

	assert.Equal(t, 2, s.focus)
	assert.False(t, s.inputs[0].Focused())
	assert.True(t, s.inputs[1].Focused())
}

package game

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/abhisek/mathtime/internal/logging"
	"github.com/abhisek/mathtime/internal/reward"
	"github.com/abhisek/mathtime/internal/session"
	"github.com/abhisek/mathtime/internal/settings"
	"github.com/abhisek/mathtime/internal/store"
)

// DefaultRefreshInterval is how often the running clock is redrawn.
const DefaultRefreshInterval = 100 * time.Millisecond

// Deps are the collaborators shared by the game and result screens.
// Events, Settings and Clipboard may be nil.
type Deps struct {
	Engine    *session.Engine
	Events    store.EventRepo
	Settings  settings.Store
	Prefs     *settings.Preferences
	Logger    *log.Logger
	Clipboard reward.Copier

	SearchURL       string
	RefreshInterval time.Duration
	PersistPool     bool
}

func (d Deps) log() *log.Logger {
	if d.Logger == nil {
		return logging.Discard()
	}
	return d.Logger
}

func (d Deps) refresh() time.Duration {
	if d.RefreshInterval <= 0 {
		return DefaultRefreshInterval
	}
	return d.RefreshInterval
}

func (d Deps) prefs() settings.Preferences {
	if d.Prefs == nil {
		return settings.Options{}.Defaults()
	}
	return *d.Prefs
}

func (d Deps) appendSession(data store.SessionEventData) {
	if d.Events == nil {
		return
	}
	if err := d.Events.AppendSessionEvent(context.Background(), data); err != nil {
		d.log().Warn("Failed to record session event", "action", data.Action, "err", err)
	}
}

func (d Deps) appendAnswer(data store.AnswerEventData) {
	if d.Events == nil {
		return
	}
	if err := d.Events.AppendAnswerEvent(context.Background(), data); err != nil {
		d.log().Warn("Failed to record answer event", "err", err)
	}
}

// savePool writes the pool back to the preference store when pool
// persistence is enabled.
func (d Deps) savePool() {
	if !d.PersistPool || d.Settings == nil {
		return
	}
	p := d.prefs()
	p.TimerPool = d.Engine.Pool().Minutes()
	if err := d.Settings.Save(context.Background(), p); err != nil {
		d.log().Warn("Failed to save timer pool", "err", err)
		return
	}
	if d.Prefs != nil {
		d.Prefs.TimerPool = p.TimerPool
	}
}

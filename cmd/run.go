package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathtime/internal/app"
	"github.com/abhisek/mathtime/internal/logging"
	"github.com/abhisek/mathtime/internal/problemgen"
	"github.com/abhisek/mathtime/internal/reward"
	"github.com/abhisek/mathtime/internal/session"
)

// runApp opens the store, builds dependencies, and launches the TUI. A
// valid age and stage start a game straight away.
func runApp(cmd *cobra.Command, age problemgen.Age, stage problemgen.Stage) error {
	ctx := cmd.Context()

	st, cfg, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	logger, closer, err := logging.OpenFile(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer closer.Close()

	prefStore := newSettingsStore(st, cfg)
	prefs, err := prefStore.Load(ctx)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	logger.Info("Starting mathtime", "version", version, "op", string(prefs.Operator), "pool", prefs.TimerPool)

	return app.Run(app.Options{
		Engine:     session.New(problemgen.New(), session.NewTimerPool(prefs.TimerPool), nil),
		Events:     st.EventRepo(),
		Settings:   prefStore,
		Prefs:      prefs,
		Logger:     logger,
		Clipboard:  reward.SystemClipboard{},
		Config:     cfg,
		StartAge:   age,
		StartStage: stage,
	})
}

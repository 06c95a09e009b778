package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathtime/internal/config"
	"github.com/abhisek/mathtime/internal/problemgen"
	"github.com/abhisek/mathtime/internal/session"
	"github.com/abhisek/mathtime/internal/settings"
	"github.com/abhisek/mathtime/internal/store"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change saved preferences",
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the saved preferences",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, cfg, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		prefs, err := newSettingsStore(st, cfg).Load(cmd.Context())
		if err != nil {
			return fmt.Errorf("load settings: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Operator:    %s (%s)\n", prefs.Operator, prefs.Operator.DisplayName())
		for i, label := range prefs.VideoChoices {
			fmt.Fprintf(out, "Video %d:     %s\n", i+1, label)
		}
		if cfg.Reward.PersistTimerPool {
			fmt.Fprintf(out, "Timer pool:  %d min\n", prefs.TimerPool)
		} else {
			fmt.Fprintln(out, "Timer pool:  not saved between runs")
		}
		return nil
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Change a preference",
}

var settingsSetOperatorCmd = &cobra.Command{
	Use:   "operator <+|->",
	Short: "Set the operator used for new games",
	Long: "Set the operator used for new games. Switching operators empties the\n" +
		"timer pool, the same as on the settings screen.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		op, err := problemgen.ParseOperator(args[0])
		if err != nil {
			return err
		}
		return editSettings(cmd, func(d *settings.Draft) error {
			warn, err := d.StageOperator(op)
			if err != nil {
				return err
			}
			if warn {
				fmt.Fprintln(cmd.OutOrStdout(), "Operator changed; the timer pool has been emptied.")
			}
			return nil
		})
	},
}

var settingsSetVideosCmd = &cobra.Command{
	Use:   "videos <label>...",
	Short: "Set up to three reward video labels",
	Long: "Set up to three reward video labels. Missing or blank labels fall back\n" +
		"to the defaults for their slot.",
	Args: cobra.RangeArgs(0, settings.VideoSlots),
	RunE: func(cmd *cobra.Command, args []string) error {
		return editSettings(cmd, func(d *settings.Draft) error {
			for i := 0; i < settings.VideoSlots; i++ {
				label := ""
				if i < len(args) {
					label = args[i]
				}
				d.SetVideoChoice(i, label)
			}
			return nil
		})
	},
}

func init() {
	settingsSetCmd.AddCommand(settingsSetOperatorCmd)
	settingsSetCmd.AddCommand(settingsSetVideosCmd)
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
}

func newSettingsStore(st *store.Store, cfg config.Config) settings.Store {
	return settings.NewStore(st.PreferenceRepo(), settings.Options{
		DefaultVideos:    cfg.Reward.DefaultVideos,
		PersistTimerPool: cfg.Reward.PersistTimerPool,
	})
}

// editSettings loads the saved preferences into a draft, applies edit and
// saves the result.
func editSettings(cmd *cobra.Command, edit func(*settings.Draft) error) error {
	st, cfg, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	prefStore := newSettingsStore(st, cfg)
	prefs, err := prefStore.Load(cmd.Context())
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	draft := settings.NewDraft(prefs, cfg.Reward.DefaultVideos, session.NewTimerPool(prefs.TimerPool))
	if err := edit(draft); err != nil {
		return err
	}

	saved := draft.Commit()
	if err := prefStore.Save(cmd.Context(), saved); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Saved: %s, videos %s\n",
		saved.Operator.DisplayName(), strings.Join(saved.VideoChoices, ", "))
	return nil
}

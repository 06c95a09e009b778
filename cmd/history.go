package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathtime/internal/session"
	"github.com/abhisek/mathtime/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent games",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		st, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		records, err := st.EventRepo().RecentSessions(cmd.Context(), limit)
		if err != nil {
			return fmt.Errorf("query sessions: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(records) == 0 {
			fmt.Fprintln(out, "No games played yet.")
			return nil
		}

		fmt.Fprintf(out, "%-19s  %-3s  %-5s  %-2s  %6s  %-10s  %-5s  %6s  %s\n",
			"Time", "Age", "Stage", "Op", "Score", "Accuracy", "Time", "Earned", "Status")
		fmt.Fprintln(out, strings.Repeat("─", 84))

		for _, r := range records {
			status := "done"
			if r.Action == store.ActionAbandon {
				status = "quit"
			}
			fmt.Fprintf(out, "%-19s  %-3d  %-5d  %-2s  %6d  %-10s  %-5s  %6s  %s\n",
				r.Timestamp.Local().Format("2006-01-02 15:04:05"),
				r.Age,
				r.MaxStage,
				r.Operator,
				r.Score,
				accuracyLabel(r.CorrectCount, r.TotalCount),
				session.FormatDuration(r.DurationSecs),
				fmt.Sprintf("%dm", r.EarnedMinutes),
				status,
			)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "Number of games to show")
}

func accuracyLabel(correct, total int) string {
	return fmt.Sprintf("%d%% (%d/%d)", session.Accuracy(correct, total), correct, total)
}

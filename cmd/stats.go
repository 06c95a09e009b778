package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show totals across all games",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		t, err := st.EventRepo().Totals(cmd.Context())
		if err != nil {
			return fmt.Errorf("query totals: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Games finished:  %d\n", t.Sessions)
		fmt.Fprintf(out, "Games quit:      %d\n", t.Abandoned)
		fmt.Fprintf(out, "Best score:      %d\n", t.BestScore)
		fmt.Fprintf(out, "Minutes earned:  %d\n", t.MinutesEarned)
		fmt.Fprintf(out, "Answers:         %d\n", t.Answers)
		fmt.Fprintf(out, "Accuracy:        %s\n", accuracyLabel(t.Correct, t.Answers))
		fmt.Fprintf(out, "Retries:         %d\n", t.Retries)
		return nil
	},
}

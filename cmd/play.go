package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathtime/internal/problemgen"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a game without the landing screen",
	Example: "  mathtime play --age 6 --stage 3",
	RunE: func(cmd *cobra.Command, args []string) error {
		ageFlag, _ := cmd.Flags().GetString("age")
		stageFlag, _ := cmd.Flags().GetString("stage")

		age, err := problemgen.ParseAge(ageFlag)
		if err != nil {
			return fmt.Errorf("--age: %w", err)
		}
		stage, err := problemgen.ParseStage(stageFlag)
		if err != nil {
			return fmt.Errorf("--stage: %w", err)
		}
		return runApp(cmd, age, stage)
	},
}

func init() {
	playCmd.Flags().String("age", "5", "Child's age (5-8)")
	playCmd.Flags().String("stage", "1", "Stage to finish at (1-5)")
}

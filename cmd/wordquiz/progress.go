package main

import (
	"github.com/spf13/cobra"

	"github.com/at-ishikawa/wordquiz/internal/cli"
)

func newProgressCommand() *cobra.Command {
	var (
		learner *learnerFlag
		days    int
	)
	command := &cobra.Command{
		Use:   "progress",
		Short: "Show daily attempts, accuracy and the current streak",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer func() {
				_ = a.Close()
			}()

			if days <= 0 {
				days = a.Config.Quiz.ProgressDays
			}
			progress, err := a.Quiz.Progress(cmd.Context(), learner.id, days, a.Location)
			if err != nil {
				return err
			}
			return cli.PrintProgress(cmd.OutOrStdout(), progress)
		},
	}
	learner = addLearnerFlag(command)
	command.Flags().IntVar(&days, "days", 0, "number of days to report, today included (default: quiz.progress_days)")
	return command
}

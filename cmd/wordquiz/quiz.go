package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/wordquiz/internal/cli"
)

func newQuizCommand() *cobra.Command {
	var learner *learnerFlag
	command := &cobra.Command{
		Use:   "quiz",
		Short: "Interactive quiz: guess the word from its meaning and an example",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer func() {
				_ = a.Close()
			}()

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintln(out, "Type the word for each meaning. \"?\" shows a hint, an empty line skips, \"quit\" exits.")
			_, _ = fmt.Fprintln(out)

			base := cli.NewInteractiveQuizCLI(cmd.InOrStdin(), out)
			session := cli.NewQuizSession(base, learner.id, a.Quiz)
			err = base.Run(cmd.Context(), session)
			session.PrintSummary()
			return err
		},
	}
	learner = addLearnerFlag(command)
	return command
}

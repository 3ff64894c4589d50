package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/at-ishikawa/wordquiz/internal/statistics"
)

// PrintProgress writes a progress report as a table, newest day first.
func PrintProgress(w io.Writer, progress statistics.ProgressResult) error {
	bold := color.New(color.Bold)
	aggregate := progress.Aggregate
	if _, err := bold.Fprintf(w, "Attempts: %d, correct: %d (%.0f%%), words: %d, streak: %d day(s)\n\n",
		aggregate.Attempts,
		aggregate.Correct,
		aggregate.Accuracy*100,
		aggregate.UniqueWords,
		aggregate.StreakDays,
	); err != nil {
		return fmt.Errorf("write summary > %w", err)
	}
	if len(progress.Days) == 0 {
		_, err := fmt.Fprintln(w, "No attempts in this period.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	_, _ = fmt.Fprintln(tw, "Date\tAttempts\tCorrect\tAccuracy\tWords\t")
	for _, day := range progress.Days {
		_, _ = fmt.Fprintf(tw, "%s\t%d\t%d\t%.0f%%\t%d\t\n",
			day.Date, day.Attempts, day.Correct, day.Accuracy*100, day.UniqueWords)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("tabwriter.Flush() > %w", err)
	}
	return nil
}

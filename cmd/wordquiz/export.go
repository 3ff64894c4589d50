package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/wordquiz/internal/assets"
	"github.com/at-ishikawa/wordquiz/internal/export"
)

func newExportCommand() *cobra.Command {
	var (
		learner *learnerFlag
		limit   int
		withPDF bool
	)
	command := &cobra.Command{
		Use:   "export",
		Short: "Write a study sheet of the hardest words",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer func() {
				_ = a.Close()
			}()

			tmpl, err := assets.ParseStudySheetTemplate(a.Config.Templates.StudySheetTemplate)
			if err != nil {
				return err
			}
			exporter := export.NewStudySheetExporter(a.Quiz, tmpl, a.Config.Outputs.StudySheetDirectory)
			result, err := exporter.Export(cmd.Context(), learner.id, limit, withPDF)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "Wrote %d word(s) to %s\n", result.Words, result.MarkdownPath)
			if result.PDFPath != "" {
				_, _ = fmt.Fprintf(out, "PDF: %s\n", result.PDFPath)
			}
			return nil
		},
	}
	learner = addLearnerFlag(command)
	command.Flags().IntVar(&limit, "limit", 30, "maximum number of words, 0 for all")
	command.Flags().BoolVar(&withPDF, "pdf", false, "also render the sheet as PDF")
	return command
}

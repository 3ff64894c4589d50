package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/wordquiz/internal/cli"
	"github.com/at-ishikawa/wordquiz/internal/vocabulary"
)

func newWordCommand() *cobra.Command {
	wordCommand := &cobra.Command{
		Use:   "word",
		Short: "Manage the word catalog",
	}
	wordCommand.AddCommand(newWordAddCommand())
	wordCommand.AddCommand(newWordImportCommand())
	return wordCommand
}

func newWordAddCommand() *cobra.Command {
	var (
		learner *learnerFlag
		level   vocabulary.Level
	)
	command := &cobra.Command{
		Use:   "add <word>",
		Short: "Draft a custom word with OpenAI and add it after confirmation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cfg.OpenAI.APIKey == "" {
				return errors.New("OPENAI_API_KEY environment variable is required")
			}
			a, err := newApp(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer func() {
				_ = a.Close()
			}()

			base := cli.NewInteractiveQuizCLI(cmd.InOrStdin(), cmd.OutOrStdout())
			_, err = cli.NewWordAddCLI(base, learner.id, a.Catalog).WithLevel(level).Add(cmd.Context(), args[0])
			return err
		},
	}
	learner = addLearnerFlag(command)
	command.Flags().Var(&level, "level", "override the generated CEFR level (A1-C2)")
	return command
}

func newWordImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.yml>",
		Short: "Import catalog words from a YAML file, skipping existing ones",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			words, err := vocabulary.LoadYAML(args[0])
			if err != nil {
				return err
			}

			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer func() {
				_ = a.Close()
			}()

			added, err := a.Catalog.Import(cmd.Context(), words)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Imported %d of %d word(s)\n", added, len(words))
			return err
		},
	}
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/wordquiz/internal/database"
	"github.com/at-ishikawa/wordquiz/schemas"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the embedded database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			db, err := database.Open(cfg.Database)
			if err != nil {
				return fmt.Errorf("database.Open() > %w", err)
			}
			defer func() {
				_ = db.Close()
			}()

			applied, err := database.Migrate(cmd.Context(), db, schemas.Migrations, "migrations")
			if err != nil {
				return fmt.Errorf("database.Migrate() > %w", err)
			}
			out := cmd.OutOrStdout()
			if len(applied) == 0 {
				_, _ = fmt.Fprintln(out, "The database is up to date.")
				return nil
			}
			for _, name := range applied {
				_, _ = fmt.Fprintf(out, "Applied %s\n", name)
			}
			return nil
		},
	}
}

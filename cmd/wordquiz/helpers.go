package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/at-ishikawa/wordquiz/internal/app"
	"github.com/at-ishikawa/wordquiz/internal/config"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	cfg, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// openApp loads the configuration and connects to the configured storage.
func openApp(ctx context.Context) (*app.App, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return newApp(ctx, cfg)
}

func newApp(ctx context.Context, cfg *config.Config) (*app.App, error) {
	a, err := app.New(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("app.New() > %w", err)
	}
	return a, nil
}

// learnerFlag is a pflag.Value holding a learner UUID.
type learnerFlag struct {
	id uuid.UUID
}

func (f *learnerFlag) Set(s string) error {
	id, err := uuid.Parse(s)
	if err != nil {
		return fmt.Errorf("invalid learner ID %q: %w", s, err)
	}
	if id == uuid.Nil {
		return fmt.Errorf("learner ID must not be the nil UUID")
	}
	f.id = id
	return nil
}

func (f *learnerFlag) String() string {
	if f.id == uuid.Nil {
		return ""
	}
	return f.id.String()
}

func (f *learnerFlag) Type() string {
	return "uuid"
}

func addLearnerFlag(cmd *cobra.Command) *learnerFlag {
	flag := &learnerFlag{}
	cmd.Flags().Var(flag, "learner", "learner ID (UUID)")
	_ = cmd.MarkFlagRequired("learner")
	return flag
}

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/wordquiz/internal/auth"
)

func newTokenCommand() *cobra.Command {
	var learner *learnerFlag
	command := &cobra.Command{
		Use:   "token",
		Short: "Sign a bearer token for a learner with the configured secret",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			authenticator := auth.NewAuthenticator(
				cfg.Auth.JWTSecret,
				cfg.Auth.Issuer,
				time.Duration(cfg.Auth.TokenTTLHours)*time.Hour,
			)
			token, err := authenticator.Issue(learner.id)
			if err != nil {
				return fmt.Errorf("authenticator.Issue() > %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}
	learner = addLearnerFlag(command)
	return command
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/loopback-backend/internal/auth"
	"github.com/heartmarshall/loopback-backend/internal/config"
)

// newTokenCmd mints an access token for local development and smoke tests.
// Production tokens come from the identity provider.
func newTokenCmd(load func() (*config.Config, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "token <user-id>",
		Short: "Print a signed access token for a user id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			m := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTTL)
			tok, err := m.GenerateAccessToken(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tok)
			return nil
		},
	}
}

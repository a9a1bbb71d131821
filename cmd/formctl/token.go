package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/quickforms/internal/auth"
)

func newTokenCmd(c *cli) *cobra.Command {
	var subject string

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint an owner bearer token",
		Long:  "Signs a token that unlocks response listing and export. Requires AUTH_JWT_SECRET.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !c.cfg.Auth.Enabled() {
				return errors.New("auth is disabled: set AUTH_JWT_SECRET")
			}

			tokens := auth.NewOwnerTokens(c.cfg.Auth.JWTSecret, c.cfg.Auth.JWTIssuer, c.cfg.Auth.TokenTTL)
			token, err := tokens.Generate(subject)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().StringVar(&subject, "subject", "owner", "token subject identifying the owner")
	return cmd
}

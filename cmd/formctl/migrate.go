package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/quickforms/internal/adapter/postgres"
)

func newMigrateCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			results, err := postgres.Migrate(cmd.Context(), c.cfg.Database.DSN())
			if err != nil {
				return err
			}

			for _, res := range results {
				c.log.InfoContext(cmd.Context(), "migration applied",
					slog.Int64("version", res.Source.Version),
					slog.Duration("duration", res.Duration),
				)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "applied %d migration(s)\n", len(results))
			return nil
		},
	}
}

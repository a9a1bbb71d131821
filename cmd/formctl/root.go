package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/quickforms/internal/app"
	"github.com/heartmarshall/quickforms/internal/config"
)

// cli carries state shared by all subcommands.
type cli struct {
	configPath string
	cfg        *config.Config
	log        *slog.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:          "formctl",
		Short:        "Operate a quickforms deployment",
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := config.LoadFrom(c.configPath)
			if err != nil {
				return err
			}
			c.cfg = cfg
			c.log = app.NewLogger(cfg.Log)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "path to config.yaml (default: $CONFIG_PATH or ./config.yaml)")

	root.AddCommand(
		newMigrateCmd(c),
		newExportCmd(c),
		newTokenCmd(c),
	)
	return root
}

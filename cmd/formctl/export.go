package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/quickforms/internal/adapter/postgres"
	formrepo "github.com/heartmarshall/quickforms/internal/adapter/postgres/form"
	responserepo "github.com/heartmarshall/quickforms/internal/adapter/postgres/response"
	"github.com/heartmarshall/quickforms/internal/service/response"
)

func newExportCmd(c *cli) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export <form-id>",
		Short: "Export a form's responses as CSV",
		Long:  "Writes every response of the form, most recent first, as CSV to stdout or to the file given with -o.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formID, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid form id %q: %w", args[0], err)
			}

			pool, err := postgres.NewPool(cmd.Context(), c.cfg.Database)
			if err != nil {
				return err
			}
			defer pool.Close()

			svc := response.NewService(c.log, responserepo.New(pool), formrepo.New(pool))
			export, err := svc.ExportForm(cmd.Context(), formID)
			if err != nil {
				return err
			}

			return writeExport(cmd.OutOrStdout(), output, export)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file; \"-\" or empty writes to stdout, a trailing / uses the default filename")
	return cmd
}

// writeExport writes the CSV to w, or to a file when output names one.
func writeExport(w io.Writer, output string, export *response.Export) error {
	switch {
	case output == "" || output == "-":
		_, err := io.WriteString(w, export.Content+"\n")
		return err
	case output[len(output)-1] == '/':
		output = filepath.Join(output, response.SanitizeFilename(export.Filename))
	}

	if err := os.WriteFile(output, []byte(export.Content+"\n"), 0o644); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	fmt.Fprintf(w, "wrote %d response(s) to %s\n", export.Rows, output)
	return nil
}

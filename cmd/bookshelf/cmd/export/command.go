// Package export provides the export command.
package export

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/bookshelf/cmd/application"
	"github.com/agentstation/bookshelf/internal/cmd/alerts"
	"github.com/agentstation/bookshelf/internal/cmd/globals"
	"github.com/agentstation/bookshelf/pkg/errors"
	"github.com/agentstation/bookshelf/pkg/save"
)

// NewCommand creates the export command.
func NewCommand(app application.Application) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the library to a JSON or YAML file",
		Args:  cobra.NoArgs,
		Long: `Export writes every book to a file or to standard output. The format
comes from --format when it is json or yaml, otherwise from the file
extension, and defaults to JSON. The library file itself is not changed.`,
		Example: `  bookshelf export --out backup.json
  bookshelf export --out books.yaml
  bookshelf export -o yaml > books.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := app.Client()
			if err != nil {
				return err
			}

			opts, err := exportOptions(cmd, out)
			if err != nil {
				return err
			}
			if err := client.Export(opts...); err != nil {
				return err
			}

			if out == "" || out == "-" {
				return nil
			}
			flags := globals.ParseWithDefault(cmd, app.OutputFormat())
			alert := alerts.NewSuccess(fmt.Sprintf("Exported %d books to %s", client.Len(), out))
			return alerts.ForFlags(cmd.ErrOrStderr(), flags).WriteAlert(alert)
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "Destination file (default is standard output)")

	return cmd
}

func exportOptions(cmd *cobra.Command, out string) ([]save.Option, error) {
	var opts []save.Option

	if format := globals.Parse(cmd).Format; format != "" {
		f, err := save.ParseFormat(format)
		if err != nil {
			return nil, errors.NewValidationError("format", format, "export supports json or yaml")
		}
		opts = append(opts, save.WithFormat(f))
	}

	if out == "" || out == "-" {
		return append(opts, save.WithWriter(cmd.OutOrStdout())), nil
	}
	return append(opts, save.WithPath(out)), nil
}

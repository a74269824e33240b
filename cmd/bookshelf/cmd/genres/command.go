// Package genres provides the genres command.
package genres

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/bookshelf/cmd/application"
	"github.com/agentstation/bookshelf/internal/cmd/constants"
	"github.com/agentstation/bookshelf/internal/cmd/globals"
	"github.com/agentstation/bookshelf/internal/cmd/output"
	"github.com/agentstation/bookshelf/internal/cmd/table"
	"github.com/agentstation/bookshelf/pkg/books"
)

// NewCommand creates the genres command.
func NewCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:   "genres",
		Short: "List the accepted genres",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			genres := books.Genres()
			flags := globals.ParseWithDefault(cmd, app.OutputFormat())

			var data any = genres
			if constants.IsTable(flags.Format) {
				data = table.GenresToTableData(genres)
			}
			return output.FormatAny(cmd.OutOrStdout(), data, flags)
		},
	}
}

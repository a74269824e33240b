// Package show provides the show command.
package show

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/bookshelf/cmd/application"
	"github.com/agentstation/bookshelf/internal/cmd/globals"
	"github.com/agentstation/bookshelf/internal/cmd/lookup"
	"github.com/agentstation/bookshelf/internal/cmd/output"
)

// NewCommand creates the show command.
func NewCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:   "show <position|id>",
		Short: "Show one book",
		Args:  cobra.ExactArgs(1),
		Example: `  bookshelf show 2
  bookshelf show book-V1StGXR8_Z5jdHi6B-myT`,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := app.Catalog()
			if err != nil {
				return err
			}

			entry, err := lookup.Get(client, args[0])
			if err != nil {
				return err
			}

			flags := globals.ParseWithDefault(cmd, app.OutputFormat())
			return output.FormatBook(cmd.OutOrStdout(), entry, flags)
		},
	}
}

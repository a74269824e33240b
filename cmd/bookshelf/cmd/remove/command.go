// Package remove provides the remove command.
package remove

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/bookshelf/cmd/application"
	"github.com/agentstation/bookshelf/internal/cmd/alerts"
	"github.com/agentstation/bookshelf/internal/cmd/globals"
	"github.com/agentstation/bookshelf/internal/cmd/lookup"
	"github.com/agentstation/bookshelf/pkg/logging"
)

// NewCommand creates the remove command.
func NewCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <position|id>",
		Short:   "Remove a book from the library",
		Aliases: []string{"rm", "delete"},
		Args:    cobra.ExactArgs(1),
		Long: `Remove deletes one book. Books after it move up one position, so
run list again before removing by position a second time.`,
		Example: `  bookshelf remove 2
  bookshelf remove book-V1StGXR8_Z5jdHi6B-myT`,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := app.Client()
			if err != nil {
				return err
			}

			id, err := lookup.ID(client, args[0])
			if err != nil {
				return err
			}

			ctx := logging.WithBook(logging.WithOperation(logging.WithLogger(cmd.Context(), app.Logger()), "remove"), id.String())
			book, err := client.RemoveByID(ctx, id)
			if err != nil {
				return err
			}

			flags := globals.ParseWithDefault(cmd, app.OutputFormat())
			alert := alerts.NewSuccess(fmt.Sprintf("Removed %q by %s", book.Title, book.Author)).
				WithBook(book.ID.String())
			return alerts.ForFlags(cmd.OutOrStdout(), flags).WriteAlert(alert)
		},
	}
}

// Package mark provides the mark and toggle commands.
package mark

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/bookshelf"
	"github.com/agentstation/bookshelf/cmd/application"
	"github.com/agentstation/bookshelf/internal/cmd/alerts"
	"github.com/agentstation/bookshelf/internal/cmd/globals"
	"github.com/agentstation/bookshelf/internal/cmd/lookup"
	"github.com/agentstation/bookshelf/pkg/books"
	"github.com/agentstation/bookshelf/pkg/logging"
)

// NewCommand creates the mark command.
func NewCommand(app application.Application) *cobra.Command {
	var read, unread bool

	cmd := &cobra.Command{
		Use:   "mark <position|id>",
		Short: "Mark a book as read or unread",
		Args:  cobra.ExactArgs(1),
		Example: `  bookshelf mark 3 --read
  bookshelf mark book-V1StGXR8_Z5jdHi6B-myT --unread`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return change(cmd, app, args[0], "mark", func(ctx context.Context, c bookshelf.Client, id books.ID) (books.Book, error) {
				return c.SetReadStatusByID(ctx, id, read)
			})
		},
	}

	cmd.Flags().BoolVar(&read, "read", false, "Mark as read")
	cmd.Flags().BoolVar(&unread, "unread", false, "Mark as unread")
	cmd.MarkFlagsMutuallyExclusive("read", "unread")
	cmd.MarkFlagsOneRequired("read", "unread")

	return cmd
}

// NewToggleCommand creates the toggle command.
func NewToggleCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:     "toggle <position|id>",
		Short:   "Flip the read status of a book",
		Args:    cobra.ExactArgs(1),
		Example: `  bookshelf toggle 1`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return change(cmd, app, args[0], "toggle", func(ctx context.Context, c bookshelf.Client, id books.ID) (books.Book, error) {
				return c.ToggleRead(ctx, id)
			})
		},
	}
}

type changeFunc func(ctx context.Context, c bookshelf.Client, id books.ID) (books.Book, error)

func change(cmd *cobra.Command, app application.Application, ref, op string, fn changeFunc) error {
	client, err := app.Client()
	if err != nil {
		return err
	}

	id, err := lookup.ID(client, ref)
	if err != nil {
		return err
	}

	ctx := logging.WithBook(logging.WithOperation(logging.WithLogger(cmd.Context(), app.Logger()), op), id.String())
	book, err := fn(ctx, client, id)
	if err != nil {
		return err
	}

	flags := globals.ParseWithDefault(cmd, app.OutputFormat())
	alert := alerts.NewSuccess(fmt.Sprintf("%q is now %s", book.Title, book.Status())).
		WithBook(book.ID.String())
	return alerts.ForFlags(cmd.OutOrStdout(), flags).WriteAlert(alert)
}

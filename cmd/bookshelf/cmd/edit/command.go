// Package edit provides the edit command.
package edit

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/bookshelf/cmd/application"
	"github.com/agentstation/bookshelf/internal/cmd/alerts"
	"github.com/agentstation/bookshelf/internal/cmd/globals"
	"github.com/agentstation/bookshelf/internal/cmd/lookup"
	"github.com/agentstation/bookshelf/pkg/books"
	"github.com/agentstation/bookshelf/pkg/errors"
	"github.com/agentstation/bookshelf/pkg/logging"
)

type editFlags struct {
	title, author, genre string
	year                 int
	read, unread         bool
}

// NewCommand creates the edit command.
func NewCommand(app application.Application) *cobra.Command {
	var f editFlags

	cmd := &cobra.Command{
		Use:   "edit <position|id>",
		Short: "Change the details of a book",
		Args:  cobra.ExactArgs(1),
		Long: `Edit changes only the fields given as flags. The book keeps its ID and
added date, and the result is validated like a new book.`,
		Example: `  bookshelf edit 2 --year 2013
  bookshelf edit book-V1StGXR8_Z5jdHi6B-myT --title "The Lord of the Rings" --read`,
		RunE: func(cmd *cobra.Command, args []string) error {
			patch := f.patch(cmd)
			if patch.IsEmpty() {
				return &errors.ValidationError{Message: "nothing to change; pass at least one field flag"}
			}

			client, err := app.Client()
			if err != nil {
				return err
			}

			id, err := lookup.ID(client, args[0])
			if err != nil {
				return err
			}

			ctx := logging.WithBook(logging.WithOperation(logging.WithLogger(cmd.Context(), app.Logger()), "edit"), id.String())
			book, err := client.Update(ctx, id, patch)
			if err != nil {
				return err
			}

			flags := globals.ParseWithDefault(cmd, app.OutputFormat())
			alert := alerts.NewSuccess(fmt.Sprintf("Updated %q by %s", book.Title, book.Author)).
				WithBook(book.ID.String())
			return alerts.ForFlags(cmd.OutOrStdout(), flags).WriteAlert(alert)
		},
	}

	cmd.Flags().StringVarP(&f.title, "title", "t", "", "New title")
	cmd.Flags().StringVarP(&f.author, "author", "a", "", "New author")
	cmd.Flags().IntVarP(&f.year, "year", "y", 0, "New publication year")
	cmd.Flags().StringVarP(&f.genre, "genre", "g", "", "New genre")
	cmd.Flags().BoolVar(&f.read, "read", false, "Mark as read")
	cmd.Flags().BoolVar(&f.unread, "unread", false, "Mark as unread")
	cmd.MarkFlagsMutuallyExclusive("read", "unread")

	return cmd
}

// patch includes only the flags the user set, so an explicit empty
// value still reaches validation.
func (f *editFlags) patch(cmd *cobra.Command) books.Patch {
	var p books.Patch
	changed := cmd.Flags().Changed

	if changed("title") {
		p.Title = &f.title
	}
	if changed("author") {
		p.Author = &f.author
	}
	if changed("year") {
		p.PublicationYear = &f.year
	}
	if changed("genre") {
		p.Genre = &f.genre
	}
	if changed("read") || changed("unread") {
		read := f.read
		p.ReadStatus = &read
	}
	return p
}

// Package add provides the add command.
package add

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/bookshelf/cmd/application"
	"github.com/agentstation/bookshelf/internal/cmd/alerts"
	"github.com/agentstation/bookshelf/internal/cmd/globals"
	"github.com/agentstation/bookshelf/pkg/books"
	"github.com/agentstation/bookshelf/pkg/constants"
	"github.com/agentstation/bookshelf/pkg/logging"
)

// NewCommand creates the add command.
func NewCommand(app application.Application) *cobra.Command {
	var nb books.NewBook

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a book to the library",
		Args:  cobra.NoArgs,
		Example: `  bookshelf add --title "The Hobbit" --author "J.R.R. Tolkien" --year 1937 --genre fantasy
  bookshelf add --title Dune --author "Frank Herbert" --year 1965 --read`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := app.Client()
			if err != nil {
				return err
			}

			ctx := logging.WithOperation(logging.WithLogger(cmd.Context(), app.Logger()), "add")
			book, err := client.Add(ctx, nb)
			if err != nil {
				return err
			}

			flags := globals.ParseWithDefault(cmd, app.OutputFormat())
			alert := alerts.NewSuccess(fmt.Sprintf("Added %q by %s", book.Title, book.Author)).
				WithBook(book.ID.String()).
				WithDetails(fmt.Sprintf("position %d, id %s", client.IndexOf(book.ID)+1, book.ID))
			return alerts.ForFlags(cmd.OutOrStdout(), flags).WriteAlert(alert)
		},
	}

	cmd.Flags().StringVarP(&nb.Title, "title", "t", "", "Book title")
	cmd.Flags().StringVarP(&nb.Author, "author", "a", "", "Book author")
	cmd.Flags().IntVarP(&nb.PublicationYear, "year", "y", 0, "Publication year")
	cmd.Flags().StringVarP(&nb.Genre, "genre", "g", constants.DefaultGenre, "Genre (run bookshelf genres for the list)")
	cmd.Flags().BoolVar(&nb.ReadStatus, "read", false, "Mark the book as already read")

	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("author")
	_ = cmd.MarkFlagRequired("year")

	return cmd
}

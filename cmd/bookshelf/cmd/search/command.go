// Package search provides the search command.
package search

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentstation/bookshelf/cmd/application"
	"github.com/agentstation/bookshelf/internal/cmd/alerts"
	"github.com/agentstation/bookshelf/internal/cmd/constants"
	"github.com/agentstation/bookshelf/internal/cmd/globals"
	"github.com/agentstation/bookshelf/internal/cmd/output"
	"github.com/agentstation/bookshelf/internal/cmd/table"
	"github.com/agentstation/bookshelf/pkg/books"
)

// NewCommand creates the search command.
func NewCommand(app application.Application) *cobra.Command {
	var by string

	cmd := &cobra.Command{
		Use:   "search <term>",
		Short: "Find books by title, author or genre",
		Args:  cobra.MinimumNArgs(1),
		Long: `Search matches the term anywhere in the chosen field, ignoring case.
Multiple arguments are joined with spaces.`,
		Example: `  bookshelf search hobbit
  bookshelf search --by author tolkien
  bookshelf search -b genre fantasy -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			field, err := books.ParseField(by)
			if err != nil {
				return err
			}

			client, err := app.Catalog()
			if err != nil {
				return err
			}

			term := strings.Join(args, " ")
			found, err := client.Search(term, field)
			if err != nil {
				return err
			}

			app.Logger().Debug().
				Str("term", term).
				Str("field", string(field)).
				Int("matches", len(found)).
				Msg("Search complete")

			entries := make([]table.Entry, 0, len(found))
			for _, b := range found {
				entries = append(entries, table.Entry{Position: client.IndexOf(b.ID) + 1, Book: b})
			}

			flags := globals.ParseWithDefault(cmd, app.OutputFormat())
			if len(entries) == 0 && constants.IsTable(flags.Format) {
				msg := fmt.Sprintf("No books with %s matching %q", field, term)
				return alerts.ForFlags(cmd.OutOrStdout(), flags).WriteAlert(alerts.NewInfo(msg))
			}
			return output.FormatBooks(cmd.OutOrStdout(), entries, flags)
		},
	}

	cmd.Flags().StringVarP(&by, "by", "b", string(books.FieldTitle),
		fmt.Sprintf("Field to search: %s", joinFields()))

	return cmd
}

func joinFields() string {
	fields := books.Fields()
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

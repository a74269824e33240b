// Package list provides the list command.
package list

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/bookshelf/cmd/application"
	"github.com/agentstation/bookshelf/internal/cmd/alerts"
	"github.com/agentstation/bookshelf/internal/cmd/constants"
	"github.com/agentstation/bookshelf/internal/cmd/globals"
	"github.com/agentstation/bookshelf/internal/cmd/output"
	"github.com/agentstation/bookshelf/internal/cmd/table"
)

// NewCommand creates the list command.
func NewCommand(app application.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List books in library order",
		Aliases: []string{"ls"},
		Args:    cobra.NoArgs,
		Example: `  bookshelf list                # All books
  bookshelf list --unread       # Books still to read
  bookshelf list -o wide        # Include IDs and added dates`,
	}

	listFlags := globals.AddListFlags(cmd)

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		if err := listFlags.Validate(); err != nil {
			return err
		}

		client, err := app.Catalog()
		if err != nil {
			return err
		}

		// Positions are taken before filtering so they stay valid for
		// show, edit and remove.
		var entries []table.Entry
		for _, e := range table.Entries(client.Books()) {
			if listFlags.Keep(e.Book.ReadStatus) {
				entries = append(entries, e)
			}
		}
		if listFlags.Limit > 0 && len(entries) > listFlags.Limit {
			entries = entries[:listFlags.Limit]
		}

		app.Logger().Debug().Int("total", client.Len()).Int("shown", len(entries)).Msg("Listing books")

		flags := globals.ParseWithDefault(cmd, app.OutputFormat())
		if len(entries) == 0 && constants.IsTable(flags.Format) {
			msg := "No books in the library yet"
			if client.Len() > 0 {
				msg = "No books match the filter"
			}
			return alerts.ForFlags(cmd.OutOrStdout(), flags).WriteAlert(alerts.NewInfo(msg))
		}
		if entries == nil {
			entries = []table.Entry{}
		}

		return output.FormatBooks(cmd.OutOrStdout(), entries, flags)
	}

	return cmd
}

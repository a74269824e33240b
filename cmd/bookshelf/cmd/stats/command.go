// Package stats provides the stats command.
package stats

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/bookshelf/cmd/application"
	"github.com/agentstation/bookshelf/internal/cmd/globals"
	"github.com/agentstation/bookshelf/internal/cmd/output"
	"github.com/agentstation/bookshelf/pkg/books"
	"github.com/agentstation/bookshelf/pkg/constants"
)

// NewCommand creates the stats command.
func NewCommand(app application.Application) *cobra.Command {
	var top int

	cmd := &cobra.Command{
		Use:     "stats",
		Short:   "Show reading statistics",
		Aliases: []string{"insights"},
		Args:    cobra.NoArgs,
		Long: `Stats shows how many books you have read, the most common genres and
authors, and how the collection spreads across publication decades.`,
		Example: `  bookshelf stats
  bookshelf stats --top 3 -o yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if top < 0 {
				return fmt.Errorf("--top must not be negative, got %d", top)
			}

			client, err := app.Catalog()
			if err != nil {
				return err
			}

			flags := globals.ParseWithDefault(cmd, app.OutputFormat())
			return output.FormatStats(cmd.OutOrStdout(), Report(client.Stats(), top), flags)
		},
	}

	cmd.Flags().IntVarP(&top, "top", "n", constants.DefaultTopN, "Number of genres and authors to rank")

	return cmd
}

// Report builds the stats output with the top n genres and authors.
func Report(s books.Stats, n int) output.StatsReport {
	return output.StatsReport{
		Summary:    s,
		TopGenres:  s.TopGenres(n),
		TopAuthors: s.TopAuthors(n),
	}
}

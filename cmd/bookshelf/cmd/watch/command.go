// Package watch provides the watch command.
package watch

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/agentstation/bookshelf"
	"github.com/agentstation/bookshelf/cmd/application"
	"github.com/agentstation/bookshelf/cmd/bookshelf/cmd/stats"
	"github.com/agentstation/bookshelf/internal/cmd/alerts"
	"github.com/agentstation/bookshelf/internal/cmd/globals"
	"github.com/agentstation/bookshelf/internal/cmd/output"
	filewatch "github.com/agentstation/bookshelf/internal/watch"
	"github.com/agentstation/bookshelf/pkg/constants"
	"github.com/agentstation/bookshelf/pkg/errors"
	"github.com/agentstation/bookshelf/pkg/logging"
)

// NewCommand creates the watch command.
func NewCommand(app application.Application) *cobra.Command {
	var (
		top    int
		settle time.Duration
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-render statistics whenever the library file changes",
		Args:  cobra.NoArgs,
		Long: `Watch prints the statistics, then prints them again every time the
library file is written by another bookshelf process or an editor.
Press Ctrl-C to stop.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := app.Catalog()
			if err != nil {
				return err
			}
			path := client.Path()
			if path == "" {
				return errors.NewConfigError("library", "watch needs a library file", nil)
			}

			ctx := logging.WithLibrary(logging.WithOperation(logging.WithLogger(cmd.Context(), app.Logger()), "watch"), path)
			flags := globals.ParseWithDefault(cmd, app.OutputFormat())
			w := cmd.OutOrStdout()
			notify := alerts.ForFlags(cmd.ErrOrStderr(), flags)

			if err := render(w, client, top, flags); err != nil {
				return err
			}

			watcher := filewatch.New(path,
				filewatch.WithSettleDelay(settle),
				filewatch.WithLogger(app.Logger()),
			)
			return watcher.Run(ctx, func(ev filewatch.Event) {
				if ev.Removed {
					_ = notify.WriteAlert(alerts.NewWarning("Library file was removed; keeping the last loaded books"))
					return
				}
				if err := client.Reload(ctx); err != nil {
					_ = notify.WriteAlert(alerts.NewError("Reload failed").WithError(err))
					return
				}
				if err := render(w, client, top, flags); err != nil {
					logging.FromContext(ctx).Warn().Err(err).Msg("Failed to render statistics")
				}
			})
		},
	}

	cmd.Flags().IntVarP(&top, "top", "n", constants.DefaultTopN, "Number of genres and authors to rank")
	cmd.Flags().DurationVar(&settle, "settle", constants.WatchSettleDelay, "Quiet period before a change is picked up")

	return cmd
}

func render(w io.Writer, client bookshelf.Reader, top int, flags *globals.Flags) error {
	if _, err := fmt.Fprintf(w, "--- %s ---\n", time.Now().Format(constants.AddedDateLayout)); err != nil {
		return err
	}
	return output.FormatStats(w, stats.Report(client.Stats(), top), flags)
}

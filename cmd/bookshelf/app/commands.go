package app

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/agentstation/bookshelf/cmd/bookshelf/cmd/add"
	"github.com/agentstation/bookshelf/cmd/bookshelf/cmd/edit"
	"github.com/agentstation/bookshelf/cmd/bookshelf/cmd/export"
	"github.com/agentstation/bookshelf/cmd/bookshelf/cmd/genres"
	"github.com/agentstation/bookshelf/cmd/bookshelf/cmd/list"
	"github.com/agentstation/bookshelf/cmd/bookshelf/cmd/mark"
	"github.com/agentstation/bookshelf/cmd/bookshelf/cmd/remove"
	"github.com/agentstation/bookshelf/cmd/bookshelf/cmd/search"
	"github.com/agentstation/bookshelf/cmd/bookshelf/cmd/show"
	"github.com/agentstation/bookshelf/cmd/bookshelf/cmd/stats"
	"github.com/agentstation/bookshelf/cmd/bookshelf/cmd/watch"
)

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	// Catalog commands
	rootCmd.AddCommand(withGroup("catalog", add.NewCommand(a)))
	rootCmd.AddCommand(withGroup("catalog", list.NewCommand(a)))
	rootCmd.AddCommand(withGroup("catalog", show.NewCommand(a)))
	rootCmd.AddCommand(withGroup("catalog", edit.NewCommand(a)))
	rootCmd.AddCommand(withGroup("catalog", remove.NewCommand(a)))
	rootCmd.AddCommand(withGroup("catalog", mark.NewCommand(a)))
	rootCmd.AddCommand(withGroup("catalog", mark.NewToggleCommand(a)))

	// Search & insight commands
	rootCmd.AddCommand(withGroup("insight", search.NewCommand(a)))
	rootCmd.AddCommand(withGroup("insight", stats.NewCommand(a)))
	rootCmd.AddCommand(withGroup("insight", genres.NewCommand(a)))

	// Library file commands
	rootCmd.AddCommand(withGroup("library", export.NewCommand(a)))
	rootCmd.AddCommand(withGroup("library", watch.NewCommand(a)))

	rootCmd.AddCommand(a.NewVersionCommand())
}

// NewVersionCommand creates the version command.
func (a *App) NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "bookshelf %s\n", a.version)
			if a.config.Verbose {
				fmt.Fprintf(w, "  commit:   %s\n", a.commit)
				fmt.Fprintf(w, "  built:    %s\n", a.date)
				fmt.Fprintf(w, "  built by: %s\n", a.builtBy)
				fmt.Fprintf(w, "  go:       %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
			}
		},
	}
}

func withGroup(id string, cmd *cobra.Command) *cobra.Command {
	cmd.GroupID = id
	return cmd
}

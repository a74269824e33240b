package app

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentstation/bookshelf/internal/cmd/output"
)

// Execute runs the bookshelf CLI application with the given arguments.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command with all subcommands.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "bookshelf",
		Short:   "Personal library catalog",
		Version: a.version,
		Long: `Bookshelf keeps a catalog of the books you own in a single JSON file.

Add, edit and remove books, mark them read, search by title, author or
genre, and see reading statistics. Every change is saved immediately.`,
		PersistentPreRunE: a.setupCommand,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	rootCmd.AddGroup(&cobra.Group{
		ID:    "catalog",
		Title: "Catalog Commands:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "insight",
		Title: "Search & Insight Commands:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "library",
		Title: "Library File Commands:",
	})

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default is $HOME/.bookshelf.yaml)")
	flags.StringP("library", "f", "", "library file (default is "+a.config.Library+")")
	flags.BoolP("verbose", "v", false, "verbose output (shortcut for --log-level=debug)")
	flags.BoolP("quiet", "q", false, "minimal output (shortcut for --log-level=error)")
	flags.Bool("no-color", false, "disable colored output")
	flags.StringP("format", "o", "", "output format: table, wide, json, yaml")
	flags.String("log-level", "", "log level: trace, debug, info, warn, error (overrides -v/-q)")

	rootCmd.SetVersionTemplate("bookshelf {{.Version}}\n")
	if a.out != nil {
		rootCmd.SetOut(a.out)
	}

	a.registerCommands(rootCmd)

	return rootCmd
}

// setupCommand is called before any command runs. It reloads the config
// file when --config is given and applies flag overrides.
func (a *App) setupCommand(cmd *cobra.Command, _ []string) error {
	if configFile := mustGetString(cmd, "config"); configFile != "" {
		config, err := LoadConfig(configFile)
		if err != nil {
			return err
		}
		a.config = config
	}

	format := mustGetString(cmd, "format")
	if _, err := output.ParseFormat(format); err != nil {
		return err
	}

	a.config.UpdateFromFlags(Flags{
		Verbose:    mustGetBool(cmd, "verbose"),
		Quiet:      mustGetBool(cmd, "quiet"),
		NoColor:    mustGetBool(cmd, "no-color"),
		Format:     format,
		LogLevel:   mustGetString(cmd, "log-level"),
		Library:    mustGetString(cmd, "library"),
		LibrarySet: cmd.Flags().Changed("library"),
	})
	a.config.Format = string(output.DetectFormat(a.config.Format))

	logger := NewLogger(a.config)
	a.logger = &logger

	a.logger.Debug().
		Str("command", cmd.CommandPath()).
		Str("config", a.config.ConfigFile).
		Str("library", a.config.Library).
		Msg("Command setup complete")

	return nil
}

// ExitOnError prints an error and exits with status 1.
func ExitOnError(err error) {
	if err != nil {
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		os.Exit(1)
	}
}

// mustGetBool retrieves a boolean flag value or panics if the flag doesn't exist.
// This should only be used for flags defined in this package.
func mustGetBool(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}

// mustGetString retrieves a string flag value or panics if the flag doesn't exist.
// This should only be used for flags defined in this package.
func mustGetString(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}

// Package globals provides shared flag structures and utilities for CLI commands.
package globals

import "github.com/spf13/cobra"

// Flags holds global common flags across all commands.
type Flags struct {
	Format  string
	Quiet   bool
	Verbose bool
	NoColor bool
}

// Parse extracts global flags from the root command's persistent flags.
func Parse(cmd *cobra.Command) *Flags {
	root := cmd.Root()

	format, _ := root.PersistentFlags().GetString("format")
	quiet, _ := root.PersistentFlags().GetBool("quiet")
	verbose, _ := root.PersistentFlags().GetBool("verbose")
	noColor, _ := root.PersistentFlags().GetBool("no-color")

	return &Flags{
		Format:  format,
		Quiet:   quiet,
		Verbose: verbose,
		NoColor: noColor,
	}
}

// ParseWithDefault is Parse with fallback used when --format was not given.
func ParseWithDefault(cmd *cobra.Command, fallback string) *Flags {
	flags := Parse(cmd)
	if flags.Format == "" {
		flags.Format = fallback
	}
	return flags
}

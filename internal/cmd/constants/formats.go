// Package constants provides shared constants for CLI commands.
package constants

// Output format constants used throughout the CLI.
const (
	// FormatTable is the default table output format.
	FormatTable = "table"

	// FormatWide is an extended table format with more columns.
	FormatWide = "wide"

	// FormatJSON outputs data as JSON.
	FormatJSON = "json"

	// FormatYAML outputs data as YAML.
	FormatYAML = "yaml"
)

// IsTable reports whether format renders as a table. The empty format
// defaults to a table.
func IsTable(format string) bool {
	return format == "" || format == FormatTable || format == FormatWide
}

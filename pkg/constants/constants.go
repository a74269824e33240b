// Package constants provides shared constants used throughout the bookshelf codebase.
// This includes file permissions, validation bounds, defaults and formats
// that should be consistent across the application.
package constants

import "time"

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Validation bounds for book records
const (
	// MinPublicationYear is the earliest publication year accepted by default
	MinPublicationYear = 1000

	// MaxTitleLength is the maximum allowed length for titles
	MaxTitleLength = 100

	// MaxAuthorLength is the maximum allowed length for author names
	MaxAuthorLength = 100

	// MaxGenreLength is the maximum allowed length for free-text genres
	MaxGenreLength = 64
)

// Default values
const (
	// DefaultLibraryFile is the durable store used when none is configured
	DefaultLibraryFile = "library.json"

	// DefaultGenre is preselected by the add command when --genre is omitted
	DefaultGenre = "Fiction"

	// DefaultTopN is how many genres and authors the insights view shows
	DefaultTopN = 5

	// DefaultConfigName is the config file name searched in $HOME and the working directory
	DefaultConfigName = ".bookshelf"

	// EnvPrefix prefixes every environment variable read by the CLI
	EnvPrefix = "BOOKSHELF"
)

// Format constants
const (
	// AddedDateLayout is the text layout of added_date in the durable store
	AddedDateLayout = "2006-01-02 15:04:05"

	// IDPrefix prefixes generated book identifiers
	IDPrefix = "book"
)

// Timing constants
const (
	// WatchSettleDelay is how long the library file must stay quiet before
	// the watch command reloads it
	WatchSettleDelay = 250 * time.Millisecond
)

// Package emoji provides symbol constants for CLI output.
package emoji

// Symbol constants give commands a consistent visual language.
const (
	// Success marks a completed operation.
	Success = "✓"

	// Error marks a failed operation.
	Error = "✗"

	// Warning marks a non-fatal problem.
	Warning = "!"

	// Info marks informational messages.
	Info = "i"

	// Read marks a book that has been read.
	Read = "✓"

	// Unread marks a book not yet read.
	Unread = "·"

	// Bar is one unit of a text histogram.
	Bar = "█"
)

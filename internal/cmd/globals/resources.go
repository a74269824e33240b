package globals

import (
	"fmt"

	"github.com/spf13/cobra"
)

// ListFlags holds filtering flags shared by listing commands.
type ListFlags struct {
	Limit  int
	Read   bool
	Unread bool
}

// AddListFlags adds listing flags to a command.
func AddListFlags(cmd *cobra.Command) *ListFlags {
	flags := &ListFlags{}

	cmd.Flags().IntVarP(&flags.Limit, "limit", "l", 0,
		"Limit number of results")
	cmd.Flags().BoolVar(&flags.Read, "read", false,
		"Only books that have been read")
	cmd.Flags().BoolVar(&flags.Unread, "unread", false,
		"Only books not yet read")
	cmd.MarkFlagsMutuallyExclusive("read", "unread")

	return flags
}

// Validate checks flag combinations cobra cannot express.
func (f *ListFlags) Validate() error {
	if f.Limit < 0 {
		return fmt.Errorf("--limit must not be negative, got %d", f.Limit)
	}
	return nil
}

// Keep reports whether a book with the given read flag passes the filter.
func (f *ListFlags) Keep(read bool) bool {
	switch {
	case f.Read:
		return read
	case f.Unread:
		return !read
	}
	return true
}

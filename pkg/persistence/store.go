// Package persistence loads and saves the full catalog as one unit.
//
// Every Save writes the complete ordered record list; there are no partial
// updates. Failures are reported as *errors.PersistenceError and never
// touch the caller's in-memory records.
package persistence

import (
	"github.com/agentstation/bookshelf/pkg/books"
)

// Store is a durable home for the catalog.
type Store interface {
	// Load returns the stored records in order. A store that has never
	// been written returns an empty list and no error.
	Load() ([]books.Book, error)

	// Save replaces the stored records with records.
	Save(records []books.Book) error

	// Path describes where records live; empty for in-process stores.
	Path() string
}

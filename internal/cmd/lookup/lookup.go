// Package lookup resolves book references typed on the command line.
package lookup

import (
	"strconv"
	"strings"

	"github.com/agentstation/bookshelf"
	"github.com/agentstation/bookshelf/internal/cmd/table"
	"github.com/agentstation/bookshelf/pkg/books"
	"github.com/agentstation/bookshelf/pkg/errors"
)

// Get resolves ref to a book. A positive integer is a 1-based position
// as shown by list; anything else is a book ID.
func Get(catalog bookshelf.Reader, ref string) (table.Entry, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return table.Entry{}, &errors.ValidationError{
			Field:   "book",
			Message: "a position or ID is required",
		}
	}

	if pos, err := strconv.Atoi(ref); err == nil {
		b, err := catalog.At(pos - 1)
		if err != nil {
			return table.Entry{}, err
		}
		return table.Entry{Position: pos, Book: b}, nil
	}

	b, err := catalog.Book(books.ID(ref))
	if err != nil {
		return table.Entry{}, err
	}
	return table.Entry{Position: catalog.IndexOf(b.ID) + 1, Book: b}, nil
}

// ID resolves ref and returns only the book ID. Mutations are addressed
// by ID so they stay correct if positions shift.
func ID(catalog bookshelf.Reader, ref string) (books.ID, error) {
	e, err := Get(catalog, ref)
	if err != nil {
		return "", err
	}
	return e.Book.ID, nil
}

package bookshelf

import (
	"github.com/agentstation/bookshelf/pkg/books"
)

// Reader provides read access to the catalog. All results are copies.
type Reader interface {
	// Books returns every record in insertion order.
	Books() []books.Book

	// Book returns the record with the given ID.
	Book(id books.ID) (books.Book, error)

	// At returns the record at a zero-based position.
	At(index int) (books.Book, error)

	// IndexOf returns the position of id, or -1.
	IndexOf(id books.ID) int

	// Len returns the number of records.
	Len() int

	// Search returns records whose field contains term, ignoring case.
	// A blank term yields an empty result.
	Search(term string, field books.Field) ([]books.Book, error)

	// Stats computes statistics over the current records.
	Stats() books.Stats

	// Rules returns the validation rules in force.
	Rules() books.Rules
}

// Books returns every record in insertion order.
func (c *client) Books() []books.Book {
	return c.books.List()
}

// Book returns the record with the given ID.
func (c *client) Book(id books.ID) (books.Book, error) {
	return c.books.Find(id)
}

// At returns the record at index.
func (c *client) At(index int) (books.Book, error) {
	return c.books.At(index)
}

// IndexOf returns the position of id, or -1.
func (c *client) IndexOf(id books.ID) int {
	return c.books.IndexOf(id)
}

// Len returns the number of records.
func (c *client) Len() int {
	return c.books.Len()
}

// Search filters by a case-insensitive substring on one field.
func (c *client) Search(term string, field books.Field) ([]books.Book, error) {
	f, err := books.ParseField(string(field))
	if err != nil {
		return nil, err
	}
	return c.books.Search(term, f), nil
}

// Stats computes statistics over the current records.
func (c *client) Stats() books.Stats {
	return c.books.Stats()
}

// Rules returns the validation rules in force.
func (c *client) Rules() books.Rules {
	return c.validator.Rules()
}

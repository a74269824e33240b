package books

import (
	"sync"

	"github.com/agentstation/bookshelf/pkg/errors"
)

// Books is a concurrent safe, ordered list of records. Insertion order is
// display order; positions shift down after a removal.
type Books struct {
	mu    sync.RWMutex
	items []Book
}

// BooksOption defines a function that configures a Books instance.
type BooksOption func(*Books)

// WithBooksList initializes the collection with a copy of list.
func WithBooksList(list []Book) BooksOption {
	return func(b *Books) {
		b.items = append(make([]Book, 0, len(list)), list...)
	}
}

// NewBooks creates a new collection with optional configuration.
func NewBooks(opts ...BooksOption) *Books {
	b := &Books{items: []Book{}}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Append adds a record at the end.
func (b *Books) Append(book Book) {
	b.mu.Lock()
	b.items = append(b.items, book)
	b.mu.Unlock()
}

// RemoveAt deletes the record at index and returns it. Later records
// shift down by one.
func (b *Books) RemoveAt(index int) (Book, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if index < 0 || index >= len(b.items) {
		return Book{}, errors.NewIndexOutOfRangeError(index, len(b.items))
	}
	removed := b.items[index]
	b.items = append(b.items[:index], b.items[index+1:]...)
	return removed, nil
}

// At returns the record at index.
func (b *Books) At(index int) (Book, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if index < 0 || index >= len(b.items) {
		return Book{}, errors.NewIndexOutOfRangeError(index, len(b.items))
	}
	return b.items[index], nil
}

// IndexOf returns the position of the record with the given id, or -1.
func (b *Books) IndexOf(bookID ID) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.indexOf(bookID)
}

func (b *Books) indexOf(bookID ID) int {
	if bookID == "" {
		return -1
	}
	for i := range b.items {
		if b.items[i].ID == bookID {
			return i
		}
	}
	return -1
}

// Find returns the record with the given id.
func (b *Books) Find(bookID ID) (Book, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	i := b.indexOf(bookID)
	if i < 0 {
		return Book{}, errors.NewNotFoundError("book", string(bookID))
	}
	return b.items[i], nil
}

// Replace overwrites the record at index.
func (b *Books) Replace(index int, book Book) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if index < 0 || index >= len(b.items) {
		return errors.NewIndexOutOfRangeError(index, len(b.items))
	}
	b.items[index] = book
	return nil
}

// Reset replaces the whole list with a copy of list.
func (b *Books) Reset(list []Book) {
	b.mu.Lock()
	b.items = append(make([]Book, 0, len(list)), list...)
	b.mu.Unlock()
}

// List returns a copy of the records in order.
func (b *Books) List() []Book {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append(make([]Book, 0, len(b.items)), b.items...)
}

// Len returns the number of records.
func (b *Books) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.items)
}

// ForEach calls fn for each record in order until fn returns false.
func (b *Books) ForEach(fn func(index int, book Book) bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for i, book := range b.items {
		if !fn(i, book) {
			return
		}
	}
}

// Search returns the records whose field contains term, ignoring case.
// A blank term matches nothing.
func (b *Books) Search(term string, field Field) []Book {
	m := newMatcher(term, field)
	out := []Book{}
	if m == nil {
		return out
	}
	b.ForEach(func(_ int, book Book) bool {
		if m.match(book) {
			out = append(out, book)
		}
		return true
	})
	return out
}

// Stats computes statistics over the current records.
func (b *Books) Stats() Stats {
	return ComputeStats(b.List())
}

// AssignMissingIDs gives every record without an ID one from newID and
// returns how many were assigned. A nil newID means NewID.
func AssignMissingIDs(list []Book, newID func() (ID, error)) (int, error) {
	if newID == nil {
		newID = NewID
	}
	assigned := 0
	for i := range list {
		if list[i].ID != "" {
			continue
		}
		bookID, err := newID()
		if err != nil {
			return assigned, err
		}
		list[i].ID = bookID
		assigned++
	}
	return assigned, nil
}

package bookshelf

import (
	"sync"

	"github.com/agentstation/bookshelf/pkg/books"
)

// Hook function types for book events
type (
	// BookAddedHook is called after a book is added to the catalog
	BookAddedHook func(book books.Book)

	// BookUpdatedHook is called after a book is changed
	BookUpdatedHook func(old, new books.Book)

	// BookRemovedHook is called after a book is removed
	BookRemovedHook func(book books.Book)
)

// Hooks provides event callback registration.
type Hooks interface {
	OnBookAdded(fn BookAddedHook)
	OnBookUpdated(fn BookUpdatedHook)
	OnBookRemoved(fn BookRemovedHook)
}

// hooks manages event callbacks for catalog changes
type hooks struct {
	mu            sync.RWMutex
	onBookAdded   []BookAddedHook
	onBookUpdated []BookUpdatedHook
	onBookRemoved []BookRemovedHook
}

func newHooks() *hooks {
	return &hooks{}
}

// OnBookAdded registers a callback for when books are added
func (h *hooks) OnBookAdded(fn BookAddedHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onBookAdded = append(h.onBookAdded, fn)
}

// OnBookUpdated registers a callback for when books are changed
func (h *hooks) OnBookUpdated(fn BookUpdatedHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onBookUpdated = append(h.onBookUpdated, fn)
}

// OnBookRemoved registers a callback for when books are removed
func (h *hooks) OnBookRemoved(fn BookRemovedHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onBookRemoved = append(h.onBookRemoved, fn)
}

func (h *hooks) bookAdded(book books.Book) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, fn := range h.onBookAdded {
		fn(book)
	}
}

func (h *hooks) bookUpdated(old, new books.Book) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, fn := range h.onBookUpdated {
		fn(old, new)
	}
}

func (h *hooks) bookRemoved(book books.Book) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, fn := range h.onBookRemoved {
		fn(book)
	}
}

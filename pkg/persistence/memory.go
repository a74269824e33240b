package persistence

import (
	"sync"

	"github.com/agentstation/bookshelf/pkg/books"
	"github.com/agentstation/bookshelf/pkg/errors"
)

// Memory is an in-process Store. Its failure switches let callers
// exercise persistence error paths.
type Memory struct {
	mu      sync.Mutex
	records []books.Book
	saves   int

	// FailLoad, when set, is returned (wrapped) by Load.
	FailLoad error
	// FailSave, when set, is returned (wrapped) by Save.
	FailSave error
}

// NewMemory returns a store primed with a copy of records.
func NewMemory(records ...books.Book) *Memory {
	return &Memory{records: append([]books.Book{}, records...)}
}

// Path is empty for the memory store.
func (m *Memory) Path() string {
	return ""
}

// Load returns a copy of the stored records.
func (m *Memory) Load() ([]books.Book, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailLoad != nil {
		return nil, errors.NewPersistenceError("load", "", m.FailLoad)
	}
	return append([]books.Book{}, m.records...), nil
}

// Save stores a copy of records.
func (m *Memory) Save(records []books.Book) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailSave != nil {
		return errors.NewPersistenceError("save", "", m.FailSave)
	}
	m.records = append([]books.Book{}, records...)
	m.saves++
	return nil
}

// Saves returns how many successful saves happened.
func (m *Memory) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

// Records returns a copy of what was last saved.
func (m *Memory) Records() []books.Book {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]books.Book{}, m.records...)
}

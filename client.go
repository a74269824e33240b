// Package bookshelf is the entry point for a single-user book catalog.
// A Client owns the ordered list of books, validates every change, and
// writes the whole list to its store after each mutation.
//
// Example usage:
//
//	shelf, err := bookshelf.New(bookshelf.WithLibraryPath("library.json"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	shelf.OnBookAdded(func(b books.Book) {
//	    log.Printf("added %s", b.Title)
//	})
//
//	book, err := shelf.Add(ctx, books.NewBook{
//	    Title:           "The Hobbit",
//	    Author:          "J.R.R. Tolkien",
//	    PublicationYear: 1937,
//	    Genre:           "Fantasy",
//	})
//
//	// Positions shift after removals; prefer IDs.
//	_, err = shelf.SetReadStatusByID(ctx, book.ID, true)
//
//	stats := shelf.Stats()
//	fmt.Printf("%.1f%% read\n", stats.PercentRead)
package bookshelf

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/agentstation/bookshelf/pkg/books"
	pkgerrors "github.com/agentstation/bookshelf/pkg/errors"
	"github.com/agentstation/bookshelf/pkg/logging"
	"github.com/agentstation/bookshelf/pkg/persistence"
)

// Compile-time interface check to ensure proper implementation.
var _ Client = (*client)(nil)

// Client manages a catalog backed by a durable store.
type Client interface {
	// Reader provides read access to the catalog
	Reader

	// Writer mutates the catalog and persists each change
	Writer

	// Persistence handles reload, save and export
	Persistence

	// Hooks provides access to event callback registration
	Hooks
}

// client is the internal implementation of the Client interface.
type client struct {
	options *options

	// mu serialises each mutation together with its save.
	mu        sync.Mutex
	books     *books.Books
	store     persistence.Store
	validator *books.Validator
	logger    *zerolog.Logger

	*hooks
}

// New creates a Client and loads the catalog from its store.
//
// If the store cannot be read, New returns a usable, empty Client
// together with the *errors.PersistenceError so the caller can decide
// whether to continue. Records without an ID are given one and the store
// is rewritten once.
func New(opts ...Option) (Client, error) {
	o := defaults().apply(opts...)

	c := &client{
		options:   o,
		books:     books.NewBooks(),
		store:     o.store,
		validator: books.NewValidator(o.rules),
		logger:    o.logger,
		hooks:     newHooks(),
	}

	if err := c.load(); err != nil {
		return c, err
	}
	return c, nil
}

// load replaces the in-memory list with the store contents.
func (c *client) load() error {
	records, err := c.store.Load()
	if err != nil {
		c.logger.Error().Err(err).Str("library", c.store.Path()).Msg("Failed to load library")
		return err
	}

	assigned, err := books.AssignMissingIDs(records, c.options.newID)
	if err != nil {
		return pkgerrors.WrapResource("assign", "book id", "", err)
	}

	c.books.Reset(records)
	c.logger.Debug().
		Str("library", c.store.Path()).
		Int("books", len(records)).
		Msg("Library loaded")

	if assigned > 0 {
		c.logger.Info().Int("assigned", assigned).Msg("Assigned IDs to legacy records")
		if err := c.store.Save(c.books.List()); err != nil {
			c.logger.Warn().Err(err).Msg("Could not persist assigned IDs")
		}
	}
	return nil
}

// save writes the full list. Callers hold c.mu.
func (c *client) save() error {
	if err := c.store.Save(c.books.List()); err != nil {
		c.logger.Warn().Err(err).Str("library", c.store.Path()).Msg("In-memory catalog is ahead of the library file")
		return err
	}
	return nil
}

// loggerFor prefers the request-scoped logger carried by ctx.
func (c *client) loggerFor(ctx context.Context) *zerolog.Logger {
	if l, ok := logging.Lookup(ctx); ok {
		return l
	}
	return c.logger
}

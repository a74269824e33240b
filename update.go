package bookshelf

import (
	"context"

	"github.com/agentstation/bookshelf/pkg/books"
	"github.com/agentstation/bookshelf/pkg/errors"
)

// Writer mutates the catalog. Each call validates, changes the in-memory
// list, then saves the whole list before returning.
//
// When the save fails the in-memory change is kept and the returned error
// is a *errors.PersistenceError alongside the affected book. Validation
// and position errors leave the catalog and the store untouched.
type Writer interface {
	// Add appends a new record with a fresh ID and the current time.
	Add(ctx context.Context, nb books.NewBook) (books.Book, error)

	// Remove deletes the record at index; later records shift down.
	Remove(ctx context.Context, index int) (books.Book, error)

	// RemoveByID deletes the record with the given ID.
	RemoveByID(ctx context.Context, id books.ID) (books.Book, error)

	// SetReadStatus sets the read flag of the record at index.
	SetReadStatus(ctx context.Context, index int, read bool) (books.Book, error)

	// SetReadStatusByID sets the read flag of the record with the given ID.
	SetReadStatusByID(ctx context.Context, id books.ID, read bool) (books.Book, error)

	// ToggleRead flips the read flag of the record with the given ID.
	ToggleRead(ctx context.Context, id books.ID) (books.Book, error)

	// Update applies a patch. ID and AddedAt never change.
	Update(ctx context.Context, id books.ID, patch books.Patch) (books.Book, error)
}

// Add validates nb and appends it.
func (c *client) Add(ctx context.Context, nb books.NewBook) (books.Book, error) {
	if err := ctx.Err(); err != nil {
		return books.Book{}, err
	}

	nb, err := c.validator.Validate(nb)
	if err != nil {
		return books.Book{}, err
	}

	id, err := c.options.newID()
	if err != nil {
		return books.Book{}, errors.WrapResource("create", "book", "", err)
	}
	book := nb.Build(id, c.options.clock())

	c.mu.Lock()
	c.books.Append(book)
	err = c.save()
	c.mu.Unlock()

	c.loggerFor(ctx).Debug().Str("book_id", id.String()).Str("title", book.Title).Msg("Book added")
	c.hooks.bookAdded(book)
	return book, err
}

// Remove deletes the record at index.
func (c *client) Remove(ctx context.Context, index int) (books.Book, error) {
	if err := ctx.Err(); err != nil {
		return books.Book{}, err
	}

	c.mu.Lock()
	removed, err := c.books.RemoveAt(index)
	if err != nil {
		c.mu.Unlock()
		return books.Book{}, err
	}
	err = c.save()
	c.mu.Unlock()

	c.loggerFor(ctx).Debug().Str("book_id", removed.ID.String()).Int("index", index).Msg("Book removed")
	c.hooks.bookRemoved(removed)
	return removed, err
}

// RemoveByID deletes the record with the given ID.
func (c *client) RemoveByID(ctx context.Context, id books.ID) (books.Book, error) {
	if err := ctx.Err(); err != nil {
		return books.Book{}, err
	}

	c.mu.Lock()
	index := c.books.IndexOf(id)
	if index < 0 {
		c.mu.Unlock()
		return books.Book{}, errors.NewNotFoundError("book", id.String())
	}
	removed, err := c.books.RemoveAt(index)
	if err != nil {
		c.mu.Unlock()
		return books.Book{}, err
	}
	err = c.save()
	c.mu.Unlock()

	c.loggerFor(ctx).Debug().Str("book_id", id.String()).Msg("Book removed")
	c.hooks.bookRemoved(removed)
	return removed, err
}

// SetReadStatus sets the read flag at index.
func (c *client) SetReadStatus(ctx context.Context, index int, read bool) (books.Book, error) {
	return c.modifyAt(ctx, func() (int, error) {
		if _, err := c.books.At(index); err != nil {
			return 0, err
		}
		return index, nil
	}, func(b books.Book) (books.Book, error) {
		b.ReadStatus = read
		return b, nil
	})
}

// SetReadStatusByID sets the read flag of the record with id.
func (c *client) SetReadStatusByID(ctx context.Context, id books.ID, read bool) (books.Book, error) {
	return c.modifyAt(ctx, c.locate(id), func(b books.Book) (books.Book, error) {
		b.ReadStatus = read
		return b, nil
	})
}

// ToggleRead flips the read flag of the record with id.
func (c *client) ToggleRead(ctx context.Context, id books.ID) (books.Book, error) {
	return c.modifyAt(ctx, c.locate(id), func(b books.Book) (books.Book, error) {
		b.ReadStatus = !b.ReadStatus
		return b, nil
	})
}

// Update applies patch to the record with id and re-validates it.
func (c *client) Update(ctx context.Context, id books.ID, patch books.Patch) (books.Book, error) {
	return c.modifyAt(ctx, c.locate(id), func(b books.Book) (books.Book, error) {
		if patch.IsEmpty() {
			return b, nil
		}
		nb, err := c.validator.Validate(patch.Apply(b))
		if err != nil {
			return b, err
		}
		updated := nb.Build(b.ID, b.AddedAt.Time)
		updated.AddedAt = b.AddedAt
		return updated, nil
	})
}

// locate returns a position finder for id. It runs under c.mu.
func (c *client) locate(id books.ID) func() (int, error) {
	return func() (int, error) {
		index := c.books.IndexOf(id)
		if index < 0 {
			return 0, errors.NewNotFoundError("book", id.String())
		}
		return index, nil
	}
}

// modifyAt replaces one record with change(record) and saves. Unchanged
// records are neither saved nor reported to hooks.
func (c *client) modifyAt(ctx context.Context, find func() (int, error), change func(books.Book) (books.Book, error)) (books.Book, error) {
	if err := ctx.Err(); err != nil {
		return books.Book{}, err
	}

	c.mu.Lock()
	index, err := find()
	if err != nil {
		c.mu.Unlock()
		return books.Book{}, err
	}
	old, err := c.books.At(index)
	if err != nil {
		c.mu.Unlock()
		return books.Book{}, err
	}
	updated, err := change(old)
	if err != nil {
		c.mu.Unlock()
		return old, err
	}
	if updated == old {
		c.mu.Unlock()
		return old, nil
	}
	if err := c.books.Replace(index, updated); err != nil {
		c.mu.Unlock()
		return old, err
	}
	err = c.save()
	c.mu.Unlock()

	c.loggerFor(ctx).Debug().Str("book_id", updated.ID.String()).Bool("read", updated.ReadStatus).Msg("Book updated")
	c.hooks.bookUpdated(old, updated)
	return updated, err
}

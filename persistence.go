package bookshelf

import (
	"bytes"
	"context"
	"os"
	"path/filepath"

	"github.com/agentstation/bookshelf/pkg/constants"
	"github.com/agentstation/bookshelf/pkg/errors"
	"github.com/agentstation/bookshelf/pkg/save"
)

// Compile-time interface check to ensure proper implementation.
var _ Persistence = (*client)(nil)

// Persistence handles catalog persistence operations.
type Persistence interface {
	// Path describes where the catalog is stored.
	Path() string

	// Reload discards the in-memory list and reads the store again.
	Reload(ctx context.Context) error

	// Save writes the current list to the store.
	Save(ctx context.Context) error

	// Export writes the current list to a path or writer in JSON or
	// YAML. It never changes the catalog or the store.
	Export(opts ...save.Option) error
}

// Path returns the store location.
func (c *client) Path() string {
	return c.store.Path()
}

// Reload reads the store again. On failure the in-memory list is kept.
func (c *client) Reload(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load()
}

// Save writes the current list to the store.
func (c *client) Save(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.save()
}

// Export writes the current list in the requested format.
func (c *client) Export(opts ...save.Option) error {
	options := save.Defaults().Apply(opts...)

	if options.Writer() == nil && options.Path() == "" {
		return &errors.ConfigError{
			Component: "export",
			Message:   "no output path or writer configured",
		}
	}
	if !options.Format().IsValid() {
		return errors.NewValidationError("format", options.Format().String(), "must be json or yaml")
	}

	var buf bytes.Buffer
	if err := save.Encode(&buf, options.Format(), c.books.List()); err != nil {
		return errors.WrapResource("encode", "export", options.Format().String(), err)
	}

	if w := options.Writer(); w != nil {
		_, err := w.Write(buf.Bytes())
		return errors.WrapIO("write", "export", err)
	}

	path := options.Path()
	if err := os.MkdirAll(filepath.Dir(path), constants.DirPermissions); err != nil {
		return errors.WrapIO("create", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, buf.Bytes(), constants.FilePermissions); err != nil {
		return errors.WrapIO("write", path, err)
	}
	c.logger.Debug().Str("path", path).Str("format", options.Format().String()).Msg("Exported catalog")
	return nil
}

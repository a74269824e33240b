package errors_test

import (
	"errors"
	"fmt"
	"testing"

	pkgerrors "github.com/agentstation/bookshelf/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := pkgerrors.New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestNotFoundError(t *testing.T) {
	t.Run("basic error", func(t *testing.T) {
		err := &pkgerrors.NotFoundError{
			Resource: "book",
			ID:       "book-abc",
		}
		assert.Equal(t, "book with ID book-abc not found", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrNotFound))
	})

	t.Run("wrapped error", func(t *testing.T) {
		base := pkgerrors.NewNotFoundError("book", "x")
		wrapped := fmt.Errorf("remove: %w", base)
		assert.True(t, pkgerrors.IsNotFound(wrapped))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("with field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{
			Field:   "title",
			Message: "is required",
		}
		assert.Equal(t, "validation failed for field title: is required", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrInvalidInput))
	})

	t.Run("without field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{Message: "bad book"}
		assert.Equal(t, "validation failed: bad book", err.Error())
		assert.True(t, pkgerrors.IsValidationError(err))
	})

	t.Run("constructor", func(t *testing.T) {
		err := pkgerrors.NewValidationError("publication_year", 999, "must be at least 1000")
		assert.Equal(t, 999, err.Value)
		assert.Contains(t, err.Error(), "publication_year")
	})
}

func TestIndexOutOfRangeError(t *testing.T) {
	t.Run("non-empty catalog", func(t *testing.T) {
		err := pkgerrors.NewIndexOutOfRangeError(5, 3)
		assert.Equal(t, "index 5 out of range [0, 3)", err.Error())
		assert.True(t, pkgerrors.IsIndexOutOfRange(err))
	})

	t.Run("empty catalog", func(t *testing.T) {
		err := pkgerrors.NewIndexOutOfRangeError(0, 0)
		assert.Contains(t, err.Error(), "catalog is empty")
	})

	t.Run("not a validation error", func(t *testing.T) {
		err := pkgerrors.NewIndexOutOfRangeError(-1, 2)
		assert.False(t, pkgerrors.IsValidationError(err))
	})
}

func TestPersistenceError(t *testing.T) {
	t.Run("unwraps to parse error", func(t *testing.T) {
		parse := pkgerrors.NewParseError("json", "library.json", "unexpected end", errors.New("eof"))
		err := pkgerrors.NewPersistenceError("load", "library.json", parse)

		assert.True(t, pkgerrors.IsPersistence(err))
		assert.Contains(t, err.Error(), "failed to load library library.json")

		var pe *pkgerrors.ParseError
		require.True(t, errors.As(err, &pe))
		assert.Equal(t, "json", pe.Format)
	})

	t.Run("without path", func(t *testing.T) {
		err := pkgerrors.NewPersistenceError("save", "", errors.New("disk full"))
		assert.Equal(t, "failed to save library: disk full", err.Error())
	})
}

func TestConfigError(t *testing.T) {
	base := errors.New("boom")
	err := pkgerrors.NewConfigError("library", "path is a directory", base)
	assert.Equal(t, "configuration error in library: path is a directory", err.Error())
	assert.Equal(t, base, errors.Unwrap(err))

	noComponent := &pkgerrors.ConfigError{Message: "missing"}
	assert.Equal(t, "configuration error: missing", noComponent.Error())
}

func TestParseError(t *testing.T) {
	t.Run("with file and position", func(t *testing.T) {
		err := &pkgerrors.ParseError{
			Format:  "json",
			File:    "library.json",
			Line:    3,
			Column:  7,
			Message: "invalid character",
		}
		assert.Equal(t, "parse error in json at library.json:3:7: invalid character", err.Error())
	})

	t.Run("format only", func(t *testing.T) {
		err := &pkgerrors.ParseError{Format: "yaml", Message: "bad indent"}
		assert.Equal(t, "yaml parse error: bad indent", err.Error())
	})
}

func TestIOError(t *testing.T) {
	base := errors.New("permission denied")
	err := pkgerrors.NewIOError("write", "/tmp/library.json", base)
	assert.Equal(t, "IO error during write of /tmp/library.json: permission denied", err.Error())
	assert.Equal(t, base, errors.Unwrap(err))
}

func TestWrapHelpers(t *testing.T) {
	t.Run("nil passthrough", func(t *testing.T) {
		assert.NoError(t, pkgerrors.WrapValidation("title", nil))
		assert.NoError(t, pkgerrors.WrapIO("read", "x", nil))
		assert.NoError(t, pkgerrors.WrapResource("create", "book", "", nil))
	})

	t.Run("WrapValidation", func(t *testing.T) {
		err := pkgerrors.WrapValidation("genre", errors.New("unknown genre"))
		assert.True(t, pkgerrors.IsValidationError(err))
	})

	t.Run("WrapResource", func(t *testing.T) {
		err := pkgerrors.WrapResource("create", "book", "book-1", errors.New("nope"))
		assert.Equal(t, "failed to create book book-1: nope", err.Error())
	})
}

func TestSentinelErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"not found", pkgerrors.NewNotFoundError("book", "1"), pkgerrors.ErrNotFound},
		{"validation", pkgerrors.NewValidationError("title", "", "is required"), pkgerrors.ErrInvalidInput},
		{"index", pkgerrors.NewIndexOutOfRangeError(1, 0), pkgerrors.ErrIndexOutOfRange},
		{"persistence", pkgerrors.NewPersistenceError("save", "p", errors.New("x")), pkgerrors.ErrPersistence},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tc.err, tc.sentinel)
		})
	}
}

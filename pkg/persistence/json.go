package persistence

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/agentstation/bookshelf/pkg/books"
	"github.com/agentstation/bookshelf/pkg/constants"
	"github.com/agentstation/bookshelf/pkg/errors"
	"github.com/agentstation/bookshelf/pkg/logging"
)

// JSONFile stores the catalog as a bare JSON array in a single file.
type JSONFile struct {
	path   string
	logger *zerolog.Logger
}

// Option configures a JSONFile.
type Option func(*JSONFile)

// WithLogger sets the logger used for load/save diagnostics.
func WithLogger(logger *zerolog.Logger) Option {
	return func(f *JSONFile) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// NewJSONFile returns a store backed by the file at path.
func NewJSONFile(path string, opts ...Option) *JSONFile {
	f := &JSONFile{
		path:   path,
		logger: logging.Default(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Path returns the library file path.
func (f *JSONFile) Path() string {
	return f.path
}

// Load reads the library file. A missing file, an empty file or a JSON
// null yields an empty catalog.
func (f *JSONFile) Load() ([]books.Book, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			f.logger.Debug().Str("library", f.path).Msg("Library file not found, starting empty")
			return []books.Book{}, nil
		}
		return nil, errors.NewPersistenceError("load", f.path, errors.WrapIO("read", f.path, err))
	}

	records, err := Decode(data)
	if err != nil {
		var pe *errors.ParseError
		if stderrors.As(err, &pe) {
			pe.File = f.path
		}
		return nil, errors.NewPersistenceError("load", f.path, err)
	}

	f.logger.Debug().Str("library", f.path).Int("books", len(records)).Msg("Loaded library")
	return records, nil
}

// Save writes records atomically: the array is written to a temporary
// file in the same directory, synced and renamed over the target.
func (f *JSONFile) Save(records []books.Book) error {
	data, err := Encode(records)
	if err != nil {
		return errors.NewPersistenceError("save", f.path, err)
	}

	if err := writeFileAtomic(f.path, data); err != nil {
		f.logger.Warn().Err(err).Str("library", f.path).Msg("Failed to save library")
		return errors.NewPersistenceError("save", f.path, err)
	}

	f.logger.Debug().Str("library", f.path).Int("books", len(records)).Msg("Saved library")
	return nil
}

// Encode renders records in the library file format.
func Encode(records []books.Book) ([]byte, error) {
	if records == nil {
		records = []books.Book{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding library: %w", err)
	}
	return append(data, '\n'), nil
}

// Decode parses the library file format.
func Decode(data []byte) ([]books.Book, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return []books.Book{}, nil
	}

	var records []books.Book
	if err := json.Unmarshal(trimmed, &records); err != nil {
		return nil, parseError(trimmed, err)
	}
	if records == nil {
		records = []books.Book{}
	}
	return records, nil
}

// parseError converts a decoding failure into a ParseError with the
// line and column of the offending byte when known.
func parseError(data []byte, err error) *errors.ParseError {
	pe := errors.NewParseError("json", "", err.Error(), err)

	var offset int64 = -1
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case stderrors.As(err, &syntaxErr):
		offset = syntaxErr.Offset
	case stderrors.As(err, &typeErr):
		offset = typeErr.Offset
	}
	if offset >= 0 && offset <= int64(len(data)) {
		before := data[:offset]
		pe.Line = bytes.Count(before, []byte("\n")) + 1
		pe.Column = int(offset) - bytes.LastIndexByte(before, '\n') - 1
		if pe.Column < 1 {
			pe.Column = 1
		}
	}
	return pe
}

func writeFileAtomic(path string, data []byte) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
		return errors.WrapIO("create", dir, err)
	}

	tempFile, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.WrapIO("create", "temp file", err)
	}
	tempPath := tempFile.Name()
	defer func() {
		if err != nil {
			_ = tempFile.Close()
			_ = os.Remove(tempPath)
		}
	}()

	if _, err = tempFile.Write(data); err != nil {
		return errors.WrapIO("write", tempPath, err)
	}
	if err = tempFile.Sync(); err != nil {
		return errors.WrapIO("sync", tempPath, err)
	}
	if err = tempFile.Close(); err != nil {
		return errors.WrapIO("close", tempPath, err)
	}
	if err = os.Chmod(tempPath, constants.FilePermissions); err != nil {
		return errors.WrapIO("chmod", tempPath, err)
	}
	if err = os.Rename(tempPath, path); err != nil {
		return errors.WrapIO("rename", path, err)
	}
	return nil
}

package app

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/bookshelf"
	"github.com/agentstation/bookshelf/internal/cmd/table"
	"github.com/agentstation/bookshelf/pkg/errors"
	"github.com/agentstation/bookshelf/pkg/logging"
)

// newTestApp returns an App over a library file in a temp directory.
func newTestApp(t *testing.T, opts ...Option) (*App, string) {
	t.Helper()
	library := filepath.Join(t.TempDir(), "library.json")
	config := &Config{
		Library:   library,
		MinYear:   1000,
		LogFormat: "json",
		LogOutput: "discard",
	}
	opts = append([]Option{WithConfig(config), WithLogger(logging.NewNopLogger())}, opts...)
	app, err := New("1.0.0", "abc123", "2024-01-01", "test", opts...)
	require.NoError(t, err)
	return app, library
}

// TestApp_New verifies app initialization.
func TestApp_New(t *testing.T) {
	app, library := newTestApp(t)

	if app.Version() != "1.0.0" {
		t.Errorf("Version() = %s, want 1.0.0", app.Version())
	}
	if app.Commit() != "abc123" {
		t.Errorf("Commit() = %s, want abc123", app.Commit())
	}
	if app.Date() != "2024-01-01" {
		t.Errorf("Date() = %s, want 2024-01-01", app.Date())
	}
	if app.BuiltBy() != "test" {
		t.Errorf("BuiltBy() = %s, want test", app.BuiltBy())
	}
	if app.Logger() == nil {
		t.Error("Logger() returned nil")
	}
	if app.Config().Library != library {
		t.Errorf("Config().Library = %s, want %s", app.Config().Library, library)
	}
}

// TestApp_Client_Singleton verifies that Client() returns the same instance.
func TestApp_Client_Singleton(t *testing.T) {
	app, library := newTestApp(t)

	c1, err := app.Client()
	require.NoError(t, err)
	c2, err := app.Client()
	require.NoError(t, err)

	assert.Same(t, c1, c2)
	assert.Equal(t, library, c1.Path())
}

// TestApp_Client_ThreadSafe verifies concurrent Client() calls are safe.
func TestApp_Client_ThreadSafe(t *testing.T) {
	app, _ := newTestApp(t)

	const goroutines = 50
	var wg sync.WaitGroup
	results := make([]bookshelf.Client, goroutines)
	errs := make([]error, goroutines)

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			results[idx], errs[idx] = app.Client()
		}(i)
	}
	wg.Wait()

	for i := range results {
		require.NoError(t, errs[i])
		assert.Same(t, results[0], results[i])
	}
}

// TestApp_Client_CorruptLibrary verifies a bad file is reported, not replaced.
func TestApp_Client_CorruptLibrary(t *testing.T) {
	app, library := newTestApp(t)
	require.NoError(t, os.WriteFile(library, []byte("{not json"), 0o644))

	_, err := app.Client()
	require.Error(t, err)
	assert.True(t, errors.IsPersistence(err))

	data, err := os.ReadFile(library)
	require.NoError(t, err)
	assert.Equal(t, "{not json", string(data))
}

// TestApp_Catalog_CorruptLibrary verifies read-only commands fall back to
// an empty catalog while mutations still refuse to run.
func TestApp_Catalog_CorruptLibrary(t *testing.T) {
	var out bytes.Buffer
	app, library := newTestApp(t, WithOutput(&out))
	require.NoError(t, os.WriteFile(library, []byte("{not json"), 0o644))

	c, err := app.Catalog()
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())

	ctx := context.Background()
	require.NoError(t, app.Execute(ctx, []string{"list", "-o", "json"}))
	require.NoError(t, app.Execute(ctx, []string{"stats", "-o", "json"}))

	err = app.Execute(ctx, []string{"add", "-t", "Beloved", "-a", "Toni Morrison", "-y", "1987"})
	require.Error(t, err)
	assert.True(t, errors.IsPersistence(err))

	data, err := os.ReadFile(library)
	require.NoError(t, err)
	assert.Equal(t, "{not json", string(data))
}

func TestApp_Client_RulesFromConfig(t *testing.T) {
	app, _ := newTestApp(t)
	app.config.MinYear = 1900
	app.config.FreeTextGenres = true

	c, err := app.Client()
	require.NoError(t, err)
	assert.Equal(t, 1900, c.Rules().MinYear)
	assert.True(t, c.Rules().FreeTextGenres)
}

func TestApp_WithConfigRejectsInvalid(t *testing.T) {
	_, err := New("1", "c", "d", "b", WithConfig(&Config{Library: " "}))
	require.Error(t, err)
}

// TestApp_Execute runs the full command tree against a real library file.
func TestApp_Execute(t *testing.T) {
	var out bytes.Buffer
	app, library := newTestApp(t, WithOutput(&out))
	ctx := context.Background()

	steps := [][]string{
		{"add", "--title", "The Hobbit", "--author", "J.R.R. Tolkien", "--year", "1937", "--genre", "fantasy"},
		{"add", "--title", "Gone Girl", "--author", "Gillian Flynn", "--year", "2012", "--genre", "Mystery"},
		{"add", "--title", "Sapiens", "--author", "Yuval Noah Harari", "--year", "2011", "--genre", "History"},
		{"mark", "1", "--read"},
		{"remove", "2"},
	}
	for _, args := range steps {
		require.NoError(t, app.Execute(ctx, args), "bookshelf %v", args)
	}

	out.Reset()
	require.NoError(t, app.Execute(ctx, []string{"list", "-o", "json"}))

	var entries []table.Entry
	require.NoError(t, json.Unmarshal(out.Bytes(), &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, "The Hobbit", entries[0].Book.Title)
	assert.True(t, entries[0].Book.ReadStatus)
	assert.Equal(t, "Sapiens", entries[1].Book.Title)
	assert.Equal(t, 2, entries[1].Position)

	// A fresh process sees the same library.
	reopened, err := bookshelf.New(bookshelf.WithLibraryPath(library), bookshelf.WithLogger(logging.NewNopLogger()))
	require.NoError(t, err)
	assert.Equal(t, 2, reopened.Len())
	assert.InDelta(t, 50.0, reopened.Stats().PercentRead, 0.001)
}

func TestApp_ExecuteRejectsUnknownFormat(t *testing.T) {
	app, _ := newTestApp(t, WithOutput(&bytes.Buffer{}))
	err := app.Execute(context.Background(), []string{"list", "-o", "xml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestApp_ExecuteLibraryFlag(t *testing.T) {
	var out bytes.Buffer
	app, defaultLibrary := newTestApp(t, WithOutput(&out))
	other := filepath.Join(t.TempDir(), "other.json")

	require.NoError(t, app.Execute(context.Background(), []string{
		"--library", other, "add", "-t", "Beloved", "-a", "Toni Morrison", "-y", "1987",
	}))

	assert.FileExists(t, other)
	assert.NoFileExists(t, defaultLibrary)
}

func TestApp_VersionCommand(t *testing.T) {
	var out bytes.Buffer
	app, _ := newTestApp(t, WithOutput(&out))

	require.NoError(t, app.Execute(context.Background(), []string{"version", "-v"}))
	assert.Contains(t, out.String(), "bookshelf 1.0.0")
	assert.Contains(t, out.String(), "commit:   abc123")
}

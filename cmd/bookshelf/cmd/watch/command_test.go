package watch_test

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/bookshelf"
	"github.com/agentstation/bookshelf/cmd/application"
	"github.com/agentstation/bookshelf/cmd/bookshelf/cmd/watch"
	"github.com/agentstation/bookshelf/pkg/books"
	"github.com/agentstation/bookshelf/pkg/logging"
	"github.com/agentstation/bookshelf/pkg/persistence"
)

// syncBuffer lets the test read output while the command writes it.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestWatchNeedsLibraryFile(t *testing.T) {
	mock, _, _ := application.TestMock(t)

	cmd := watch.NewCommand(mock)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs(nil)
	err := cmd.ExecuteContext(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "watch needs a library file")
}

func TestWatchRendersOnChange(t *testing.T) {
	path := t.TempDir() + "/library.json"
	require.NoError(t, persistence.NewJSONFile(path).Save(books.TestLibrary(t)))

	open := func() bookshelf.Client {
		c, err := bookshelf.New(
			bookshelf.WithLibraryPath(path),
			bookshelf.WithLogger(logging.NewNopLogger()),
		)
		require.NoError(t, err)
		return c
	}
	watched := open()
	mock := &application.Mock{ClientFunc: func() (bookshelf.Client, error) { return watched, nil }}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	out := &syncBuffer{}
	cmd := watch.NewCommand(mock)
	cmd.SetOut(out)
	cmd.SetErr(&syncBuffer{})
	cmd.SetArgs([]string{"--settle", "20ms"})

	done := make(chan error, 1)
	go func() { done <- cmd.ExecuteContext(ctx) }()

	require.Eventually(t, func() bool {
		return strings.Count(out.String(), "Summary") == 1
	}, 2*time.Second, 10*time.Millisecond)

	// A second process changes the file.
	writer := open()
	_, err := writer.Add(context.Background(), books.NewBook{
		Title: "Dune", Author: "Frank Herbert", PublicationYear: 1965, Genre: "Fiction",
	})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return strings.Count(out.String(), "Summary") >= 2
	}, 5*time.Second, 20*time.Millisecond)
	assert.Equal(t, 5, watched.Len())

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}
}

func TestWatchStopsWhenCancelled(t *testing.T) {
	path := t.TempDir() + "/library.json"
	c, err := bookshelf.New(bookshelf.WithLibraryPath(path), bookshelf.WithLogger(logging.NewNopLogger()))
	require.NoError(t, err)
	mock := &application.Mock{ClientFunc: func() (bookshelf.Client, error) { return c, nil }}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	cmd := watch.NewCommand(mock)
	cmd.SetOut(&out)
	cmd.SetArgs(nil)
	require.NoError(t, cmd.ExecuteContext(ctx))
	assert.Contains(t, out.String(), "Total books")
}

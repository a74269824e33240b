package remove_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/bookshelf/cmd/application"
	"github.com/agentstation/bookshelf/cmd/bookshelf/cmd/remove"
	"github.com/agentstation/bookshelf/pkg/books"
	pkgerrors "github.com/agentstation/bookshelf/pkg/errors"
)

func run(t *testing.T, app application.Application, args ...string) (string, error) {
	t.Helper()
	cmd := remove.NewCommand(app)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRemoveCommandShiftsPositions(t *testing.T) {
	mock, client, store := application.TestMock(t, books.TestLibrary(t)...)

	out, err := run(t, mock, "2")
	require.NoError(t, err)
	assert.Contains(t, out, `Removed "Gone Girl" by Gillian Flynn`)

	require.Equal(t, 3, client.Len())
	second, err := client.At(1)
	require.NoError(t, err)
	assert.Equal(t, "Sapiens", second.Title)
	assert.Equal(t, 1, store.Saves())
}

func TestRemoveCommandByID(t *testing.T) {
	mock, client, _ := application.TestMock(t, books.TestLibrary(t)...)

	_, err := run(t, mock, "book-1")
	require.NoError(t, err)
	assert.Equal(t, -1, client.IndexOf("book-1"))
}

func TestRemoveCommandStalePosition(t *testing.T) {
	mock, client, store := application.TestMock(t, books.TestLibrary(t)...)

	_, err := run(t, mock, "5")
	require.Error(t, err)
	assert.True(t, pkgerrors.IsIndexOutOfRange(err))
	assert.Equal(t, 4, client.Len())
	assert.Equal(t, 0, store.Saves())
}

func TestRemoveCommandSaveFailure(t *testing.T) {
	mock, client, store := application.TestMock(t, books.TestLibrary(t)...)
	store.FailSave = errors.New("disk full")

	_, err := run(t, mock, "1")
	require.Error(t, err)
	assert.True(t, pkgerrors.IsPersistence(err))
	assert.Equal(t, 3, client.Len(), "in-memory removal is kept")
}

package edit_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/bookshelf/cmd/application"
	"github.com/agentstation/bookshelf/cmd/bookshelf/cmd/edit"
	"github.com/agentstation/bookshelf/pkg/books"
	"github.com/agentstation/bookshelf/pkg/errors"
)

func run(t *testing.T, app application.Application, args ...string) (string, error) {
	t.Helper()
	cmd := edit.NewCommand(app)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestEditCommand(t *testing.T) {
	mock, client, store := application.TestMock(t, books.TestLibrary(t)...)
	before, err := client.Book("book-2")
	require.NoError(t, err)

	out, err := run(t, mock, "2", "--year", "2013", "--genre", "fiction", "--read")
	require.NoError(t, err)
	assert.Contains(t, out, `Updated "Gone Girl"`)

	after, err := client.Book("book-2")
	require.NoError(t, err)
	assert.Equal(t, 2013, after.PublicationYear)
	assert.Equal(t, "Fiction", after.Genre)
	assert.True(t, after.ReadStatus)
	assert.Equal(t, before.Title, after.Title)
	assert.Equal(t, before.AddedAt.String(), after.AddedAt.String())
	assert.Equal(t, 1, client.IndexOf("book-2"))
	assert.Equal(t, 1, store.Saves())
}

func TestEditCommandUnread(t *testing.T) {
	mock, client, _ := application.TestMock(t, books.TestLibrary(t)...)

	_, err := run(t, mock, "book-1", "--unread")
	require.NoError(t, err)

	got, err := client.Book("book-1")
	require.NoError(t, err)
	assert.False(t, got.ReadStatus)
}

func TestEditCommandRejects(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no fields", []string{"1"}},
		{"blank title", []string{"1", "--title", ""}},
		{"future year", []string{"1", "--year", "9999"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, client, store := application.TestMock(t, books.TestLibrary(t)...)

			_, err := run(t, mock, tt.args...)
			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err))
			assert.Equal(t, 0, store.Saves())

			got, err := client.At(0)
			require.NoError(t, err)
			assert.Equal(t, books.TestLibrary(t)[0].Title, got.Title)
		})
	}
}

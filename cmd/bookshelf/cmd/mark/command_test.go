package mark_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/bookshelf/cmd/application"
	"github.com/agentstation/bookshelf/cmd/bookshelf/cmd/mark"
	"github.com/agentstation/bookshelf/pkg/books"
)

func run(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestMarkCommand(t *testing.T) {
	mock, client, store := application.TestMock(t, books.TestLibrary(t)...)

	out, err := run(t, mark.NewCommand(mock), "2", "--read")
	require.NoError(t, err)
	assert.Contains(t, out, `"Gone Girl" is now Read`)

	got, err := client.Book("book-2")
	require.NoError(t, err)
	assert.True(t, got.ReadStatus)
	assert.Equal(t, 1, store.Saves())

	_, err = run(t, mark.NewCommand(mock), "book-2", "--unread")
	require.NoError(t, err)
	got, err = client.Book("book-2")
	require.NoError(t, err)
	assert.False(t, got.ReadStatus)
}

func TestMarkCommandNeedsExactlyOneFlag(t *testing.T) {
	mock, _, store := application.TestMock(t, books.TestLibrary(t)...)

	_, err := run(t, mark.NewCommand(mock), "1")
	assert.Error(t, err)

	_, err = run(t, mark.NewCommand(mock), "1", "--read", "--unread")
	assert.Error(t, err)
	assert.Equal(t, 0, store.Saves())
}

func TestToggleCommand(t *testing.T) {
	mock, client, _ := application.TestMock(t, books.TestLibrary(t)...)

	out, err := run(t, mark.NewToggleCommand(mock), "1")
	require.NoError(t, err)
	assert.Contains(t, out, `"The Hobbit" is now Unread`)

	got, err := client.At(0)
	require.NoError(t, err)
	assert.False(t, got.ReadStatus)
}

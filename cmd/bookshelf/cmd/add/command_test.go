package add_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/bookshelf/cmd/application"
	"github.com/agentstation/bookshelf/cmd/bookshelf/cmd/add"
	"github.com/agentstation/bookshelf/pkg/books"
	"github.com/agentstation/bookshelf/pkg/errors"
)

func run(t *testing.T, app application.Application, args ...string) (string, error) {
	t.Helper()
	cmd := add.NewCommand(app)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestAddCommand(t *testing.T) {
	mock, client, store := application.TestMock(t, books.TestLibrary(t)...)

	out, err := run(t, mock, "--title", "Dune", "--author", "Frank Herbert", "--year", "1965", "--genre", "fiction", "--read")
	require.NoError(t, err)

	assert.Contains(t, out, `Added "Dune" by Frank Herbert`)
	assert.Contains(t, out, "position 5, id book-new1")

	require.Equal(t, 5, client.Len())
	got, err := client.At(4)
	require.NoError(t, err)
	assert.Equal(t, "Fiction", got.Genre)
	assert.True(t, got.ReadStatus)
	assert.Equal(t, 1, store.Saves())
}

func TestAddCommandDefaultsGenre(t *testing.T) {
	mock, client, _ := application.TestMock(t)

	_, err := run(t, mock, "-t", "Beloved", "-a", "Toni Morrison", "-y", "1987")
	require.NoError(t, err)

	got, err := client.At(0)
	require.NoError(t, err)
	assert.Equal(t, "Fiction", got.Genre)
	assert.False(t, got.ReadStatus)
}

func TestAddCommandRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"blank title", []string{"--title", "  ", "--author", "A", "--year", "2000"}},
		{"year too early", []string{"--title", "T", "--author", "A", "--year", "999"}},
		{"unknown genre", []string{"--title", "T", "--author", "A", "--year", "2000", "--genre", "Cookbook"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, client, store := application.TestMock(t)

			_, err := run(t, mock, tt.args...)
			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err))
			assert.Equal(t, 0, client.Len())
			assert.Equal(t, 0, store.Saves())
		})
	}
}

func TestAddCommandRequiresFlags(t *testing.T) {
	mock, _, _ := application.TestMock(t)

	_, err := run(t, mock, "--title", "Only a title")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag")
}

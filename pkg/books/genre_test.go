package books_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agentstation/bookshelf/pkg/books"
)

func TestParseGenre(t *testing.T) {
	tests := []struct {
		in   string
		want books.Genre
		ok   bool
	}{
		{"Fiction", books.GenreFiction, true},
		{"fiction", books.GenreFiction, true},
		{"NON-FICTION", books.GenreNonFiction, true},
		{"self-help", books.GenreSelfHelp, true},
		{"Cyberpunk", "", false},
		{"", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, ok := books.ParseGenre(tc.in)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCanonicalGenre(t *testing.T) {
	g, ok := books.CanonicalGenre("mystery", false)
	assert.True(t, ok)
	assert.Equal(t, "Mystery", g)

	_, ok = books.CanonicalGenre("Cyberpunk", false)
	assert.False(t, ok)

	g, ok = books.CanonicalGenre("Cyberpunk", true)
	assert.True(t, ok)
	assert.Equal(t, "Cyberpunk", g)

	_, ok = books.CanonicalGenre("", true)
	assert.False(t, ok)
}

func TestGenresIsACopy(t *testing.T) {
	list := books.Genres()
	assert.Len(t, list, 12)
	assert.Equal(t, books.GenreFiction, list[0])
	assert.Equal(t, books.GenreOther, list[len(list)-1])

	list[0] = "Changed"
	assert.Equal(t, books.GenreFiction, books.Genres()[0])
}

package books_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/bookshelf/pkg/books"
	"github.com/agentstation/bookshelf/pkg/errors"
)

func TestBooks_AppendPreservesOrder(t *testing.T) {
	b := books.NewBooks()
	lib := books.TestLibrary(t)
	for _, book := range lib {
		b.Append(book)
	}

	require.Equal(t, len(lib), b.Len())
	last, err := b.At(b.Len() - 1)
	require.NoError(t, err)
	assert.Equal(t, lib[len(lib)-1], last)
	assert.Equal(t, lib, b.List())
}

func TestBooks_RemoveShiftsIndices(t *testing.T) {
	lib := books.TestLibrary(t)
	b := books.NewBooks(books.WithBooksList(lib))

	removed, err := b.RemoveAt(1)
	require.NoError(t, err)
	assert.Equal(t, lib[1], removed)

	assert.Equal(t, len(lib)-1, b.Len())
	for i := 1; i < b.Len(); i++ {
		got, err := b.At(i)
		require.NoError(t, err)
		assert.Equal(t, lib[i+1], got, "index %d", i)
	}
}

func TestBooks_IndexErrors(t *testing.T) {
	b := books.NewBooks(books.WithBooksList(books.TestLibrary(t)))

	for _, idx := range []int{-1, 4, 100} {
		_, err := b.RemoveAt(idx)
		assert.True(t, errors.IsIndexOutOfRange(err), "RemoveAt(%d)", idx)

		_, err = b.At(idx)
		assert.True(t, errors.IsIndexOutOfRange(err), "At(%d)", idx)

		err = b.Replace(idx, books.Book{})
		assert.True(t, errors.IsIndexOutOfRange(err), "Replace(%d)", idx)
	}
	assert.Equal(t, 4, b.Len())

	empty := books.NewBooks()
	_, err := empty.RemoveAt(0)
	assert.Contains(t, err.Error(), "catalog is empty")
}

func TestBooks_FindAndIndexOf(t *testing.T) {
	b := books.NewBooks(books.WithBooksList(books.TestLibrary(t)))

	assert.Equal(t, 2, b.IndexOf("book-3"))
	assert.Equal(t, -1, b.IndexOf("book-missing"))
	assert.Equal(t, -1, b.IndexOf(""))

	got, err := b.Find("book-2")
	require.NoError(t, err)
	assert.Equal(t, "Gone Girl", got.Title)

	_, err = b.Find("book-missing")
	assert.True(t, errors.IsNotFound(err))
}

func TestBooks_ReplaceReset(t *testing.T) {
	lib := books.TestLibrary(t)
	b := books.NewBooks(books.WithBooksList(lib))

	updated := lib[0]
	updated.ReadStatus = false
	require.NoError(t, b.Replace(0, updated))
	got, _ := b.At(0)
	assert.False(t, got.ReadStatus)

	removed, err := b.RemoveAt(2)
	require.NoError(t, err)
	got, _ = b.At(2)
	assert.NotEqual(t, removed.ID, got.ID)
	assert.Equal(t, 3, b.Len())

	b.Reset(nil)
	assert.Equal(t, 0, b.Len())
	assert.NotNil(t, b.List())
}

func TestBooks_ListIsACopy(t *testing.T) {
	b := books.NewBooks(books.WithBooksList(books.TestLibrary(t)))
	list := b.List()
	list[0].Title = "changed"

	got, _ := b.At(0)
	assert.Equal(t, "The Hobbit", got.Title)
}

func TestBooks_Search(t *testing.T) {
	b := books.NewBooks(books.WithBooksList(books.TestLibrary(t)))

	tests := []struct {
		name  string
		term  string
		field books.Field
		want  []books.ID
	}{
		{"lowercase title", "hobbit", books.FieldTitle, []books.ID{"book-1"}},
		{"uppercase title", "HOBBIT", books.FieldTitle, []books.ID{"book-1"}},
		{"author keeps order", "tolkien", books.FieldAuthor, []books.ID{"book-1", "book-4"}},
		{"genre", "fant", books.FieldGenre, []books.ID{"book-1", "book-4"}},
		{"surrounding space trimmed", "  sapiens ", books.FieldTitle, []books.ID{"book-3"}},
		{"no match", "zzz", books.FieldTitle, nil},
		{"blank term", "   ", books.FieldTitle, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := b.Search(tc.term, tc.field)
			require.NotNil(t, got)
			ids := make([]books.ID, 0, len(got))
			for _, book := range got {
				ids = append(ids, book.ID)
			}
			if tc.want == nil {
				assert.Empty(t, ids)
				return
			}
			assert.Equal(t, tc.want, ids)
		})
	}
}

func TestParseField(t *testing.T) {
	f, err := books.ParseField(" Author ")
	require.NoError(t, err)
	assert.Equal(t, books.FieldAuthor, f)

	_, err = books.ParseField("isbn")
	assert.True(t, errors.IsValidationError(err))
	assert.Len(t, books.Fields(), 3)
}

func TestMatches_UnicodeFolding(t *testing.T) {
	b := books.Book{Title: "Straße der Ölsucher"}
	assert.True(t, books.Matches(b, "ÖLSUCHER", books.FieldTitle))
	assert.False(t, books.Matches(b, "", books.FieldTitle))
}

func TestAssignMissingIDs(t *testing.T) {
	list := books.TestLibrary(t)
	list[1].ID = ""
	list[3].ID = ""

	n, err := books.AssignMissingIDs(list, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, books.ID("book-1"), list[0].ID)
	assert.NotEmpty(t, list[1].ID)
	assert.NotEqual(t, list[1].ID, list[3].ID)

	t.Run("custom generator", func(t *testing.T) {
		list := books.TestLibrary(t)
		list[0].ID = ""
		n, err := books.AssignMissingIDs(list, func() (books.ID, error) { return "book-legacy", nil })
		require.NoError(t, err)
		assert.Equal(t, 1, n)
		assert.Equal(t, books.ID("book-legacy"), list[0].ID)
	})

	t.Run("generator failure", func(t *testing.T) {
		list := books.TestLibrary(t)
		list[2].ID = ""
		_, err := books.AssignMissingIDs(list, func() (books.ID, error) { return "", errors.New("no entropy") })
		assert.Error(t, err)
	})
}

func TestBooks_ConcurrentReaders(t *testing.T) {
	b := books.NewBooks()
	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				b.Append(books.TestBook(t))
				return
			}
			_ = b.Search("hobbit", books.FieldTitle)
			_ = b.Stats()
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 10, b.Len())
}

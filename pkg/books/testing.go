package books

import (
	"testing"
	"time"
)

// TestTime is the fixed clock used by test helpers.
var TestTime = time.Date(2024, time.March, 9, 14, 5, 0, 0, time.Local)

// TestBook creates a test record with sensible defaults.
func TestBook(t testing.TB) Book {
	t.Helper()
	return Book{
		ID:              "book-test",
		Title:           "The Hobbit",
		Author:          "J.R.R. Tolkien",
		PublicationYear: 1937,
		Genre:           string(GenreFantasy),
		AddedAt:         NewTimestamp(TestTime),
	}
}

// TestNewBook creates a valid draft.
func TestNewBook(t testing.TB) NewBook {
	t.Helper()
	return TestBook(t).Draft()
}

// TestLibrary returns a small catalog with distinct IDs.
func TestLibrary(t testing.TB) []Book {
	t.Helper()
	mk := func(id ID, title, author string, year int, genre Genre, read bool) Book {
		return Book{
			ID:              id,
			Title:           title,
			Author:          author,
			PublicationYear: year,
			Genre:           string(genre),
			ReadStatus:      read,
			AddedAt:         NewTimestamp(TestTime),
		}
	}
	return []Book{
		mk("book-1", "The Hobbit", "J.R.R. Tolkien", 1937, GenreFantasy, true),
		mk("book-2", "Gone Girl", "Gillian Flynn", 2012, GenreMystery, false),
		mk("book-3", "Sapiens", "Yuval Noah Harari", 2011, GenreHistory, false),
		mk("book-4", "The Silmarillion", "J.R.R. Tolkien", 1977, GenreFantasy, false),
	}
}

package books

import (
	"golang.org/x/text/cases"
)

// Genre is one of the enumerated catalog genres.
type Genre string

// Genre constants.
const (
	GenreFiction    Genre = "Fiction"
	GenreNonFiction Genre = "Non-Fiction"
	GenreBiography  Genre = "Biography"
	GenreMystery    Genre = "Mystery"
	GenreFantasy    Genre = "Fantasy"
	GenreRomance    Genre = "Romance"
	GenrePoetry     Genre = "Poetry"
	GenreSelfHelp   Genre = "Self-Help"
	GenreArt        Genre = "Art"
	GenreReligion   Genre = "Religion"
	GenreHistory    Genre = "History"
	GenreOther      Genre = "Other"
)

var genres = []Genre{
	GenreFiction,
	GenreNonFiction,
	GenreBiography,
	GenreMystery,
	GenreFantasy,
	GenreRomance,
	GenrePoetry,
	GenreSelfHelp,
	GenreArt,
	GenreReligion,
	GenreHistory,
	GenreOther,
}

// Genres returns the enumerated genres in display order.
func Genres() []Genre {
	out := make([]Genre, len(genres))
	copy(out, genres)
	return out
}

// String returns the genre name.
func (g Genre) String() string {
	return string(g)
}

// ParseGenre matches s against the enumerated genres ignoring case and
// returns the canonical spelling.
func ParseGenre(s string) (Genre, bool) {
	fold := cases.Fold()
	want := fold.String(s)
	for _, g := range genres {
		if fold.String(string(g)) == want {
			return g, true
		}
	}
	return "", false
}

// CanonicalGenre returns the canonical spelling of s. With freeText,
// unknown non-empty genres are accepted as typed.
func CanonicalGenre(s string, freeText bool) (string, bool) {
	if g, ok := ParseGenre(s); ok {
		return string(g), true
	}
	if freeText && s != "" {
		return s, true
	}
	return s, false
}

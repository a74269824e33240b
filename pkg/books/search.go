package books

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/agentstation/bookshelf/pkg/errors"
)

// Field names a searchable record attribute.
type Field string

// Searchable fields.
const (
	FieldTitle  Field = "title"
	FieldAuthor Field = "author"
	FieldGenre  Field = "genre"
)

// Fields returns the searchable fields.
func Fields() []Field {
	return []Field{FieldTitle, FieldAuthor, FieldGenre}
}

// ParseField parses a field name, ignoring case.
func ParseField(s string) (Field, error) {
	f := Field(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case FieldTitle, FieldAuthor, FieldGenre:
		return f, nil
	}
	return "", errors.NewValidationError("field", s, "must be one of: title, author, genre")
}

// Value returns the attribute of b named by f.
func (f Field) Value(b Book) string {
	switch f {
	case FieldAuthor:
		return b.Author
	case FieldGenre:
		return b.Genre
	default:
		return b.Title
	}
}

type matcher struct {
	fold  cases.Caser
	term  string
	field Field
}

// newMatcher returns nil for a blank term.
func newMatcher(term string, field Field) *matcher {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil
	}
	m := &matcher{fold: cases.Fold(), field: field}
	m.term = m.fold.String(term)
	return m
}

func (m *matcher) match(b Book) bool {
	return strings.Contains(m.fold.String(m.field.Value(b)), m.term)
}

// Matches reports whether b's field contains term, ignoring case.
func Matches(b Book, term string, field Field) bool {
	m := newMatcher(term, field)
	return m != nil && m.match(b)
}

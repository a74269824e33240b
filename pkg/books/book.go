// Package books defines the catalog record, the ordered in-memory
// collection that holds records, and the statistics computed over them.
//
// The JSON field names of Book are the durable file format and must not
// change: id, title, author, publication_year, genre, read_status and
// added_date.
package books

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/agentstation/bookshelf/internal/id"
	"github.com/agentstation/bookshelf/pkg/constants"
)

// ID is the stable identifier of a book. Unlike positions, IDs survive
// removals of other records.
type ID string

// NewID returns a fresh book identifier.
func NewID() (ID, error) {
	s, err := id.Generate(constants.IDPrefix)
	if err != nil {
		return "", err
	}
	return ID(s), nil
}

// String returns the ID as a string.
func (i ID) String() string {
	return string(i)
}

// Book is one catalog record.
type Book struct {
	ID              ID        `json:"id,omitempty" yaml:"id,omitempty"`
	Title           string    `json:"title" yaml:"title"`
	Author          string    `json:"author" yaml:"author"`
	PublicationYear int       `json:"publication_year" yaml:"publication_year"`
	Genre           string    `json:"genre" yaml:"genre"`
	ReadStatus      bool      `json:"read_status" yaml:"read_status"`
	AddedAt         Timestamp `json:"added_date" yaml:"added_date"`
}

// Status returns a human label for the read flag.
func (b Book) Status() string {
	if b.ReadStatus {
		return "Read"
	}
	return "Unread"
}

// Decade returns the decade bucket of the publication year.
func (b Book) Decade() int {
	return DecadeOf(b.PublicationYear)
}

// Draft returns the editable fields of b.
func (b Book) Draft() NewBook {
	return NewBook{
		Title:           b.Title,
		Author:          b.Author,
		PublicationYear: b.PublicationYear,
		Genre:           b.Genre,
		ReadStatus:      b.ReadStatus,
	}
}

// NewBook is the input for creating a record. It carries only user
// supplied fields; ID and AddedAt are assigned by the catalog.
type NewBook struct {
	Title           string `json:"title" validate:"required,max=100"`
	Author          string `json:"author" validate:"required,max=100"`
	PublicationYear int    `json:"publication_year" validate:"pubyear"`
	Genre           string `json:"genre" validate:"required,max=64,genre"`
	ReadStatus      bool   `json:"read_status"`
}

// Normalize trims surrounding whitespace from the text fields.
func (nb NewBook) Normalize() NewBook {
	nb.Title = strings.TrimSpace(nb.Title)
	nb.Author = strings.TrimSpace(nb.Author)
	nb.Genre = strings.TrimSpace(nb.Genre)
	return nb
}

// Build turns a validated draft into a record.
func (nb NewBook) Build(bookID ID, addedAt time.Time) Book {
	return Book{
		ID:              bookID,
		Title:           nb.Title,
		Author:          nb.Author,
		PublicationYear: nb.PublicationYear,
		Genre:           nb.Genre,
		ReadStatus:      nb.ReadStatus,
		AddedAt:         NewTimestamp(addedAt),
	}
}

// Patch is a partial update. Nil fields are left unchanged. ID and
// AddedAt are not patchable.
type Patch struct {
	Title           *string `json:"title,omitempty"`
	Author          *string `json:"author,omitempty"`
	PublicationYear *int    `json:"publication_year,omitempty"`
	Genre           *string `json:"genre,omitempty"`
	ReadStatus      *bool   `json:"read_status,omitempty"`
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.Title == nil && p.Author == nil && p.PublicationYear == nil &&
		p.Genre == nil && p.ReadStatus == nil
}

// Apply returns the draft of b with the patch applied.
func (p Patch) Apply(b Book) NewBook {
	nb := b.Draft()
	if p.Title != nil {
		nb.Title = *p.Title
	}
	if p.Author != nil {
		nb.Author = *p.Author
	}
	if p.PublicationYear != nil {
		nb.PublicationYear = *p.PublicationYear
	}
	if p.Genre != nil {
		nb.Genre = *p.Genre
	}
	if p.ReadStatus != nil {
		nb.ReadStatus = *p.ReadStatus
	}
	return nb
}

// Timestamp is the time a record was added. It serialises as local wall
// clock text in the "2006-01-02 15:04:05" layout.
type Timestamp struct {
	time.Time
}

// NewTimestamp truncates t to whole seconds, the file's resolution.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t.Truncate(time.Second)}
}

// ParseTimestamp parses the file layout, accepting RFC 3339 as well.
func ParseTimestamp(s string) (Timestamp, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Timestamp{}, nil
	}
	if t, err := time.ParseInLocation(constants.AddedDateLayout, s, time.Local); err == nil {
		return Timestamp{Time: t}, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return Timestamp{}, fmt.Errorf("invalid added_date %q: want %s", s, constants.AddedDateLayout)
	}
	return Timestamp{Time: t}, nil
}

// String formats the timestamp in the file layout.
func (ts Timestamp) String() string {
	if ts.IsZero() {
		return ""
	}
	return ts.Format(constants.AddedDateLayout)
}

// MarshalJSON implements json.Marshaler.
func (ts Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(ts.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*ts = Timestamp{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("added_date must be a string: %w", err)
	}
	parsed, err := ParseTimestamp(s)
	if err != nil {
		return err
	}
	*ts = parsed
	return nil
}

// MarshalYAML renders the timestamp as plain text.
func (ts Timestamp) MarshalYAML() (any, error) {
	return ts.String(), nil
}

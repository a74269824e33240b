package table

import (
	"strconv"

	"github.com/agentstation/bookshelf/internal/cmd/emoji"
	"github.com/agentstation/bookshelf/pkg/books"
)

// Entry is a book with its 1-based display position.
type Entry struct {
	Position int        `json:"position" yaml:"position"`
	Book     books.Book `json:"book" yaml:"book"`
}

// Entries numbers list from 1 in order.
func Entries(list []books.Book) []Entry {
	out := make([]Entry, len(list))
	for i, b := range list {
		out[i] = Entry{Position: i + 1, Book: b}
	}
	return out
}

// BooksToTableData converts entries to table format. Wide adds the ID
// and added date columns.
func BooksToTableData(entries []Entry, wide bool) Data {
	headers := []string{"#", "Title", "Author", "Year", "Genre", "Read"}
	align := []Align{AlignRight, AlignLeft, AlignLeft, AlignRight, AlignLeft, AlignCenter}
	if wide {
		headers = append(headers, "ID", "Added")
		align = append(align, AlignLeft, AlignLeft)
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		row := []string{
			strconv.Itoa(e.Position),
			Truncate(e.Book.Title, 48),
			Truncate(e.Book.Author, 32),
			strconv.Itoa(e.Book.PublicationYear),
			e.Book.Genre,
			ReadMark(e.Book.ReadStatus),
		}
		if wide {
			row = append(row, e.Book.ID.String(), e.Book.AddedAt.String())
		}
		rows = append(rows, row)
	}

	return Data{
		Headers:         headers,
		Rows:            rows,
		ColumnAlignment: align,
	}
}

// BookToTableData renders a single book as property/value rows.
func BookToTableData(e Entry) Data {
	b := e.Book
	return Data{
		Headers: []string{"Property", "Value"},
		Rows: [][]string{
			{"Position", strconv.Itoa(e.Position)},
			{"ID", b.ID.String()},
			{"Title", b.Title},
			{"Author", b.Author},
			{"Year", strconv.Itoa(b.PublicationYear)},
			{"Genre", b.Genre},
			{"Status", b.Status()},
			{"Added", b.AddedAt.String()},
		},
	}
}

// GenresToTableData lists the enumerated genres.
func GenresToTableData(genres []books.Genre) Data {
	rows := make([][]string, len(genres))
	for i, g := range genres {
		rows[i] = []string{g.String()}
	}
	return Data{Headers: []string{"Genre"}, Rows: rows}
}

// ReadMark renders the read flag.
func ReadMark(read bool) string {
	if read {
		return emoji.Read
	}
	return emoji.Unread
}

// Truncate shortens s to at most n runes, marking the cut with "...".
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n || n < 4 {
		return s
	}
	return string(r[:n-3]) + "..."
}

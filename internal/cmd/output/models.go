package output

import (
	"fmt"
	"io"

	"github.com/agentstation/bookshelf/internal/cmd/constants"
	"github.com/agentstation/bookshelf/internal/cmd/globals"
	"github.com/agentstation/bookshelf/internal/cmd/table"
	"github.com/agentstation/bookshelf/pkg/books"
)

// StatsReport is the structured form of the stats command output.
type StatsReport struct {
	Summary    books.Stats   `json:"summary" yaml:"summary"`
	TopGenres  []books.Count `json:"top_genres" yaml:"top_genres"`
	TopAuthors []books.Count `json:"top_authors" yaml:"top_authors"`
}

// FormatBooks writes numbered entries in the requested format.
func FormatBooks(w io.Writer, entries []table.Entry, globalFlags *globals.Flags) error {
	formatter := NewFormatter(Format(globalFlags.Format))

	var outputData any
	if constants.IsTable(globalFlags.Format) {
		outputData = table.BooksToTableData(entries, globalFlags.Format == constants.FormatWide)
	} else {
		outputData = entries
	}

	return formatter.Format(w, outputData)
}

// FormatBook writes one book in the requested format.
func FormatBook(w io.Writer, entry table.Entry, globalFlags *globals.Flags) error {
	formatter := NewFormatter(Format(globalFlags.Format))

	var outputData any
	if constants.IsTable(globalFlags.Format) {
		outputData = table.BookToTableData(entry)
	} else {
		outputData = entry
	}

	return formatter.Format(w, outputData)
}

// FormatStats writes the statistics report. Tables render as separate
// titled sections.
func FormatStats(w io.Writer, report StatsReport, globalFlags *globals.Flags) error {
	if !constants.IsTable(globalFlags.Format) {
		return NewFormatter(Format(globalFlags.Format)).Format(w, report)
	}

	s := report.Summary
	sections := []struct {
		title string
		data  table.Data
		empty bool
	}{
		{"Summary", table.StatsSummaryToTableData(s), false},
		{"Top genres", table.CountsToTableData("Genre", report.TopGenres, s.TotalBooks), len(report.TopGenres) == 0},
		{"Top authors", table.CountsToTableData("Author", report.TopAuthors, s.TotalBooks), len(report.TopAuthors) == 0},
		{"By decade", table.DecadesToTableData(s.Decades), len(s.Decades) == 0},
	}

	formatter := &TableFormatter{}
	for i, sec := range sections {
		if sec.empty {
			continue
		}
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s\n", sec.title)
		if err := formatter.Format(w, sec.data); err != nil {
			return err
		}
	}
	return nil
}

// FormatAny handles the common pattern of formatting any data type for output.
func FormatAny(w io.Writer, data any, globalFlags *globals.Flags) error {
	formatter := NewFormatter(Format(globalFlags.Format))
	return formatter.Format(w, data)
}

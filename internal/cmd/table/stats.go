package table

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/agentstation/bookshelf/internal/cmd/emoji"
	"github.com/agentstation/bookshelf/pkg/books"
)

// StatsSummaryToTableData renders the headline numbers.
func StatsSummaryToTableData(s books.Stats) Data {
	return Data{
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Total books", strconv.Itoa(s.TotalBooks)},
			{"Read", strconv.Itoa(s.ReadBooks)},
			{"Unread", strconv.Itoa(s.UnreadBooks)},
			{"Percent read", FormatPercent(s.PercentRead)},
		},
		ColumnAlignment: []Align{AlignLeft, AlignRight},
	}
}

// CountsToTableData renders a ranked count list with a share column.
func CountsToTableData(label string, counts []books.Count, total int) Data {
	rows := make([][]string, 0, len(counts))
	for i, c := range counts {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			c.Key,
			strconv.Itoa(c.Count),
			FormatPercent(share(c.Count, total)),
		})
	}
	return Data{
		Headers:         []string{"Rank", label, "Books", "Share"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignRight, AlignLeft, AlignRight, AlignRight},
	}
}

// DecadesToTableData renders decade counts with a text histogram.
func DecadesToTableData(decades []books.DecadeCount) Data {
	maxCount := 0
	for _, d := range decades {
		maxCount = max(maxCount, d.Count)
	}

	rows := make([][]string, 0, len(decades))
	for _, d := range decades {
		rows = append(rows, []string{
			d.Label(),
			strconv.Itoa(d.Count),
			Bar(d.Count, maxCount, 20),
		})
	}
	return Data{
		Headers:         []string{"Decade", "Books", ""},
		Rows:            rows,
		ColumnAlignment: []Align{AlignLeft, AlignRight, AlignLeft},
	}
}

// FormatPercent renders a percentage with one decimal place.
func FormatPercent(p float64) string {
	return fmt.Sprintf("%.1f%%", p)
}

// Bar renders n scaled against maxN as at most width blocks. Any
// non-zero count gets at least one block.
func Bar(n, maxN, width int) string {
	if n <= 0 || maxN <= 0 || width <= 0 {
		return ""
	}
	blocks := n * width / maxN
	if blocks == 0 {
		blocks = 1
	}
	return strings.Repeat(emoji.Bar, blocks)
}

func share(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total) * 100
}

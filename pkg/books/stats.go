package books

import (
	"fmt"
	"sort"
)

// Count is a frequency entry for a genre or author.
type Count struct {
	Key   string `json:"key" yaml:"key"`
	Count int    `json:"count" yaml:"count"`
}

// DecadeCount is the number of records published in a decade.
type DecadeCount struct {
	Decade int `json:"decade" yaml:"decade"`
	Count  int `json:"count" yaml:"count"`
}

// Label returns the decade as "1990s".
func (d DecadeCount) Label() string {
	return DecadeLabel(d.Decade)
}

// Stats is a read-only snapshot computed from a record list.
type Stats struct {
	TotalBooks  int           `json:"total_books" yaml:"total_books"`
	ReadBooks   int           `json:"read_books" yaml:"read_books"`
	UnreadBooks int           `json:"unread_books" yaml:"unread_books"`
	PercentRead float64       `json:"percent_read" yaml:"percent_read"`
	Genres      []Count       `json:"genres" yaml:"genres"`
	Authors     []Count       `json:"authors" yaml:"authors"`
	Decades     []DecadeCount `json:"decades" yaml:"decades"`
}

// ComputeStats derives statistics from list. Genre and author counts are
// ordered by descending count with ties kept in first-seen order; decades
// are ascending.
func ComputeStats(list []Book) Stats {
	s := Stats{
		TotalBooks: len(list),
		Genres:     []Count{},
		Authors:    []Count{},
		Decades:    []DecadeCount{},
	}

	genres := newCounter()
	authors := newCounter()
	decades := make(map[int]int)

	for _, b := range list {
		if b.ReadStatus {
			s.ReadBooks++
		}
		genres.add(b.Genre)
		authors.add(b.Author)
		decades[b.Decade()]++
	}

	s.UnreadBooks = s.TotalBooks - s.ReadBooks
	if s.TotalBooks > 0 {
		s.PercentRead = float64(s.ReadBooks) / float64(s.TotalBooks) * 100
	}
	s.Genres = genres.ranked()
	s.Authors = authors.ranked()

	for decade, n := range decades {
		s.Decades = append(s.Decades, DecadeCount{Decade: decade, Count: n})
	}
	sort.Slice(s.Decades, func(i, j int) bool {
		return s.Decades[i].Decade < s.Decades[j].Decade
	})

	return s
}

// TopGenres returns at most n genres from the ranking.
func (s Stats) TopGenres(n int) []Count {
	return top(s.Genres, n)
}

// TopAuthors returns at most n authors from the ranking.
func (s Stats) TopAuthors(n int) []Count {
	return top(s.Authors, n)
}

// DecadeOf returns floor(year/10)*10.
func DecadeOf(year int) int {
	d := year / 10 * 10
	if year < 0 && year%10 != 0 {
		d -= 10
	}
	return d
}

// DecadeLabel formats a decade as "1990s".
func DecadeLabel(decade int) string {
	return fmt.Sprintf("%ds", decade)
}

func top(counts []Count, n int) []Count {
	if n < 0 || n > len(counts) {
		n = len(counts)
	}
	return append([]Count(nil), counts[:n]...)
}

// counter tallies keys and remembers first-seen order.
type counter struct {
	order []string
	n     map[string]int
}

func newCounter() *counter {
	return &counter{n: make(map[string]int)}
}

func (c *counter) add(key string) {
	if _, ok := c.n[key]; !ok {
		c.order = append(c.order, key)
	}
	c.n[key]++
}

func (c *counter) ranked() []Count {
	out := make([]Count, 0, len(c.order))
	for _, k := range c.order {
		out = append(out, Count{Key: k, Count: c.n[k]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}

package application

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/agentstation/bookshelf"
	"github.com/agentstation/bookshelf/pkg/books"
	"github.com/agentstation/bookshelf/pkg/logging"
	"github.com/agentstation/bookshelf/pkg/persistence"
)

// TestNow is the clock used by TestMock clients.
var TestNow = time.Date(2025, time.June, 1, 9, 30, 0, 0, time.Local)

// TestMock returns a Mock whose client is backed by an in-memory store
// primed with records. New books get IDs book-new1, book-new2 and so on.
func TestMock(t testing.TB, records ...books.Book) (*Mock, bookshelf.Client, *persistence.Memory) {
	t.Helper()

	store := persistence.NewMemory(records...)
	seq := 0
	c, err := bookshelf.New(
		bookshelf.WithStore(store),
		bookshelf.WithClock(func() time.Time { return TestNow }),
		bookshelf.WithIDGenerator(func() (books.ID, error) {
			seq++
			return books.ID(fmt.Sprintf("book-new%d", seq)), nil
		}),
		bookshelf.WithLogger(logging.NewNopLogger()),
	)
	require.NoError(t, err)

	mock := &Mock{
		ClientFunc: func() (bookshelf.Client, error) { return c, nil },
	}
	return mock, c, store
}

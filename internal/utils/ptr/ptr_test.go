package ptr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/bookshelf/internal/utils/ptr"
	"github.com/agentstation/bookshelf/pkg/books"
)

func TestTo(t *testing.T) {
	s := "Dune"
	p := ptr.To(s)
	require.NotNil(t, p)
	assert.Equal(t, s, *p)
	assert.NotSame(t, &s, p)

	patch := books.Patch{PublicationYear: ptr.To(1965), ReadStatus: ptr.To(true)}
	assert.False(t, patch.IsEmpty())
	assert.Equal(t, 1965, *patch.PublicationYear)
}

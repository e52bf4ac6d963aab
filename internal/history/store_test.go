// internal/history/store_test.go
package history

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewMemoryStore()
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStoreAddAndList(t *testing.T) {
	s := newTestStore(t)

	first := &Entry{
		Connection: "local",
		Query:      "SELECT 1",
		ExecutedAt: time.Now().Add(-time.Minute),
		DurationMs: 3,
		RowCount:   1,
		Status:     "success",
	}
	require.NoError(t, s.Add(first))
	assert.NotZero(t, first.ID)

	second := &Entry{
		Connection: "local",
		Query:      "SELECT broken",
		ExecutedAt: time.Now(),
		Status:     "error",
		ErrorMsg:   "no such column",
	}
	require.NoError(t, s.Add(second))

	entries, err := s.List("local", 10, 0)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "SELECT broken", entries[0].Query, "newest first")
	assert.Equal(t, "no such column", entries[0].ErrorMsg)
	assert.Equal(t, "SELECT 1", entries[1].Query)
}

func TestStoreListScopedToConnection(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Add(&Entry{Connection: "a", Query: "SELECT 1", ExecutedAt: time.Now(), Status: "success"}))
	require.NoError(t, s.Add(&Entry{Connection: "b", Query: "SELECT 2", ExecutedAt: time.Now(), Status: "success"}))

	entries, err := s.List("a", 10, 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "SELECT 1", entries[0].Query)

	count, err := s.Count("b")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestStoreSearch(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Add(&Entry{Connection: "local", Query: "SELECT * FROM orders", ExecutedAt: time.Now(), Status: "success"}))
	require.NoError(t, s.Add(&Entry{Connection: "local", Query: "SELECT * FROM customers", ExecutedAt: time.Now(), Status: "success"}))

	entries, err := s.Search("local", "orders", 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].Query, "orders")
}

func TestStoreDelete(t *testing.T) {
	s := newTestStore(t)

	entry := &Entry{Connection: "local", Query: "SELECT 1", ExecutedAt: time.Now(), Status: "success"}
	require.NoError(t, s.Add(entry))
	require.NoError(t, s.Delete(entry.ID))

	count, err := s.Count("local")
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestEntryQueryPreview(t *testing.T) {
	e := &Entry{Query: "SELECT *\n  FROM orders WHERE id = 1"}

	preview := e.QueryPreview(20)
	assert.NotContains(t, preview, "\n")
	assert.LessOrEqual(t, len(preview), 20)
}

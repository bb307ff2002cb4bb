package recent

import (
	"database/sql"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	store := NewStore(db, slog.New(slog.DiscardHandler))
	clock := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	store.Now = func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}
	return store
}

func roots(entries []Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Root)
	}
	return out
}

func TestStore_RecordAndList(t *testing.T) {
	assert := assert.New(t)
	store := newTestStore(t)

	assert.NoError(store.Record("/src/a", "a", 3))
	assert.NoError(store.Record("/src/b", "b", 7))
	assert.NoError(store.Record("/src/c", "c", 0))
	assert.NoError(store.Record("/src/a", "a", 4))

	entries, err := store.List(0)
	assert.NoError(err)
	assert.Equal([]string{"/src/a", "/src/c", "/src/b"}, roots(entries))

	a := entries[0]
	assert.Equal("a", a.Name)
	assert.Equal(4, a.Dirs)
	assert.Equal(2, a.ScanCount)
	assert.Equal(time.Date(2025, 3, 1, 12, 4, 0, 0, time.UTC), a.ScannedAt.UTC())

	limited, err := store.List(2)
	assert.NoError(err)
	assert.Equal([]string{"/src/a", "/src/c"}, roots(limited))
}

func TestStore_GetAndForget(t *testing.T) {
	assert := assert.New(t)
	store := newTestStore(t)

	assert.NoError(store.Record("/src/a", "a", 1))

	entry, err := store.Get("/src/a")
	assert.NoError(err)
	assert.Equal(1, entry.ScanCount)

	forgotten, err := store.Forget("/src/a")
	assert.NoError(err)
	assert.True(forgotten)

	forgotten, err = store.Forget("/src/a")
	assert.NoError(err)
	assert.False(forgotten)

	_, err = store.Get("/src/a")
	assert.ErrorIs(err, sql.ErrNoRows)
}

func TestOpen_File(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "state", "recent.db")
	db, err := Open(path)
	assert.NoError(err)

	store := NewStore(db, slog.New(slog.DiscardHandler))
	assert.NoError(store.Record("/src/a", "a", 1))
	assert.NoError(db.Close())

	db, err = Open(path)
	assert.NoError(err)
	defer db.Close()

	entries, err := NewStore(db, slog.New(slog.DiscardHandler)).List(10)
	assert.NoError(err)
	assert.Equal([]string{"/src/a"}, roots(entries))
}

package progress

import (
	"context"
	"io"
	"log"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "nested", "data.db")
	store, err := Open(dbPath, log.New(io.Discard, "", 0))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStore_LoadMissingReturnsZero(t *testing.T) {
	store := openTestStore(t)

	pos, err := store.Load(context.Background(), "effective-dart")
	require.NoError(t, err)
	assert.True(t, pos.IsZero())
}

func TestStore_SaveThenLoad(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	saved := Position{Section: 2, YOffset: 41, UpdatedAt: time.Unix(1700000000, 0)}
	require.NoError(t, store.Save(ctx, "effective-dart", saved))

	pos, err := store.Load(ctx, "effective-dart")
	require.NoError(t, err)
	assert.Equal(t, 2, pos.Section)
	assert.Equal(t, 41, pos.YOffset)
	assert.True(t, saved.UpdatedAt.Equal(pos.UpdatedAt))
}

func TestStore_SaveOverwrites(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "doc", Position{Section: 1, YOffset: 10}))
	require.NoError(t, store.Save(ctx, "doc", Position{Section: 3, YOffset: 90}))

	pos, err := store.Load(ctx, "doc")
	require.NoError(t, err)
	assert.Equal(t, 3, pos.Section)
	assert.Equal(t, 90, pos.YOffset)
	assert.False(t, pos.UpdatedAt.IsZero())
}

func TestStore_DocumentsAreIndependent(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "a", Position{YOffset: 5}))

	pos, err := store.Load(ctx, "b")
	require.NoError(t, err)
	assert.True(t, pos.IsZero())
}

func TestStore_ReopenKeepsPositions(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "data.db")
	logger := log.New(io.Discard, "", 0)
	ctx := context.Background()

	store, err := Open(dbPath, logger)
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, "doc", Position{Section: 1, YOffset: 7}))
	require.NoError(t, store.Close())

	store, err = Open(dbPath, logger)
	require.NoError(t, err)
	defer store.Close()

	pos, err := store.Load(ctx, "doc")
	require.NoError(t, err)
	assert.Equal(t, 7, pos.YOffset)
}

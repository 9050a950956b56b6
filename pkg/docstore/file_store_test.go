package docstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupFileStore(t *testing.T) (*FileStore, string) {
	tempDir := filepath.Join(os.TempDir(), "docstore-test-"+uuid.New().String())
	require.NoError(t, os.MkdirAll(tempDir, 0755))

	store, err := NewFileStore(tempDir)
	require.NoError(t, err)

	t.Cleanup(func() {
		os.RemoveAll(tempDir)
	})

	return store, tempDir
}

func TestFileStore_NewStore(t *testing.T) {
	tempDir := filepath.Join(os.TempDir(), "docstore-test-new-"+uuid.New().String())
	defer os.RemoveAll(tempDir)

	store, err := NewFileStore(tempDir)
	assert.NoError(t, err)
	assert.NotNil(t, store)
	assert.DirExists(t, tempDir)
}

func TestFileStore_SetGet(t *testing.T) {
	store, _ := setupFileStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "users", "a", Document{"email": "a@example.com"}))

	doc, exists, err := store.Get(ctx, "users", "a")
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Equal(t, "a@example.com", doc["email"])
}

func TestFileStore_PersistsAcrossReopen(t *testing.T) {
	store, tempDir := setupFileStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "users", "a", Document{"email": "a@example.com", "active": true}))
	require.NoError(t, store.Set(ctx, "users", "b", Document{"email": "b@example.com"}))

	reopened, err := NewFileStore(tempDir)
	require.NoError(t, err)

	entries, err := reopened.List(ctx, "users")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "a", entries[0].ID)
	assert.Equal(t, "b", entries[1].ID)

	doc, exists, err := reopened.Get(ctx, "users", "a")
	require.NoError(t, err)
	require.True(t, exists)
	assert.Equal(t, "a@example.com", doc["email"])
	assert.Equal(t, true, doc["active"])
}

func TestFileStore_Merge(t *testing.T) {
	store, _ := setupFileStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "users", "a", Document{"email": "a@example.com", "active": true}))
	require.NoError(t, store.Merge(ctx, "users", "a", Document{"active": false}))

	doc, _, err := store.Get(ctx, "users", "a")
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", doc["email"])
	assert.Equal(t, false, doc["active"])
}

func TestFileStore_ListEmptyCollection(t *testing.T) {
	store, _ := setupFileStore(t)

	entries, err := store.List(context.Background(), "nothing")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/rolemix/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// kvContract runs the behavior every KeyValueStore must share.
func kvContract(t *testing.T, kv KeyValueStore) {
	t.Helper()
	ctx := context.Background()

	_, err := kv.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, kv.Set(ctx, "b", "1"))
	require.NoError(t, kv.Set(ctx, "a", "2"))

	got, err := kv.Get(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, "1", got)

	require.NoError(t, kv.Set(ctx, "b", "overwritten"))
	got, err = kv.Get(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, "overwritten", got)
}

func TestSQLiteKVStore_Contract(t *testing.T) {
	kvContract(t, NewSQLiteKVStore(testutil.NewTestDB(t)))
}

func TestMemoryKVStore_Contract(t *testing.T) {
	kvContract(t, NewMemoryKVStore())
}

func TestSQLiteKVStore_OverwriteKeepsCreatedAt(t *testing.T) {
	database := testutil.NewTestDB(t)
	kv := NewSQLiteKVStore(database)
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "k", "v1"))
	var created string
	require.NoError(t, database.QueryRow(`SELECT created_at FROM kv_store WHERE key = 'k'`).Scan(&created))
	require.NotEmpty(t, created)

	require.NoError(t, kv.Set(ctx, "k", "v2"))
	var createdAfter string
	require.NoError(t, database.QueryRow(`SELECT created_at FROM kv_store WHERE key = 'k'`).Scan(&createdAfter))
	assert.Equal(t, created, createdAfter)

	var count int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM kv_store`).Scan(&count))
	assert.Equal(t, 1, count)
}

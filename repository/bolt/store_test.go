package bolt

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fastygo/planner/domain"
	"github.com/fastygo/planner/repository"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "nested", "planner.db"), "")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestStoreGetSetDelete(t *testing.T) {
	ctx := context.Background()
	store := openTemp(t)

	_, err := store.Get(ctx, repository.KeyTasks)
	assert.ErrorIs(t, err, domain.ErrKeyNotFound)

	require.NoError(t, store.Set(ctx, repository.KeyTasks, []byte(`[{"id":"a"}]`)))
	value, err := store.Get(ctx, repository.KeyTasks)
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"a"}]`, string(value))

	size, err := store.Size()
	require.NoError(t, err)
	assert.Equal(t, 1, size)

	require.NoError(t, store.Delete(ctx, repository.KeyTasks))
	require.NoError(t, store.Delete(ctx, repository.KeyTasks), "deleting an absent key succeeds")
	_, err = store.Get(ctx, repository.KeyTasks)
	assert.ErrorIs(t, err, domain.ErrKeyNotFound)
}

func TestStoreSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "planner.db")

	store, err := Open(path, "custom")
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, repository.KeySettings, []byte(`{"theme":"dark"}`)))
	require.NoError(t, store.Close())

	reopened, err := Open(path, "custom")
	require.NoError(t, err)
	defer reopened.Close()

	value, err := reopened.Get(ctx, repository.KeySettings)
	require.NoError(t, err)
	assert.JSONEq(t, `{"theme":"dark"}`, string(value))
	assert.Equal(t, path, reopened.Path())
}

func TestStoreHonorsCancelledContext(t *testing.T) {
	store := openTemp(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, store.Set(ctx, repository.KeyTasks, []byte("[]")), context.Canceled)
	_, err := store.Get(ctx, repository.KeyTasks)
	assert.ErrorIs(t, err, context.Canceled)
}

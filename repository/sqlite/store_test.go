package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fastygo/planner/domain"
	"github.com/fastygo/planner/repository"
)

func TestStoreInMemory(t *testing.T) {
	ctx := context.Background()
	store, err := Open(ctx, ":memory:", nil)
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Ping(ctx))

	_, err = store.Get(ctx, repository.KeyCourses)
	assert.ErrorIs(t, err, domain.ErrKeyNotFound)

	require.NoError(t, store.Set(ctx, repository.KeyCourses, []byte(`[]`)))
	require.NoError(t, store.Set(ctx, repository.KeyCourses, []byte(`[{"id":"c1"}]`)))

	value, err := store.Get(ctx, repository.KeyCourses)
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"c1"}]`, string(value))

	require.NoError(t, store.Delete(ctx, repository.KeyCourses))
	require.NoError(t, store.Delete(ctx, repository.KeyCourses))
	_, err = store.Get(ctx, repository.KeyCourses)
	assert.ErrorIs(t, err, domain.ErrKeyNotFound)
}

func TestStorePersistsToFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data", "planner.sqlite")

	store, err := Open(ctx, path, nil)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, repository.KeyTasks, []byte(`[{"id":"t1"}]`)))
	require.NoError(t, store.Close())

	reopened, err := Open(ctx, path, nil)
	require.NoError(t, err)
	defer reopened.Close()

	value, err := reopened.Get(ctx, repository.KeyTasks)
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"t1"}]`, string(value))
}

func TestStoreEmptyValue(t *testing.T) {
	ctx := context.Background()
	store, err := Open(ctx, ":memory:", nil)
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Set(ctx, repository.KeySettings, nil))
	value, err := store.Get(ctx, repository.KeySettings)
	require.NoError(t, err)
	assert.Empty(t, value)
}

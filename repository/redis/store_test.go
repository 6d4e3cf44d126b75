package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	redislib "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fastygo/planner/domain"
	"github.com/fastygo/planner/repository"
)

func unreachableClient(t *testing.T) *redislib.Client {
	t.Helper()
	client := redislib.NewClient(&redislib.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 200 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func newTestStore(t *testing.T, prefix string) (*Store, *miniredis.Miniredis) {
	t.Helper()
	server := miniredis.RunT(t)
	client := redislib.NewClient(&redislib.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewStore(client, prefix), server
}

func TestStoreRoundTrip(t *testing.T) {
	store, server := newTestStore(t, "test:")
	ctx := context.Background()

	_, err := store.Get(ctx, repository.KeyTasks)
	assert.ErrorIs(t, err, domain.ErrKeyNotFound)

	require.NoError(t, store.Set(ctx, repository.KeyTasks, []byte(`[{"id":"a"}]`)))
	got, err := store.Get(ctx, repository.KeyTasks)
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"a"}]`, string(got))

	raw, err := server.Get("test:academicPlanner_tasks")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"a"}]`, raw)
	assert.Zero(t, server.TTL("test:academicPlanner_tasks"), "values never expire")

	require.NoError(t, store.Set(ctx, repository.KeyTasks, []byte(`[]`)))
	got, err = store.Get(ctx, repository.KeyTasks)
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(got))

	require.NoError(t, store.Delete(ctx, repository.KeyTasks))
	require.NoError(t, store.Delete(ctx, repository.KeyTasks), "deleting an absent key is fine")
	assert.False(t, server.Exists("test:academicPlanner_tasks"))
	_, err = store.Get(ctx, repository.KeyTasks)
	assert.ErrorIs(t, err, domain.ErrKeyNotFound)

	assert.NoError(t, store.Ping(ctx))
}

func TestStoreServerGoesAway(t *testing.T) {
	store, server := newTestStore(t, "")
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, repository.KeySettings, []byte(`{}`)))

	server.Close()
	_, err := store.Get(ctx, repository.KeySettings)
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeUnavailable))
}

func TestKeyPrefix(t *testing.T) {
	assert.Equal(t, "planner:academicPlanner_tasks", NewStore(nil, "").key(repository.KeyTasks))
	assert.Equal(t, "dev:academicPlanner_tasks", NewStore(nil, "dev:").key(repository.KeyTasks))
}

func TestUnreachableServerIsUnavailable(t *testing.T) {
	store := NewStore(unreachableClient(t), "")
	ctx := context.Background()

	_, err := store.Get(ctx, repository.KeyTasks)
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeUnavailable))

	err = store.Set(ctx, repository.KeyTasks, []byte("[]"))
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeUnavailable))

	assert.Error(t, store.Ping(ctx))
}

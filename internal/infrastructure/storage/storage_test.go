package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fastygo/planner/internal/config"
	"github.com/fastygo/planner/repository"
)

func localConfig(t *testing.T, backend string) *config.Config {
	dir := t.TempDir()
	return &config.Config{
		Storage: config.StorageConfig{
			Backend:    backend,
			BoltPath:   filepath.Join(dir, "planner.db"),
			BoltBucket: "planner",
			SQLitePath: filepath.Join(dir, "planner.sqlite"),
		},
	}
}

func TestOpenLocalBackends(t *testing.T) {
	for _, backend := range []string{config.BackendMemory, config.BackendBolt, config.BackendSQLite} {
		t.Run(backend, func(t *testing.T) {
			ctx := context.Background()
			h, err := Open(ctx, localConfig(t, backend), nil)
			require.NoError(t, err)

			assert.Equal(t, backend, h.Backend)
			assert.NotEmpty(t, h.Target)
			require.NoError(t, h.Store.Set(ctx, repository.KeyTasks, []byte("[]")))
			value, err := h.Store.Get(ctx, repository.KeyTasks)
			require.NoError(t, err)
			assert.Equal(t, "[]", string(value))

			require.NoError(t, h.Close())
			require.NoError(t, h.Close())
		})
	}
}

func TestOpenUnknownBackend(t *testing.T) {
	_, err := Open(context.Background(), localConfig(t, "cookies"), nil)
	assert.ErrorContains(t, err, "cookies")
}

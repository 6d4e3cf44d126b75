package postgres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fastygo/planner/internal/config"
)

func TestPoolConfig(t *testing.T) {
	cfg, err := PoolConfig(config.DatabaseConfig{
		URL:             "postgres://planner:planner@db:5432/planner?sslmode=disable",
		MaxOpenConns:    8,
		MaxIdleConns:    20,
		MaxConnLifetime: time.Minute,
	})
	require.NoError(t, err)
	assert.Equal(t, "db", cfg.ConnConfig.Host)
	assert.Equal(t, "planner", cfg.ConnConfig.Database)
	assert.EqualValues(t, 8, cfg.MaxConns)
	assert.EqualValues(t, 8, cfg.MinConns, "idle connections capped at the pool size")
	assert.Equal(t, time.Minute, cfg.MaxConnLifetime)

	_, err = PoolConfig(config.DatabaseConfig{URL: "postgres://%zz"})
	assert.Error(t, err)
}

func TestRunMigrationsSkipsOtherBackends(t *testing.T) {
	cfg := &config.Config{}
	cfg.Migrations.Enabled = true
	cfg.Storage.Backend = config.BackendBolt
	assert.NoError(t, RunMigrations(cfg, nil))
	assert.NoError(t, RunMigrations(nil, nil))
}

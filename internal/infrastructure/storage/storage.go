// Package storage opens the repository.Store selected by configuration.
package storage

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/fastygo/planner/internal/config"
	pginfra "github.com/fastygo/planner/internal/infrastructure/postgres"
	redisinfra "github.com/fastygo/planner/internal/infrastructure/redis"
	"github.com/fastygo/planner/repository"
	boltstore "github.com/fastygo/planner/repository/bolt"
	"github.com/fastygo/planner/repository/memory"
	pgstore "github.com/fastygo/planner/repository/postgres"
	redisstore "github.com/fastygo/planner/repository/redis"
	sqlitestore "github.com/fastygo/planner/repository/sqlite"
)

// Handle owns an opened store and the resources behind it.
type Handle struct {
	Store   repository.Store
	Backend string
	Target  string

	closers []func() error
}

// Open connects to the configured backend.
func Open(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Handle, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	h := &Handle{Backend: cfg.Storage.Backend}
	switch cfg.Storage.Backend {
	case config.BackendMemory:
		h.Store = memory.New()
		h.Target = "process memory"

	case config.BackendBolt:
		store, err := boltstore.Open(cfg.Storage.BoltPath, cfg.Storage.BoltBucket)
		if err != nil {
			return nil, fmt.Errorf("open bolt store: %w", err)
		}
		h.Store = store
		h.Target = cfg.Storage.BoltPath
		h.closers = append(h.closers, store.Close)

	case config.BackendSQLite:
		store, err := sqlitestore.Open(ctx, cfg.Storage.SQLitePath, logger)
		if err != nil {
			return nil, fmt.Errorf("open sqlite store: %w", err)
		}
		h.Store = store
		h.Target = cfg.Storage.SQLitePath
		h.closers = append(h.closers, store.Close)

	case config.BackendRedis:
		client, err := redisinfra.NewClient(ctx, cfg.Redis, logger)
		if err != nil {
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		h.Store = redisstore.NewStore(client, cfg.Storage.RedisPrefix)
		h.Target = client.Options().Addr
		h.closers = append(h.closers, client.Close)

	case config.BackendPostgres:
		if err := pginfra.RunMigrations(cfg, logger); err != nil {
			return nil, err
		}
		pool, err := pginfra.NewPool(ctx, cfg.Database, logger)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		h.Store = pgstore.NewStore(pool)
		h.Target = cfg.Database.Host + "/" + cfg.Database.Name
		h.closers = append(h.closers, func() error {
			pginfra.Close(pool, logger)
			return nil
		})

	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}

	logger.Debug("store opened", zap.String("backend", h.Backend), zap.String("target", h.Target))
	return h, nil
}

// Close releases every resource in reverse acquisition order.
func (h *Handle) Close() error {
	if h == nil {
		return nil
	}
	var errs []error
	for i := len(h.closers) - 1; i >= 0; i-- {
		if err := h.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	h.closers = nil
	return errors.Join(errs...)
}

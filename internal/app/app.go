// Package app wires configuration, logging, storage and the planner use case
// into one container shared by the CLI and the HTTP server.
package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/fastygo/planner/internal/config"
	"github.com/fastygo/planner/internal/infrastructure/storage"
	"github.com/fastygo/planner/repository"
	"github.com/fastygo/planner/repository/kv"
	"github.com/fastygo/planner/usecase/planner"
)

// App is the application container.
type App struct {
	Config  *config.Config
	Logger  *zap.Logger
	Storage *storage.Handle
	Planner *planner.UseCase
}

// New opens the configured store and builds the repositories on top of it.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	handle, err := storage.Open(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s store: %w", cfg.Storage.Backend, err)
	}
	return FromHandle(cfg, handle, logger), nil
}

// FromHandle builds an App over an already opened store.
func FromHandle(cfg *config.Config, handle *storage.Handle, logger *zap.Logger, opts ...kv.Option) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &App{
		Config:  cfg,
		Logger:  logger,
		Storage: handle,
		Planner: NewPlanner(handle.Store, logger, opts...),
	}
}

// NewPlanner builds the three key-value repositories over store.
func NewPlanner(store repository.Store, logger *zap.Logger, opts ...kv.Option) *planner.UseCase {
	opts = append([]kv.Option{kv.WithLogger(logger)}, opts...)
	return planner.New(
		kv.NewTaskRepository(store, opts...),
		kv.NewCourseRepository(store, opts...),
		kv.NewSettingsRepository(store, opts...),
		logger,
	)
}

// Close releases the store.
func (a *App) Close() error {
	if a == nil {
		return nil
	}
	return a.Storage.Close()
}

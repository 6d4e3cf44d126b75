package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	apiHandler "github.com/fastygo/planner/api/handler"
	"github.com/fastygo/planner/internal/infrastructure/monitor"
	"github.com/fastygo/planner/internal/middleware"
	"github.com/fastygo/planner/internal/router"
	"github.com/fastygo/planner/internal/services"
	"github.com/fastygo/planner/internal/services/lifecycle"
	"github.com/fastygo/planner/pkg/exporter"
	"github.com/fastygo/planner/pkg/httpcontext"
)

// Handler builds the HTTP API over the app's planner.
func (a *App) Handler(mon *monitor.Monitor) fasthttp.RequestHandler {
	ctxAdapter := httpcontext.NewAdapter(a.Config.Context.RequestTimeout)

	handlers := router.Handlers{
		Task:     apiHandler.NewTaskHandler(a.Planner, ctxAdapter, a.Logger),
		Course:   apiHandler.NewCourseHandler(a.Planner, ctxAdapter, a.Logger),
		Settings: apiHandler.NewSettingsHandler(a.Planner, ctxAdapter, a.Logger),
		Data:     apiHandler.NewDataHandler(a.Planner, ctxAdapter, a.Logger),
		Health:   apiHandler.NewHealthHandler(mon, ctxAdapter, a.Logger),
	}
	return router.New(handlers, middleware.Recover(a.Logger), middleware.RequestLogger(a.Logger))
}

// Serve runs the HTTP API, the store monitor and the optional backup
// scheduler until ctx is cancelled or a termination signal arrives.
func (a *App) Serve(ctx context.Context) error {
	cfg := a.Config
	appCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	manager := lifecycle.New(cfg.Context.ShutdownTimeout, a.Logger)
	manager.Listen(ctx, cancel)

	mon := monitor.New(a.Storage.Store, a.Storage.Backend, cfg.Storage.HealthInterval, a.Logger)
	mon.Start()
	manager.RegisterFunc("monitor", mon.Stop)

	if cfg.Backup.Enabled {
		format, err := exporter.ParseFormat(cfg.Backup.Format)
		if err != nil {
			return errors.Join(err, manager.Shutdown(ctx))
		}
		backups, err := services.NewBackupService(a.Planner, a.Logger, services.BackupConfig{
			Schedule: cfg.Backup.Schedule,
			Dir:      cfg.Backup.Dir,
			Format:   format,
			Retain:   cfg.Backup.Retain,
		})
		if err != nil {
			return errors.Join(err, manager.Shutdown(ctx))
		}
		backups.Start()
		manager.Register("backup_scheduler", backups.Stop)
	}

	server := &fasthttp.Server{
		Handler:      a.Handler(mon),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
		Concurrency:  cfg.HTTP.MaxConn,
		Name:         cfg.AppName,
	}

	serveErr := make(chan error, 1)
	go func() {
		a.Logger.Info("server started",
			zap.String("address", cfg.Address()),
			zap.String("store", a.Storage.Backend))
		if err := server.ListenAndServe(cfg.Address()); err != nil {
			serveErr <- fmt.Errorf("http server: %w", err)
		}
		cancel()
	}()

	manager.Register("http_server", func(ctx context.Context) error {
		return server.ShutdownWithContext(ctx)
	})

	<-appCtx.Done()

	var result error
	select {
	case err := <-serveErr:
		result = err
	default:
	}
	if err := manager.Shutdown(context.Background()); err != nil {
		a.Logger.Error("graceful shutdown error", zap.Error(err))
		result = errors.Join(result, err)
	}
	return result
}

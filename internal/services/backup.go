package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/fastygo/planner/domain"
	"github.com/fastygo/planner/pkg/exporter"
)

const backupPrefix = "academic-planner-data-"

// SnapshotSource produces the document written by each backup run.
type SnapshotSource interface {
	ExportAll(ctx context.Context) domain.Snapshot
}

// BackupConfig controls where and how often snapshots are written.
type BackupConfig struct {
	// Schedule is a cron expression, with optional seconds field, or a
	// descriptor such as "@every 1h".
	Schedule string
	Dir      string
	Format   exporter.Format
	// Retain is the number of newest backups kept; 0 keeps everything.
	Retain int
	Timeout time.Duration
}

// BackupService periodically exports the planner data to timestamped files.
type BackupService struct {
	source SnapshotSource
	logger *zap.Logger
	cron   *cron.Cron
	cfg    BackupConfig
}

func NewBackupService(source SnapshotSource, logger *zap.Logger, cfg BackupConfig) (*BackupService, error) {
	if cfg.Schedule == "" {
		cfg.Schedule = "@every 1h"
	}
	if cfg.Format == "" {
		cfg.Format = exporter.FormatJSON
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	parser := cron.NewParser(cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
	bs := &BackupService{
		source: source,
		logger: logger,
		cfg:    cfg,
		cron:   cron.New(cron.WithParser(parser)),
	}

	if _, err := bs.cron.AddFunc(cfg.Schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
		defer cancel()
		if _, err := bs.RunOnce(ctx); err != nil {
			bs.logger.Error("backup failed", zap.Error(err))
		}
	}); err != nil {
		return nil, fmt.Errorf("invalid backup schedule %q: %w", cfg.Schedule, err)
	}

	return bs, nil
}

// Start launches the cron scheduler.
func (bs *BackupService) Start() {
	if bs == nil || bs.cron == nil {
		return
	}
	bs.cron.Start()
	bs.logger.Info("backup scheduler started",
		zap.String("schedule", bs.cfg.Schedule),
		zap.String("dir", bs.cfg.Dir))
}

// Stop waits for a running backup to finish or for ctx to expire.
func (bs *BackupService) Stop(ctx context.Context) error {
	if bs == nil || bs.cron == nil {
		return nil
	}
	stopCtx := bs.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-ctx.Done():
		return ctx.Err()
	}
	bs.logger.Info("backup scheduler stopped")
	return nil
}

// RunOnce writes one snapshot and prunes old backups. It returns the path
// of the new file.
func (bs *BackupService) RunOnce(ctx context.Context) (string, error) {
	if err := os.MkdirAll(bs.cfg.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create backup dir: %w", err)
	}

	snapshot := bs.source.ExportAll(ctx)
	name := backupPrefix + snapshot.ExportedAt.UTC().Format("20060102T150405.000Z") + "." + string(bs.cfg.Format)
	path := filepath.Join(bs.cfg.Dir, name)

	tmp, err := os.CreateTemp(bs.cfg.Dir, ".backup-*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	if err := exporter.Encode(tmp, snapshot, bs.cfg.Format); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("encode backup: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("publish backup: %w", err)
	}

	var size int64
	if info, err := os.Stat(path); err == nil {
		size = info.Size()
	}
	bs.logger.Info("backup written",
		zap.String("path", path),
		zap.Int("tasks", len(snapshot.Tasks)),
		zap.Int("courses", len(snapshot.Courses)),
		zap.String("size", humanize.Bytes(uint64(size))))

	bs.prune()
	return path, nil
}

// Backups lists existing backup files, oldest first.
func (bs *BackupService) Backups() ([]string, error) {
	entries, err := os.ReadDir(bs.cfg.Dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), backupPrefix) {
			continue
		}
		names = append(names, filepath.Join(bs.cfg.Dir, entry.Name()))
	}
	// Timestamps in the names sort lexically.
	sort.Strings(names)
	return names, nil
}

func (bs *BackupService) prune() {
	if bs.cfg.Retain <= 0 {
		return
	}
	backups, err := bs.Backups()
	if err != nil {
		bs.logger.Warn("failed to list backups", zap.Error(err))
		return
	}
	for len(backups) > bs.cfg.Retain {
		if err := os.Remove(backups[0]); err != nil {
			bs.logger.Warn("failed to remove old backup", zap.String("path", backups[0]), zap.Error(err))
		} else {
			bs.logger.Debug("old backup removed", zap.String("path", backups[0]))
		}
		backups = backups[1:]
	}
}

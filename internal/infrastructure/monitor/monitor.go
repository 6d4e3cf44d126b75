package monitor

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/fastygo/planner/domain"
	"github.com/fastygo/planner/repository"
)

// Monitor periodically probes the active store and caches the result for
// the health endpoint.
type Monitor struct {
	store   repository.Store
	backend string

	status   Status
	mu       sync.RWMutex
	interval time.Duration
	timeout  time.Duration
	stopCh   chan struct{}
	stopOnce sync.Once
	logger   *zap.Logger
}

func New(store repository.Store, backend string, interval time.Duration, logger *zap.Logger) *Monitor {
	if interval <= 0 {
		interval = 10 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Monitor{
		store:    store,
		backend:  backend,
		interval: interval,
		timeout:  3 * time.Second,
		stopCh:   make(chan struct{}),
		logger:   logger,
		status:   Status{Backend: backend},
	}
}

func (m *Monitor) Start() {
	go m.loop()
}

func (m *Monitor) Stop() {
	m.stopOnce.Do(func() { close(m.stopCh) })
}

func (m *Monitor) IsOnline() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status.Online
}

func (m *Monitor) GetStatus() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status
}

// Refresh probes the store once and returns the new status.
func (m *Monitor) Refresh(ctx context.Context) Status {
	started := time.Now()
	err := m.probe(ctx)
	latency := time.Since(started)

	m.mu.Lock()
	previous := m.status
	status := previous.next(started, latency, err)
	m.status = status
	m.mu.Unlock()

	if previous.Checked() && previous.Online != status.Online {
		if status.Online {
			m.logger.Info("store back online",
				zap.String("backend", m.backend),
				zap.Duration("downtime", started.Sub(previous.Since)),
			)
		} else {
			m.logger.Warn("store unreachable",
				zap.String("backend", m.backend),
				zap.String("error", status.Error),
			)
		}
	}
	return status
}

func (m *Monitor) loop() {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.Refresh(context.Background())
	for {
		select {
		case <-ticker.C:
			m.Refresh(context.Background())
		case <-m.stopCh:
			return
		}
	}
}

// probe pings backends that support it and otherwise performs a read of
// the settings key; a missing key still proves the store answers.
func (m *Monitor) probe(ctx context.Context) error {
	if m.store == nil {
		return domain.ErrStoreUnavailable
	}
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	if pinger, ok := m.store.(repository.Pinger); ok {
		return pinger.Ping(ctx)
	}
	_, err := m.store.Get(ctx, repository.KeySettings)
	if err != nil && !errors.Is(err, domain.ErrKeyNotFound) {
		return err
	}
	return nil
}

package monitor

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/fastygo/planner/repository/memory"
)

type pingStore struct {
	*memory.Store
	err error
}

func (p *pingStore) Ping(context.Context) error { return p.err }

func TestRefreshWithoutPinger(t *testing.T) {
	m := New(memory.New(), "memory", 0, nil)

	status := m.Refresh(context.Background())
	assert.True(t, status.Online)
	assert.Equal(t, "memory", status.Backend)
	assert.True(t, m.IsOnline())
	assert.Equal(t, status, m.GetStatus())
}

func TestRefreshTracksTransitions(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	store := &pingStore{Store: memory.New()}
	m := New(store, "redis", 0, zap.New(core))

	assert.True(t, m.Refresh(context.Background()).Online)

	store.err = errors.New("connection refused")
	status := m.Refresh(context.Background())
	assert.False(t, status.Online)
	assert.Equal(t, "connection refused", status.Error)
	assert.Equal(t, 1, logs.FilterMessage("store unreachable").Len())

	store.err = nil
	assert.True(t, m.Refresh(context.Background()).Online)
	assert.Equal(t, 1, logs.FilterMessage("store back online").Len())
}

func TestStopIsIdempotent(t *testing.T) {
	m := New(nil, "memory", 0, nil)
	m.Start()
	m.Stop()
	m.Stop()
	assert.False(t, m.Refresh(context.Background()).Online)
}

func TestStatusCountsConsecutiveFailures(t *testing.T) {
	store := &pingStore{Store: memory.New(), err: errors.New("timeout")}
	m := New(store, "postgres", 0, nil)

	first := m.Refresh(context.Background())
	second := m.Refresh(context.Background())
	assert.Equal(t, 1, first.Failures)
	assert.Equal(t, 2, second.Failures)
	assert.Equal(t, first.Since, second.Since, "since stays while offline")

	store.err = nil
	back := m.Refresh(context.Background())
	assert.Zero(t, back.Failures)
	assert.Empty(t, back.Error)
	assert.Equal(t, back.LastCheck, back.Since)
}

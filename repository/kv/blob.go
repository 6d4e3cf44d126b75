package kv

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"

	"go.uber.org/zap"

	"github.com/fastygo/planner/domain"
	"github.com/fastygo/planner/repository"
)

// blob reads and writes one JSON document stored under a single key.
// Reads degrade to fallback, writes report success as a boolean.
type blob[T any] struct {
	store      repository.Store
	key        string
	collection string
	logger     *zap.Logger

	// fallback is returned when the key is absent or its value is unreadable.
	fallback func() T
	// seed, when set, provides the value the stored document is decoded onto.
	seed func() T
}

func (b blob[T]) load(ctx context.Context) T {
	raw, err := b.store.Get(ctx, b.key)
	if err != nil {
		if !errors.Is(err, domain.ErrKeyNotFound) {
			b.logger.Error("failed to read collection, using defaults",
				zap.String("collection", b.collection),
				zap.String("key", b.key),
				zap.Error(err))
		}
		return b.fallback()
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return b.fallback()
	}

	var value T
	if b.seed != nil {
		value = b.seed()
	}
	if err := json.Unmarshal(trimmed, &value); err != nil {
		b.logger.Error("corrupt collection, using defaults",
			zap.String("collection", b.collection),
			zap.String("key", b.key),
			zap.Error(err))
		return b.fallback()
	}
	return value
}

func (b blob[T]) save(ctx context.Context, value T) bool {
	payload, err := json.Marshal(value)
	if err != nil {
		b.logger.Error("failed to encode collection",
			zap.String("collection", b.collection),
			zap.String("key", b.key),
			zap.Error(err))
		return false
	}
	if err := b.store.Set(ctx, b.key, payload); err != nil {
		b.logger.Error("failed to save collection",
			zap.String("collection", b.collection),
			zap.String("key", b.key),
			zap.Int("bytes", len(payload)),
			zap.Error(err))
		return false
	}
	return true
}

func (b blob[T]) clear(ctx context.Context) bool {
	if err := b.store.Delete(ctx, b.key); err != nil {
		b.logger.Error("failed to clear collection",
			zap.String("collection", b.collection),
			zap.String("key", b.key),
			zap.Error(err))
		return false
	}
	return true
}

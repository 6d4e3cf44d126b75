package memory

import (
	"context"
	"sync"

	"github.com/fastygo/planner/domain"
	"github.com/fastygo/planner/repository"
)

// Store keeps blobs in process memory. An optional quota caps the total
// number of bytes held, mirroring browser storage limits.
type Store struct {
	mu    sync.RWMutex
	data  map[string][]byte
	quota int
}

// Option customizes a memory Store.
type Option func(*Store)

// WithQuota limits the summed size of all stored values.
func WithQuota(bytes int) Option {
	return func(s *Store) {
		s.quota = bytes
	}
}

// New creates an empty Store.
func New(opts ...Option) *Store {
	s := &Store{data: make(map[string][]byte)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.data[key]
	if !ok {
		return nil, domain.ErrKeyNotFound
	}
	return append([]byte(nil), value...), nil
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.quota > 0 && s.usageWithout(key)+len(value) > s.quota {
		return domain.ErrQuotaExceeded
	}
	s.data[key] = append([]byte(nil), value...)
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

// Len returns the number of stored keys.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

func (s *Store) usageWithout(key string) int {
	total := 0
	for k, v := range s.data {
		if k != key {
			total += len(k) + len(v)
		}
	}
	return total + len(key)
}

var _ repository.Store = (*Store)(nil)

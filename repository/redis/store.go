package redis

import (
	"context"
	"errors"
	"fmt"

	redislib "github.com/redis/go-redis/v9"

	"github.com/fastygo/planner/domain"
	"github.com/fastygo/planner/repository"
)

// DefaultPrefix namespaces planner keys inside a shared Redis database.
const DefaultPrefix = "planner:"

type Store struct {
	client *redislib.Client
	prefix string
}

var (
	_ repository.Store  = (*Store)(nil)
	_ repository.Pinger = (*Store)(nil)
)

// NewStore creates a Redis-backed blob store. Values never expire.
func NewStore(client *redislib.Client, prefix string) *Store {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &Store{
		client: client,
		prefix: prefix,
	}
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	result, err := s.client.Get(ctx, s.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, redislib.Nil) {
			return nil, domain.ErrKeyNotFound
		}
		return nil, domain.WrapError(domain.ErrCodeUnavailable, "redis get failed", err)
	}
	return result, nil
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, s.key(key), value, 0).Err(); err != nil {
		return domain.WrapError(domain.ErrCodeUnavailable, "redis set failed", err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.key(key)).Err(); err != nil {
		return domain.WrapError(domain.ErrCodeUnavailable, "redis delete failed", err)
	}
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *Store) key(key string) string {
	return fmt.Sprintf("%s%s", s.prefix, key)
}

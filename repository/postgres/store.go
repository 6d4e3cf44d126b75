package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fastygo/planner/domain"
	"github.com/fastygo/planner/repository"
)

type Store struct {
	pool *pgxpool.Pool
}

var (
	_ repository.Store  = (*Store)(nil)
	_ repository.Pinger = (*Store)(nil)
)

// NewStore returns a Store over the planner_kv table created by the
// bundled migrations.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	const query = `SELECT value FROM planner_kv WHERE key = $1`

	var value []byte
	if err := s.pool.QueryRow(ctx, query, key).Scan(&value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrKeyNotFound
		}
		return nil, domain.WrapError(domain.ErrCodeUnavailable, "postgres get failed", err)
	}
	return value, nil
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	const query = `
	INSERT INTO planner_kv (key, value, updated_at)
	VALUES ($1, $2, NOW())
	ON CONFLICT (key) DO UPDATE
	SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at
	`
	if value == nil {
		value = []byte{}
	}
	if _, err := s.pool.Exec(ctx, query, key, value); err != nil {
		return domain.WrapError(domain.ErrCodeUnavailable, "postgres set failed", err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	const query = `DELETE FROM planner_kv WHERE key = $1`
	if _, err := s.pool.Exec(ctx, query, key); err != nil {
		return domain.WrapError(domain.ErrCodeUnavailable, "postgres delete failed", err)
	}
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

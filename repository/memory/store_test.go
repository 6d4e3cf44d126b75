package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fastygo/planner/domain"
)

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := New()

	_, err := s.Get(ctx, "missing")
	assert.True(t, errors.Is(err, domain.ErrKeyNotFound))

	require.NoError(t, s.Set(ctx, "k", []byte(`[1,2]`)))
	got, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, `[1,2]`, string(got))

	got[0] = 'x'
	again, _ := s.Get(ctx, "k")
	assert.Equal(t, `[1,2]`, string(again), "returned slices must be copies")

	require.NoError(t, s.Delete(ctx, "k"))
	require.NoError(t, s.Delete(ctx, "k"))
	assert.Equal(t, 0, s.Len())
}

func TestStoreQuota(t *testing.T) {
	ctx := context.Background()
	s := New(WithQuota(16))

	require.NoError(t, s.Set(ctx, "k", []byte("0123456789")))
	// Overwriting the same key only counts the new value.
	require.NoError(t, s.Set(ctx, "k", []byte("abcdefghij")))

	err := s.Set(ctx, "other", []byte("0123456789"))
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeQuotaExceeded))
}

func TestStoreHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := New()
	assert.ErrorIs(t, s.Set(ctx, "k", []byte("v")), context.Canceled)
}

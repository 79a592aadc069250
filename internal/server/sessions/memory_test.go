package sessions

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkireev/filedepot/internal/shared"
)

func TestMemoryStore_SetGetDel(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", "v", time.Hour))

	got, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", got)

	require.NoError(t, s.Del(ctx, "k"))

	_, err = s.Get(ctx, "k")
	assert.True(t, errors.Is(err, shared.ErrorNotFound))
}

func TestMemoryStore_GetMissing(t *testing.T) {
	s := NewMemoryStore()
	_, err := s.Get(context.Background(), "nope")
	assert.True(t, errors.Is(err, shared.ErrorNotFound))
}

func TestMemoryStore_DelMissing(t *testing.T) {
	s := NewMemoryStore()
	err := s.Del(context.Background(), "nope")
	assert.True(t, errors.Is(err, shared.ErrorNotFound))
}

func TestMemoryStore_ExpiryUsesClock(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	current := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return current }

	require.NoError(t, s.Set(ctx, "k", "v", 24*time.Hour))

	// still valid just before the deadline
	current = current.Add(24*time.Hour - time.Second)
	_, err := s.Get(ctx, "k")
	require.NoError(t, err)

	// gone after the deadline
	current = current.Add(2 * time.Second)
	_, err = s.Get(ctx, "k")
	assert.True(t, errors.Is(err, shared.ErrorNotFound))
}

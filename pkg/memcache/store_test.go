package mem

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	now := time.Unix(1_700_000_000, 0)
	s.now = func() time.Time { return now }

	value := []byte("hello")
	require.NoError(t, s.Set(ctx, "a", value, time.Minute))
	require.NoError(t, s.Set(ctx, "forever", []byte("x"), 0))
	value[0] = 'j'

	got, ok, err := s.Get(ctx, "a")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "hello", string(got), "stored value is a copy")

	got[0] = 'y'
	again, _, _ := s.Get(ctx, "a")
	assert.Equal(t, "hello", string(again), "returned value is a copy")

	now = now.Add(2 * time.Minute)
	_, ok, err = s.Get(ctx, "a")
	require.NoError(t, err)
	assert.False(t, ok, "expired")

	_, ok, _ = s.Get(ctx, "forever")
	assert.True(t, ok)

	require.NoError(t, s.Delete(ctx, "forever"))
	_, ok, _ = s.Get(ctx, "forever")
	assert.False(t, ok)
}

func TestMemoryStore_Purge(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	now := time.Unix(1_700_000_000, 0)
	s.now = func() time.Time { return now }

	_ = s.Set(ctx, "short", []byte("1"), time.Second)
	_ = s.Set(ctx, "long", []byte("2"), time.Hour)
	_ = s.Set(ctx, "none", []byte("3"), -1)

	now = now.Add(time.Minute)
	assert.Equal(t, 1, s.Purge())
	assert.Equal(t, 0, s.Purge())
	assert.Len(t, s.data, 2)
}

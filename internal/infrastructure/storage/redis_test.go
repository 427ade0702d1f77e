package storage

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisBackend(t *testing.T) (*RedisBackend, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisBackend(client), mr
}

func TestRedisBackend_RoundTrip(t *testing.T) {
	ctx := context.Background()
	b, mr := newTestRedisBackend(t)

	_, found, err := b.Get(ctx, "medifind_user")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, b.Set(ctx, "medifind_user", []byte(`{"name":"Asha"}`)))
	stored, err := mr.Get("medifind_user")
	require.NoError(t, err)
	assert.Equal(t, `{"name":"Asha"}`, stored)
	assert.Zero(t, mr.TTL("medifind_user"))

	value, found, err := b.Get(ctx, "medifind_user")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `{"name":"Asha"}`, string(value))

	require.NoError(t, b.Del(ctx, "medifind_user"))
	assert.False(t, mr.Exists("medifind_user"))
}

func TestRedisBackend_ServerDown(t *testing.T) {
	ctx := context.Background()
	b, mr := newTestRedisBackend(t)
	mr.Close()

	_, _, err := b.Get(ctx, "appointments")
	assert.Error(t, err)
	assert.Error(t, b.Set(ctx, "appointments", []byte(`[]`)))
}

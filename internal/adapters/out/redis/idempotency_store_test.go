package redis_test

import (
	"testing"
	"time"

	redisadapter "marketplace/internal/adapters/out/redis"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) (*redisadapter.IdempotencyStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return redisadapter.NewIdempotencyStore(client), mr
}

func TestIdempotencyStore_Lifecycle(t *testing.T) {
	ctx := t.Context()
	store, _ := newStore(t)

	id, reserved, err := store.Reserve(ctx, "abc", time.Minute)
	require.NoError(t, err)
	assert.True(t, reserved)
	assert.Nil(t, id)

	id, reserved, err = store.Reserve(ctx, "abc", time.Minute)
	require.NoError(t, err)
	assert.False(t, reserved, "second request while the first is running")
	assert.Nil(t, id)

	orderID := kernel.NewUUID()
	require.NoError(t, store.Complete(ctx, "abc", orderID, time.Minute))

	id, reserved, err = store.Reserve(ctx, "abc", time.Minute)
	require.NoError(t, err)
	assert.False(t, reserved)
	require.NotNil(t, id)
	assert.True(t, id.IsEqual(orderID))
}

func TestIdempotencyStore_ReleaseFreesKey(t *testing.T) {
	ctx := t.Context()
	store, _ := newStore(t)

	_, reserved, err := store.Reserve(ctx, "k", time.Minute)
	require.NoError(t, err)
	require.True(t, reserved)

	require.NoError(t, store.Release(ctx, "k"))

	_, reserved, err = store.Reserve(ctx, "k", time.Minute)
	require.NoError(t, err)
	assert.True(t, reserved)
}

func TestIdempotencyStore_KeysExpire(t *testing.T) {
	ctx := t.Context()
	store, mr := newStore(t)

	require.NoError(t, store.Complete(ctx, "k", kernel.NewUUID(), time.Minute))
	mr.FastForward(2 * time.Minute)

	_, reserved, err := store.Reserve(ctx, "k", time.Minute)
	require.NoError(t, err)
	assert.True(t, reserved)
}

func TestIdempotencyStore_ServerDown(t *testing.T) {
	store, mr := newStore(t)
	mr.Close()

	_, _, err := store.Reserve(t.Context(), "k", time.Minute)
	assert.Error(t, err)
}

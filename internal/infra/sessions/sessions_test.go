package sessions

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisStore(client, "test:revoked"), mr
}

func TestRedisStore_RevokeAndCheck(t *testing.T) {
	store, mr := newRedisStore(t)
	ctx := context.Background()

	revoked, err := store.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, store.Revoke(ctx, "jti-1", time.Now().Add(time.Hour)))

	revoked, err = store.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)
	assert.True(t, mr.Exists("test:revoked:jti-1"))
	assert.Greater(t, mr.TTL("test:revoked:jti-1"), 59*time.Minute)
}

func TestRedisStore_ExpiresWithToken(t *testing.T) {
	store, mr := newRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.Revoke(ctx, "jti-2", time.Now().Add(10*time.Minute)))
	mr.FastForward(11 * time.Minute)

	revoked, err := store.IsRevoked(ctx, "jti-2")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestRedisStore_ExpiredTokenIsNotStored(t *testing.T) {
	store, mr := newRedisStore(t)

	require.NoError(t, store.Revoke(context.Background(), "old", time.Now().Add(-time.Minute)))

	assert.False(t, mr.Exists("test:revoked:old"))
}

func TestRedisStore_Unavailable(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()
	store := NewRedisStore(client, "")

	_, err := store.IsRevoked(context.Background(), "jti")

	assert.ErrorIs(t, err, ErrStore)
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()
	now := time.Date(2025, 4, 21, 10, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, store.Revoke(ctx, "jti", now.Add(time.Hour)))

	revoked, err := store.IsRevoked(ctx, "jti")
	require.NoError(t, err)
	assert.True(t, revoked)

	now = now.Add(2 * time.Hour)
	revoked, err = store.IsRevoked(ctx, "jti")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestStores_EmptyTokenID(t *testing.T) {
	store, _ := newRedisStore(t)

	assert.ErrorIs(t, store.Revoke(context.Background(), "", time.Now().Add(time.Hour)), ErrEmptyTokenID)
	assert.ErrorIs(t, NewMemoryStore().Revoke(context.Background(), "", time.Now()), ErrEmptyTokenID)
}

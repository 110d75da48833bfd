//go:build unit

package session_test

import (
	"context"
	"testing"
	"time"

	"rental-admin/internal/domain/auth"
	"rental-admin/internal/infra/session"
	"rental-admin/internal/pkg/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T) (*session.Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return session.NewStore(client), mr
}

func TestStore_SaveAndConsume(t *testing.T) {
	ctx := context.Background()
	store, mr := setupStore(t)
	userID := uuid.New()

	require.NoError(t, store.Save(ctx, "jti-1", userID, time.Hour))
	assert.True(t, mr.Exists("session:refresh:jti-1"))

	got, err := store.Consume(ctx, "jti-1")
	require.NoError(t, err)
	assert.Equal(t, userID, got)

	_, err = store.Consume(ctx, "jti-1")
	assert.ErrorIs(t, err, auth.ErrSessionExpired, "a refresh token is single use")
}

func TestStore_Expiry(t *testing.T) {
	ctx := context.Background()
	store, mr := setupStore(t)

	require.NoError(t, store.Save(ctx, "jti-2", uuid.New(), time.Minute))
	mr.FastForward(2 * time.Minute)

	_, err := store.Consume(ctx, "jti-2")
	assert.ErrorIs(t, err, auth.ErrSessionExpired)
}

func TestStore_Revoke(t *testing.T) {
	ctx := context.Background()
	store, _ := setupStore(t)

	require.NoError(t, store.Save(ctx, "jti-3", uuid.New(), time.Hour))
	require.NoError(t, store.Revoke(ctx, "jti-3"))
	require.NoError(t, store.Revoke(ctx, "jti-3"), "revoking twice is fine")

	_, err := store.Consume(ctx, "jti-3")
	assert.ErrorIs(t, err, auth.ErrSessionExpired)
}

func TestStore_RevokeUser(t *testing.T) {
	ctx := context.Background()
	store, mr := setupStore(t)
	alice, bob := uuid.New(), uuid.New()

	require.NoError(t, store.Save(ctx, "a-1", alice, time.Hour))
	require.NoError(t, store.Save(ctx, "a-2", alice, time.Hour))
	require.NoError(t, store.Save(ctx, "b-1", bob, time.Hour))

	require.NoError(t, store.RevokeUser(ctx, alice))

	assert.False(t, mr.Exists("session:refresh:a-1"))
	assert.False(t, mr.Exists("session:refresh:a-2"))
	got, err := store.Consume(ctx, "b-1")
	require.NoError(t, err)
	assert.Equal(t, bob, got)
}

func TestConnect(t *testing.T) {
	mr := miniredis.RunT(t)

	client, cleanup, err := session.Connect(context.Background(), config.RedisConfig{Addr: mr.Addr(), PoolSize: 2})
	require.NoError(t, err)
	defer cleanup()
	assert.NoError(t, client.Ping(context.Background()).Err())

	addr := mr.Addr()
	mr.Close()
	_, _, err = session.Connect(context.Background(), config.RedisConfig{Addr: addr})
	assert.Error(t, err)
}

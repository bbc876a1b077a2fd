// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-media-hub/internal/config"
	"github.com/MKhiriev/go-media-hub/internal/logger"
)

func newMiniRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestVerificationCodeCache(t *testing.T) {
	mr, client := newMiniRedis(t)
	cache := NewVerificationCodeCache(client, "test:", logger.Nop())
	ctx := context.Background()

	_, found, err := cache.GetData(ctx, "john@example.com")
	require.NoError(t, err)
	assert.False(t, found)

	value, err := cache.SetDataExpire(ctx, "john@example.com", "123456", 180*time.Second)
	require.NoError(t, err)
	assert.Equal(t, "123456", value)
	assert.True(t, mr.Exists("test:signup-code:john@example.com"))

	got, found, err := cache.GetData(ctx, "john@example.com")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "123456", got)

	mr.FastForward(181 * time.Second)

	_, found, err = cache.GetData(ctx, "john@example.com")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestVerificationCodeCache_Unavailable(t *testing.T) {
	mr, client := newMiniRedis(t)
	cache := NewVerificationCodeCache(client, "", logger.Nop())
	mr.Close()

	_, err := cache.SetDataExpire(context.Background(), "k", "v", time.Minute)
	require.Error(t, err)
}

func TestRefreshTokenRepository(t *testing.T) {
	mr, client := newMiniRedis(t)
	repo := NewRefreshTokenRepository(client, "test:", "sign-key", logger.Nop())
	ctx := context.Background()
	userID := uuid.New()

	require.NoError(t, repo.Save(ctx, "refresh-token", userID, time.Hour))

	// the clear token is never used as a key
	for _, key := range mr.Keys() {
		assert.NotContains(t, key, "refresh-token:refresh-token")
	}

	got, found, err := repo.Find(ctx, "refresh-token")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, userID, got)

	_, found, err = repo.Find(ctx, "other-token")
	require.NoError(t, err)
	assert.False(t, found)

	deleted, err := repo.Delete(ctx, "refresh-token")
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, "refresh-token")
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestRefreshTokenRepository_Expires(t *testing.T) {
	mr, client := newMiniRedis(t)
	repo := NewRefreshTokenRepository(client, "", "sign-key", logger.Nop())
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "token", uuid.New(), time.Minute))
	mr.FastForward(2 * time.Minute)

	_, found, err := repo.Find(ctx, "token")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestNewConnectRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	ctx := context.Background()

	client, err := NewConnectRedis(ctx, config.Redis{Address: mr.Addr()}, logger.Nop())
	require.NoError(t, err)
	defer client.Close()

	require.NoError(t, NewRedisPinger(client).PingContext(ctx))

	addr := mr.Addr()
	mr.Close()
	_, err = NewConnectRedis(ctx, config.Redis{Address: addr}, logger.Nop())
	require.Error(t, err)
}

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/go-media-hub/internal/logger"
	"github.com/MKhiriev/go-media-hub/internal/utils"
)

const refreshTokenKeyPrefix = "refresh-token:"

// refreshTokenRepository maps refresh tokens to user ids in Redis. Tokens
// are never stored in clear: the key is an HMAC of the token.
type refreshTokenRepository struct {
	client    redis.Cmdable
	keyPrefix string
	hashKey   string
	logger    *logger.Logger
}

func NewRefreshTokenRepository(client redis.Cmdable, keyPrefix, hashKey string, logger *logger.Logger) RefreshTokenRepository {
	logger.Debug().Msg("creating refresh token repository")
	return &refreshTokenRepository{
		client:    client,
		keyPrefix: keyPrefix + refreshTokenKeyPrefix,
		hashKey:   hashKey,
		logger:    logger,
	}
}

func (r *refreshTokenRepository) key(token string) string {
	return r.keyPrefix + utils.HashString(token, r.hashKey)
}

func (r *refreshTokenRepository) Save(ctx context.Context, token string, userID uuid.UUID, ttl time.Duration) error {
	if err := r.client.Set(ctx, r.key(token), userID.String(), ttl).Err(); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*refreshTokenRepository.Save").Msg("error storing refresh token")
		return fmt.Errorf("error storing refresh token: %w", err)
	}
	return nil
}

func (r *refreshTokenRepository) Find(ctx context.Context, token string) (uuid.UUID, bool, error) {
	log := logger.FromContext(ctx)

	value, err := r.client.Get(ctx, r.key(token)).Result()
	if errors.Is(err, redis.Nil) {
		return uuid.Nil, false, nil
	}
	if err != nil {
		log.Err(err).Str("func", "*refreshTokenRepository.Find").Msg("error reading refresh token")
		return uuid.Nil, false, fmt.Errorf("error reading refresh token: %w", err)
	}

	userID, err := uuid.Parse(value)
	if err != nil {
		log.Err(err).Str("func", "*refreshTokenRepository.Find").Msg("stored refresh token owner is not a uuid")
		return uuid.Nil, false, fmt.Errorf("malformed refresh token owner: %w", err)
	}
	return userID, true, nil
}

// Delete removes token. deleted is false when it was already gone, which
// lets concurrent rotations of one token detect each other.
func (r *refreshTokenRepository) Delete(ctx context.Context, token string) (bool, error) {
	n, err := r.client.Del(ctx, r.key(token)).Result()
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*refreshTokenRepository.Delete").Msg("error deleting refresh token")
		return false, fmt.Errorf("error deleting refresh token: %w", err)
	}
	return n > 0, nil
}

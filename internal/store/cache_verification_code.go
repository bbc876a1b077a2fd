package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/go-media-hub/internal/logger"
)

const verificationCodeKeyPrefix = "signup-code:"

// verificationCodeCache keeps sign-up codes in Redis. Expiry is enforced
// by the key TTL.
type verificationCodeCache struct {
	client    redis.Cmdable
	keyPrefix string
	logger    *logger.Logger
}

func NewVerificationCodeCache(client redis.Cmdable, keyPrefix string, logger *logger.Logger) VerificationCodeCache {
	logger.Debug().Msg("creating verification code cache")
	return &verificationCodeCache{
		client:    client,
		keyPrefix: keyPrefix + verificationCodeKeyPrefix,
		logger:    logger,
	}
}

// SetDataExpire stores value under key for ttl, replacing any previous
// value and restarting its ttl.
func (c *verificationCodeCache) SetDataExpire(ctx context.Context, key, value string, ttl time.Duration) (string, error) {
	if err := c.client.Set(ctx, c.keyPrefix+key, value, ttl).Err(); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*verificationCodeCache.SetDataExpire").Msg("error storing verification code")
		return "", fmt.Errorf("error storing verification code: %w", err)
	}
	return value, nil
}

// GetData returns the value stored under key. found is false when the key
// never existed or has expired.
func (c *verificationCodeCache) GetData(ctx context.Context, key string) (string, bool, error) {
	value, err := c.client.Get(ctx, c.keyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*verificationCodeCache.GetData").Msg("error reading verification code")
		return "", false, fmt.Errorf("error reading verification code: %w", err)
	}
	return value, true, nil
}

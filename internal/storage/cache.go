package storage

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache stores signed URLs by object name.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

type redisCache struct {
	rdb    redis.UniversalClient
	prefix string
}

// NewRedisCache keys entries as "<prefix><key>".
func NewRedisCache(rdb redis.UniversalClient, prefix string) Cache {
	return &redisCache{rdb: rdb, prefix: prefix}
}

func (c *redisCache) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := c.rdb.Get(ctx, c.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (c *redisCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return c.rdb.Set(ctx, c.prefix+key, value, ttl).Err()
}

// cacheTTL keeps a cached URL from outliving its signature.
func cacheTTL(validity time.Duration) time.Duration {
	const margin = 5 * time.Minute
	if validity <= 2*margin {
		return validity / 2
	}
	return validity - margin
}

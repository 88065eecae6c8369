package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
	"tourism-itinerary-service/internal/platform/obs"
	"tourism-itinerary-service/internal/ports"

	"github.com/redis/go-redis/v9"
)

const attractionKeyPrefix = "attractions:"

// RedisAttractionCache stores resolved attraction name lists as JSON values with a TTL.
type RedisAttractionCache struct {
	rdb *redis.Client
}

var _ ports.AttractionCache = (*RedisAttractionCache)(nil)

func NewRedisAttractionCache(rdb *redis.Client) *RedisAttractionCache {
	return &RedisAttractionCache{rdb: rdb}
}

// NewRedisClient parses a redis:// URL and verifies connectivity.
func NewRedisClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("redis: parse url: %w", err)
	}

	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis: ping: %w", err)
	}
	return rdb, nil
}

func (c *RedisAttractionCache) Get(ctx context.Context, key string) (_ []string, _ bool, err error) {
	defer obs.Time(ctx, "attraction.cache.Get")(&err)

	raw, err := c.rdb.Get(ctx, attractionKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get attraction cache %q: %w", key, err)
	}

	var names []string
	if err := json.Unmarshal(raw, &names); err != nil {
		return nil, false, fmt.Errorf("get attraction cache %q: decode: %w", key, err)
	}
	return names, true, nil
}

func (c *RedisAttractionCache) Set(ctx context.Context, key string, names []string, ttl time.Duration) error {
	raw, err := json.Marshal(names)
	if err != nil {
		return fmt.Errorf("set attraction cache %q: encode: %w", key, err)
	}
	if err := c.rdb.Set(ctx, attractionKeyPrefix+key, raw, ttl).Err(); err != nil {
		return fmt.Errorf("set attraction cache %q: %w", key, err)
	}
	return nil
}

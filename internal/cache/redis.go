package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/ticoship/rate-service/internal/domain/model"
	"github.com/ticoship/rate-service/internal/metrics"
)

const tariffKeyPrefix = "tariff:"

// RedisCache stores tariff results in Redis so multiple service instances
// share one tariff cache. Redis errors degrade to cache misses; the
// caller falls through to the carrier.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache creates a Redis-backed tariff cache.
func NewRedisCache(addr, password string, db int, ttl time.Duration) *RedisCache {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &RedisCache{client: client, ttl: ttl}
}

// Get retrieves a tariff result from Redis.
func (c *RedisCache) Get(ctx context.Context, key string) (model.TariffResult, bool) {
	data, err := c.client.Get(ctx, tariffKeyPrefix+key).Bytes()
	if err == redis.Nil {
		metrics.RecordCacheOperation("get", "miss")
		return model.TariffResult{}, false
	}
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Tariff cache read failed")
		metrics.RecordCacheOperation("get", "error")
		return model.TariffResult{}, false
	}

	var result model.TariffResult
	if err := json.Unmarshal(data, &result); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Tariff cache entry corrupt")
		metrics.RecordCacheOperation("get", "error")
		return model.TariffResult{}, false
	}

	metrics.RecordCacheOperation("get", "hit")
	return result, true
}

// Set stores a tariff result with the configured TTL. A write failure is
// logged and dropped; the next lookup simply misses.
func (c *RedisCache) Set(ctx context.Context, key string, value model.TariffResult) {
	data, err := json.Marshal(value)
	if err != nil {
		metrics.RecordCacheOperation("set", "error")
		return
	}
	if err := c.client.Set(ctx, tariffKeyPrefix+key, data, c.ttl).Err(); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Tariff cache write failed")
		metrics.RecordCacheOperation("set", "error")
		return
	}
	metrics.RecordCacheOperation("set", "success")
}

// Clear removes all tariff entries.
func (c *RedisCache) Clear(ctx context.Context) {
	iter := c.client.Scan(ctx, 0, tariffKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		c.client.Del(ctx, iter.Val())
	}
}

// Stop closes the Redis connection.
func (c *RedisCache) Stop() {
	_ = c.client.Close()
}

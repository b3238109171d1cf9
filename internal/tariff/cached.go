package tariff

import (
	"context"

	"github.com/ticoship/rate-service/internal/cache"
	"github.com/ticoship/rate-service/internal/domain/model"
	"github.com/ticoship/rate-service/internal/metrics"
)

// CachedClient wraps a Client with read-through caching. Only successful
// lookups are stored, so a transient carrier failure retries on every
// call instead of being replayed for the TTL window.
type CachedClient struct {
	inner Client
	store cache.Cache
}

// NewCachedClient wraps inner with the given cache.
func NewCachedClient(inner Client, store cache.Cache) *CachedClient {
	return &CachedClient{inner: inner, store: store}
}

// GetTariff serves the query from cache when possible.
func (c *CachedClient) GetTariff(ctx context.Context, query model.TariffQuery) (model.TariffResult, error) {
	key := query.CacheKey()

	if result, ok := c.store.Get(ctx, key); ok {
		metrics.RecordTariffLookup(0, "cache_hit")
		return result, nil
	}

	result, err := c.inner.GetTariff(ctx, query)
	if err != nil {
		return model.TariffResult{}, err
	}

	if result.OK() {
		c.store.Set(ctx, key, result)
	}
	return result, nil
}

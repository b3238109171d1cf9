// Package cache provides time-boxed storage for carrier tariff lookups.
package cache

import (
	"context"

	"github.com/ticoship/rate-service/internal/domain/model"
)

// Cache stores tariff results under deterministic route+weight keys.
// Entries past their TTL are treated as absent. Callers are responsible
// for only storing successful results.
type Cache interface {
	Get(ctx context.Context, key string) (model.TariffResult, bool)
	Set(ctx context.Context, key string, value model.TariffResult)
	Clear(ctx context.Context)
	Stop()
}

// Metrics provides cache performance counters.
type Metrics struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int
	Capacity  int
}

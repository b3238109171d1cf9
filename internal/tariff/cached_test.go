package tariff

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/ticoship/rate-service/internal/cache"
	"github.com/ticoship/rate-service/internal/domain/model"
)

func testQuery() model.TariffQuery {
	return model.TariffQuery{
		Origin:      model.Location{Province: "1", Canton: "01", District: "01"},
		Destination: model.Location{Province: "1", Canton: "02", District: "01"},
		ServiceID:   "031",
		WeightGrams: 2000,
	}
}

func countingClient(result model.TariffResult, calls *int) Client {
	return ClientFunc(func(ctx context.Context, q model.TariffQuery) (model.TariffResult, error) {
		*calls++
		return result, nil
	})
}

func TestCachedClientInvokesInnerOncePerTTL(t *testing.T) {
	store := cache.NewMemoryCache(10, time.Minute)
	defer store.Stop()

	calls := 0
	ok := model.TariffResult{ResponseCode: model.ResponseOK, BaseRate: decimal.NewFromInt(2500)}
	client := NewCachedClient(countingClient(ok, &calls), store)

	for i := 0; i < 3; i++ {
		result, err := client.GetTariff(context.Background(), testQuery())
		assert.NoError(t, err)
		assert.True(t, result.OK())
		assert.True(t, decimal.NewFromInt(2500).Equal(result.BaseRate))
	}

	assert.Equal(t, 1, calls, "identical queries within the TTL must hit the carrier at most once")
}

func TestCachedClientRefetchesAfterExpiry(t *testing.T) {
	store := cache.NewMemoryCache(10, 30*time.Millisecond)
	defer store.Stop()

	calls := 0
	ok := model.TariffResult{ResponseCode: model.ResponseOK, BaseRate: decimal.NewFromInt(2500)}
	client := NewCachedClient(countingClient(ok, &calls), store)

	_, _ = client.GetTariff(context.Background(), testQuery())
	_, _ = client.GetTariff(context.Background(), testQuery())
	assert.Equal(t, 1, calls)

	time.Sleep(50 * time.Millisecond)

	_, _ = client.GetTariff(context.Background(), testQuery())
	assert.Equal(t, 2, calls, "expired entry must trigger a fresh lookup")
}

func TestCachedClientNeverStoresFailures(t *testing.T) {
	store := cache.NewMemoryCache(10, time.Minute)
	defer store.Stop()

	calls := 0
	rejected := model.TariffResult{ResponseCode: "36", ResponseMessage: "Envio ya existe"}
	client := NewCachedClient(countingClient(rejected, &calls), store)

	for i := 0; i < 3; i++ {
		result, err := client.GetTariff(context.Background(), testQuery())
		assert.NoError(t, err)
		assert.False(t, result.OK())
	}

	assert.Equal(t, 3, calls, "non-success results must retry on every call")
}

func TestCachedClientDistinctQueriesGetDistinctEntries(t *testing.T) {
	store := cache.NewMemoryCache(10, time.Minute)
	defer store.Stop()

	calls := 0
	ok := model.TariffResult{ResponseCode: model.ResponseOK, BaseRate: decimal.NewFromInt(2500)}
	client := NewCachedClient(countingClient(ok, &calls), store)

	q1 := testQuery()
	q2 := testQuery()
	q2.WeightGrams = 3000

	_, _ = client.GetTariff(context.Background(), q1)
	_, _ = client.GetTariff(context.Background(), q2)

	assert.Equal(t, 2, calls, "weight is part of the cache key")
}

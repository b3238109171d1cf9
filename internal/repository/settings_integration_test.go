//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ticoship/rate-service/internal/domain/model"
	"github.com/ticoship/rate-service/internal/testutil"
)

func setupMongo(t *testing.T) *MongoDB {
	t.Helper()
	ctx := context.Background()

	container, err := testutil.SetupMongoDB(ctx)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = container.Cleanup(context.Background())
	})

	db, err := NewMongoDB(container.URI, "rate_service_test")
	require.NoError(t, err)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = db.Close(ctx)
	})

	return db
}

func TestSettingsRepositoryRoundTrip(t *testing.T) {
	db := setupMongo(t)
	repo := NewSettingsRepository(db.Settings)
	ctx := context.Background()

	_, err := repo.GetByVariant(ctx, model.VariantPymexpress)
	assert.ErrorIs(t, err, ErrSettingsNotFound)

	settings := model.DefaultSettings(model.VariantPymexpress)
	settings.OriginPostcode = "10101"
	settings.MinRateEnabled = true
	settings.MinInsideGAM = decimal.NewFromInt(3000)
	require.NoError(t, repo.Upsert(ctx, settings, "admin"))

	stored, err := repo.GetByVariant(ctx, model.VariantPymexpress)
	require.NoError(t, err)
	assert.Equal(t, "10101", stored.OriginPostcode)
	assert.True(t, stored.MinRateEnabled)
	assert.True(t, decimal.NewFromInt(3000).Equal(stored.MinInsideGAM))

	// Upsert replaces the existing document.
	settings.OriginPostcode = "30101"
	require.NoError(t, repo.Upsert(ctx, settings, "admin"))

	stored, err = repo.GetByVariant(ctx, model.VariantPymexpress)
	require.NoError(t, err)
	assert.Equal(t, "30101", stored.OriginPostcode)
}

func TestAuditRepositoryInserts(t *testing.T) {
	db := setupMongo(t)
	repo := NewAuditRepository(db.Logs, db.Quotes)
	ctx := context.Background()

	require.NoError(t, repo.InsertRequestLog(ctx, &model.RequestLog{
		Timestamp: time.Now(),
		RequestID: "r1",
		Method:    "POST",
		Path:      "/api/quote",
	}))

	require.NoError(t, repo.InsertQuoteLog(ctx, &model.QuoteLog{
		Timestamp:   time.Now(),
		RequestID:   "r1",
		Variant:     model.VariantPymexpress,
		Country:     "CR",
		PostalCode:  "10101",
		WeightGrams: 2000,
		Cost:        "2500",
		Outcome:     "priced",
	}))

	count, err := db.Quotes.CountDocuments(ctx, map[string]interface{}{"variant": model.VariantPymexpress})
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

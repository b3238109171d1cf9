package rate

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/ticoship/rate-service/internal/domain/model"
)

func TestApplyMaxWeightGuard(t *testing.T) {
	own := model.RateRecord{ID: model.VariantPymexpress, Cost: decimal.NewFromInt(2500)}
	other := model.RateRecord{ID: "flat_rate", Cost: decimal.NewFromInt(1000)}

	tests := []struct {
		name       string
		strict     bool
		totalGrams float64
		rates      []model.RateRecord
		expected   []model.RateRecord
	}{
		{
			name:       "under the limit keeps everything",
			strict:     true,
			totalGrams: 29999,
			rates:      []model.RateRecord{own, other},
			expected:   []model.RateRecord{own, other},
		},
		{
			name:       "exactly at the limit keeps everything",
			strict:     true,
			totalGrams: MaxWeightGrams,
			rates:      []model.RateRecord{own, other},
			expected:   []model.RateRecord{own, other},
		},
		{
			name:       "over the limit withdraws only the variant's rate",
			strict:     true,
			totalGrams: 30001,
			rates:      []model.RateRecord{own, other},
			expected:   []model.RateRecord{other},
		},
		{
			name:       "strict mode off leaves overweight rates alone",
			strict:     false,
			totalGrams: 45000,
			rates:      []model.RateRecord{own, other},
			expected:   []model.RateRecord{own, other},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := model.DefaultSettings(model.VariantPymexpress)
			settings.StrictMaxWeight = tt.strict

			got := ApplyMaxWeightGuard(tt.rates, tt.totalGrams, settings)
			assert.Equal(t, tt.expected, got)
		})
	}
}

package rate

import (
	"github.com/rs/zerolog/log"
	"github.com/ticoship/rate-service/internal/domain/model"
)

// ApplyMaxWeightGuard post-processes the computed rates for a cart. When
// strict max weight is configured and the aggregate cart weight exceeds
// the carrier limit, the variant's rates are withdrawn entirely instead
// of being offered with a warning label.
func ApplyMaxWeightGuard(rates []model.RateRecord, totalGrams float64, s model.Settings) []model.RateRecord {
	if !s.StrictMaxWeight || totalGrams <= MaxWeightGrams {
		return rates
	}

	kept := make([]model.RateRecord, 0, len(rates))
	for _, r := range rates {
		if r.ID == s.Variant {
			log.Info().
				Str("variant", s.Variant).
				Float64("total_grams", totalGrams).
				Msg("Cart exceeds carrier weight limit, withdrawing rate")
			continue
		}
		kept = append(kept, r)
	}
	return kept
}

package rate

import (
	"github.com/shopspring/decimal"
	"github.com/ticoship/rate-service/internal/domain/model"
)

// Hooks are typed extension points injected into the pipeline. Each hook
// adjusts one computed intermediate value; none of them alters the order
// the pricing rules run in. A nil hook is skipped.
type Hooks struct {
	// PackingCost adjusts the packing cost before it is added to the rate.
	PackingCost func(cost decimal.Decimal) decimal.Decimal
	// ExchangeRate adjusts the configured exchange rate before division.
	ExchangeRate func(rate decimal.Decimal) decimal.Decimal
	// DefaultPostcode adjusts the preselected postal code when the buyer
	// left the destination code empty.
	DefaultPostcode func(postcode string) string
	// LocationOverride resolves a destination whose configured postal
	// code is the custom sentinel. Returning an empty string falls back
	// to the default postcode.
	LocationOverride func(destination model.Address) string
	// LabelForCode transforms the final label, keyed by the carrier
	// response code ("00" on success).
	LabelForCode func(responseCode, label string) string
	// FinalRate transforms the complete rate record before it is
	// returned to the checkout.
	FinalRate func(record *model.RateRecord)
}

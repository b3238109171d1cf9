package model

import "github.com/shopspring/decimal"

// Shipping method variants. Both share the same pricing pipeline and
// differ only in configuration defaults.
const (
	VariantPymexpress = "pymexpress"
	VariantCCRSimple  = "ccr-simple"
)

// Packing size tiers and their costs in colones.
const (
	PackingSmall  = "small"
	PackingMedium = "medium"
	PackingBig    = "big"
)

// SentinelCustom marks a location component that must be resolved through
// the location override hook instead of the postal table.
const SentinelCustom = "custom"

// Settings is the merchant configuration snapshot for one shipping method
// variant. A snapshot is read once at the start of a quote and never
// mutated during it, so the pipeline stays pure given (package, settings).
type Settings struct {
	Variant     string `json:"variant" bson:"variant"`
	Enabled     bool   `json:"enabled" bson:"enabled"`
	Title       string `json:"title" bson:"title"`
	ServiceName string `json:"service_name" bson:"service_name"`
	ServiceID   string `json:"service_id" bson:"service_id"`
	// Country is the only destination country the carrier serves.
	Country string `json:"country" bson:"country"`
	// WeightUnit is the unit item weights arrive in (g, kg, lbs, oz).
	WeightUnit string `json:"weight_unit" bson:"weight_unit"`

	// OriginPostcode locates the store; quoting is impossible without it.
	OriginPostcode string `json:"origin_postcode" bson:"origin_postcode"`

	// FallbackRate seeds the working rate before the carrier lookup.
	// Failed lookups still zero the final cost at the label stage, so
	// buyers are never charged this value.
	FallbackRate decimal.Decimal `json:"fallback_rate" bson:"fallback_rate"`

	TaxEnabled bool `json:"tax_enabled" bson:"tax_enabled"`

	PackingEnabled bool   `json:"packing_enabled" bson:"packing_enabled"`
	PackingSize    string `json:"packing_size" bson:"packing_size"`
	// PackingCost overrides the tier cost when positive.
	PackingCost decimal.Decimal `json:"packing_cost" bson:"packing_cost"`

	ExchangeEnabled bool            `json:"exchange_enabled" bson:"exchange_enabled"`
	ExchangeRate    decimal.Decimal `json:"exchange_rate" bson:"exchange_rate"`

	MinRateEnabled bool            `json:"min_rate_enabled" bson:"min_rate_enabled"`
	MinInsideGAM   decimal.Decimal `json:"min_inside_gam" bson:"min_inside_gam"`
	MinOutsideGAM  decimal.Decimal `json:"min_outside_gam" bson:"min_outside_gam"`

	FixedRateEnabled bool            `json:"fixed_rate_enabled" bson:"fixed_rate_enabled"`
	FixedRateGAM     decimal.Decimal `json:"fixed_rate_gam" bson:"fixed_rate_gam"`
	FixedRateOutside decimal.Decimal `json:"fixed_rate_outside" bson:"fixed_rate_outside"`

	// DefaultPostcode is preselected when the buyer leaves the postal
	// code empty and DefaultPostcodeEnabled is on.
	DefaultPostcodeEnabled bool   `json:"default_postcode_enabled" bson:"default_postcode_enabled"`
	DefaultPostcode        string `json:"default_postcode" bson:"default_postcode"`

	// RoundWeight rounds the billed weight up to the next full kilogram
	// for the pymexpress variant.
	RoundWeight bool `json:"round_weight" bson:"round_weight"`

	// LabelTemplate, when set, replaces the default label. Supported
	// placeholders: %rate%, %country%, %weight%, %weight-ccr%.
	LabelTemplate string `json:"label_template" bson:"label_template"`

	// StrictMaxWeight removes the rate entirely when the cart exceeds
	// the carrier's 30 kg limit instead of quoting it with a warning.
	StrictMaxWeight bool `json:"strict_max_weight" bson:"strict_max_weight"`
}

// DefaultSettings returns the factory configuration for a variant.
func DefaultSettings(variant string) Settings {
	s := Settings{
		Variant:      variant,
		Enabled:      true,
		Title:        "Correos de Costa Rica",
		ServiceName:  "Pymexpress",
		ServiceID:    "031",
		Country:      "CR",
		WeightUnit:   "g",
		FallbackRate: decimal.NewFromInt(1500),
		PackingSize:  PackingSmall,
		RoundWeight:  true,
	}
	if variant == VariantCCRSimple {
		s.ServiceName = "EMS Courier"
		s.ServiceID = "014"
		s.RoundWeight = false
	}
	return s
}

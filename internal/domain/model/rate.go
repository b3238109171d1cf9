package model

import "github.com/shopspring/decimal"

// RateRecord is the shipping rate offered to the checkout for one method.
// It is built once per quote, mutated through the pricing rules, handed
// to the caller and never persisted.
//
// @Description One computed shipping rate
type RateRecord struct {
	// ID is the shipping method identifier (the variant name)
	ID string `json:"id" example:"pymexpress"`
	// Label is the buyer-facing description of the rate
	Label string `json:"label" example:"Correos de Costa Rica - Pymexpress a CR (2000 g)"`
	// Cost is the final price in the store currency
	Cost decimal.Decimal `json:"cost" example:"2500"`
	// FreeShipping is set when a coupon zeroed the rate
	FreeShipping bool `json:"free_shipping,omitempty"`
	// WeightGrams is the billed weight the price was computed from
	WeightGrams float64 `json:"weight_grams" example:"2000"`
}

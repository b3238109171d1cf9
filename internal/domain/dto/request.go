// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs decouple the HTTP layer from the domain model, providing
// validation and serialization for API communication.
package dto

import (
	"strings"

	"github.com/ticoship/rate-service/internal/domain/model"
)

// AddressPayload is the destination part of a quote request.
type AddressPayload struct {
	// Country is the ISO 3166-1 alpha-2 destination country.
	Country string `json:"country" binding:"required" example:"CR"`
	// State is the province name, used to derive a postal code when none is given.
	State string `json:"state" example:"San José"`
	// City is the canton name.
	City string `json:"city" example:"Escazú"`
	// PostalCode is the five digit destination code, or "custom".
	PostalCode string `json:"postal_code" example:"10201"`
} // @name AddressPayload

// ItemPayload is one cart line in a quote request.
type ItemPayload struct {
	ProductID string `json:"product_id" example:"SKU-1042"`
	// Quantity below 1 is treated as 1.
	Quantity int `json:"quantity" example:"2"`
	// Weight is the unit weight in the variant's configured weight unit.
	Weight float64 `json:"weight" example:"250"`
	// FreeShipping marks items whose weight is shown but never billed.
	FreeShipping bool `json:"free_shipping"`
} // @name ItemPayload

// CouponPayload is an applied cart coupon.
type CouponPayload struct {
	Code         string `json:"code" example:"ENVIOGRATIS"`
	FreeShipping bool   `json:"free_shipping"`
} // @name CouponPayload

// QuoteRequest represents the JSON request body for the quote endpoint.
//
// Destination and at least one item are required. Variants selects which
// configured shipping methods to quote; empty means all of them.
//
// @Description Request to quote shipping rates for a cart
type QuoteRequest struct {
	Destination AddressPayload  `json:"destination" binding:"required"`
	Items       []ItemPayload   `json:"items" binding:"required,min=1"`
	Coupons     []CouponPayload `json:"coupons"`
	// Variants restricts the quote to these method variants.
	Variants []string `json:"variants" example:"pymexpress"`
} // @name QuoteRequest

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

var (
	// ErrMissingItems is returned when the cart has no items.
	ErrMissingItems = &ValidationError{
		Field:   "items",
		Message: "at least one item is required",
	}
	// ErrMissingCountry is returned when the destination country is empty.
	ErrMissingCountry = &ValidationError{
		Field:   "destination.country",
		Message: "country is required",
	}
	// ErrUnknownVariant is returned when a requested variant is not configured.
	ErrUnknownVariant = &ValidationError{
		Field:   "variants",
		Message: "unknown shipping method variant",
	}
)

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Validate performs custom validation on the request.
func (r *QuoteRequest) Validate() error {
	if len(r.Items) == 0 {
		return ErrMissingItems
	}
	if strings.TrimSpace(r.Destination.Country) == "" {
		return ErrMissingCountry
	}
	for _, v := range r.Variants {
		switch v {
		case model.VariantPymexpress, model.VariantCCRSimple:
		default:
			return ErrUnknownVariant
		}
	}
	return nil
}

// ToPackage converts the request into the domain package the pipeline consumes.
func (r *QuoteRequest) ToPackage() model.Package {
	pkg := model.Package{
		Destination: model.Address{
			Country:    r.Destination.Country,
			State:      r.Destination.State,
			City:       r.Destination.City,
			PostalCode: r.Destination.PostalCode,
		},
		Items: make([]model.LineItem, 0, len(r.Items)),
	}
	for _, item := range r.Items {
		pkg.Items = append(pkg.Items, model.LineItem{
			ProductID:    item.ProductID,
			Quantity:     item.Quantity,
			Weight:       item.Weight,
			FreeShipping: item.FreeShipping,
		})
	}
	for _, coupon := range r.Coupons {
		pkg.Coupons = append(pkg.Coupons, model.Coupon{
			Code:         coupon.Code,
			FreeShipping: coupon.FreeShipping,
		})
	}
	return pkg
}

// UpdateSettingsRequest represents the JSON request body for updating a
// variant's method settings. The embedded settings are stored as-is after
// validation; the variant in the URL wins over the one in the body.
type UpdateSettingsRequest struct {
	model.Settings
	// UpdatedBy is the identifier of who changed this configuration.
	UpdatedBy string `json:"updated_by,omitempty"`
} // @name UpdateSettingsRequest

var (
	// ErrInvalidWeightUnit is returned for an unsupported weight unit.
	ErrInvalidWeightUnit = &ValidationError{
		Field:   "weight_unit",
		Message: "must be one of g, kg, lbs, oz",
	}
	// ErrInvalidPackingSize is returned for an unknown packing tier.
	ErrInvalidPackingSize = &ValidationError{
		Field:   "packing_size",
		Message: "must be one of small, medium, big",
	}
	// ErrNegativeRate is returned when a configured amount is negative.
	ErrNegativeRate = &ValidationError{
		Field:   "fallback_rate",
		Message: "must not be negative",
	}
)

// Validate checks the updated settings for consistency.
func (r *UpdateSettingsRequest) Validate() error {
	switch r.WeightUnit {
	case "", "g", "kg", "lbs", "oz":
	default:
		return ErrInvalidWeightUnit
	}
	if r.PackingEnabled {
		switch r.PackingSize {
		case model.PackingSmall, model.PackingMedium, model.PackingBig:
		default:
			if !r.PackingCost.IsPositive() {
				return ErrInvalidPackingSize
			}
		}
	}
	if r.FallbackRate.IsNegative() {
		return ErrNegativeRate
	}
	return nil
}

// Package model defines the core domain entities for the rate service.
package model

// Address is the destination of a package as seen by the checkout.
//
// @Description Destination address of the cart being quoted
type Address struct {
	// Country is the ISO 3166-1 alpha-2 destination country code
	Country string `json:"country" example:"CR"`
	// State is the destination province name
	State string `json:"state" example:"San Jose"`
	// City is the destination canton name
	City string `json:"city" example:"Escazu"`
	// PostalCode is the 5-digit national postal code, may be empty
	PostalCode string `json:"postal_code" example:"10201"`
}

// LineItem is a single cart line.
//
// @Description One product line of the cart
type LineItem struct {
	// ProductID identifies the product
	ProductID string `json:"product_id" example:"SKU-1042"`
	// Quantity of the product; values below 1 are treated as 1
	Quantity int `json:"quantity" example:"2"`
	// Weight is the unit weight in the store's configured weight unit;
	// negative values are treated as 0
	Weight float64 `json:"weight" example:"250"`
	// FreeShipping marks items whose weight is not billed
	FreeShipping bool `json:"free_shipping,omitempty"`
}

// Coupon is an applied cart coupon.
type Coupon struct {
	Code string `json:"code" example:"ENVIOGRATIS"`
	// FreeShipping grants unconditional free shipping when true
	FreeShipping bool `json:"free_shipping"`
}

// Package describes one shipment to be quoted.
//
// @Description Cart contents and destination submitted for a shipping quote
type Package struct {
	Destination Address    `json:"destination"`
	Items       []LineItem `json:"items"`
	Coupons     []Coupon   `json:"coupons,omitempty"`
}

// FreeShippingCoupon reports whether any applied coupon grants free shipping.
func (p Package) FreeShippingCoupon() bool {
	for _, c := range p.Coupons {
		if c.FreeShipping {
			return true
		}
	}
	return false
}

// WeightTotal holds the aggregated package weight in grams.
// Shipping is the billable weight; FreeShipping is the weight of
// free-shipping flagged items, shown on the label but never billed.
type WeightTotal struct {
	Shipping     float64
	FreeShipping float64
}

// Label returns the weight shown to the buyer: the full physical weight
// of the package, billable or not.
func (w WeightTotal) Label() float64 {
	return w.Shipping + w.FreeShipping
}

// Location identifies a point in the national postal hierarchy.
// Components are the numeric codes the carrier's web service expects
// (one digit province, two digit canton, two digit district).
type Location struct {
	Province string `json:"province" example:"1"`
	Canton   string `json:"canton" example:"02"`
	District string `json:"district" example:"01"`
}

// IsZero reports whether no component is set.
func (l Location) IsZero() bool {
	return l.Province == "" && l.Canton == "" && l.District == ""
}

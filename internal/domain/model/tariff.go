package model

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ResponseOK is the carrier response code for a successful tariff lookup.
const ResponseOK = "00"

// TariffQuery identifies one tariff lookup against the carrier.
type TariffQuery struct {
	Origin      Location
	Destination Location
	ServiceID   string
	// WeightGrams is the billed weight, after any per-kilogram rounding.
	WeightGrams float64
}

// CacheKey builds the deterministic cache key for this query. Components
// are joined with underscores in a fixed order; changing either the order
// or the component set invalidates every existing cache entry.
func (q TariffQuery) CacheKey() string {
	parts := []string{
		q.Origin.Province, q.Origin.Canton, q.Origin.District,
		q.Destination.Province, q.Destination.Canton, q.Destination.District,
		q.ServiceID,
		strconv.FormatFloat(q.WeightGrams, 'f', -1, 64),
	}
	return strings.Join(parts, "_")
}

// TariffResult is the carrier's answer to a tariff lookup. A ResponseCode
// of ResponseOK carries a usable BaseRate; any other code carries only a
// human-readable message.
type TariffResult struct {
	ResponseCode    string          `json:"response_code"`
	ResponseMessage string          `json:"response_message"`
	BaseRate        decimal.Decimal `json:"base_rate"`
	TaxAmount       decimal.Decimal `json:"tax_amount"`
}

// OK reports whether the lookup succeeded.
func (r TariffResult) OK() bool {
	return r.ResponseCode == ResponseOK
}

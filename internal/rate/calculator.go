// Package rate implements the shipping rate pipeline for the Costa Rican
// postal carrier: weight aggregation, tariff acquisition and an ordered
// chain of pricing rules producing the rate offered at checkout.
package rate

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/ticoship/rate-service/internal/domain/model"
	"github.com/ticoship/rate-service/internal/geo"
	"github.com/ticoship/rate-service/internal/metrics"
	"github.com/ticoship/rate-service/internal/tariff"
	"github.com/ticoship/rate-service/internal/units"
)

const (
	// MaxWeightGrams is the carrier's hard limit per shipment.
	MaxWeightGrams = 30000

	// defaultBilledGrams replaces a zero or unusable billed weight.
	defaultBilledGrams = 1000

	// fallbackPostcode is used when default-postcode preselection is on
	// but no code is configured.
	fallbackPostcode = "10101"

	// errCodeUnavailable stands in for a response code when the web
	// service could not be reached at all.
	errCodeUnavailable = "99"
	errMsgUnavailable  = "Servicio de tarifas no disponible"
)

// Packing tier costs in colones.
var packingCosts = map[string]decimal.Decimal{
	model.PackingSmall:  decimal.NewFromInt(100),
	model.PackingMedium: decimal.NewFromInt(130),
	model.PackingBig:    decimal.NewFromInt(150),
}

// Calculator runs the pricing pipeline. It is stateless across quotes;
// everything a quote needs arrives as arguments.
type Calculator struct {
	tariffs  tariff.Client
	resolver geo.Resolver
	hooks    Hooks
}

// Option configures a Calculator.
type Option func(*Calculator)

// WithHooks injects pipeline extension points.
func WithHooks(h Hooks) Option {
	return func(c *Calculator) {
		c.hooks = h
	}
}

// NewCalculator creates a Calculator using the given tariff client and
// address resolver.
func NewCalculator(tariffs tariff.Client, resolver geo.Resolver, opts ...Option) *Calculator {
	c := &Calculator{
		tariffs:  tariffs,
		resolver: resolver,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// AggregateWeight sums line item weights into billable and free-shipping
// totals, converted to grams. Quantities below 1 count as 1, negative or
// unusable weights as 0. Weight of free-shipping flagged items is tracked
// separately: it shows on the label but is never billed.
func AggregateWeight(items []model.LineItem, unit units.Unit) model.WeightTotal {
	var shipping, free float64
	for _, item := range items {
		qty := item.Quantity
		if qty < 1 {
			qty = 1
		}
		w := item.Weight
		if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
			w = 0
		}
		contribution := float64(qty) * w
		if item.FreeShipping {
			free += contribution
		} else {
			shipping += contribution
		}
	}
	return model.WeightTotal{
		Shipping:     units.ToGrams(shipping, unit),
		FreeShipping: units.ToGrams(free, unit),
	}
}

// Quote runs the full pipeline for one package under one settings
// snapshot. It returns nil when the method is not offered for this
// package; it never returns an error to the caller. Remote failures
// degrade to a zero-cost rate carrying the carrier's message as label.
func (c *Calculator) Quote(ctx context.Context, pkg model.Package, s model.Settings) *model.RateRecord {
	start := time.Now()

	record := c.quote(ctx, pkg, s)

	outcome := "priced"
	switch {
	case record == nil:
		outcome = "no_rate"
	case record.Cost.IsZero() && !record.FreeShipping:
		outcome = "degraded"
	}
	metrics.RecordQuote(s.Variant, time.Since(start), outcome)
	return record
}

func (c *Calculator) quote(ctx context.Context, pkg model.Package, s model.Settings) *model.RateRecord {
	// Step 1: weight aggregation and unit normalization.
	weights := AggregateWeight(pkg.Items, units.Parse(s.WeightUnit))

	// Step 2: service eligibility. Ineligible packages produce no rate
	// and no side effects; the method simply does not appear.
	if !strings.EqualFold(pkg.Destination.Country, s.Country) {
		log.Debug().
			Str("variant", s.Variant).
			Str("country", pkg.Destination.Country).
			Msg("Destination country not served")
		return nil
	}
	if !s.Enabled {
		log.Debug().Str("variant", s.Variant).Msg("Shipping method disabled")
		return nil
	}
	origin, err := c.resolver.LocationFor(s.OriginPostcode)
	if err != nil {
		log.Warn().
			Str("variant", s.Variant).
			Str("origin_postcode", s.OriginPostcode).
			Msg("Origin postcode missing or invalid, method unavailable")
		return nil
	}

	// Step 3: destination resolution.
	destZip, destination, ok := c.resolveDestination(pkg.Destination, s)
	if !ok {
		log.Debug().
			Str("variant", s.Variant).
			Str("state", pkg.Destination.State).
			Str("city", pkg.Destination.City).
			Msg("Destination unresolvable, method unavailable")
		return nil
	}

	// Step 4: weight rounding. Pymexpress bills per started kilogram.
	// The label weight is fixed before rounding so the buyer sees the
	// true package weight while the rounded weight is billed.
	labelGrams := weights.Label()
	billedGrams := weights.Shipping
	if s.Variant == model.VariantPymexpress && s.RoundWeight {
		billedGrams = roundUpToKilo(billedGrams)
	}
	if billedGrams <= 0 || math.IsNaN(billedGrams) || math.IsInf(billedGrams, 0) {
		billedGrams = defaultBilledGrams
	}

	// Step 5: tariff acquisition. A coupon that grants free shipping
	// makes the remote lookup pointless.
	couponFree := pkg.FreeShippingCoupon()
	cost := s.FallbackRate
	taxAmount := decimal.Zero
	failCode, failMsg := "", ""

	if couponFree {
		cost = decimal.Zero
	} else {
		query := model.TariffQuery{
			Origin:      origin,
			Destination: destination,
			ServiceID:   s.ServiceID,
			WeightGrams: billedGrams,
		}
		result, err := c.tariffs.GetTariff(ctx, query)
		switch {
		case err != nil:
			failCode, failMsg = errCodeUnavailable, errMsgUnavailable
			log.Error().Err(err).
				Str("variant", s.Variant).
				Str("cache_key", query.CacheKey()).
				Msg("Tariff lookup failed, degrading quote")
		case result.OK():
			cost = result.BaseRate
			taxAmount = result.TaxAmount
		default:
			failCode, failMsg = result.ResponseCode, result.ResponseMessage
		}
	}

	// Step 6: tax.
	if s.TaxEnabled {
		cost = cost.Add(taxAmount)
	}

	// Step 7: packing cost.
	if s.PackingEnabled {
		packing := packingCosts[s.PackingSize]
		if s.PackingCost.IsPositive() {
			packing = s.PackingCost
		}
		if c.hooks.PackingCost != nil {
			packing = c.hooks.PackingCost(packing)
		}
		cost = cost.Add(packing)
	}

	// Step 8: exchange rate conversion.
	if s.ExchangeEnabled {
		exchange := s.ExchangeRate
		if c.hooks.ExchangeRate != nil {
			exchange = c.hooks.ExchangeRate(exchange)
		}
		if !exchange.IsPositive() {
			exchange = decimal.NewFromInt(1)
		}
		cost = cost.DivRound(exchange, 2)
	}

	// Step 9: minimum rate floor. A route whose ends share a region tag
	// uses the inside minimum, mixed routes the outside one; this holds
	// even for routes entirely outside the GAM (see DESIGN.md).
	if s.MinRateEnabled {
		originTag := geo.Classify(s.OriginPostcode)
		destTag := geo.Classify(destZip)
		if originTag != geo.RegionUnknown && destTag != geo.RegionUnknown {
			minimum := s.MinOutsideGAM
			if originTag == destTag {
				minimum = s.MinInsideGAM
			}
			if cost.LessThan(minimum) {
				cost = minimum
			}
		}
	}

	// Step 10: fixed rate override by destination region.
	if s.FixedRateEnabled {
		switch geo.Classify(destZip) {
		case geo.RegionGAM:
			cost = s.FixedRateGAM
		case geo.RegionNotGAM:
			cost = s.FixedRateOutside
		}
	}

	// Step 11: coupon override. Runs after the fixed rate so a coupon
	// can zero out an otherwise fixed price.
	if couponFree {
		cost = decimal.Zero
	}

	// Step 12: label construction.
	label := buildLabel(s, pkg.Destination.Country, cost, labelGrams, billedGrams, couponFree)
	responseCode := model.ResponseOK
	if failCode != "" {
		// The carrier's error message replaces every other label
		// decoration and the rate is not charged.
		responseCode = failCode
		label = failMsg
		if label == "" {
			label = errMsgUnavailable
		}
		cost = decimal.Zero
	}
	if c.hooks.LabelForCode != nil {
		label = c.hooks.LabelForCode(responseCode, label)
	}

	// Step 13: emit, with one last external transformation.
	record := &model.RateRecord{
		ID:           s.Variant,
		Label:        label,
		Cost:         cost,
		FreeShipping: couponFree,
		WeightGrams:  billedGrams,
	}
	if c.hooks.FinalRate != nil {
		c.hooks.FinalRate(record)
	}
	return record
}

// resolveDestination determines the destination postal code and location.
// Empty postal codes are derived from state and city; failing that, the
// configured default postcode may be preselected. The custom sentinel
// routes through the location override hook.
func (c *Calculator) resolveDestination(d model.Address, s model.Settings) (string, model.Location, bool) {
	zip := strings.TrimSpace(d.PostalCode)

	if zip == "" {
		if derived, err := c.resolver.PostcodeFor(d.State, d.City); err == nil {
			zip = derived
		}
	}

	if zip == "" && s.DefaultPostcodeEnabled {
		zip = s.DefaultPostcode
		if zip == "" {
			zip = fallbackPostcode
		}
		if c.hooks.DefaultPostcode != nil {
			zip = c.hooks.DefaultPostcode(zip)
		}
	}

	if zip == model.SentinelCustom {
		zip = ""
		if c.hooks.LocationOverride != nil {
			zip = c.hooks.LocationOverride(d)
		}
		if zip == "" || zip == model.SentinelCustom {
			zip = fallbackPostcode
		}
	}

	if zip == "" {
		return "", model.Location{}, false
	}

	location, err := c.resolver.LocationFor(zip)
	if err != nil {
		return "", model.Location{}, false
	}
	return zip, location, true
}

// roundUpToKilo rounds grams up to the next multiple of 1000; exact
// multiples are unchanged.
func roundUpToKilo(grams float64) float64 {
	if grams <= 0 {
		return grams
	}
	return math.Ceil(grams/1000) * 1000
}

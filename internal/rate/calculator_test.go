package rate

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ticoship/rate-service/internal/domain/model"
	"github.com/ticoship/rate-service/internal/geo"
	"github.com/ticoship/rate-service/internal/tariff"
	"github.com/ticoship/rate-service/internal/units"
)

// stubTariff returns a fixed result and records the queries it saw.
type stubTariff struct {
	result  model.TariffResult
	err     error
	queries []model.TariffQuery
}

func (s *stubTariff) GetTariff(_ context.Context, q model.TariffQuery) (model.TariffResult, error) {
	s.queries = append(s.queries, q)
	return s.result, s.err
}

func okTariff(rate, tax int64) *stubTariff {
	return &stubTariff{result: model.TariffResult{
		ResponseCode: model.ResponseOK,
		BaseRate:     decimal.NewFromInt(rate),
		TaxAmount:    decimal.NewFromInt(tax),
	}}
}

func baseSettings() model.Settings {
	s := model.DefaultSettings(model.VariantPymexpress)
	s.OriginPostcode = "10101"
	return s
}

func basePackage() model.Package {
	return model.Package{
		Destination: model.Address{Country: "CR", State: "San José", City: "San José", PostalCode: "10101"},
		Items:       []model.LineItem{{ProductID: "SKU-1", Quantity: 1, Weight: 2000}},
	}
}

func newTestCalculator(client tariff.Client, opts ...Option) *Calculator {
	return NewCalculator(client, geo.NewTableResolver(), opts...)
}

func TestQuoteBasicTariff(t *testing.T) {
	client := okTariff(2500, 0)
	calc := newTestCalculator(client)

	record := calc.Quote(context.Background(), basePackage(), baseSettings())

	require.NotNil(t, record)
	assert.Equal(t, model.VariantPymexpress, record.ID)
	assert.True(t, decimal.NewFromInt(2500).Equal(record.Cost), "cost %s", record.Cost)
	assert.Contains(t, record.Label, "Correos de Costa Rica")
	assert.Contains(t, record.Label, "2000 g")
	assert.Equal(t, float64(2000), record.WeightGrams, "2000 is already a multiple of 1000")

	require.Len(t, client.queries, 1)
	q := client.queries[0]
	assert.Equal(t, model.Location{Province: "1", Canton: "01", District: "01"}, q.Origin)
	assert.Equal(t, float64(2000), q.WeightGrams)
}

func TestQuoteCarrierRejectionReplacesLabel(t *testing.T) {
	client := &stubTariff{result: model.TariffResult{
		ResponseCode:    "36",
		ResponseMessage: "Envio ya existe",
	}}
	calc := newTestCalculator(client)

	record := calc.Quote(context.Background(), basePackage(), baseSettings())

	require.NotNil(t, record)
	assert.Equal(t, "Envio ya existe", record.Label)
	assert.True(t, record.Cost.IsZero())
}

func TestQuoteTransportFailureDegrades(t *testing.T) {
	client := &stubTariff{err: errors.New("connection refused")}
	calc := newTestCalculator(client)

	record := calc.Quote(context.Background(), basePackage(), baseSettings())

	require.NotNil(t, record)
	assert.True(t, record.Cost.IsZero())
	assert.Equal(t, "Servicio de tarifas no disponible", record.Label)
}

func TestQuoteEligibility(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*model.Package, *model.Settings)
	}{
		{
			name: "foreign destination produces no rate",
			mutate: func(p *model.Package, s *model.Settings) {
				p.Destination.Country = "US"
			},
		},
		{
			name: "disabled service produces no rate",
			mutate: func(p *model.Package, s *model.Settings) {
				s.Enabled = false
			},
		},
		{
			name: "missing origin produces no rate",
			mutate: func(p *model.Package, s *model.Settings) {
				s.OriginPostcode = ""
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := okTariff(2500, 0)
			pkg := basePackage()
			settings := baseSettings()
			tt.mutate(&pkg, &settings)

			record := newTestCalculator(client).Quote(context.Background(), pkg, settings)

			assert.Nil(t, record)
			assert.Empty(t, client.queries, "ineligible packages must not reach the carrier")
		})
	}
}

func TestQuoteCountryMatchIsCaseInsensitive(t *testing.T) {
	pkg := basePackage()
	pkg.Destination.Country = "cr"

	record := newTestCalculator(okTariff(2500, 0)).Quote(context.Background(), pkg, baseSettings())
	require.NotNil(t, record)
}

func TestQuoteWeightRounding(t *testing.T) {
	tests := []struct {
		name        string
		itemGrams   float64
		expectGrams float64
	}{
		{name: "exact kilo unchanged", itemGrams: 1000, expectGrams: 1000},
		{name: "just over rounds up", itemGrams: 1001, expectGrams: 2000},
		{name: "rounds to next kilo", itemGrams: 2999, expectGrams: 3000},
		{name: "zero substitutes a kilo", itemGrams: 0, expectGrams: 1000},
		{name: "sub-kilo rounds to one kilo", itemGrams: 1, expectGrams: 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := okTariff(2500, 0)
			pkg := basePackage()
			pkg.Items = []model.LineItem{{Quantity: 1, Weight: tt.itemGrams}}

			record := newTestCalculator(client).Quote(context.Background(), pkg, baseSettings())

			require.NotNil(t, record)
			assert.Equal(t, tt.expectGrams, record.WeightGrams)
			require.Len(t, client.queries, 1)
			assert.Equal(t, tt.expectGrams, client.queries[0].WeightGrams)
		})
	}
}

func TestQuoteRoundingDisabledForSimpleVariant(t *testing.T) {
	client := okTariff(2500, 0)
	pkg := basePackage()
	pkg.Items = []model.LineItem{{Quantity: 1, Weight: 1001}}

	settings := model.DefaultSettings(model.VariantCCRSimple)
	settings.OriginPostcode = "10101"

	record := newTestCalculator(client).Quote(context.Background(), pkg, settings)

	require.NotNil(t, record)
	assert.Equal(t, float64(1001), record.WeightGrams)
}

func TestQuoteLabelShowsTrueWeightWhileBillingRounded(t *testing.T) {
	client := okTariff(2500, 0)
	pkg := basePackage()
	pkg.Items = []model.LineItem{{Quantity: 1, Weight: 1500}}

	record := newTestCalculator(client).Quote(context.Background(), pkg, baseSettings())

	require.NotNil(t, record)
	assert.Contains(t, record.Label, "1500 g", "label shows the weight before rounding")
	assert.Equal(t, float64(2000), record.WeightGrams, "billing uses the rounded weight")
}

func TestQuoteWeightUnitConversion(t *testing.T) {
	client := okTariff(2500, 0)
	pkg := basePackage()
	pkg.Items = []model.LineItem{{Quantity: 2, Weight: 0.75}}

	settings := baseSettings()
	settings.WeightUnit = "kg"

	record := newTestCalculator(client).Quote(context.Background(), pkg, settings)

	require.NotNil(t, record)
	// 2 x 750 g = 1500 g, billed rounded to 2000 g.
	assert.Equal(t, float64(2000), record.WeightGrams)
	assert.Contains(t, record.Label, "1500 g")
}

func TestQuoteDefaultsForMalformedItems(t *testing.T) {
	client := okTariff(2500, 0)
	pkg := basePackage()
	pkg.Items = []model.LineItem{
		{Quantity: 0, Weight: 800},  // quantity defaults to 1
		{Quantity: 2, Weight: -50},  // weight defaults to 0
	}

	record := newTestCalculator(client).Quote(context.Background(), pkg, baseSettings())

	require.NotNil(t, record)
	assert.Equal(t, float64(1000), record.WeightGrams)
	assert.Contains(t, record.Label, "800 g")
}

func TestQuoteFreeShippingItemsAreNotBilled(t *testing.T) {
	client := okTariff(2500, 0)
	pkg := basePackage()
	pkg.Items = []model.LineItem{
		{Quantity: 1, Weight: 1000},
		{Quantity: 1, Weight: 2000, FreeShipping: true},
	}

	record := newTestCalculator(client).Quote(context.Background(), pkg, baseSettings())

	require.NotNil(t, record)
	assert.Equal(t, float64(1000), record.WeightGrams)
	assert.Contains(t, record.Label, "3000 g", "label shows billable plus free weight")
}

func TestQuoteTax(t *testing.T) {
	client := okTariff(2500, 325)
	settings := baseSettings()
	settings.TaxEnabled = true

	record := newTestCalculator(client).Quote(context.Background(), basePackage(), settings)

	require.NotNil(t, record)
	assert.True(t, decimal.NewFromInt(2825).Equal(record.Cost), "cost %s", record.Cost)
}

func TestQuotePackingCost(t *testing.T) {
	tests := []struct {
		name     string
		size     string
		custom   decimal.Decimal
		hooks    Hooks
		expected int64
	}{
		{name: "small tier", size: model.PackingSmall, expected: 2600},
		{name: "medium tier", size: model.PackingMedium, expected: 2630},
		{name: "big tier", size: model.PackingBig, expected: 2650},
		{name: "unknown tier adds nothing", size: "gigantic", expected: 2500},
		{name: "custom cost overrides tier", size: model.PackingSmall, custom: decimal.NewFromInt(400), expected: 2900},
		{
			name: "hook adjusts packing cost",
			size: model.PackingSmall,
			hooks: Hooks{PackingCost: func(c decimal.Decimal) decimal.Decimal {
				return c.Mul(decimal.NewFromInt(2))
			}},
			expected: 2700,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := baseSettings()
			settings.PackingEnabled = true
			settings.PackingSize = tt.size
			settings.PackingCost = tt.custom

			calc := newTestCalculator(okTariff(2500, 0), WithHooks(tt.hooks))
			record := calc.Quote(context.Background(), basePackage(), settings)

			require.NotNil(t, record)
			assert.True(t, decimal.NewFromInt(tt.expected).Equal(record.Cost), "cost %s", record.Cost)
		})
	}
}

func TestQuoteExchangeRate(t *testing.T) {
	tests := []struct {
		name     string
		rate     decimal.Decimal
		hooks    Hooks
		expected string
	}{
		{name: "divides by exchange rate", rate: decimal.NewFromInt(500), expected: "5"},
		{name: "zero rate guards to 1", rate: decimal.Zero, expected: "2500"},
		{name: "negative rate guards to 1", rate: decimal.NewFromInt(-2), expected: "2500"},
		{
			name: "hook adjusts exchange rate",
			rate: decimal.NewFromInt(500),
			hooks: Hooks{ExchangeRate: func(decimal.Decimal) decimal.Decimal {
				return decimal.NewFromInt(250)
			}},
			expected: "10",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := baseSettings()
			settings.ExchangeEnabled = true
			settings.ExchangeRate = tt.rate

			calc := newTestCalculator(okTariff(2500, 0), WithHooks(tt.hooks))
			record := calc.Quote(context.Background(), basePackage(), settings)

			require.NotNil(t, record)
			expected, _ := decimal.NewFromString(tt.expected)
			assert.True(t, expected.Equal(record.Cost), "cost %s", record.Cost)
		})
	}
}

func TestQuoteMinimumRateFloor(t *testing.T) {
	tests := []struct {
		name     string
		origin   string
		dest     string
		expected int64
	}{
		// Same-tag routes use the inside minimum, mixed routes the
		// outside one; a fully non-GAM route still gets the inside
		// minimum.
		{name: "gam to gam uses inside minimum", origin: "10101", dest: "10201", expected: 3000},
		{name: "gam to non-gam uses outside minimum", origin: "10101", dest: "60101", expected: 4000},
		{name: "non-gam to gam uses outside minimum", origin: "60101", dest: "10101", expected: 4000},
		{name: "non-gam to non-gam uses inside minimum", origin: "60101", dest: "70101", expected: 3000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := baseSettings()
			settings.OriginPostcode = tt.origin
			settings.MinRateEnabled = true
			settings.MinInsideGAM = decimal.NewFromInt(3000)
			settings.MinOutsideGAM = decimal.NewFromInt(4000)

			pkg := basePackage()
			pkg.Destination.PostalCode = tt.dest

			record := newTestCalculator(okTariff(2500, 0)).Quote(context.Background(), pkg, settings)

			require.NotNil(t, record)
			assert.True(t, decimal.NewFromInt(tt.expected).Equal(record.Cost), "cost %s", record.Cost)
		})
	}
}

func TestQuoteMinimumRateNotAppliedWhenAboveFloor(t *testing.T) {
	settings := baseSettings()
	settings.MinRateEnabled = true
	settings.MinInsideGAM = decimal.NewFromInt(2000)
	settings.MinOutsideGAM = decimal.NewFromInt(2000)

	record := newTestCalculator(okTariff(2500, 0)).Quote(context.Background(), basePackage(), settings)

	require.NotNil(t, record)
	assert.True(t, decimal.NewFromInt(2500).Equal(record.Cost))
}

func TestQuoteMinimumRateSkippedForUnknownZip(t *testing.T) {
	settings := baseSettings()
	settings.MinRateEnabled = true
	settings.MinInsideGAM = decimal.NewFromInt(9000)
	settings.MinOutsideGAM = decimal.NewFromInt(9000)

	pkg := basePackage()
	pkg.Destination.PostalCode = "99999"

	record := newTestCalculator(okTariff(2500, 0)).Quote(context.Background(), pkg, settings)

	require.NotNil(t, record)
	assert.True(t, decimal.NewFromInt(2500).Equal(record.Cost), "unknown region must not trigger the floor")
}

func TestQuoteFixedRateOverride(t *testing.T) {
	tests := []struct {
		name     string
		dest     string
		expected int64
	}{
		{name: "gam destination gets gam fixed rate", dest: "10201", expected: 1800},
		{name: "non-gam destination gets outside fixed rate", dest: "60101", expected: 3500},
		{name: "unknown destination keeps computed rate", dest: "99999", expected: 2500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := baseSettings()
			settings.FixedRateEnabled = true
			settings.FixedRateGAM = decimal.NewFromInt(1800)
			settings.FixedRateOutside = decimal.NewFromInt(3500)

			pkg := basePackage()
			pkg.Destination.PostalCode = tt.dest

			record := newTestCalculator(okTariff(2500, 0)).Quote(context.Background(), pkg, settings)

			require.NotNil(t, record)
			assert.True(t, decimal.NewFromInt(tt.expected).Equal(record.Cost), "cost %s", record.Cost)
		})
	}
}

func TestQuoteCouponOverridesEverything(t *testing.T) {
	client := okTariff(2500, 0)
	settings := baseSettings()
	settings.FixedRateEnabled = true
	settings.FixedRateGAM = decimal.NewFromInt(1800)

	pkg := basePackage()
	pkg.Coupons = []model.Coupon{{Code: "ENVIOGRATIS", FreeShipping: true}}

	record := newTestCalculator(client).Quote(context.Background(), pkg, settings)

	require.NotNil(t, record)
	assert.True(t, record.Cost.IsZero())
	assert.True(t, record.FreeShipping)
	assert.Contains(t, record.Label, "Envío gratuito")
	assert.Empty(t, client.queries, "forced free shipping skips the remote lookup")
}

func TestQuoteLabelTemplate(t *testing.T) {
	settings := baseSettings()
	settings.LabelTemplate = "Envío %country%: %rate% (%weight% g reales, %weight-ccr% g facturados)"

	pkg := basePackage()
	pkg.Items = []model.LineItem{{Quantity: 1, Weight: 1500}}

	record := newTestCalculator(okTariff(2500, 0)).Quote(context.Background(), pkg, settings)

	require.NotNil(t, record)
	assert.Equal(t, "Envío CR: 2500.00 (1500 g reales, 2000 g facturados)", record.Label)
}

func TestQuoteOverweightWarning(t *testing.T) {
	pkg := basePackage()
	pkg.Items = []model.LineItem{{Quantity: 1, Weight: 30500}}

	record := newTestCalculator(okTariff(9000, 0)).Quote(context.Background(), pkg, baseSettings())

	require.NotNil(t, record)
	assert.Contains(t, record.Label, "30 kg")
}

func TestQuoteDestinationResolution(t *testing.T) {
	t.Run("postcode derived from state and city", func(t *testing.T) {
		client := okTariff(2500, 0)
		pkg := basePackage()
		pkg.Destination.PostalCode = ""
		pkg.Destination.State = "Heredia"
		pkg.Destination.City = "Belén"

		record := newTestCalculator(client).Quote(context.Background(), pkg, baseSettings())

		require.NotNil(t, record)
		require.Len(t, client.queries, 1)
		assert.Equal(t, model.Location{Province: "4", Canton: "07", District: "01"}, client.queries[0].Destination)
	})

	t.Run("unresolvable destination without default produces no rate", func(t *testing.T) {
		pkg := basePackage()
		pkg.Destination.PostalCode = ""
		pkg.Destination.State = "Atlantis"
		pkg.Destination.City = "Poseidonia"

		record := newTestCalculator(okTariff(2500, 0)).Quote(context.Background(), pkg, baseSettings())
		assert.Nil(t, record)
	})

	t.Run("default postcode preselection", func(t *testing.T) {
		client := okTariff(2500, 0)
		settings := baseSettings()
		settings.DefaultPostcodeEnabled = true
		settings.DefaultPostcode = "30101"

		pkg := basePackage()
		pkg.Destination.PostalCode = ""
		pkg.Destination.State = "Atlantis"
		pkg.Destination.City = "Poseidonia"

		record := newTestCalculator(client).Quote(context.Background(), pkg, settings)

		require.NotNil(t, record)
		require.Len(t, client.queries, 1)
		assert.Equal(t, model.Location{Province: "3", Canton: "01", District: "01"}, client.queries[0].Destination)
	})

	t.Run("default postcode hook adjusts the preselection", func(t *testing.T) {
		client := okTariff(2500, 0)
		settings := baseSettings()
		settings.DefaultPostcodeEnabled = true
		settings.DefaultPostcode = "30101"

		hooks := Hooks{DefaultPostcode: func(string) string { return "40101" }}

		pkg := basePackage()
		pkg.Destination.PostalCode = ""
		pkg.Destination.State = ""
		pkg.Destination.City = ""

		record := newTestCalculator(client, WithHooks(hooks)).Quote(context.Background(), pkg, settings)

		require.NotNil(t, record)
		require.Len(t, client.queries, 1)
		assert.Equal(t, "4", client.queries[0].Destination.Province)
	})

	t.Run("custom sentinel routes through the override hook", func(t *testing.T) {
		client := okTariff(2500, 0)
		hooks := Hooks{LocationOverride: func(model.Address) string { return "20101" }}

		pkg := basePackage()
		pkg.Destination.PostalCode = model.SentinelCustom

		record := newTestCalculator(client, WithHooks(hooks)).Quote(context.Background(), pkg, baseSettings())

		require.NotNil(t, record)
		require.Len(t, client.queries, 1)
		assert.Equal(t, "2", client.queries[0].Destination.Province)
	})

	t.Run("custom sentinel without hook falls back to the default code", func(t *testing.T) {
		client := okTariff(2500, 0)

		pkg := basePackage()
		pkg.Destination.PostalCode = model.SentinelCustom

		record := newTestCalculator(client).Quote(context.Background(), pkg, baseSettings())

		require.NotNil(t, record)
		require.Len(t, client.queries, 1)
		assert.Equal(t, model.Location{Province: "1", Canton: "01", District: "01"}, client.queries[0].Destination)
	})
}

func TestQuoteFinalRateHook(t *testing.T) {
	hooks := Hooks{FinalRate: func(r *model.RateRecord) {
		r.Label = "ajustado"
	}}

	record := newTestCalculator(okTariff(2500, 0), WithHooks(hooks)).Quote(context.Background(), basePackage(), baseSettings())

	require.NotNil(t, record)
	assert.Equal(t, "ajustado", record.Label)
}

func TestQuoteLabelForCodeHook(t *testing.T) {
	hooks := Hooks{LabelForCode: func(code, label string) string {
		if code == "36" {
			return "El pedido ya tiene una guía"
		}
		return label
	}}

	client := &stubTariff{result: model.TariffResult{ResponseCode: "36", ResponseMessage: "Envio ya existe"}}
	record := newTestCalculator(client, WithHooks(hooks)).Quote(context.Background(), basePackage(), baseSettings())

	require.NotNil(t, record)
	assert.Equal(t, "El pedido ya tiene una guía", record.Label)
}

func TestAggregateWeight(t *testing.T) {
	items := []model.LineItem{
		{Quantity: 2, Weight: 100},
		{Quantity: 1, Weight: 50, FreeShipping: true},
		{Quantity: 0, Weight: 25},
	}

	total := AggregateWeight(items, units.Grams)

	assert.Equal(t, float64(225), total.Shipping)
	assert.Equal(t, float64(50), total.FreeShipping)
	assert.Equal(t, float64(275), total.Label())
}

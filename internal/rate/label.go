package rate

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/ticoship/rate-service/internal/domain/model"
)

// Label template placeholders.
const (
	placeholderRate      = "%rate%"
	placeholderCountry   = "%country%"
	placeholderWeight    = "%weight%"
	placeholderWeightCCR = "%weight-ccr%"
)

const (
	freeShippingSuffix = " (Envío gratuito)"
	overWeightSuffix   = " ¡Atención: el envío supera el límite de 30 kg!"
)

// buildLabel renders the buyer-facing rate description. %weight% carries
// the true package weight, %weight-ccr% the rounded weight the carrier
// bills.
func buildLabel(s model.Settings, country string, cost decimal.Decimal, labelGrams, billedGrams float64, free bool) string {
	var label string
	if s.LabelTemplate != "" {
		replacer := strings.NewReplacer(
			placeholderRate, cost.StringFixed(2),
			placeholderCountry, country,
			placeholderWeight, formatGrams(labelGrams),
			placeholderWeightCCR, formatGrams(billedGrams),
		)
		label = replacer.Replace(s.LabelTemplate)
	} else {
		label = fmt.Sprintf("%s - %s a %s (%s g)", s.Title, s.ServiceName, country, formatGrams(labelGrams))
	}

	if free {
		label += freeShippingSuffix
	}
	if billedGrams > MaxWeightGrams {
		label += overWeightSuffix
	}
	return label
}

// formatGrams renders a gram value without a trailing fraction when whole.
func formatGrams(grams float64) string {
	return strconv.FormatFloat(grams, 'f', -1, 64)
}

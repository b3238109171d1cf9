// Package geo classifies Costa Rican postal codes and resolves addresses
// against the national postal hierarchy.
package geo

import (
	"github.com/rs/zerolog/log"
)

// Region tags a postal code as inside or outside the Gran Area
// Metropolitana, the metropolitan zone the carrier tiers its minimum and
// fixed rates by.
type Region string

const (
	RegionGAM     Region = "gam"
	RegionNotGAM  Region = "not-gam"
	RegionUnknown Region = "unknown"
)

// Classify returns the region tag for a 5-digit postal code. Codes absent
// from the table classify as RegionUnknown; that is a diagnostic event,
// not an error.
func Classify(code string) Region {
	if region, ok := zipRegions[code]; ok {
		return region
	}
	log.Debug().Str("postal_code", code).Msg("Postal code not in region table")
	return RegionUnknown
}

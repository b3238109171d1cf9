// Package units normalizes store weight units to grams.
package units

import "math"

// Unit is a weight unit tag as configured by the store.
type Unit string

const (
	Grams     Unit = "g"
	Kilograms Unit = "kg"
	Pounds    Unit = "lbs"
	Ounces    Unit = "oz"
)

// Conversion divisors for imperial units; 1/divisor grams per unit.
const (
	gramsPerPoundInv = 0.0022046
	gramsPerOunceInv = 0.035274
)

// Parse maps a configured unit string to a Unit, defaulting to grams.
func Parse(s string) Unit {
	switch Unit(s) {
	case Kilograms, Pounds, Ounces:
		return Unit(s)
	default:
		return Grams
	}
}

// ToGrams converts a weight in the given unit to grams. Invalid values
// (NaN, infinities, negatives) convert to zero; the function never errors
// and rounding is left to the caller.
func ToGrams(value float64, unit Unit) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
		return 0
	}
	switch unit {
	case Kilograms:
		return value * 1000
	case Pounds:
		return value / gramsPerPoundInv
	case Ounces:
		return value / gramsPerOunceInv
	default:
		return value
	}
}

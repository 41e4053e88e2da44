// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/iwvelando/finance-calculators/pkg/constants"
)

// Round rounds a value to two decimals, i.e. to represent real currency.
// Values too large to scale have no cents to round and are returned as is.
func Round(val float64) float64 {
	scaled := val * constants.DecimalPrecision
	if math.IsInf(scaled, 0) {
		return val
	}
	return math.Round(scaled) / constants.DecimalPrecision
}

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}

// PercentToDecimal converts a whole-number percent (15) into a fraction (0.15).
func PercentToDecimal(percent float64) float64 {
	return percent / constants.PercentageMultiplier
}

// CalculatePercentage calculates what percentage value is of total.
// A zero total yields 0.
func CalculatePercentage(value, total float64) float64 {
	if total == 0 {
		return 0
	}
	return (value / total) * constants.PercentageMultiplier
}

// NonNegative floors val at zero.
func NonNegative(val float64) float64 {
	if val < 0 {
		return 0
	}
	return val
}

// IsFinite reports whether val is neither NaN nor an infinity.
func IsFinite(val float64) bool {
	return !math.IsNaN(val) && !math.IsInf(val, 0)
}

// Saturate maps an overflowed value onto the finite range: ±Inf become
// ±math.MaxFloat64 and NaN becomes 0.
func Saturate(val float64) float64 {
	switch {
	case math.IsNaN(val):
		return 0
	case math.IsInf(val, 1):
		return math.MaxFloat64
	case math.IsInf(val, -1):
		return -math.MaxFloat64
	}
	return val
}

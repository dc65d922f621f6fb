package utils

import "math"

// ToCents converts a decimal price to integer minor currency units.
// Rounds rather than truncates, so 10.995 becomes 1100, not 1099.
func ToCents(price float64) int64 {
	return int64(math.Round(price * 100))
}

// RoundCurrency rounds a monetary value to two decimals for display totals.
func RoundCurrency(value float64) float64 {
	return math.Round(value*100) / 100
}

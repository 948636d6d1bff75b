package utils

import (
	"fmt"
	"math"
	"strconv"
)

// FormatAmount renders a monetary or rate value as fixed-point text with two
// fractional digits, the representation the numeric columns store.
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// ParseAmount converts fixed-point text back to a float64. Values up to 10
// integer digits with 2 fractional digits round-trip without drift.
func ParseAmount(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid numeric value %q: %w", s, err)
	}
	return v, nil
}

// MustParseAmount is ParseAmount for values read back from the store, where
// the column type guarantees well-formed text.
func MustParseAmount(s string) float64 {
	v, err := ParseAmount(s)
	if err != nil {
		return math.NaN()
	}
	return v
}

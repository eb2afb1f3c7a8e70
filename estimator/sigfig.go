// SPDX-License-Identifier: MIT

package estimator

import (
	"math"
	"strconv"
	"strings"
)

// Decimal exponent range rendered in fixed notation by formatShortest;
// anything outside switches to scientific notation.
const (
	minFixedExponent = -4
	maxFixedExponent = 16 // exclusive
)

// FirstTwoSignificantDigitsPosition returns the index, within the shortest
// round-trip decimal representation of value, of the first character that is
// neither '0' nor '.'.
//
// For a value below 1 written as "0.00dd…" that index equals the number of
// decimals needed to keep its first two significant figures, which is how
// Summarize picks its rounding precision:
//
//	0.0196  → "0.0196"  → 3
//	0.5     → "0.5"     → 2
//	6.9e-06 → "6.9e-06" → 0
//	-0.25   → "-0.25"   → 0 ('-' is the first qualifying character)
//
// The scan is purely textual: negative numbers, magnitudes ≥ 1 and values
// rendered in scientific notation all yield whatever index the scan reaches.
//
// Errors:
//   - ErrDegenerateSignificantFigure for 0, NaN and ±Inf.
func FirstTwoSignificantDigitsPosition(value float64) (int, error) {
	if value == 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, estimatorErrorf(opSignificant, ErrDegenerateSignificantFigure, "%v", value)
	}

	s := formatShortest(value)
	for i := 0; i < len(s); i++ {
		if s[i] != '0' && s[i] != '.' {
			return i, nil
		}
	}

	// unreachable for non-zero finite values
	return 0, estimatorErrorf(opSignificant, ErrDegenerateSignificantFigure, "%q", s)
}

// formatShortest renders v with the fewest digits that round-trip, in fixed
// notation for decimal exponents in [-4, 16) (always with a fractional part,
// "3.0") and in scientific notation otherwise ("1e-05", "1.5e+16").
func formatShortest(v float64) string {
	sci := strconv.FormatFloat(v, 'e', -1, 64)
	exp, err := strconv.Atoi(sci[strings.IndexByte(sci, 'e')+1:])
	if err != nil || exp < minFixedExponent || exp >= maxFixedExponent {
		return sci
	}

	fixed := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(fixed, ".") {
		fixed += ".0"
	}

	return fixed
}

// roundHalfEven rounds v to decimals places, ties to even, by scaling with
// 10^decimals.
func roundHalfEven(v float64, decimals int) float64 {
	p := math.Pow10(decimals)
	return math.RoundToEven(v*p) / p
}

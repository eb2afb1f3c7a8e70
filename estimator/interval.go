package estimator

import "math"

// ConfidenceLevel is the two-sided level of every reported interval.
const ConfidenceLevel = 0.95

// zHalfWidth is erfinv(ConfidenceLevel), the numerator of every half-width.
var zHalfWidth = math.Erfinv(ConfidenceLevel)

// HalfWidth returns the 95% confidence half-width after i+1 draws,
// erfinv(0.95)/√(4(i+1)). It depends only on i, never on the draws.
// i must be ≥ 0.
func HalfWidth(i int) float64 {
	return zHalfWidth / math.Sqrt(4*float64(i+1))
}

// HalfWidths returns HalfWidth(0..n-1); nil when n ≤ 0.
func HalfWidths(n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = HalfWidth(i)
	}

	return out
}

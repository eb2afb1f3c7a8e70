package estimator_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/montepi/estimator"
	"github.com/stretchr/testify/assert"
)

// TestFirstTwoSignificantDigitsPosition pins the textual scan on fixed,
// scientific, negative and ≥1 values.
func TestFirstTwoSignificantDigitsPosition(t *testing.T) {
	cases := []struct {
		in   float64
		want int
	}{
		{0.0196, 3},               // "0.0196"
		{0.5, 2},                  // "0.5"
		{0.6929519121748386, 2},   // half-width after one draw
		{0.021913063514414532, 3}, // after 1000 draws
		{0.006929519121748387, 4}, // after 10000 draws
		{0.0001, 5},               // "0.0001", still fixed notation
		{0.00001, 0},              // "1e-05"
		{6.9e-06, 0},              // "6.9e-06"
		{3.0, 0},                  // "3.0"
		{10, 0},                   // "10.0"
		{-0.25, 0},                // '-' is the first qualifying character
		{1.5e16, 0},               // "1.5e+16"
	}
	for _, tc := range cases {
		got, err := estimator.FirstTwoSignificantDigitsPosition(tc.in)
		assert.NoError(t, err, "value %v", tc.in)
		assert.Equal(t, tc.want, got, "value %v", tc.in)
	}
}

// TestFirstTwoSignificantDigitsPosition_Degenerate rejects values without digits.
func TestFirstTwoSignificantDigitsPosition_Degenerate(t *testing.T) {
	for _, v := range []float64{0, math.Copysign(0, -1), math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := estimator.FirstTwoSignificantDigitsPosition(v)
		assert.ErrorIs(t, err, estimator.ErrDegenerateSignificantFigure, "value %v", v)
	}
}

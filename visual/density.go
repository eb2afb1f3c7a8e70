package visual

import (
	"math"

	"github.com/katalvlaran/montepi/estimator"
)

// EstimateDensity evaluates, at each x, the normal density centred on the π
// estimate at frame with standard deviation 1/√(4·frame), scaled by the same
// 1/√(4·frame). This is the bell drawn next to the sampling animation.
//
// Errors:
//   - ErrNoSamples for an unestimated run.
//   - ErrFrameOutOfRange unless 1 ≤ frame < N.
func EstimateDensity(run *estimator.Run, frame int, xs []float64) ([]float64, error) {
	if run.Len() == 0 {
		return nil, ErrNoSamples
	}
	if frame < 1 || frame >= run.Len() {
		return nil, ErrFrameOutOfRange
	}
	mu, _, _ := run.At(frame)

	s := math.Sqrt(4 * float64(frame))
	sd := 1 / s
	norm := 1 / (sd * math.Sqrt(2*math.Pi))

	out := make([]float64, len(xs))
	for i, x := range xs {
		z := (x - mu) / sd
		out[i] = norm * math.Exp(-0.5*z*z) / s
	}

	return out, nil
}

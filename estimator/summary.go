package estimator

// Summarize produces the final Report of run.
//
// The precision is FirstTwoSignificantDigitsPosition of the last half-width;
// the last π estimate and both interval bounds are rounded to that many
// decimals.
//
// Errors:
//   - ErrNotYetEstimated for a nil or zero-value run.
func Summarize(run *Run) (Report, error) {
	if !run.estimated() {
		return Report{}, estimatorErrorf(opSummarize, ErrNotYetEstimated, "")
	}

	last := len(run.piEstimates) - 1
	pi, hw := run.piEstimates[last], run.halfWidths[last]

	prec, err := FirstTwoSignificantDigitsPosition(hw)
	if err != nil {
		return Report{}, estimatorErrorf(opSummarize, err, "")
	}

	return Report{
		Dimension:   run.dimension,
		SampleCount: run.sampleCount,
		InsideCount: run.insideCount[last],
		Pi:          roundHalfEven(pi, prec),
		Lower:       roundHalfEven(pi-hw, prec),
		Upper:       roundHalfEven(pi+hw, prec),
		HalfWidth:   hw,
		Precision:   prec,
	}, nil
}

// Summarize is shorthand for Summarize(r).
func (r *Run) Summarize() (Report, error) {
	return Summarize(r)
}

// SPDX-License-Identifier: MIT
// Package: montepi/estimator
//
// errors.go — sentinel errors for the estimator package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Operations attach context with estimatorErrorf(op, ...) which keeps the
//     sentinel in the %w chain.
//   • Estimation is deterministic for a given seed, so none of these errors is
//     worth retrying with the same inputs.

package estimator

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument indicates a malformed input: sampleCount ≤ 0,
// dimension ≤ 0, the degenerate dimension 1, or a fraction outside [0,1].
var ErrInvalidArgument = errors.New("estimator: invalid argument")

// ErrNotYetEstimated indicates that a run was summarized (or otherwise
// consumed) before Estimate populated it.
var ErrNotYetEstimated = errors.New("estimator: estimate has not been performed")

// ErrDegenerateSignificantFigure indicates that a significant-figure position
// was requested for a value that has none (0, NaN or ±Inf).
var ErrDegenerateSignificantFigure = errors.New("estimator: value has no significant figure")

// Operation tags used as error prefixes.
const (
	opEstimate       = "Estimate"
	opSummarize      = "Summarize"
	opSignificant    = "FirstTwoSignificantDigitsPosition"
	opPiFromFraction = "PiFromFraction"
	opSampleMatrix   = "SampleMatrix"
)

// estimatorErrorf wraps err with the operation tag and an optional detail.
func estimatorErrorf(op string, err error, format string, args ...any) error {
	if format == "" {
		return fmt.Errorf("%s: %w", op, err)
	}

	return fmt.Errorf("%s: %w: %s", op, err, fmt.Sprintf(format, args...))
}

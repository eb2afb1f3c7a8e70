// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Algorithms return these sentinels (optionally wrapped with an operation tag)
// and tests match them with errors.Is. Nothing in this package panics on user
// input.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes, e.g. Mul with
	// a.Cols() != b.Rows(), or a backing slice whose length is not rows*cols.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Dense was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)

// matrixErrorf prefixes err with an operation tag, keeping the sentinel for errors.Is.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Matrix product and column normalization over the flat row-major buffer.
//
// Determinism:
//   - Fixed i→k→j traversal; identical inputs give bit-identical outputs.

package matrix

import "math"

const (
	opMul                = "Mul"
	opNormalizeColumnsL2 = "NormalizeColumnsL2"
)

// Mul returns the product a×b as a new Dense.
// Implementation:
//   - Stage 1: Validate operands (non-nil, a.Cols()==b.Rows()).
//   - Stage 2: Allocate r×c result.
//   - Stage 3: Accumulate with i→k→j order so the inner loop walks both
//     b's row and the output row contiguously.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*k*c), Space O(r*c).
func Mul(a, b *Dense) (*Dense, error) {
	// Stage 1 (Validate)
	if a == nil || b == nil {
		return nil, matrixErrorf(opMul, ErrNilMatrix)
	}
	if a.c != b.r {
		return nil, matrixErrorf(opMul, ErrDimensionMismatch)
	}

	// Stage 2 (Prepare)
	out := &Dense{r: a.r, c: b.c, data: make([]float64, a.r*b.c)}

	// Stage 3 (Execute)
	var i, k, j int
	for i = 0; i < a.r; i++ {
		rowOut := out.data[i*out.c : (i+1)*out.c]
		for k = 0; k < a.c; k++ {
			aik := a.data[i*a.c+k]
			if aik == 0 {
				continue
			}
			rowB := b.data[k*b.c : (k+1)*b.c]
			for j = 0; j < b.c; j++ {
				rowOut[j] += aik * rowB[j]
			}
		}
	}

	return out, nil
}

// NormalizeColumnsL2 returns a copy of m whose columns have unit L2 norm,
// together with the original column norms. Zero columns are left unchanged.
// Complexity: O(r*c).
func NormalizeColumnsL2(m *Dense) (*Dense, []float64, error) {
	if m == nil {
		return nil, nil, matrixErrorf(opNormalizeColumnsL2, ErrNilMatrix)
	}

	norms := make([]float64, m.c)
	var i, j int
	var v float64
	for i = 0; i < m.r; i++ {
		base := i * m.c
		for j = 0; j < m.c; j++ {
			v = m.data[base+j]
			norms[j] += v * v
		}
	}
	for j = 0; j < m.c; j++ {
		norms[j] = math.Sqrt(norms[j])
	}

	out := m.Clone()
	for i = 0; i < m.r; i++ {
		base := i * m.c
		for j = 0; j < m.c; j++ {
			if norms[j] > 0 {
				out.data[base+j] /= norms[j]
			}
		}
	}

	return out, norms, nil
}

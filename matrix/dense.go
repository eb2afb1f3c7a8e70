// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strings"
)

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf("NewDense", ErrInvalidDimensions)
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewDenseFrom wraps a copy of data (row-major, len == rows*cols).
// Complexity: O(r*c).
func NewDenseFrom(rows, cols int, data []float64) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf("NewDenseFrom", ErrInvalidDimensions)
	}
	if len(data) != rows*cols {
		return nil, matrixErrorf("NewDenseFrom", ErrDimensionMismatch)
	}
	buf := make([]float64, len(data))
	copy(buf, data) // caller keeps ownership of data

	return &Dense{r: rows, c: cols, data: buf}, nil
}

// Rows returns the number of rows in the matrix (0 for a nil matrix).
func (m *Dense) Rows() int {
	if m == nil {
		return 0
	}
	return m.r
}

// Cols returns the number of columns in the matrix (0 for a nil matrix).
func (m *Dense) Cols() int {
	if m == nil {
		return 0
	}
	return m.c
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if m == nil {
		return 0, matrixErrorf("Dense."+method, ErrNilMatrix)
	}
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Row returns a copy of row i.
// Complexity: O(c).
func (m *Dense) Row(i int) ([]float64, error) {
	idx, err := m.indexOf("Row", i, 0)
	if err != nil {
		return nil, err
	}
	out := make([]float64, m.c)
	copy(out, m.data[idx:idx+m.c])

	return out, nil
}

// Col returns a copy of column j.
// Complexity: O(r).
func (m *Dense) Col(j int) ([]float64, error) {
	if _, err := m.indexOf("Col", 0, j); err != nil {
		return nil, err
	}
	out := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// Clone returns a deep copy of the matrix. A nil matrix clones to nil.
// Complexity: O(r*c) time and memory for copy.
func (m *Dense) Clone() *Dense {
	if m == nil {
		return nil
	}
	copyData := make([]float64, len(m.data))
	copy(copyData, m.data)

	return &Dense{r: m.r, c: m.c, data: copyData}
}

// String implements fmt.Stringer for easy debugging; a nil matrix prints "<nil>".
func (m *Dense) String() string {
	if m == nil {
		return "<nil>"
	}
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}

// Package matrix_test contains unit tests for the Dense matrix.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/montepi/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)                      // zero rows
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions

	_, err = matrix.NewDense(5, 0)                       // zero columns
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions
}

// TestNewDenseFrom checks shape validation and that the input slice is copied.
func TestNewDenseFrom(t *testing.T) {
	_, err := matrix.NewDenseFrom(2, 2, []float64{1, 2, 3})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	src := []float64{1, 2, 3, 4, 5, 6}
	m, err := matrix.NewDenseFrom(2, 3, src)
	require.NoError(t, err)
	src[0] = 99 // must not leak into m

	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)

	v, err = m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 6.0, v)
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(2, 0, 1.23)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.Row(5)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.Col(-1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestNilReceiver ensures every method on a nil *Dense is safe: element
// accessors report ErrNilMatrix, shape queries report 0×0.
func TestNilReceiver(t *testing.T) {
	var m *matrix.Dense
	_, err := m.At(0, 0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	require.ErrorIs(t, m.Set(0, 0, 1), matrix.ErrNilMatrix)
	_, err = m.Row(0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = m.Col(0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	require.Equal(t, 0, m.Rows())
	require.Equal(t, 0, m.Cols())
	require.Nil(t, m.Clone())
	require.Equal(t, "<nil>", m.String())
}

// TestRowColCopies validates Row/Col contents and that they are independent copies.
func TestRowColCopies(t *testing.T) {
	m, err := matrix.NewDenseFrom(2, 3, []float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{4, 5, 6}, row)

	col, err := m.Col(2)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 6}, col)

	row[0] = -1
	v, _ := m.At(1, 0)
	require.Equal(t, 4.0, v) // original untouched
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	_ = m.Set(0, 0, 1.0)

	clone := m.Clone()
	_ = clone.Set(0, 0, 3.0)

	origVal, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, origVal)
}

// TestStringOutput checks that String() formats the matrix as expected.
func TestStringOutput(t *testing.T) {
	m, err := matrix.NewDenseFrom(2, 2, []float64{1, 2, 3, 4})
	require.NoError(t, err)

	require.Equal(t, "[1, 2]\n[3, 4]\n", m.String())
}

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/balclust/matrix"
	"github.com/stretchr/testify/require"
)

func TestNewDense_RejectsNonPositiveShape(t *testing.T) {
	_, err := matrix.NewDense(0, 3)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(3, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestDense_AtSet_RoundTrip(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, 4.5))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 4.5, v)

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(0, 3, 1.0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestDense_Set_RejectsNaNAndInf(t *testing.T) {
	m, err := matrix.NewDense(1, 1)
	require.NoError(t, err)

	err = m.Set(0, 0, math.NaN())
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	err = m.Set(0, 0, math.Inf(1))
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestDense_Clone_IsIndependent(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, 1))

	clone := m.Clone()
	require.NoError(t, m.Set(0, 0, 99))

	v, err := clone.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v, "clone must not observe mutations of the original")
}

func TestDense_RowCopyAndSetRow(t *testing.T) {
	m, err := matrix.NewDense(3, 2)
	require.NoError(t, err)
	require.NoError(t, m.SetRow(1, []float64{3, 4}))

	row, err := m.RowCopy(1)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 4}, row)

	// Mutating the returned slice must not alter the matrix.
	row[0] = 999
	row2, err := m.RowCopy(1)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 4}, row2)

	err = m.SetRow(0, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	err = m.SetRow(5, []float64{1, 2})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestDense_String_FormatsRows(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.SetRow(0, []float64{1, 2}))
	require.NoError(t, m.SetRow(1, []float64{3, 4}))

	require.Equal(t, "[1, 2]\n[3, 4]\n", m.String())
}

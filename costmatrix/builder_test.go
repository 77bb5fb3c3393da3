package costmatrix_test

import (
	"testing"

	"github.com/katalvlaran/balclust/costmatrix"
	"github.com/katalvlaran/balclust/matrix"
	"github.com/stretchr/testify/require"
)

func buildDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(len(rows), len(rows[0]))
	require.NoError(t, err)
	for i, row := range rows {
		require.NoError(t, m.SetRow(i, row))
	}
	return m
}

func TestBuild_Values(t *testing.T) {
	X := buildDense(t, [][]float64{{0, 0}, {3, 4}, {1, 1}})
	M := buildDense(t, [][]float64{{0, 0}, {1, 1}})

	C, err := costmatrix.Build(X, M, 1)
	require.NoError(t, err)
	require.Equal(t, 3, C.Rows())
	require.Equal(t, 2, C.Cols())

	want := [][]float64{
		{0, 2},
		{25, 13},
		{2, 0},
	}
	for i := range want {
		for j := range want[i] {
			got, err := C.At(i, j)
			require.NoError(t, err)
			require.Equal(t, want[i][j], got)
		}
	}
}

func TestBuild_DeterministicAcrossWorkerCounts(t *testing.T) {
	X := buildDense(t, [][]float64{{0, 0}, {3, 4}, {1, 1}, {5, 5}, {2, 9}, {7, 1}})
	M := buildDense(t, [][]float64{{0, 0}, {1, 1}, {4, 4}})

	base, err := costmatrix.Build(X, M, 1)
	require.NoError(t, err)

	for _, w := range []int{2, 3, 4, 8} {
		got, err := costmatrix.Build(X, M, w)
		require.NoError(t, err)
		for i := 0; i < base.Rows(); i++ {
			for j := 0; j < base.Cols(); j++ {
				bv, _ := base.At(i, j)
				gv, _ := got.At(i, j)
				require.Equalf(t, bv, gv, "worker count %d mismatch at (%d,%d)", w, i, j)
			}
		}
	}
}

func TestBuild_DimensionMismatch(t *testing.T) {
	X := buildDense(t, [][]float64{{0, 0, 0}})
	M := buildDense(t, [][]float64{{0, 0}})
	_, err := costmatrix.Build(X, M, 1)
	require.ErrorIs(t, err, costmatrix.ErrDimensionMismatch)
}

func TestBuild_InvalidWorkerCount(t *testing.T) {
	X := buildDense(t, [][]float64{{0, 0}})
	M := buildDense(t, [][]float64{{0, 0}})
	_, err := costmatrix.Build(X, M, 0)
	require.ErrorIs(t, err, costmatrix.ErrInvalidWorkerCount)
}

func TestResolveWorkers(t *testing.T) {
	require.Greater(t, costmatrix.ResolveWorkers(-1), 0)
	require.Equal(t, 1, costmatrix.ResolveWorkers(0))
	require.Equal(t, 1, costmatrix.ResolveWorkers(-2))
	require.Equal(t, 5, costmatrix.ResolveWorkers(5))
}

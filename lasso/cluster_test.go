package lasso_test

import (
	"testing"

	"github.com/katalvlaran/balclust/lasso"
	"github.com/katalvlaran/balclust/matrix"
	"github.com/katalvlaran/balclust/seeding"
	"github.com/stretchr/testify/require"
)

func denseFrom(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(len(rows), len(rows[0]))
	require.NoError(t, err)
	for i, row := range rows {
		require.NoError(t, m.SetRow(i, row))
	}
	return m
}

// S5: lambda=0.0 returns the same fixed point as plain k-means would reach
// from the same seed (no balance pressure).
func TestClusterLasso_ZeroLambda(t *testing.T) {
	X := denseFrom(t, [][]float64{{0}, {0.1}, {0.2}, {0.3}, {9}, {9.1}, {9.2}, {20}})

	A, M, sse, err := lasso.ClusterLasso(X, 2, 0.0, lasso.Options{Init: seeding.Forgy, Seed: 4})
	require.NoError(t, err)
	require.Len(t, A, 8)
	require.Equal(t, 2, M.Rows())
	require.GreaterOrEqual(t, sse, 0.0)

	// Plain k-means fixed point: every point sits at a nearest center of
	// the returned M.
	for i := 0; i < X.Rows(); i++ {
		x, _ := X.At(i, 0)
		own, _ := M.At(A[i], 0)
		for j := 0; j < M.Rows(); j++ {
			c, _ := M.At(j, 0)
			require.LessOrEqual(t, (x-own)*(x-own), (x-c)*(x-c), "point %d prefers center %d", i, j)
		}
	}
}

// S5: large lambda on N=8, k=2 must drive sizes toward (4,4).
func TestClusterLasso_LargeLambdaBalances(t *testing.T) {
	X := denseFrom(t, [][]float64{{0}, {0.1}, {0.2}, {0.3}, {9}, {9.1}, {9.2}, {9.3}})

	A, _, _, err := lasso.ClusterLasso(X, 2, 1e6, lasso.Options{Init: seeding.Forgy, Seed: 4})
	require.NoError(t, err)

	counts := map[int]int{}
	for _, j := range A {
		require.GreaterOrEqual(t, j, 0)
		require.Less(t, j, 2)
		counts[j]++
	}
	require.Equal(t, 4, counts[0])
	require.Equal(t, 4, counts[1])
}

func TestClusterLasso_Deterministic(t *testing.T) {
	X := denseFrom(t, [][]float64{{1}, {2}, {3}, {14}, {15}, {16}})

	a1, _, sse1, err := lasso.ClusterLasso(X, 2, 0.5, lasso.Options{Seed: 17})
	require.NoError(t, err)
	a2, _, sse2, err := lasso.ClusterLasso(X, 2, 0.5, lasso.Options{Seed: 17})
	require.NoError(t, err)

	require.Equal(t, a1, a2)
	require.Equal(t, sse1, sse2)
}

func TestClusterLasso_KExceedsN(t *testing.T) {
	X := denseFrom(t, [][]float64{{0}, {1}})
	_, _, _, err := lasso.ClusterLasso(X, 5, 0, lasso.Options{})
	require.ErrorIs(t, err, lasso.ErrTooFewPoints)
}

func TestClusterLasso_InvalidK(t *testing.T) {
	X := denseFrom(t, [][]float64{{0}, {1}})
	_, _, _, err := lasso.ClusterLasso(X, 0, 0, lasso.Options{})
	require.ErrorIs(t, err, lasso.ErrInvalidK)
}

package balanced

import (
	"github.com/katalvlaran/balclust/matrix"
	"github.com/katalvlaran/balclust/simplex"
)

// ClusterSoft partitions X into k clusters under a convex per-cluster size
// penalty: assignment cost is Σ dist(X[i], M[A[i]]) + Σ_j penalty(j, size_j).
// penalty must satisfy penalty(·, 0) = 0 and be convex and non-decreasing in
// size, so its first differences form a valid telescoping sink-arc chain.
func ClusterSoft(X *matrix.Dense, k int, penalty simplex.Penalty, opts Options) ([]int, *matrix.Dense, float64, error) {
	if err := validateInput(X, k); err != nil {
		return nil, nil, 0, err
	}
	if penalty == nil {
		return nil, nil, 0, ErrNilPenalty
	}

	build := func(costs *matrix.Dense) (*simplex.Solver, error) {
		return simplex.BuildSoft(costs, penalty)
	}

	return run(X, k, opts, build)
}

// QuadraticPenalty returns the size penalty f(h,x) = lambda*x^2 named in
// the soft-balance configuration surface: lambda==0 recovers unconstrained
// k-means (every sink-arc costs 0), and larger lambda drives cluster sizes
// toward uniformity.
func QuadraticPenalty(lambda float64) simplex.Penalty {
	return func(_ int, size int) float64 {
		x := float64(size)
		return lambda * x * x
	}
}

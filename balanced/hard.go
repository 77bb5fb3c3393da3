package balanced

import (
	"fmt"

	"github.com/katalvlaran/balclust/matrix"
	"github.com/katalvlaran/balclust/simplex"
)

// ClusterHard partitions X into k clusters whose sizes lie in the default
// bounds [⌊N/k⌋, ⌈N/k⌉]. It is ClusterHardBounded with those bounds filled
// in.
func ClusterHard(X *matrix.Dense, k int, opts Options) ([]int, *matrix.Dense, float64, error) {
	if err := matrix.ValidateNotNil(X); err != nil {
		return nil, nil, 0, err
	}
	if k <= 0 {
		return nil, nil, 0, ErrInvalidK
	}
	n := X.Rows()
	lower := n / k
	upper := (n + k - 1) / k

	return ClusterHardBounded(X, k, lower, upper, opts)
}

// ClusterHardBounded partitions X into k clusters whose sizes all lie in
// [lower, upper]. It rejects infeasible bounds (k*lower > N or k*upper < N)
// before building any solver.
func ClusterHardBounded(X *matrix.Dense, k, lower, upper int, opts Options) ([]int, *matrix.Dense, float64, error) {
	if err := validateInput(X, k); err != nil {
		return nil, nil, 0, err
	}
	n := X.Rows()
	if lower > upper || k*lower > n || k*upper < n {
		return nil, nil, 0, fmt.Errorf("balanced: ClusterHardBounded(n=%d, k=%d, lower=%d, upper=%d): %w", n, k, lower, upper, ErrInfeasibleBounds)
	}

	simplexOpts := simplex.Options{Epsilon: opts.SimplexEpsilon, Verbose: opts.Verbose}
	build := func(costs *matrix.Dense) (*simplex.Solver, error) {
		return simplex.BuildHard(costs, lower, upper, simplexOpts)
	}

	return run(X, k, opts, build)
}

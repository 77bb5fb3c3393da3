package lasso

import (
	"fmt"

	"github.com/katalvlaran/balclust/kernel"
	"github.com/katalvlaran/balclust/matrix"
)

// computeSSE returns Σ_i dist(X[i], M[A[i]]), recomputed independently of
// any running total tracked during the swap passes.
func computeSSE(X, M *matrix.Dense, A []int) (float64, error) {
	var sum float64
	for i := 0; i < X.Rows(); i++ {
		x, err := X.RowCopy(i)
		if err != nil {
			return 0, err
		}
		center, err := M.RowCopy(A[i])
		if err != nil {
			return 0, fmt.Errorf("lasso: computeSSE: A[%d]=%d: %w", i, A[i], err)
		}
		d, err := kernel.SquaredEuclidean(x, center)
		if err != nil {
			return 0, err
		}
		sum += d
	}
	return sum, nil
}

package seeding

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/balclust/matrix"
)

// UpdateCenters recomputes the k centers of X given a current assignment:
// center j becomes the coordinate-wise mean of every point labeled j. A
// label that owns zero points is reseeded to a uniformly sampled row of X,
// drawn from an RNG stream derived from rng (keyed by the empty label's
// index). Each empty label consumes one value from rng to derive its
// stream, so the reseed choice is deterministic for a given rng state, and
// rng's final position depends on how many labels were empty.
//
// Complexity: O(N*s) time, O(k*s) space.
func UpdateCenters(X *matrix.Dense, assignments []int, k int, rng *rand.Rand) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(X); err != nil {
		return nil, fmt.Errorf("seeding: UpdateCenters: %w", err)
	}
	if rng == nil {
		return nil, ErrNilRNG
	}
	n, s := X.Rows(), X.Cols()
	if k <= 0 || k > n {
		return nil, fmt.Errorf("seeding: UpdateCenters(k=%d, n=%d): %w", k, n, ErrInvalidK)
	}
	if len(assignments) != n {
		return nil, fmt.Errorf("seeding: UpdateCenters: len(assignments)=%d, n=%d: %w", len(assignments), n, matrix.ErrDimensionMismatch)
	}

	sums := make([][]float64, k)
	counts := make([]int, k)
	for j := range sums {
		sums[j] = make([]float64, s)
	}

	for i := 0; i < n; i++ {
		label := assignments[i]
		if label < 0 || label >= k {
			return nil, fmt.Errorf("seeding: UpdateCenters: assignments[%d]=%d out of [0,%d): %w", i, label, k, matrix.ErrOutOfRange)
		}
		row, err := X.RowCopy(i)
		if err != nil {
			return nil, err
		}
		counts[label]++
		for d := 0; d < s; d++ {
			sums[label][d] += row[d]
		}
	}

	centers, err := matrix.NewDense(k, s)
	if err != nil {
		return nil, err
	}
	for j := 0; j < k; j++ {
		if counts[j] > 0 {
			for d := 0; d < s; d++ {
				sums[j][d] /= float64(counts[j])
			}
			if err := centers.SetRow(j, sums[j]); err != nil {
				return nil, err
			}
			continue
		}
		reseedRNG := deriveRNG(rng, uint64(j))
		row, err := X.RowCopy(reseedRNG.Intn(n))
		if err != nil {
			return nil, err
		}
		if err := centers.SetRow(j, row); err != nil {
			return nil, err
		}
	}

	return centers, nil
}

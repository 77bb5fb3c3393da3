package lasso

import (
	"fmt"

	"github.com/katalvlaran/balclust/kernel"
	"github.com/katalvlaran/balclust/matrix"
	"github.com/katalvlaran/balclust/seeding"
)

// ClusterLasso partitions X into k clusters under an exclusive-lasso size
// penalty λ·size²: each pass visits every point in index order and commits
// the best strictly-improving swap to another cluster, holding centers
// fixed for the whole pass; centers are recomputed only between passes,
// and the loop stops the first pass that commits no swap.
func ClusterLasso(X *matrix.Dense, k int, lambda float64, opts Options) ([]int, *matrix.Dense, float64, error) {
	if err := matrix.ValidateNotNil(X); err != nil {
		return nil, nil, 0, err
	}
	if k <= 0 {
		return nil, nil, 0, ErrInvalidK
	}
	if k > X.Rows() {
		return nil, nil, 0, ErrTooFewPoints
	}

	rng := seeding.RNGFromSeed(opts.Seed)
	A, M, err := seeding.Init(X, k, opts.Init, rng)
	if err != nil {
		return nil, nil, 0, fmt.Errorf("lasso: %w", err)
	}

	points, err := extractRows(X)
	if err != nil {
		return nil, nil, 0, fmt.Errorf("lasso: %w", err)
	}

	for {
		sizes := countSizes(A, k)
		changed := false

		centers, err := extractRows(M)
		if err != nil {
			return nil, nil, 0, fmt.Errorf("lasso: %w", err)
		}

		for i, x := range points {
			cur := A[i]
			best := cur
			bestDelta := 0.0

			base := -kernel.MustSquaredEuclidean(x, centers[cur]) -
				lambda*square(sizes[cur]) +
				lambda*square(sizes[cur]-1)

			for j := 0; j < k; j++ {
				if j == cur {
					continue
				}
				delta := base + kernel.MustSquaredEuclidean(x, centers[j]) +
					lambda*square(sizes[j]+1) -
					lambda*square(sizes[j])
				if delta < bestDelta {
					bestDelta = delta
					best = j
				}
			}

			if best != cur {
				sizes[cur]--
				sizes[best]++
				A[i] = best
				changed = true
			}
		}

		if !changed {
			break
		}
		M, err = seeding.UpdateCenters(X, A, k, rng)
		if err != nil {
			return nil, nil, 0, fmt.Errorf("lasso: %w", err)
		}
	}

	sse, err := computeSSE(X, M, A)
	if err != nil {
		return nil, nil, 0, fmt.Errorf("lasso: %w", err)
	}

	return A, M, sse, nil
}

func square(x int) float64 {
	f := float64(x)
	return f * f
}

func countSizes(A []int, k int) []int {
	sizes := make([]int, k)
	for _, j := range A {
		sizes[j]++
	}
	return sizes
}

func extractRows(m *matrix.Dense) ([][]float64, error) {
	rows := make([][]float64, m.Rows())
	for i := range rows {
		row, err := m.RowCopy(i)
		if err != nil {
			return nil, err
		}
		rows[i] = row
	}
	return rows, nil
}

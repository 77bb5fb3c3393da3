package kernel

import (
	"errors"
	"fmt"
)

// ErrDimensionMismatch is returned when two vectors passed to
// SquaredEuclidean have different lengths.
var ErrDimensionMismatch = errors.New("kernel: dimension mismatch")

// SquaredEuclidean returns Σ_d (u[d]-v[d])² for equal-length u, v.
// No square root is taken: every caller in this module compares or sums
// squared distances, so the root would be extra work with no benefit.
//
// Complexity: O(s) where s = len(u) == len(v).
func SquaredEuclidean(u, v []float64) (float64, error) {
	if len(u) != len(v) {
		return 0, fmt.Errorf("kernel: SquaredEuclidean(%d,%d): %w", len(u), len(v), ErrDimensionMismatch)
	}

	var sum float64
	for d := 0; d < len(u); d++ {
		diff := u[d] - v[d]
		sum += diff * diff
	}

	return sum, nil
}

// MustSquaredEuclidean is SquaredEuclidean for callers that already
// guarantee equal dimensions (e.g. both vectors are rows of the same
// matrix.Dense) and want to skip the error-return in a hot loop.
// It panics if the lengths differ — a programmer error, not caller input.
func MustSquaredEuclidean(u, v []float64) float64 {
	d, err := SquaredEuclidean(u, v)
	if err != nil {
		panic(err)
	}
	return d
}

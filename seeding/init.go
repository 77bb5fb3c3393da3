package seeding

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/balclust/matrix"
)

// InitMethod selects how the first assignment (and, for Forgy, the first
// centers) is produced.
type InitMethod int

const (
	// Forgy picks k distinct data points uniformly at random as the initial
	// centers. The initial assignment itself is a uniform random label in
	// [0,k) per point: the balanced loop discards it, while the lasso loop
	// starts its swap passes from it.
	Forgy InitMethod = iota
	// RandomPartition assigns every point a uniform random label in [0,k)
	// and derives the initial centers as the mean of each label's points.
	RandomPartition
)

// Init produces the first assignment and first centers for X (N×s data)
// partitioned into k clusters, per method.
//
// Forgy: k distinct row indices are sampled from X and used verbatim as
// centers; the returned assignment is a uniform random label per point
// (the balanced outer loop discards it and decodes its own assignment from
// the first solve; the lasso outer loop uses it as its starting
// assignment).
//
// RandomPartition: every point receives a uniform random label in [0,k),
// and centers are the per-label mean, with any label that drew zero points
// reseeded to a uniformly sampled data row (mirroring UpdateCenters' own
// empty-cluster policy).
//
// Complexity: O(N*s) time, O(k*s) space, for both methods.
func Init(X *matrix.Dense, k int, method InitMethod, rng *rand.Rand) (assignments []int, centers *matrix.Dense, err error) {
	if err := matrix.ValidateNotNil(X); err != nil {
		return nil, nil, fmt.Errorf("seeding: Init: %w", err)
	}
	if rng == nil {
		return nil, nil, ErrNilRNG
	}
	n := X.Rows()
	if k <= 0 || k > n {
		return nil, nil, fmt.Errorf("seeding: Init(k=%d, n=%d): %w", k, n, ErrInvalidK)
	}

	assignments = randomLabels(n, k, rng)

	switch method {
	case Forgy:
		centers, err = forgyCenters(X, k, rng)
	case RandomPartition:
		centers, err = UpdateCenters(X, assignments, k, rng)
	default:
		return nil, nil, fmt.Errorf("seeding: Init: method=%d: %w", method, ErrUnknownMethod)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("seeding: Init: %w", err)
	}

	return assignments, centers, nil
}

// randomLabels returns n independent uniform labels in [0,k).
func randomLabels(n, k int, rng *rand.Rand) []int {
	labels := make([]int, n)
	for i := range labels {
		labels[i] = rng.Intn(k)
	}
	return labels
}

// forgyCenters samples k distinct rows of X uniformly at random, following
// the original reservoir-style index swap: for i in [0,k), draw j uniform
// in [i,n) and swap indices[i],indices[j].
func forgyCenters(X *matrix.Dense, k int, rng *rand.Rand) (*matrix.Dense, error) {
	n := X.Rows()
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	partialShuffle(indices, k, rng)

	centers, err := matrix.NewDense(k, X.Cols())
	if err != nil {
		return nil, err
	}
	for i := 0; i < k; i++ {
		row, err := X.RowCopy(indices[i])
		if err != nil {
			return nil, err
		}
		if err := centers.SetRow(i, row); err != nil {
			return nil, err
		}
	}
	return centers, nil
}

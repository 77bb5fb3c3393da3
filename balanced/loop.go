package balanced

import (
	"fmt"

	"github.com/katalvlaran/balclust/costmatrix"
	"github.com/katalvlaran/balclust/matrix"
	"github.com/katalvlaran/balclust/seeding"
	"github.com/katalvlaran/balclust/simplex"
)

// buildSolver constructs a fresh simplex.Solver from a cost matrix; hard
// and soft variants each supply their own closure over their own
// bounds/penalty, so the loop below never branches on variant.
type buildSolver func(costs *matrix.Dense) (*simplex.Solver, error)

// run drives the shared Lloyd-style loop (§4.6): seed an assignment, solve,
// decode, then alternate centroid recomputation with a re-solve (warm or
// cold, per opts) until the decoded assignment stops changing.
func run(X *matrix.Dense, k int, opts Options, build buildSolver) ([]int, *matrix.Dense, float64, error) {
	if err := validateInput(X, k); err != nil {
		return nil, nil, 0, err
	}

	workers := costmatrix.ResolveWorkers(opts.Threads)
	rng := seeding.RNGFromSeed(opts.Seed)

	// The seeded assignment itself is discarded: the first solve below
	// decodes the real A from the solver's basis.
	_, M, err := seeding.Init(X, k, opts.Init, rng)
	if err != nil {
		return nil, nil, 0, fmt.Errorf("balanced: %w", err)
	}

	C, err := costmatrix.Build(X, M, workers)
	if err != nil {
		return nil, nil, 0, fmt.Errorf("balanced: %w", err)
	}
	solver, err := build(C)
	if err != nil {
		return nil, nil, 0, fmt.Errorf("balanced: %w", err)
	}
	solver.Simplex()
	A := solver.Assignments()

	for {
		prev := A

		M, err = seeding.UpdateCenters(X, A, k, rng)
		if err != nil {
			return nil, nil, 0, fmt.Errorf("balanced: %w", err)
		}
		C, err = costmatrix.Build(X, M, workers)
		if err != nil {
			return nil, nil, 0, fmt.Errorf("balanced: %w", err)
		}

		if opts.WarmStart {
			if err := solver.UpdateCosts(C); err != nil {
				return nil, nil, 0, fmt.Errorf("balanced: %w", err)
			}
		} else {
			solver, err = build(C)
			if err != nil {
				return nil, nil, 0, fmt.Errorf("balanced: %w", err)
			}
		}
		solver.Simplex()
		A = solver.Assignments()

		if assignmentsEqual(A, prev) {
			break
		}
	}

	sse, err := computeSSE(X, M, A)
	if err != nil {
		return nil, nil, 0, fmt.Errorf("balanced: %w", err)
	}

	return A, M, sse, nil
}

func validateInput(X *matrix.Dense, k int) error {
	if err := matrix.ValidateNotNil(X); err != nil {
		return err
	}
	if k <= 0 {
		return ErrInvalidK
	}
	if k > X.Rows() {
		return ErrTooFewPoints
	}
	return nil
}

func assignmentsEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

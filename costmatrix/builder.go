package costmatrix

import (
	"errors"
	"fmt"
	"runtime"
	"sync"

	"github.com/katalvlaran/balclust/kernel"
	"github.com/katalvlaran/balclust/matrix"
)

// ErrDimensionMismatch indicates X and M do not share the same number of
// feature columns (s).
var ErrDimensionMismatch = errors.New("costmatrix: dimension mismatch")

// ErrInvalidWorkerCount indicates a non-positive worker count was requested
// of Build (ResolveWorkers should be used to turn a caller-facing -1 into a
// positive count before calling Build).
var ErrInvalidWorkerCount = errors.New("costmatrix: worker count must be > 0")

// ResolveWorkers turns the caller-facing worker count (§6 `threads`) into a
// positive worker count for Build: w == -1 means "hardware concurrency",
// any w <= 0 other than -1 is clamped to 1, and w > 0 passes through.
// This mapping lives here, not in Build, because Build's own contract (per
// spec §4.2) is "the builder itself takes a positive integer".
func ResolveWorkers(w int) int {
	if w == -1 {
		if n := runtime.GOMAXPROCS(0); n > 0 {
			return n
		}
		return 1
	}
	if w <= 0 {
		return 1
	}
	return w
}

// Build computes C[i,j] = kernel.SquaredEuclidean(X[i], M[j]) for every
// point i in [0,N) and center j in [0,k), where X is N×s and M is k×s.
//
// W == 1 runs a single sequential pass. W > 1 partitions the N*k flat cell
// indices into W cyclic stripes (worker t processes t, t+W, t+2W, …) and
// joins before returning; each stripe writes disjoint cells of the output,
// so no locking is required.
//
// Complexity: O(N*k*s) time, O(N*k) space for C, regardless of W.
func Build(X, M *matrix.Dense, w int) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(X); err != nil {
		return nil, fmt.Errorf("costmatrix: Build: %w", err)
	}
	if err := matrix.ValidateNotNil(M); err != nil {
		return nil, fmt.Errorf("costmatrix: Build: %w", err)
	}
	if X.Cols() != M.Cols() {
		return nil, fmt.Errorf("costmatrix: Build: X has %d cols, M has %d: %w", X.Cols(), M.Cols(), ErrDimensionMismatch)
	}
	if w <= 0 {
		return nil, ErrInvalidWorkerCount
	}

	n, k := X.Rows(), M.Rows()
	C, err := matrix.NewDense(n, k)
	if err != nil {
		return nil, fmt.Errorf("costmatrix: Build: %w", err)
	}

	// Pre-extract rows once; row-major At() on X/M inside the hot loop would
	// otherwise re-pay the bounds check s times per cell.
	points, err := extractRows(X)
	if err != nil {
		return nil, fmt.Errorf("costmatrix: Build: %w", err)
	}
	centers, err := extractRows(M)
	if err != nil {
		return nil, fmt.Errorf("costmatrix: Build: %w", err)
	}

	if w <= 1 {
		fillStripe(C, points, centers, k, 0, 1)
		return C, nil
	}

	var wg sync.WaitGroup
	wg.Add(w)
	for t := 0; t < w; t++ {
		go func(start int) {
			defer wg.Done()
			fillStripe(C, points, centers, k, start, w)
		}(t)
	}
	wg.Wait()

	return C, nil
}

// extractRows copies every row of m into its own []float64, so the hot loop
// touches plain slices instead of re-entering the Matrix interface per cell.
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

// fillStripe writes C's flat cell indices {start, start+stride, start+2*stride, …}.
// idx decodes to (i,j) = (idx/k, idx%k), matching C's row-major layout, so a
// stripe never touches the same cell as another stripe.
func fillStripe(C *matrix.Dense, points, centers [][]float64, k, start, stride int) {
	total := len(points) * k
	for idx := start; idx < total; idx += stride {
		i, j := idx/k, idx%k
		d := kernel.MustSquaredEuclidean(points[i], centers[j])
		// Direct cell write: i,j are derived from C's own shape, so this
		// cannot fail; ignoring the error keeps the hot loop allocation-free.
		_ = C.Set(i, j, d)
	}
}

package balanced

import "github.com/katalvlaran/balclust/seeding"

// Options configures a balanced clustering run. The zero value is valid:
// Init defaults to Forgy (seeding.InitMethod's zero value), WarmStart
// defaults to false, Threads defaults to sequential, Seed defaults to the
// seeding package's fixed zero-seed policy.
type Options struct {
	// Init selects the initial-assignment method.
	Init seeding.InitMethod
	// WarmStart reuses the network-simplex basis across outer iterations,
	// editing arc costs in place instead of rebuilding the solver.
	WarmStart bool
	// Threads is the worker count for the cost-matrix builder: -1 means
	// hardware concurrency, <= 0 other than -1 means sequential, > 0 is
	// used verbatim.
	Threads int
	// Seed is the deterministic RNG seed for initialization and
	// empty-cluster reseeding. A multi-run driver that repeats a clustering
	// call N times should use seed+run-1 for run in [1,N], so the first run
	// uses the seed verbatim.
	Seed int64
	// SimplexEpsilon overrides the reduced-cost pivoting tolerance; zero
	// selects the solver's own default. Only ClusterHard and
	// ClusterHardBounded pass it to the solver; ClusterSoft always uses the
	// solver's default.
	SimplexEpsilon float64
	// Verbose enables per-pivot diagnostics from the underlying solver in
	// ClusterHard and ClusterHardBounded; ClusterSoft prints nothing.
	Verbose bool
}

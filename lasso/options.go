package lasso

import "github.com/katalvlaran/balclust/seeding"

// Options configures a lasso clustering run. The zero value is valid: Init
// defaults to Forgy, Seed defaults to the seeding package's fixed
// zero-seed policy.
type Options struct {
	// Init selects the initial-assignment method.
	Init seeding.InitMethod
	// Seed is the deterministic RNG seed for initialization. A multi-run
	// driver that repeats a clustering call N times should use seed+run-1
	// for run in [1,N], so the first run uses the seed verbatim.
	Seed int64
}

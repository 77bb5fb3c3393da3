package seeding

import "errors"

// ErrInvalidK indicates k <= 0 or k > N was requested of Init or UpdateCenters.
var ErrInvalidK = errors.New("seeding: invalid k")

// ErrNilRNG indicates a nil *rand.Rand was passed where a deterministic
// stream is required.
var ErrNilRNG = errors.New("seeding: rng must not be nil")

// ErrUnknownMethod indicates an InitMethod value outside the declared range.
var ErrUnknownMethod = errors.New("seeding: unknown init method")

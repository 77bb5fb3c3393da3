package matrix

import "errors"

// Sentinel errors for the matrix package. All algorithms return these
// (wrapped with fmt.Errorf("...: %w", ...) only to attach context such as an
// index) rather than panicking on caller-supplied bad input.
var (
	// ErrInvalidDimensions indicates requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates two matrices (or a matrix and an index
	// slice) have incompatible shapes for the requested operation.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf indicates a NaN or ±Inf value was rejected by the numeric policy.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates a nil Matrix was used where one was required.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)

// DefaultValidateNaNInf toggles strict finite-value validation in Dense.Set.
const DefaultValidateNaNInf = true

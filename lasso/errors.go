package lasso

import "errors"

// ErrTooFewPoints indicates k > N was requested.
var ErrTooFewPoints = errors.New("lasso: k exceeds number of points")

// ErrInvalidK indicates k <= 0 was requested.
var ErrInvalidK = errors.New("lasso: k must be positive")

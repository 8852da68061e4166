package space

import "github.com/pkg/errors"

// ErrInvalidBounds is returned when a StateSpace is constructed with
// malformed bounds: lo >= hi on some axis, a bounds slice whose length
// disagrees with the declared dimension, or a missing bounds slice.
var ErrInvalidBounds = errors.New("invalid bounds")

// ErrDimensionMismatch is returned when a state's dimension disagrees with
// the dimension of the space it is being used with.
var ErrDimensionMismatch = errors.New("dimension mismatch")

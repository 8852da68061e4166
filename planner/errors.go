package planner

import "github.com/pkg/errors"

// Error kinds, flat rather than nested, per the taxonomy every planner
// reports against.
var (
	ErrInvalidBounds     = errors.New("invalid bounds")
	ErrDimensionMismatch = errors.New("dimension mismatch")

	ErrNotSetUp                     = errors.New("planner not set up")
	ErrInvalidStart                 = errors.New("invalid start state")
	ErrStateSampling                = errors.New("state sampling failed")
	ErrGoalUnreachableWithinTimeout = errors.New("goal unreachable within timeout")
)

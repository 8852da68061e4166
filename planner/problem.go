package planner

import (
	"github.com/pkg/errors"

	"github.com/arborplan/planner/goal"
	"github.com/arborplan/planner/space"
)

// ProblemDefinition bundles the space being searched, one or more start
// states, and the goal. Every start is expected to satisfy space bounds and
// validity; that is checked by a planner's Setup, not here, since the flat
// error taxonomy reports it as InvalidStart rather than a construction-time
// failure.
type ProblemDefinition struct {
	Space  space.StateSpace
	Starts []space.State
	Goal   goal.Goal
}

// NewProblemDefinition constructs a ProblemDefinition. Starts must be
// non-empty.
func NewProblemDefinition(ss space.StateSpace, starts []space.State, g goal.Goal) (*ProblemDefinition, error) {
	if len(starts) == 0 {
		return nil, errors.Wrap(ErrInvalidStart, "at least one start state is required")
	}
	return &ProblemDefinition{Space: ss, Starts: starts, Goal: g}, nil
}

// Package goal defines the layered goal capabilities planners query against:
// satisfaction testing, goal-region distance, and goal sampling.
package goal

import (
	"math/rand"

	"github.com/pkg/errors"

	"github.com/arborplan/planner/space"
)

// SamplingError is returned by GoalSampleableRegion.SampleGoal when the
// region is empty, degenerate, or otherwise cannot produce a sample.
var SamplingError = errors.New("goal sampling failed")

// Goal is the minimal capability: testing whether a state satisfies it.
type Goal interface {
	IsSatisfied(s space.State) bool
}

// GoalRegion extends Goal with a distance-to-goal function, used by PRM's
// A* heuristic. Implementations
// must keep DistanceToGoal(s) == 0 if and only if IsSatisfied(s) (up to the
// region's own epsilon).
type GoalRegion interface {
	Goal
	DistanceToGoal(s space.State) float64
}

// GoalSampleableRegion extends GoalRegion with the ability to draw a sample
// from the goal region, used by planners (RRT, RRT*) for goal-biased
// sampling and by RRT-Connect to seed its second tree.
type GoalSampleableRegion interface {
	GoalRegion
	SampleGoal(rng *rand.Rand) (space.State, error)
}

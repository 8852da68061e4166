package planner

import (
	"math/rand"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/arborplan/planner/goal"
	"github.com/arborplan/planner/plannerlog"
	"github.com/arborplan/planner/space"
)

// defaultValidityResolutionFraction derives a default validity-check
// resolution from max_distance when a caller doesn't override it, per the
// "default max_distance / 10" rule.
const defaultValidityResolutionFraction = 0.1

// defaultSamplingFailureLimit is how many consecutive goal/space sampling
// failures escalate a transient SamplingError into a fatal ErrStateSampling.
const defaultSamplingFailureLimit = 10

// treeNode is an append-only arena entry: a state, its parent index and its
// cost from the root. A parentIndex of -1 marks a root. A node's parent is
// set when it is appended, so parentIndex < own index holds in the RRT and
// RRT-Connect arenas; RRT*'s rewire step reparents an existing node to the
// newly appended one, after which that node's parentIndex is greater than
// its own index.
type treeNode struct {
	state       space.State
	parentIndex int
	cost        float64
}

// base holds the fields every concrete planner shares: the attached
// problem, a validity checker, an RNG, a logger, and the derived validity
// resolution. Every concrete algorithm embeds it directly.
type base struct {
	space    space.StateSpace
	problem  *ProblemDefinition
	validity ValidityChecker

	rng    *rand.Rand
	logger *zap.SugaredLogger

	maxDistance        float64
	validityResolution float64

	setUp bool
}

func newBase(maxDistance float64) base {
	return base{
		rng:                rand.New(rand.NewSource(1)),
		logger:             plannerlog.Nop(),
		maxDistance:        maxDistance,
		validityResolution: maxDistance * defaultValidityResolutionFraction,
	}
}

// SetRand overrides the default deterministic RNG, for reproducible tests or
// caller-controlled seeding.
func (b *base) SetRand(r *rand.Rand) { b.rng = r }

// SetLogger attaches a logger; the default discards everything.
func (b *base) SetLogger(l *zap.SugaredLogger) { b.logger = l }

// SetValidityResolution overrides the resolution CheckSegment subdivides at.
func (b *base) SetValidityResolution(r float64) { b.validityResolution = r }

func (b *base) setup(problem *ProblemDefinition, vc ValidityChecker) error {
	if err := validateStarts(problem, vc); err != nil {
		return err
	}
	b.space = problem.Space
	b.problem = problem
	b.validity = vc
	b.setUp = true
	return nil
}

// updateProblem swaps in a new problem and validity checker without
// touching any other planner state. It is for planners like PRM whose
// build-phase work (the roadmap) is independent of the per-query
// start/goal and must survive across queries; full resets belong in
// each planner's Setup.
func (b *base) updateProblem(problem *ProblemDefinition, vc ValidityChecker) error {
	if err := validateStarts(problem, vc); err != nil {
		return err
	}
	b.space = problem.Space
	b.problem = problem
	b.validity = vc
	b.setUp = true
	return nil
}

func validateStarts(problem *ProblemDefinition, vc ValidityChecker) error {
	for i, s := range problem.Starts {
		if !problem.Space.SatisfiesBounds(s) {
			return errors.Wrapf(ErrInvalidStart, "start %d is out of bounds", i)
		}
		if !vc(s) {
			return errors.Wrapf(ErrInvalidStart, "start %d is not valid", i)
		}
	}
	return nil
}

func (b *base) requireSetUp() error {
	if !b.setUp {
		return ErrNotSetUp
	}
	return nil
}

// steer produces the state max_distance along the geodesic from "from"
// toward "to", or "to" itself if it is already within max_distance.
func steer(ss space.StateSpace, from, to space.State, maxDistance float64) (space.State, bool) {
	d := ss.Distance(from, to)
	if d <= maxDistance {
		return to, true
	}
	if d == 0 {
		return nil, false
	}
	s, err := ss.Interpolate(from, to, maxDistance/d)
	if err != nil {
		return nil, false
	}
	return s, true
}

// statesFromRoot walks parent pointers from leaf back to its root and
// returns the states in root-to-leaf order.
func statesFromRoot(nodes []treeNode, leaf int) []space.State {
	var states []space.State
	for i := leaf; i != -1; i = nodes[i].parentIndex {
		states = append(states, nodes[i].state)
	}
	for i, j := 0, len(states)-1; i < j; i, j = i+1, j-1 {
		states[i], states[j] = states[j], states[i]
	}
	return states
}

func buildPath(nodes []treeNode, leaf int) *Path {
	return &Path{States: statesFromRoot(nodes, leaf)}
}

// startAlreadyAtGoal checks the boundary case where a declared start already
// satisfies the goal, in which case the solution is the length-1 path
// containing just that start.
func startAlreadyAtGoal(starts []space.State, g goal.Goal) (*Path, bool) {
	for _, s := range starts {
		if g.IsSatisfied(s) {
			return &Path{States: []space.State{s}}, true
		}
	}
	return nil, false
}

// solveResult is what a planner's background solve goroutine reports back
// on its result channel.
type solveResult struct {
	path *Path
	err  error
}

package planner

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.viam.com/utils"

	"github.com/arborplan/planner/goal"
	"github.com/arborplan/planner/nn"
	"github.com/arborplan/planner/space"
)

// extendOutcome is the result of one steered, collision-checked step toward
// a target: progress without reaching it (advanced), exact arrival
// (reached), or collision (trapped).
type extendOutcome int

const (
	trapped extendOutcome = iota
	advanced
	reached
)

// rrtConnectTree is one side of the bidirectional search: its own arena and
// nearest-neighbor index.
type rrtConnectTree struct {
	nodes []treeNode
	index nn.Index
}

func newRRTConnectTree(ss space.StateSpace, root space.State) *rrtConnectTree {
	idx := nn.NewIndex(ss)
	idx.Insert(root, 0)
	return &rrtConnectTree{
		nodes: []treeNode{{state: root, parentIndex: -1}},
		index: idx,
	}
}

func (t *rrtConnectTree) addRoot(s space.State) {
	idx := len(t.nodes)
	t.nodes = append(t.nodes, treeNode{state: s, parentIndex: -1})
	t.index.Insert(s, idx)
}

// extend steers one step from this tree's nearest node toward target.
func (t *rrtConnectTree) extend(ss space.StateSpace, vc ValidityChecker, resolution, maxDistance float64, target space.State) (int, extendOutcome) {
	nearIdx, ok := t.index.Nearest(target)
	if !ok {
		return -1, trapped
	}
	near := t.nodes[nearIdx]

	xNew, ok := steer(ss, near.state, target, maxDistance)
	if !ok {
		return -1, trapped
	}
	if _, valid := CheckSegment(ss, vc, near.state, xNew, resolution); !valid {
		return -1, trapped
	}

	newCost := near.cost + ss.Distance(near.state, xNew)
	t.nodes = append(t.nodes, treeNode{state: xNew, parentIndex: nearIdx, cost: newCost})
	idx := len(t.nodes) - 1
	t.index.Insert(xNew, idx)

	if ss.EqualStates(xNew, target) {
		return idx, reached
	}
	return idx, advanced
}

// connect repeatedly extends toward target until it is reached or the
// extension is trapped.
func (t *rrtConnectTree) connect(ss space.StateSpace, vc ValidityChecker, resolution, maxDistance float64, target space.State) (int, extendOutcome) {
	for {
		idx, outcome := t.extend(ss, vc, resolution, maxDistance, target)
		if outcome != advanced {
			return idx, outcome
		}
	}
}

// connectPath splices the start-rooted tree's root-to-leaf walk with the
// reversed goal-rooted tree's root-to-leaf walk, dropping the duplicated
// junction state.
func connectPath(startNodes []treeNode, startIdx int, goalNodes []treeNode, goalIdx int) *Path {
	startPath := statesFromRoot(startNodes, startIdx)
	goalPath := statesFromRoot(goalNodes, goalIdx)
	for i, j := 0, len(goalPath)-1; i < j; i, j = i+1, j-1 {
		goalPath[i], goalPath[j] = goalPath[j], goalPath[i]
	}
	full := append(startPath, goalPath[1:]...)
	return &Path{States: full}
}

// RRTConnect grows two trees, one rooted at the start and one rooted at a
// sampled goal, alternately extending and greedily connecting them.
type RRTConnect struct {
	base

	// goalBias is retained for API symmetry with RRT; RRT-Connect only uses
	// it to decide nothing (the goal tree is always seeded from one sampled
	// goal state), matching the source's observed "retained but not
	// meaningfully used" behaviour.
	goalBias float64
}

// NewRRTConnect constructs an RRTConnect with the given steering step.
func NewRRTConnect(maxDistance, goalBias float64) *RRTConnect {
	return &RRTConnect{
		base:     newBase(maxDistance),
		goalBias: goalBias,
	}
}

func (r *RRTConnect) Setup(problem *ProblemDefinition, vc ValidityChecker) error {
	if _, ok := problem.Goal.(goal.GoalSampleableRegion); !ok {
		return errors.New("RRTConnect requires a GoalSampleableRegion goal")
	}
	return r.base.setup(problem, vc)
}

func (r *RRTConnect) Solve(ctx context.Context, timeout time.Duration) (*Path, error) {
	if err := r.requireSetUp(); err != nil {
		return nil, err
	}
	if p, ok := startAlreadyAtGoal(r.problem.Starts, r.problem.Goal); ok {
		return p, nil
	}

	deadline := time.Now().Add(timeout)
	resultCh := make(chan solveResult, 1)
	utils.PanicCapturingGo(func() {
		resultCh <- r.run(ctx, deadline)
	})
	select {
	case res := <-resultCh:
		return res.path, res.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (r *RRTConnect) run(ctx context.Context, deadline time.Time) solveResult {
	gs := r.problem.Goal.(goal.GoalSampleableRegion)

	startTree := newRRTConnectTree(r.space, r.problem.Starts[0])
	for _, s := range r.problem.Starts[1:] {
		startTree.addRoot(s)
	}

	goalSeed, err := gs.SampleGoal(r.rng)
	if err != nil {
		return solveResult{nil, errors.Wrap(ErrStateSampling, err.Error())}
	}
	goalTree := newRRTConnectTree(r.space, goalSeed)

	trees := [2]*rrtConnectTree{startTree, goalTree}
	isGoalRooted := [2]bool{false, true}
	active := 0

	iteration := 0
	for {
		select {
		case <-ctx.Done():
			return solveResult{nil, ctx.Err()}
		default:
		}
		if time.Now().After(deadline) {
			r.logger.Debugf("RRTConnect timed out after %d iterations", iteration)
			return solveResult{nil, ErrGoalUnreachableWithinTimeout}
		}
		iteration++

		other := 1 - active
		xRand := r.space.SampleUniform(r.rng)

		aIdx, aOutcome := trees[active].extend(r.space, r.validity, r.validityResolution, r.maxDistance, xRand)
		if aOutcome != trapped {
			bIdx, bOutcome := trees[other].connect(r.space, r.validity, r.validityResolution, r.maxDistance, trees[active].nodes[aIdx].state)
			if bOutcome == reached {
				goalOK := true
				if isGoalRooted[other] {
					goalOK = r.problem.Goal.IsSatisfied(trees[other].nodes[0].state)
				}
				if goalOK {
					r.logger.Debugf("RRTConnect solved after %d iterations", iteration)
					if active == 0 {
						return solveResult{connectPath(trees[0].nodes, aIdx, trees[1].nodes, bIdx), nil}
					}
					return solveResult{connectPath(trees[0].nodes, bIdx, trees[1].nodes, aIdx), nil}
				}
			}
		}

		active = other
	}
}

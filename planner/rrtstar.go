package planner

import (
	"context"
	"math"
	"time"

	"github.com/pkg/errors"
	"go.viam.com/utils"

	"github.com/arborplan/planner/goal"
	"github.com/arborplan/planner/nn"
	"github.com/arborplan/planner/space"
)

// defaultRRTStarGamma is the RRT* search-radius constant used when a caller
// doesn't derive it from a tuned profile.
const defaultRRTStarGamma = 2.0

// rrtStarArena is RRT's node arena plus a children list per node, needed to
// propagate cost deltas to descendants after a rewire.
type rrtStarArena struct {
	nodes    []treeNode
	children [][]int
	index    nn.Index
}

func newRRTStarArena(ss space.StateSpace) *rrtStarArena {
	return &rrtStarArena{index: nn.NewIndex(ss)}
}

func (a *rrtStarArena) addRoot(s space.State) int {
	idx := len(a.nodes)
	a.nodes = append(a.nodes, treeNode{state: s, parentIndex: -1})
	a.children = append(a.children, nil)
	a.index.Insert(s, idx)
	return idx
}

func (a *rrtStarArena) add(s space.State, parent int, cost float64) int {
	idx := len(a.nodes)
	a.nodes = append(a.nodes, treeNode{state: s, parentIndex: parent, cost: cost})
	a.children = append(a.children, nil)
	a.children[parent] = append(a.children[parent], idx)
	a.index.Insert(s, idx)
	return idx
}

// reparent reassigns child's parent, gives it its new absolute cost, and
// propagates the resulting delta to every descendant using an explicit FIFO
// queue rather than recursion, bounding the work by descendant count.
func (a *rrtStarArena) reparent(child, newParent int, newCost float64) {
	oldParent := a.nodes[child].parentIndex
	if oldParent >= 0 {
		siblings := a.children[oldParent]
		for i, c := range siblings {
			if c == child {
				a.children[oldParent] = append(siblings[:i], siblings[i+1:]...)
				break
			}
		}
	}
	delta := newCost - a.nodes[child].cost
	a.nodes[child].parentIndex = newParent
	a.nodes[child].cost = newCost
	a.children[newParent] = append(a.children[newParent], child)

	queue := append([]int(nil), a.children[child]...)
	for len(queue) > 0 {
		idx := queue[0]
		queue = queue[1:]
		a.nodes[idx].cost += delta
		queue = append(queue, a.children[idx]...)
	}
}

// RRTStar grows a single tree like RRT, but additionally rewires
// near-neighbors to minimize cost-from-root as it grows, yielding an
// anytime, asymptotically optimal solution.
type RRTStar struct {
	base

	goalBias    float64
	gamma       float64
	fixedRadius float64

	goalSampler goal.GoalSampleableRegion
}

// NewRRTStar constructs an RRTStar. gamma is the constant in the derived
// search-radius formula gamma * (log n / n)^(1/d); pass <= 0 to use the
// default.
func NewRRTStar(maxDistance, goalBias, gamma float64) *RRTStar {
	if gamma <= 0 {
		gamma = defaultRRTStarGamma
	}
	return &RRTStar{
		base:     newBase(maxDistance),
		goalBias: goalBias,
		gamma:    gamma,
	}
}

// SetSearchRadius fixes the near-neighbor radius instead of deriving it from
// gamma and the current tree size.
func (r *RRTStar) SetSearchRadius(radius float64) { r.fixedRadius = radius }

func (r *RRTStar) Setup(problem *ProblemDefinition, vc ValidityChecker) error {
	gs, ok := problem.Goal.(goal.GoalSampleableRegion)
	if !ok {
		return errors.New("RRTStar requires a GoalSampleableRegion goal")
	}
	if err := r.base.setup(problem, vc); err != nil {
		return err
	}
	r.goalSampler = gs
	return nil
}

func (r *RRTStar) Solve(ctx context.Context, timeout time.Duration) (*Path, error) {
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

func (r *RRTStar) radius(n int) float64 {
	if r.fixedRadius > 0 {
		return r.fixedRadius
	}
	if n < 2 {
		return r.maxDistance
	}
	d := float64(r.space.Dimension())
	return r.gamma * math.Pow(math.Log(float64(n))/float64(n), 1/d)
}

func (r *RRTStar) run(ctx context.Context, deadline time.Time) solveResult {
	arena := newRRTStarArena(r.space)
	for _, s := range r.problem.Starts {
		arena.addRoot(s)
	}

	bestGoalIdx := -1
	bestCost := math.Inf(1)
	consecutiveFailures := 0
	iteration := 0

	for {
		select {
		case <-ctx.Done():
			return solveResult{nil, ctx.Err()}
		default:
		}
		if time.Now().After(deadline) {
			if bestGoalIdx >= 0 {
				r.logger.Debugf("RRTStar timed out after %d iterations, returning best cost %f", iteration, bestCost)
				return solveResult{buildPath(arena.nodes, bestGoalIdx), nil}
			}
			r.logger.Debugf("RRTStar timed out after %d iterations with no solution", iteration)
			return solveResult{nil, ErrGoalUnreachableWithinTimeout}
		}
		iteration++

		xRand, err := r.sample()
		if err != nil {
			consecutiveFailures++
			if consecutiveFailures >= defaultSamplingFailureLimit {
				return solveResult{nil, errors.Wrap(ErrStateSampling, err.Error())}
			}
			continue
		}
		consecutiveFailures = 0

		nearestIdx, ok := arena.index.Nearest(xRand)
		if !ok {
			continue
		}
		nearest := arena.nodes[nearestIdx]

		xNew, ok := steer(r.space, nearest.state, xRand, r.maxDistance)
		if !ok {
			continue
		}
		if _, valid := CheckSegment(r.space, r.validity, nearest.state, xNew, r.validityResolution); !valid {
			continue
		}

		near := arena.index.WithinRadius(xNew, r.radius(arena.index.Len()))

		parentIdx := nearestIdx
		parentCost := nearest.cost + r.space.Distance(nearest.state, xNew)
		for _, idx := range near {
			n := arena.nodes[idx]
			cost := n.cost + r.space.Distance(n.state, xNew)
			if cost < parentCost {
				if _, valid := CheckSegment(r.space, r.validity, n.state, xNew, r.validityResolution); valid {
					parentCost = cost
					parentIdx = idx
				}
			}
		}

		newIdx := arena.add(xNew, parentIdx, parentCost)

		for _, idx := range near {
			if idx == parentIdx {
				continue
			}
			n := arena.nodes[idx]
			cost := parentCost + r.space.Distance(xNew, n.state)
			if cost < n.cost {
				if _, valid := CheckSegment(r.space, r.validity, xNew, n.state, r.validityResolution); valid {
					arena.reparent(idx, newIdx, cost)
				}
			}
		}

		if r.problem.Goal.IsSatisfied(xNew) && parentCost < bestCost {
			bestCost = parentCost
			bestGoalIdx = newIdx
			r.logger.Debugf("RRTStar improved best cost to %f at iteration %d", bestCost, iteration)
		}
	}
}

func (r *RRTStar) sample() (space.State, error) {
	if r.rng.Float64() < r.goalBias {
		return r.goalSampler.SampleGoal(r.rng)
	}
	return r.space.SampleUniform(r.rng), nil
}

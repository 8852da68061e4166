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

// RRT grows a single tree rooted at the start state(s), steering toward
// goal-biased random samples, per the rapidly-exploring random tree
// algorithm.
type RRT struct {
	base

	goalBias    float64
	goalSampler goal.GoalSampleableRegion
}

// NewRRT constructs an RRT with the given steering step and goal bias. No
// problem is attached until Setup is called.
func NewRRT(maxDistance, goalBias float64) *RRT {
	return &RRT{
		base:     newBase(maxDistance),
		goalBias: goalBias,
	}
}

// Setup binds the planner to a problem and validity checker. The goal must
// be sampleable, since RRT biases its sampling toward it.
func (r *RRT) Setup(problem *ProblemDefinition, vc ValidityChecker) error {
	gs, ok := problem.Goal.(goal.GoalSampleableRegion)
	if !ok {
		return errors.New("RRT requires a GoalSampleableRegion goal")
	}
	if err := r.base.setup(problem, vc); err != nil {
		return err
	}
	r.goalSampler = gs
	return nil
}

// Solve runs until a path is found, the context is cancelled, or timeout
// elapses.
func (r *RRT) Solve(ctx context.Context, timeout time.Duration) (*Path, error) {
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

func (r *RRT) run(ctx context.Context, deadline time.Time) solveResult {
	var nodes []treeNode
	index := nn.NewIndex(r.space)
	for _, s := range r.problem.Starts {
		nodes = append(nodes, treeNode{state: s, parentIndex: -1})
		index.Insert(s, len(nodes)-1)
	}

	consecutiveFailures := 0
	iteration := 0
	for {
		select {
		case <-ctx.Done():
			return solveResult{nil, ctx.Err()}
		default:
		}
		if time.Now().After(deadline) {
			r.logger.Debugf("RRT timed out after %d iterations", iteration)
			return solveResult{nil, ErrGoalUnreachableWithinTimeout}
		}
		iteration++
		if iteration%100 == 0 {
			r.logger.Debugf("RRT iteration %d, tree size %d", iteration, len(nodes))
		}

		xRand, err := r.sample()
		if err != nil {
			consecutiveFailures++
			if consecutiveFailures >= defaultSamplingFailureLimit {
				return solveResult{nil, errors.Wrap(ErrStateSampling, err.Error())}
			}
			continue
		}
		consecutiveFailures = 0

		nearIdx, ok := index.Nearest(xRand)
		if !ok {
			continue
		}
		near := nodes[nearIdx]

		xNew, ok := steer(r.space, near.state, xRand, r.maxDistance)
		if !ok {
			continue
		}
		if _, valid := CheckSegment(r.space, r.validity, near.state, xNew, r.validityResolution); !valid {
			continue
		}

		newCost := near.cost + r.space.Distance(near.state, xNew)
		nodes = append(nodes, treeNode{state: xNew, parentIndex: nearIdx, cost: newCost})
		newIdx := len(nodes) - 1
		index.Insert(xNew, newIdx)

		if r.problem.Goal.IsSatisfied(xNew) {
			r.logger.Debugf("RRT solved after %d iterations", iteration)
			return solveResult{buildPath(nodes, newIdx), nil}
		}
	}
}

func (r *RRT) sample() (space.State, error) {
	if r.rng.Float64() < r.goalBias {
		return r.goalSampler.SampleGoal(r.rng)
	}
	return r.space.SampleUniform(r.rng), nil
}

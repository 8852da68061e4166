package planner

import (
	"context"
	"math"
	"math/rand"
	"time"

	"github.com/pkg/errors"
	"go.viam.com/utils"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/arborplan/planner/goal"
	"github.com/arborplan/planner/nn"
	"github.com/arborplan/planner/space"
)

// PRM builds a roadmap of validity-checked samples once, then answers
// shortest-path queries against it. The roadmap persists across calls to
// Solve; only the temporary start/goal nodes of a query are removed
// afterward.
type PRM struct {
	base

	nSamples         int
	connectionRadius float64

	built  bool
	graph  *simple.WeightedUndirectedGraph
	states map[int64]space.State
	index  nn.Index
	nextID int64
}

// NewPRM constructs a PRM with the given build-phase sample count and
// connection radius.
func NewPRM(nSamples int, connectionRadius float64) *PRM {
	return &PRM{
		base:             newBase(connectionRadius),
		nSamples:         nSamples,
		connectionRadius: connectionRadius,
	}
}

func (p *PRM) Setup(problem *ProblemDefinition, vc ValidityChecker) error {
	if err := p.base.setup(problem, vc); err != nil {
		return err
	}
	p.graph = simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	p.states = map[int64]space.State{}
	p.index = nn.NewIndex(problem.Space)
	p.built = false
	p.nextID = 0
	return nil
}

// Query swaps in a new start/goal pair without discarding the roadmap
// built by a prior Solve: the underlying space and validity checker must
// be unchanged from the last Setup. Use this to answer several queries
// against the same PRM without rebuilding the n_samples-sized roadmap.
// Call Setup instead when the space or validity checker itself changes.
func (p *PRM) Query(problem *ProblemDefinition, vc ValidityChecker) error {
	return p.base.updateProblem(problem, vc)
}

// build samples n_samples states, keeps the valid ones, and connects each to
// its within-radius roadmap neighbors. It is a no-op once the roadmap has
// already been built, so repeated Solve calls reuse it.
func (p *PRM) build(rng *rand.Rand) {
	if p.built {
		return
	}
	for i := 0; i < p.nSamples; i++ {
		s := p.space.SampleUniform(rng)
		if !p.validity(s) {
			continue
		}
		p.addNode(s, true)
	}
	p.built = true
	p.logger.Debugf("PRM built roadmap with %d nodes", len(p.states))
}

// addNode adds a sample to the graph and connects it to existing within-
// radius neighbors whose connecting edge is collision-free. permanent
// controls whether it is also inserted into the nearest-neighbor index used
// to find future neighbors (temporary query nodes are not).
func (p *PRM) addNode(s space.State, permanent bool) int64 {
	id := p.nextID
	p.nextID++
	n := simple.Node(id)
	p.graph.AddNode(n)
	p.states[id] = s

	for _, otherIDInt := range p.index.WithinRadius(s, p.connectionRadius) {
		otherID := int64(otherIDInt)
		other := p.states[otherID]
		if _, valid := CheckSegment(p.space, p.validity, s, other, p.validityResolution); valid {
			w := p.space.Distance(s, other)
			p.graph.SetWeightedEdge(p.graph.NewWeightedEdge(n, simple.Node(otherID), w))
		}
	}
	if permanent {
		p.index.Insert(s, int(id))
	}
	return id
}

func (p *PRM) removeTemporaryNode(id int64) {
	delete(p.states, id)
	p.graph.RemoveNode(id)
}

func (p *PRM) Solve(ctx context.Context, timeout time.Duration) (*Path, error) {
	if err := p.requireSetUp(); err != nil {
		return nil, err
	}
	if pa, ok := startAlreadyAtGoal(p.problem.Starts, p.problem.Goal); ok {
		return pa, nil
	}

	deadline := time.Now().Add(timeout)
	resultCh := make(chan solveResult, 1)
	utils.PanicCapturingGo(func() {
		resultCh <- p.run(ctx, deadline)
	})
	select {
	case res := <-resultCh:
		return res.path, res.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (p *PRM) run(ctx context.Context, deadline time.Time) solveResult {
	p.build(p.rng)

	gs, sampleable := p.problem.Goal.(goal.GoalSampleableRegion)
	if !sampleable {
		return solveResult{nil, errors.New("PRM requires a GoalSampleableRegion goal")}
	}
	gr, hasDistance := p.problem.Goal.(goal.GoalRegion)

	var bestPath *Path
	bestCost := math.Inf(1)

	for _, start := range p.problem.Starts {
		select {
		case <-ctx.Done():
			return solveResult{nil, ctx.Err()}
		default:
		}
		if time.Now().After(deadline) {
			break
		}

		goalState, err := gs.SampleGoal(p.rng)
		if err != nil {
			continue
		}

		startID := p.addNode(start, false)
		goalID := p.addNode(goalState, false)

		var shortest path.Shortest
		if hasDistance {
			heuristic := func(u, _ graph.Node) float64 {
				s, ok := p.states[u.ID()]
				if !ok {
					return 0
				}
				return gr.DistanceToGoal(s)
			}
			shortest = path.AStar(p.graph.Node(startID), p.graph.Node(goalID), p.graph, heuristic)
		} else {
			shortest = path.DijkstraFrom(p.graph.Node(startID), p.graph)
		}

		nodes, cost := shortest.To(goalID)

		var states []space.State
		if nodes != nil && cost < bestCost {
			states = make([]space.State, len(nodes))
			for i, n := range nodes {
				states[i] = p.states[n.ID()]
			}
		}

		p.removeTemporaryNode(startID)
		p.removeTemporaryNode(goalID)

		if states == nil {
			continue
		}
		bestCost = cost
		bestPath = &Path{States: states}
	}

	if bestPath == nil {
		return solveResult{nil, ErrGoalUnreachableWithinTimeout}
	}
	return solveResult{bestPath, nil}
}

package goal

import (
	"math"
	"math/rand"

	"github.com/arborplan/planner/space"
)

// StateGoal is satisfied exactly at a single target state, within
// tolerance. With the start as its target it expresses the "goal identical
// to start" boundary case.
type StateGoal struct {
	space     space.StateSpace
	target    space.State
	tolerance float64
}

// NewStateGoal constructs a goal satisfied when a state is within tolerance
// of target under the given space's distance.
func NewStateGoal(ss space.StateSpace, target space.State, tolerance float64) *StateGoal {
	return &StateGoal{space: ss, target: target, tolerance: tolerance}
}

func (g *StateGoal) IsSatisfied(s space.State) bool {
	return g.DistanceToGoal(s) <= g.tolerance
}

func (g *StateGoal) DistanceToGoal(s space.State) float64 {
	return g.space.Distance(s, g.target)
}

func (g *StateGoal) SampleGoal(rng *rand.Rand) (space.State, error) {
	return g.target, nil
}

// RealVectorBallRegion is a goal disc/ball centred on a RealVectorState.
type RealVectorBallRegion struct {
	space  *space.RealVectorStateSpace
	center space.State
	radius float64
}

// NewRealVectorBallRegion constructs a ball goal region. radius must be
// positive; a non-positive radius makes the region degenerate and
// SampleGoal will always fail with SamplingError.
func NewRealVectorBallRegion(ss *space.RealVectorStateSpace, center space.State, radius float64) *RealVectorBallRegion {
	return &RealVectorBallRegion{space: ss, center: center, radius: radius}
}

func (g *RealVectorBallRegion) IsSatisfied(s space.State) bool {
	return g.DistanceToGoal(s) <= 0
}

func (g *RealVectorBallRegion) DistanceToGoal(s space.State) float64 {
	d := g.space.Distance(s, g.center) - g.radius
	if d < 0 {
		d = 0
	}
	return d
}

func (g *RealVectorBallRegion) SampleGoal(rng *rand.Rand) (space.State, error) {
	if g.radius <= 0 {
		return nil, SamplingError
	}
	center := g.center.(*space.RealVectorState)
	dim := len(center.Values)
	// Sample uniformly in the ball via Gaussian-direction + radius^(1/dim)
	// scaling (Muller's method), clamped to the space's own bounds after.
	dir := make([]float64, dim)
	normSq := 0.0
	for i := range dir {
		v := rng.NormFloat64()
		dir[i] = v
		normSq += v * v
	}
	norm := math.Sqrt(normSq)
	if norm == 0 {
		norm = 1
	}
	scale := g.radius * math.Pow(rng.Float64(), 1.0/float64(dim)) / norm
	out := make([]float64, dim)
	for i := range out {
		out[i] = center.Values[i] + dir[i]*scale
	}
	sample := space.NewRealVectorState(out...)
	return g.space.EnforceBounds(sample), nil
}

// SO2ArcRegion is a goal arc of the given half-width centred on an angle,
// satisfied across the wraparound boundary like any other SO2 distance.
type SO2ArcRegion struct {
	space     *space.SO2StateSpace
	center    space.State
	halfWidth float64
}

// NewSO2ArcRegion constructs an arc goal region. halfWidth must be positive.
func NewSO2ArcRegion(ss *space.SO2StateSpace, center space.State, halfWidth float64) *SO2ArcRegion {
	return &SO2ArcRegion{space: ss, center: center, halfWidth: halfWidth}
}

func (g *SO2ArcRegion) IsSatisfied(s space.State) bool {
	return g.DistanceToGoal(s) <= 0
}

func (g *SO2ArcRegion) DistanceToGoal(s space.State) float64 {
	d := g.space.Distance(s, g.center) - g.halfWidth
	if d < 0 {
		d = 0
	}
	return d
}

func (g *SO2ArcRegion) SampleGoal(rng *rand.Rand) (space.State, error) {
	if g.halfWidth <= 0 {
		return nil, SamplingError
	}
	center := g.center.(*space.SO2State)
	offset := (rng.Float64()*2 - 1) * g.halfWidth
	return space.NewSO2State(center.Angle + offset), nil
}

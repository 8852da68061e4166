package space

import (
	"math"
	"math/rand"

	"go.viam.com/utils"
)

// SO2State is a single angle, canonically normalised to [-pi, pi).
type SO2State struct {
	Angle float64
}

func (*SO2State) isState() {}

// NewSO2State constructs an SO2State, normalising the angle into [-pi, pi).
func NewSO2State(angle float64) *SO2State {
	return &SO2State{Angle: normalizeAngle(angle)}
}

func normalizeAngle(a float64) float64 {
	const twoPi = 2 * math.Pi
	a = math.Mod(a, twoPi)
	if a < -math.Pi {
		a += twoPi
	} else if a >= math.Pi {
		a -= twoPi
	}
	return a
}

// SO2StateSpace is the space of planar rotations, dimension 1.
type SO2StateSpace struct{}

// NewSO2StateSpace constructs an SO2StateSpace.
func NewSO2StateSpace() *SO2StateSpace { return &SO2StateSpace{} }

func (s *SO2StateSpace) Dimension() int { return 1 }

func (s *SO2StateSpace) asAngle(st State) (*SO2State, error) {
	v, ok := st.(*SO2State)
	if !ok {
		return nil, ErrDimensionMismatch
	}
	return v, nil
}

// Distance is the shortest angular difference, bounded by pi.
func (s *SO2StateSpace) Distance(a, b State) float64 {
	av, err := s.asAngle(a)
	if err != nil {
		return math.NaN()
	}
	bv, err := s.asAngle(b)
	if err != nil {
		return math.NaN()
	}
	return shortestAngularDistance(av.Angle, bv.Angle)
}

func shortestAngularDistance(a, b float64) float64 {
	d := math.Abs(a - b)
	if d > math.Pi {
		d = 2*math.Pi - d
	}
	return d
}

// signedShortestDelta returns the signed angular delta from a to b along the
// shorter arc, in (-pi, pi]. A magnitude of exactly pi is returned positive,
// which callers use to implement the counter-clockwise tie-break.
func signedShortestDelta(a, b float64) float64 {
	d := normalizeAngle(b - a)
	if d == -math.Pi {
		d = math.Pi
	}
	return d
}

// Interpolate moves along the shorter arc from a to b; an arc of exactly pi
// breaks ties by going counter-clockwise, for determinism.
func (s *SO2StateSpace) Interpolate(a, b State, t float64) (State, error) {
	av, err := s.asAngle(a)
	if err != nil {
		return nil, err
	}
	bv, err := s.asAngle(b)
	if err != nil {
		return nil, err
	}
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	delta := signedShortestDelta(av.Angle, bv.Angle)
	return NewSO2State(av.Angle + delta*t), nil
}

// SampleUniform draws an angle uniformly from [-pi, pi).
func (s *SO2StateSpace) SampleUniform(rng *rand.Rand) State {
	return NewSO2State(-math.Pi + rng.Float64()*2*math.Pi)
}

// EnforceBounds wraps the angle into [-pi, pi).
func (s *SO2StateSpace) EnforceBounds(st State) State {
	v, err := s.asAngle(st)
	if err != nil {
		return st
	}
	return NewSO2State(v.Angle)
}

// SatisfiesBounds is true for any SO2State: angles are always normalised on
// construction, so this only rejects the wrong state kind.
func (s *SO2StateSpace) SatisfiesBounds(st State) bool {
	_, err := s.asAngle(st)
	return err == nil
}

// EqualStates reports approximate equality of the two angles.
func (s *SO2StateSpace) EqualStates(a, b State) bool {
	av, err := s.asAngle(a)
	if err != nil {
		return false
	}
	bv, err := s.asAngle(b)
	if err != nil {
		return false
	}
	return utils.Float64AlmostEqual(shortestAngularDistance(av.Angle, bv.Angle), 0, equalEpsilon)
}

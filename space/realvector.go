package space

import (
	"math"
	"math/rand"

	"go.viam.com/utils"
)

// RealVectorState is an ordered sequence of real numbers of fixed dimension.
// Its dimension must match the RealVectorStateSpace that produced it.
type RealVectorState struct {
	Values []float64
}

func (*RealVectorState) isState() {}

// NewRealVectorState constructs a RealVectorState from the given values. The
// returned state is a defensive copy; callers may mutate their own slice
// afterwards without affecting the state.
func NewRealVectorState(values ...float64) *RealVectorState {
	cp := make([]float64, len(values))
	copy(cp, values)
	return &RealVectorState{Values: cp}
}

// Bound is an inclusive per-axis range [Low, High] with Low < High.
type Bound struct {
	Low, High float64
}

// RealVectorStateSpace is a fixed-dimension Euclidean space with per-axis
// bounds. Every axis must be explicitly bounded; construction fails
// otherwise, since an unbounded axis has no well-defined sampling domain.
type RealVectorStateSpace struct {
	dimension int
	bounds    []Bound
}

// NewRealVectorStateSpace constructs a bounded Euclidean state space of the
// given dimension. bounds must have exactly `dimension` entries, each with
// Low < High.
func NewRealVectorStateSpace(dimension int, bounds []Bound) (*RealVectorStateSpace, error) {
	if dimension < 1 {
		return nil, ErrInvalidBounds
	}
	if len(bounds) != dimension {
		return nil, ErrInvalidBounds
	}
	for _, b := range bounds {
		if !(b.Low < b.High) {
			return nil, ErrInvalidBounds
		}
	}
	cp := make([]Bound, dimension)
	copy(cp, bounds)
	return &RealVectorStateSpace{dimension: dimension, bounds: cp}, nil
}

// Bounds returns a copy of the per-axis bounds.
func (s *RealVectorStateSpace) Bounds() []Bound {
	cp := make([]Bound, len(s.bounds))
	copy(cp, s.bounds)
	return cp
}

func (s *RealVectorStateSpace) Dimension() int { return s.dimension }

func (s *RealVectorStateSpace) asVector(st State) (*RealVectorState, error) {
	v, ok := st.(*RealVectorState)
	if !ok || len(v.Values) != s.dimension {
		return nil, ErrDimensionMismatch
	}
	return v, nil
}

// Distance is the Euclidean distance between a and b.
func (s *RealVectorStateSpace) Distance(a, b State) float64 {
	av, err := s.asVector(a)
	if err != nil {
		return math.NaN()
	}
	bv, err := s.asVector(b)
	if err != nil {
		return math.NaN()
	}
	sum := 0.0
	for i := range av.Values {
		d := av.Values[i] - bv.Values[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}

// Interpolate returns the component-wise linear interpolation between a and
// b at parameter t, clamped into [0,1].
func (s *RealVectorStateSpace) Interpolate(a, b State, t float64) (State, error) {
	av, err := s.asVector(a)
	if err != nil {
		return nil, err
	}
	bv, err := s.asVector(b)
	if err != nil {
		return nil, err
	}
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	out := make([]float64, s.dimension)
	for i := range av.Values {
		out[i] = av.Values[i] + (bv.Values[i]-av.Values[i])*t
	}
	return &RealVectorState{Values: out}, nil
}

// SampleUniform draws a state uniformly from the per-axis bounds.
func (s *RealVectorStateSpace) SampleUniform(rng *rand.Rand) State {
	out := make([]float64, s.dimension)
	for i, b := range s.bounds {
		out[i] = b.Low + rng.Float64()*(b.High-b.Low)
	}
	return &RealVectorState{Values: out}
}

// EnforceBounds clamps each component into its axis bound.
func (s *RealVectorStateSpace) EnforceBounds(st State) State {
	v, err := s.asVector(st)
	if err != nil {
		return st
	}
	out := make([]float64, s.dimension)
	for i, val := range v.Values {
		b := s.bounds[i]
		switch {
		case val < b.Low:
			out[i] = b.Low
		case val > b.High:
			out[i] = b.High
		default:
			out[i] = val
		}
	}
	return &RealVectorState{Values: out}
}

// SatisfiesBounds reports whether st lies within every axis bound.
func (s *RealVectorStateSpace) SatisfiesBounds(st State) bool {
	v, err := s.asVector(st)
	if err != nil {
		return false
	}
	for i, val := range v.Values {
		b := s.bounds[i]
		if val < b.Low || val > b.High {
			return false
		}
	}
	return true
}

// EqualStates reports approximate equality of every component.
func (s *RealVectorStateSpace) EqualStates(a, b State) bool {
	av, err := s.asVector(a)
	if err != nil {
		return false
	}
	bv, err := s.asVector(b)
	if err != nil {
		return false
	}
	for i := range av.Values {
		if !utils.Float64AlmostEqual(av.Values[i], bv.Values[i], equalEpsilon) {
			return false
		}
	}
	return true
}

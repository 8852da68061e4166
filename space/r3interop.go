package space

import "github.com/golang/geo/r3"

// ToR3 converts a 3-dimensional RealVectorState to an r3.Vector, for callers
// building obstacle geometry or goal regions with github.com/golang/geo.
func ToR3(s *RealVectorState) (r3.Vector, error) {
	if len(s.Values) != 3 {
		return r3.Vector{}, ErrDimensionMismatch
	}
	return r3.Vector{X: s.Values[0], Y: s.Values[1], Z: s.Values[2]}, nil
}

// FromR3 constructs a 3-dimensional RealVectorState from an r3.Vector.
func FromR3(v r3.Vector) *RealVectorState {
	return NewRealVectorState(v.X, v.Y, v.Z)
}

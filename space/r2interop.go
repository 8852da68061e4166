package space

import "github.com/golang/geo/r2"

// ToR2 converts a 2-dimensional RealVectorState to an r2.Point, for callers
// building obstacle geometry or goal regions with github.com/golang/geo.
func ToR2(s *RealVectorState) (r2.Point, error) {
	if len(s.Values) != 2 {
		return r2.Point{}, ErrDimensionMismatch
	}
	return r2.Point{X: s.Values[0], Y: s.Values[1]}, nil
}

// FromR2 constructs a 2-dimensional RealVectorState from an r2.Point.
func FromR2(p r2.Point) *RealVectorState {
	return NewRealVectorState(p.X, p.Y)
}

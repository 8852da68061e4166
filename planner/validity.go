package planner

import (
	"math"

	"github.com/arborplan/planner/space"
)

// ValidityChecker decides whether a state is collision-free. It must be
// side-effect-free and safe to call from multiple goroutines.
type ValidityChecker func(space.State) bool

// CheckSegment subdivides the edge from a to b into steps of at most
// resolution and validity-checks every interior point plus b. It returns the
// first invalid state encountered (nil if none) and whether the whole
// segment is valid.
func CheckSegment(ss space.StateSpace, vc ValidityChecker, a, b space.State, resolution float64) (space.State, bool) {
	d := ss.Distance(a, b)
	if d == 0 {
		if vc(b) {
			return nil, true
		}
		return b, false
	}
	if resolution <= 0 {
		resolution = d
	}
	steps := int(math.Ceil(d / resolution))
	if steps < 1 {
		steps = 1
	}
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		s, err := ss.Interpolate(a, b, t)
		if err != nil {
			return nil, false
		}
		if !vc(s) {
			return s, false
		}
	}
	return nil, true
}

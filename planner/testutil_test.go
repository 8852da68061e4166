package planner

import "github.com/arborplan/planner/space"

func alwaysValid(space.State) bool { return true }

func alwaysInvalid(space.State) bool { return false }

// wallValidity rejects states inside a vertical wall centred at wallX with
// the given thickness, spanning y in [yLow, yHigh].
func wallValidity(wallX, yLow, yHigh, thickness float64) ValidityChecker {
	half := thickness / 2
	return func(s space.State) bool {
		rv, ok := s.(*space.RealVectorState)
		if !ok {
			return true
		}
		x, y := rv.Values[0], rv.Values[1]
		if x >= wallX-half && x <= wallX+half && y >= yLow && y <= yHigh {
			return false
		}
		return true
	}
}

package planner

import "github.com/arborplan/planner/space"

// Path is an ordered sequence of states returned by a planner, of length at
// least 1.
type Path struct {
	States []space.State
}

// Len reports the number of states in the path.
func (p *Path) Len() int { return len(p.States) }

// State returns the i'th state in the path.
func (p *Path) State(i int) space.State { return p.States[i] }

// Cost sums the space distance between every consecutive pair of states.
func (p *Path) Cost(ss space.StateSpace) float64 {
	var total float64
	for i := 1; i < len(p.States); i++ {
		total += ss.Distance(p.States[i-1], p.States[i])
	}
	return total
}

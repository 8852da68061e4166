// Package nn provides the nearest-neighbor abstraction planners search
// against: a narrow Index interface (insert, nearest, within-radius)
// decoupled from any particular backing data structure, per the "replaceable
// nearest-neighbor index" design note. A linear-scan implementation works
// over any space.StateSpace; a kd-tree-backed implementation is available
// for space.RealVectorStateSpace to keep RRT*'s near-neighbor queries at
// O(log n) instead of O(n).
package nn

import "github.com/arborplan/planner/space"

// Index is a replaceable nearest-neighbor search structure over states
// tagged with an integer payload (the owning planner's arena index).
type Index interface {
	// Insert adds a state with its arena index to the index.
	Insert(s space.State, id int)

	// Nearest returns the arena index of the state closest to q under the
	// space's distance, and false if the index is empty.
	Nearest(q space.State) (id int, ok bool)

	// WithinRadius returns the arena indices of every inserted state within
	// radius of q (inclusive).
	WithinRadius(q space.State, radius float64) []int

	// Len reports how many states have been inserted.
	Len() int
}

// NewIndex returns the best available Index for the given space: a
// kd-tree-backed index for *space.RealVectorStateSpace, linear scan
// otherwise. Linear scan is always correct but degrades RRT* noticeably
// as the tree grows, so RealVector spaces get the kd-tree upgrade.
func NewIndex(ss space.StateSpace) Index {
	if rv, ok := ss.(*space.RealVectorStateSpace); ok {
		return NewKDTreeIndex(rv)
	}
	return NewLinearIndex(ss)
}

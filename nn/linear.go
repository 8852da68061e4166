package nn

import (
	"context"

	"github.com/arborplan/planner/space"
)

// LinearIndex is the default, always-correct nearest-neighbor index: a
// linear scan over every inserted state. It works for any StateSpace,
// including SO2 and any future compound state, and is the fallback when no
// specialised spatial index exists for a space's concrete type. Once the
// candidate count passes DefaultParallelNeighbors and DefaultNCPU() is
// greater than 1, the scan is split across goroutines by an internal
// neighborManager (see manager.go); otherwise it runs serially.
type LinearIndex struct {
	space   space.StateSpace
	items   []entry
	manager *neighborManager
}

type entry struct {
	state space.State
	id    int
}

// NewLinearIndex constructs an empty linear-scan index over ss.
func NewLinearIndex(ss space.StateSpace) *LinearIndex {
	return &LinearIndex{
		space:   ss,
		manager: newNeighborManager(DefaultNCPU(), DefaultParallelNeighbors),
	}
}

func (l *LinearIndex) Insert(s space.State, id int) {
	l.items = append(l.items, entry{state: s, id: id})
}

func (l *LinearIndex) Len() int { return len(l.items) }

// Nearest returns the arena index minimizing space distance to q. Ties are
// broken by smaller index.
func (l *LinearIndex) Nearest(q space.State) (int, bool) {
	return l.NearestContext(context.Background(), q)
}

// NearestContext is Nearest with an explicit context. The context is handed
// to the parallel scan's errgroup, but the scan goroutines do not check it:
// a scan that has started always runs to completion.
func (l *LinearIndex) NearestContext(ctx context.Context, q space.State) (int, bool) {
	best, ok := l.manager.nearest(ctx, l.space, q, l.items)
	if !ok {
		return 0, false
	}
	return best.id, true
}

func (l *LinearIndex) WithinRadius(q space.State, radius float64) []int {
	var out []int
	for _, it := range l.items {
		if l.space.Distance(it.state, q) <= radius {
			out = append(out, it.id)
		}
	}
	return out
}

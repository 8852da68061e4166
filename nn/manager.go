package nn

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/arborplan/planner/space"
)

// DefaultParallelNeighbors is the candidate-count threshold above which a
// nearest-neighbor scan switches from serial to goroutine-parallel
// evaluation.
const DefaultParallelNeighbors = 1000

// DefaultNCPU sizes the parallel neighbor manager to a quarter of the
// available CPUs, with a floor of 1.
func DefaultNCPU() int {
	n := runtime.NumCPU() / 4
	if n < 1 {
		n = 1
	}
	return n
}

// neighborManager splits a brute-force nearest-neighbor scan across nCPU
// goroutines once the candidate count exceeds parallelNeighbors, using
// golang.org/x/sync/errgroup for fan-out instead of a hand-rolled
// WaitGroup/channel pair.
type neighborManager struct {
	nCPU              int
	parallelNeighbors int
}

func newNeighborManager(nCPU, parallelNeighbors int) *neighborManager {
	if nCPU < 1 {
		nCPU = 1
	}
	if parallelNeighbors < 1 {
		parallelNeighbors = DefaultParallelNeighbors
	}
	return &neighborManager{nCPU: nCPU, parallelNeighbors: parallelNeighbors}
}

// nearest returns the entry of items whose state minimizes ss.Distance to
// q, breaking ties toward the smaller id, and false if items is empty.
func (m *neighborManager) nearest(ctx context.Context, ss space.StateSpace, q space.State, items []entry) (entry, bool) {
	if len(items) == 0 {
		return entry{}, false
	}
	if len(items) <= m.parallelNeighbors || m.nCPU <= 1 {
		return bestOf(ss, q, items), true
	}

	chunkSize := (len(items) + m.nCPU - 1) / m.nCPU
	results := make([]entry, m.nCPU)
	found := make([]bool, m.nCPU)

	g, _ := errgroup.WithContext(ctx)
	for worker := 0; worker < m.nCPU; worker++ {
		worker := worker
		start := worker * chunkSize
		if start >= len(items) {
			continue
		}
		end := start + chunkSize
		if end > len(items) {
			end = len(items)
		}
		chunk := items[start:end]
		g.Go(func() error {
			if len(chunk) == 0 {
				return nil
			}
			results[worker] = bestOf(ss, q, chunk)
			found[worker] = true
			return nil
		})
	}
	_ = g.Wait()

	var best entry
	haveBest := false
	for i, ok := range found {
		if !ok {
			continue
		}
		if !haveBest {
			best = results[i]
			haveBest = true
			continue
		}
		d := ss.Distance(results[i].state, q)
		bd := ss.Distance(best.state, q)
		if d < bd || (d == bd && results[i].id < best.id) {
			best = results[i]
		}
	}
	return best, haveBest
}

func bestOf(ss space.StateSpace, q space.State, items []entry) entry {
	best := items[0]
	bestDist := ss.Distance(best.state, q)
	for _, it := range items[1:] {
		d := ss.Distance(it.state, q)
		if d < bestDist || (d == bestDist && it.id < best.id) {
			best = it
			bestDist = d
		}
	}
	return best
}

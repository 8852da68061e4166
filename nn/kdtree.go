package nn

import (
	"math"

	"gonum.org/v1/gonum/spatial/kdtree"

	"github.com/arborplan/planner/space"
)

// kdPoint adapts a RealVectorState + arena index to kdtree.Comparable.
type kdPoint struct {
	coords []float64
	id     int
}

func (p *kdPoint) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	return p.coords[d] - c.(*kdPoint).coords[int(d)]
}

func (p *kdPoint) Dims() int { return len(p.coords) }

func (p *kdPoint) Distance(c kdtree.Comparable) float64 {
	o := c.(*kdPoint)
	sum := 0.0
	for i := range p.coords {
		d := p.coords[i] - o.coords[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}

// emptyPoints is a zero-length kdtree.Interface used to bootstrap an empty
// tree that points are then Insert-ed into one at a time, matching the
// append-only, incrementally-grown node arena the planners build.
type emptyPoints struct{}

func (emptyPoints) Index(i int) kdtree.Comparable          { panic("empty") }
func (emptyPoints) Len() int                               { return 0 }
func (emptyPoints) Pivot(kdtree.Dim) int                    { return 0 }
func (emptyPoints) Slice(start, end int) kdtree.Interface { return emptyPoints{} }

// KDTreeIndex is a nearest-neighbor index over space.RealVectorStateSpace
// backed by gonum.org/v1/gonum/spatial/kdtree, used to keep RRT*'s
// near-neighbor queries near O(log n) instead of degrading to linear scan.
type KDTreeIndex struct {
	space *space.RealVectorStateSpace
	tree  *kdtree.Tree
	n     int
}

// NewKDTreeIndex constructs an empty kd-tree index over ss.
func NewKDTreeIndex(ss *space.RealVectorStateSpace) *KDTreeIndex {
	return &KDTreeIndex{space: ss, tree: kdtree.New(emptyPoints{}, false)}
}

func (k *KDTreeIndex) toPoint(s space.State, id int) *kdPoint {
	rv := s.(*space.RealVectorState)
	coords := make([]float64, len(rv.Values))
	copy(coords, rv.Values)
	return &kdPoint{coords: coords, id: id}
}

func (k *KDTreeIndex) Insert(s space.State, id int) {
	k.tree.Insert(k.toPoint(s, id), false)
	k.n++
}

func (k *KDTreeIndex) Len() int { return k.n }

func (k *KDTreeIndex) Nearest(q space.State) (int, bool) {
	if k.n == 0 {
		return 0, false
	}
	got, _ := k.tree.Nearest(k.toPoint(q, -1))
	if got == nil {
		return 0, false
	}
	return got.(*kdPoint).id, true
}

func (k *KDTreeIndex) WithinRadius(q space.State, radius float64) []int {
	if k.n == 0 {
		return nil
	}
	keeper := kdtree.NewDistKeeper(radius)
	k.tree.NearestSet(keeper, k.toPoint(q, -1))
	out := make([]int, 0, len(keeper.Heap))
	for _, cd := range keeper.Heap {
		out = append(out, cd.Comparable.(*kdPoint).id)
	}
	return out
}

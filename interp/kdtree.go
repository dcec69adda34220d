package interp

import "gonum.org/v1/gonum/spatial/kdtree"

// point is a sample location of arbitrary dimension carrying its index into
// the value slice.
type point struct {
	pos []float64
	idx int
}

// Compare implements kdtree.Comparable.
func (p point) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	return p.pos[d] - c.(point).pos[d]
}

// Dims implements kdtree.Comparable.
func (p point) Dims() int { return len(p.pos) }

// Distance implements kdtree.Comparable, returning squared Euclidean
// distance.
func (p point) Distance(c kdtree.Comparable) float64 {
	q := c.(point)
	var s float64
	for i, v := range p.pos {
		d := v - q.pos[i]
		s += d * d
	}

	return s
}

// points implements kdtree.Interface.
type points []point

func (p points) Index(i int) kdtree.Comparable { return p[i] }

func (p points) Len() int { return len(p) }

func (p points) Slice(start, end int) kdtree.Interface { return p[start:end] }

func (p points) Pivot(d kdtree.Dim) int {
	return kdtree.Partition(pointPlane{points: p, Dim: d}, kdtree.MedianOfRandoms(pointPlane{points: p, Dim: d}, 100))
}

// pointPlane implements sort.Interface and kdtree.SortSlicer along one axis.
type pointPlane struct {
	points
	kdtree.Dim
}

func (p pointPlane) Less(i, j int) bool {
	return p.points[i].pos[p.Dim] < p.points[j].pos[p.Dim]
}

func (p pointPlane) Slice(start, end int) kdtree.SortSlicer {
	return pointPlane{points: p.points[start:end], Dim: p.Dim}
}

func (p pointPlane) Swap(i, j int) {
	p.points[i], p.points[j] = p.points[j], p.points[i]
}

// nearest assigns each target the value of its closest sample point.
func nearest(pts [][]float64, values []float64, targets [][]float64) []float64 {
	nodes := make(points, len(pts))
	for i, p := range pts {
		nodes[i] = point{pos: p, idx: i}
	}
	tree := kdtree.New(nodes, false)

	out := make([]float64, len(targets))
	for i, q := range targets {
		got, _ := tree.Nearest(point{pos: q, idx: -1})
		out[i] = values[got.(point).idx]
	}

	return out
}

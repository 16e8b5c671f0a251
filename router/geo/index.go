package geo

import (
	"math"
	"sort"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

const (
	// R-tree branching factors
	treeMinChildren = 25
	treeMaxChildren = 50

	// minimum extent of an indexed rectangle, rtreego rejects zero lengths
	minRectLength = 1e-6
)

type indexedLine struct {
	id   string
	line orb.LineString
	rect rtreego.Rect
}

func (l *indexedLine) Bounds() rtreego.Rect {
	return l.rect
}

// LineIndex answers "which lines lie within r of a point" over projected
// line strings.
type LineIndex struct {
	tree *rtreego.Rtree
	size int
}

// Hit is one line found by a proximity query.
type Hit struct {
	ID       string
	Distance float64
}

func NewLineIndex() *LineIndex {
	return &LineIndex{tree: rtreego.NewTree(2, treeMinChildren, treeMaxChildren)}
}

func boundToRect(b orb.Bound, pad float64) rtreego.Rect {
	corner := rtreego.Point{b.Min[0] - pad, b.Min[1] - pad}
	lengths := []float64{
		math.Max(b.Max[0]-b.Min[0]+2*pad, minRectLength),
		math.Max(b.Max[1]-b.Min[1]+2*pad, minRectLength),
	}
	rect, err := rtreego.NewRect(corner, lengths)
	if err != nil {
		// lengths are positive by construction
		panic(err)
	}
	return rect
}

// Insert adds a projected line under id. Lines with no points are ignored.
func (ix *LineIndex) Insert(id string, line orb.LineString) bool {
	if len(line) == 0 {
		return false
	}
	ix.tree.Insert(&indexedLine{id: id, line: line, rect: boundToRect(line.Bound(), 0)})
	ix.size++
	return true
}

func (ix *LineIndex) Len() int {
	return ix.size
}

// Within returns every line whose planar distance to p is at most r, i.e.
// every line whose r-buffer contains p. Results are sorted by distance then id.
func (ix *LineIndex) Within(p orb.Point, r float64) []Hit {
	if ix.size == 0 || r < 0 {
		return nil
	}
	query := boundToRect(orb.Bound{Min: p, Max: p}, r)
	hits := make([]Hit, 0)
	for _, s := range ix.tree.SearchIntersect(query) {
		l := s.(*indexedLine)
		d := DistanceToLine(l.line, p)
		if d <= r {
			hits = append(hits, Hit{ID: l.id, Distance: d})
		}
	}
	sort.Slice(hits, func(i, j int) bool {
		if hits[i].Distance != hits[j].Distance {
			return hits[i].Distance < hits[j].Distance
		}
		return hits[i].ID < hits[j].ID
	})
	return hits
}

// DistanceToLine is the planar distance from p to the closest point of line.
func DistanceToLine(line orb.LineString, p orb.Point) float64 {
	if len(line) == 1 {
		return planar.Distance(line[0], p)
	}
	return planar.DistanceFrom(line, p)
}

type indexedPoint struct {
	id int
	p  orb.Point
}

func (ip *indexedPoint) Bounds() rtreego.Rect {
	return rtreego.Point{ip.p[0], ip.p[1]}.ToRect(minRectLength)
}

// PointIndex answers nearest-neighbor queries over projected points.
type PointIndex struct {
	tree *rtreego.Rtree
	size int
}

func NewPointIndex() *PointIndex {
	return &PointIndex{tree: rtreego.NewTree(2, treeMinChildren, treeMaxChildren)}
}

func (ix *PointIndex) Insert(id int, p orb.Point) {
	ix.tree.Insert(&indexedPoint{id: id, p: p})
	ix.size++
}

func (ix *PointIndex) Len() int {
	return ix.size
}

// Nearest returns the id of the point closest to p, false if the index is empty.
func (ix *PointIndex) Nearest(p orb.Point) (int, bool) {
	if ix.size == 0 {
		return 0, false
	}
	s := ix.tree.NearestNeighbor(rtreego.Point{p[0], p[1]})
	if s == nil {
		return 0, false
	}
	return s.(*indexedPoint).id, true
}

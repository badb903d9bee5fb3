package advanced

import (
	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
)

// Polygon is a capacity-bounded simple polygon boundary plus a set of interior
// points, and the mesh produced by triangulating them together.
type Polygon struct {
	Points   []Point
	Interior []Point
	Mesh     *Mesh

	capacity int
}

// NewPolygon makes an empty polygon that accepts up to capacity boundary
// vertices.
func NewPolygon(capacity int) *Polygon {
	return &Polygon{
		Points:   make([]Point, 0, capacity),
		capacity: capacity,
	}
}

// NewPolygonFrom wraps an existing boundary, with capacity equal to its length.
func NewPolygonFrom(points []Point) *Polygon {
	poly := NewPolygon(len(points))
	poly.Points = append(poly.Points, points...)
	return poly
}

func (poly *Polygon) Cap() int {
	return poly.capacity
}

// AddVertex appends a boundary vertex, failing with ErrPolygonFull once the
// capacity is reached.
func (poly *Polygon) AddVertex(p Point) error {
	if len(poly.Points) >= poly.capacity {
		return errors.Wrapf(ErrPolygonFull, "capacity %d reached", poly.capacity)
	}
	poly.Points = append(poly.Points, p)
	return nil
}

// AddInteriorPoint records a point strictly inside the boundary. It is
// integrated into the mesh by subdivision after the boundary is triangulated.
func (poly *Polygon) AddInteriorPoint(p Point) {
	poly.Interior = append(poly.Interior, p)
}

// SignedArea by the shoelace formula: positive for counterclockwise, negative
// for clockwise, zero when degenerate or fewer than three vertices.
func (poly *Polygon) SignedArea() float64 {
	n := len(poly.Points)
	if n < 3 {
		return 0
	}
	var area float64
	for i, p := range poly.Points {
		q := poly.Points[CircularIndex(i+1, n)]
		area += p.X*q.Y - q.X*p.Y
	}
	return area / 2
}

func (poly *Polygon) IsCCW() bool {
	return poly.SignedArea() > 0
}

// EnsureCCW reverses the boundary if it is clockwise, and reports whether it
// did. Calling it again is a no-op.
func (poly *Polygon) EnsureCCW() bool {
	if poly.SignedArea() < 0 {
		poly.Reverse()
		return true
	}
	return false
}

// Reverse the boundary in place.
func (poly *Polygon) Reverse() {
	for i, j := 0, len(poly.Points)-1; i < j; i, j = i+1, j-1 {
		poly.Points[i], poly.Points[j] = poly.Points[j], poly.Points[i]
	}
}

// BoundingBox of the boundary vertices.
func (poly *Polygon) BoundingBox() r2.Rect {
	rect := r2.EmptyRect()
	for _, p := range poly.Points {
		rect = rect.AddPoint(r2.Point{X: p.X, Y: p.Y})
	}
	return rect
}

// Even-odd point-in-polygon. Used to validate interior points and in tests.
func (poly *Polygon) ContainsPointByEvenOdd(p Point) bool {
	return poly.CrossingCount(p)%2 == 1
}

// CrossingCount counts boundary edges crossed by a ray from p toward +X.
func (poly *Polygon) CrossingCount(p Point) int {
	crossingCount := 0
	n := len(poly.Points)
	for i, vertex := range poly.Points {
		next := poly.Points[CircularIndex(i+1, n)]
		if (vertex.Y > p.Y) == (next.Y > p.Y) {
			continue
		}
		// X where the edge crosses the horizontal through p
		x := vertex.X + (p.Y-vertex.Y)*(next.X-vertex.X)/(next.Y-vertex.Y)
		if x > p.X {
			crossingCount++
		}
	}
	return crossingCount
}

// Hull is the convex hull of the boundary and interior points together.
func (poly *Polygon) Hull() []Point {
	all := make([]Point, 0, len(poly.Points)+len(poly.Interior))
	all = append(all, poly.Points...)
	all = append(all, poly.Interior...)
	return ConvexHull(all)
}

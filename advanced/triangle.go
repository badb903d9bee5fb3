package advanced

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// Triangle is a mesh cell. Its vertices are indices into the owning mesh's
// point arena and are always kept counterclockwise, so the directed edges
// V[0]→V[1], V[1]→V[2] and V[2]→V[0] run around the inside on the left.
type Triangle struct {
	V [3]int

	// Circumcircle, cached. Recomputed whenever V changes.
	Center Point
	Radius float64

	// Set by CheckDelaunay. Flippable is only meaningful when Delaunay is
	// false, and is decided by the mesh since it depends on neighbors.
	Delaunay  bool
	Flippable bool

	// Presentation state. The engine never reads these.
	Highlighted bool
	Color       string
}

// Build a triangle over pts[a], pts[b], pts[c], reordering to counterclockwise
// if needed.
func newTriangle(pts []Point, a, b, c int, eps float64) (*Triangle, error) {
	t := &Triangle{V: [3]int{a, b, c}, Delaunay: true}
	if Orientation(pts[a], pts[b], pts[c]) < 0 {
		t.V[1], t.V[2] = t.V[2], t.V[1]
	}
	if err := t.computeCircle(pts, eps); err != nil {
		return nil, err
	}
	return t, nil
}

// computeCircle finds the circumcenter by walking from the midpoint of AC
// along AC's orthonormal complement until equidistant from A and B.
func (t *Triangle) computeCircle(pts []Point, eps float64) error {
	a, b, c := t.Points(pts)
	ab := b.Sub(a)
	ac := c.Sub(a)
	mid := a.Add(ac.Scale(0.5))
	v, err := ac.OrthoNormed()
	if err != nil {
		return errors.Wrapf(err, "circumcircle of %s", t.describe(pts))
	}
	denom := 2 * v.Dot(ab)
	if math.Abs(denom) <= eps*ab.Length() {
		return errors.Wrapf(ErrNumericDegeneracy, "circumcircle of collinear triangle %s", t.describe(pts))
	}
	k := (ab.Dot(ab) - ac.Dot(ab)) / denom
	t.Center = mid.Add(v.Scale(k))
	t.Radius = t.Center.Sub(a).Length()
	return nil
}

// Points resolves the three vertex indices against pts.
func (t *Triangle) Points(pts []Point) (a, b, c Point) {
	return pts[t.V[0]], pts[t.V[1]], pts[t.V[2]]
}

// IsInside reports whether p is inside or on the boundary of the triangle:
// it must be on the left of all three directed edges.
func (t *Triangle) IsInside(pts []Point, p Point) bool {
	a, b, c := t.Points(pts)
	return IsOnTheLeft(p, a, b) &&
		IsOnTheLeft(p, b, c) &&
		IsOnTheLeft(p, c, a)
}

func (t *Triangle) HasVertex(i int) bool {
	return t.V[0] == i || t.V[1] == i || t.V[2] == i
}

// Edge returns the endpoints of directed edge e (0..2), which runs from V[e]
// to V[e+1].
func (t *Triangle) Edge(e int) (a, b int) {
	return t.V[e], t.V[(e+1)%3]
}

// EdgeIndex finds the directed edge a→b, or returns -1. Direction matters: a
// neighbor sharing the edge sees it as b→a.
func (t *Triangle) EdgeIndex(a, b int) int {
	for e := 0; e < 3; e++ {
		if t.V[e] == a && t.V[(e+1)%3] == b {
			return e
		}
	}
	return -1
}

func (t *Triangle) HasEdge(a, b int) bool {
	return t.EdgeIndex(a, b) >= 0
}

// OppositeVertex returns the vertex not on the edge {a, b}, in either
// direction, or -1 if the triangle does not contain that edge.
func (t *Triangle) OppositeVertex(a, b int) int {
	if !t.HasVertex(a) || !t.HasVertex(b) || a == b {
		return -1
	}
	for _, v := range t.V {
		if v != a && v != b {
			return v
		}
	}
	return -1
}

// CircleContains reports whether m lies strictly inside the circumcircle.
func (t *Triangle) CircleContains(pts []Point, m Point, eps float64) bool {
	a, b, c := t.Points(pts)
	return circleContains(a, b, c, m, eps)
}

// CheckDelaunay tests every point of the pool against the circumcircle and
// records the result. It resets Flippable, which the mesh recomputes.
func (t *Triangle) CheckDelaunay(pts []Point, eps float64) bool {
	ok := true
	for i, p := range pts {
		if t.HasVertex(i) {
			continue
		}
		if t.CircleContains(pts, p, eps) {
			ok = false
			break
		}
	}
	t.Delaunay = ok
	t.Flippable = false
	return ok
}

func (t *Triangle) Area(pts []Point) float64 {
	a, b, c := t.Points(pts)
	return Area(a, b, c)
}

// Replace the vertices in place and refresh the circle. Used by flips and
// splits, which only ever produce non-degenerate triangles, so failure here is
// an internal error.
func (t *Triangle) reassign(pts []Point, a, b, c int, eps float64) {
	t.V = [3]int{a, b, c}
	if Orientation(pts[a], pts[b], pts[c]) < 0 {
		t.V[1], t.V[2] = t.V[2], t.V[1]
	}
	must(t.computeCircle(pts, eps))
}

func (t *Triangle) String() string {
	return fmt.Sprintf("Triangle<%d, %d, %d>", t.V[0], t.V[1], t.V[2])
}

func (t *Triangle) describe(pts []Point) string {
	a, b, c := t.Points(pts)
	return fmt.Sprintf("%s %s %s", a, b, c)
}

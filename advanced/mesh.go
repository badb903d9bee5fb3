package advanced

import (
	"fmt"
	"math"

	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/osuushi/delaunay/dbg"
)

// Mesh is a triangulation over a shared point arena. Triangles refer to points
// by index, and an edge index maps every undirected edge to its incident
// triangles so adjacency queries never scan the whole mesh.
//
// A Mesh is not safe for concurrent use.
type Mesh struct {
	Points    []Point
	Triangles []*Triangle

	edges edgeIndex
	opts  Options
	log   *zap.Logger
}

// NewMesh creates an empty mesh over a copy of points.
func NewMesh(points []Point, opts ...Option) *Mesh {
	o := NewOptions(opts...)
	pts := make([]Point, len(points))
	copy(pts, points)
	return &Mesh{
		Points: pts,
		edges:  make(edgeIndex),
		opts:   o,
		log:    o.Logger,
	}
}

func (m *Mesh) Options() Options {
	return m.opts
}

// AddTriangle appends the triangle over points a, b and c, in any winding, and
// returns its slot.
func (m *Mesh) AddTriangle(a, b, c int) (int, error) {
	for _, i := range []int{a, b, c} {
		if i < 0 || i >= len(m.Points) {
			return -1, errors.Errorf("vertex index %d out of range [0, %d)", i, len(m.Points))
		}
	}
	t, err := newTriangle(m.Points, a, b, c, m.opts.Epsilon)
	if err != nil {
		return -1, err
	}
	m.Triangles = append(m.Triangles, t)
	ti := len(m.Triangles) - 1
	m.indexTriangle(ti)
	return ti, nil
}

func (m *Mesh) indexTriangle(ti int) {
	t := m.Triangles[ti]
	for e := 0; e < 3; e++ {
		a, b := t.Edge(e)
		m.edges.add(MakeEdgeKey(a, b), ti)
	}
}

func (m *Mesh) unindexTriangle(ti int) {
	t := m.Triangles[ti]
	for e := 0; e < 3; e++ {
		a, b := t.Edge(e)
		m.edges.remove(MakeEdgeKey(a, b), ti)
	}
}

// Neighbor returns the triangle across edge e (0..2) of triangle ti together
// with that triangle's vertex opposite the shared edge.
func (m *Mesh) Neighbor(ti, e int) (uj, opposite int, ok bool) {
	a, b := m.Triangles[ti].Edge(e)
	uj = m.edges.other(MakeEdgeKey(a, b), ti)
	if uj < 0 {
		return -1, -1, false
	}
	return uj, m.Triangles[uj].OppositeVertex(a, b), true
}

// Neighbors lists the triangles sharing an edge with ti, in edge order.
func (m *Mesh) Neighbors(ti int) []int {
	var result []int
	for e := 0; e < 3; e++ {
		if uj, _, ok := m.Neighbor(ti, e); ok {
			result = append(result, uj)
		}
	}
	return result
}

// Adjacency describes how two triangles meet. A→B is the shared edge as
// directed in the first triangle; the second triangle sees it as B→A.
type Adjacency struct {
	A, B      int
	OppositeT int
	OppositeU int
}

// Adjacent reports whether ti and uj share an edge, and if so which.
func (m *Mesh) Adjacent(ti, uj int) (Adjacency, bool) {
	if ti == uj {
		return Adjacency{}, false
	}
	for e := 0; e < 3; e++ {
		if other, opposite, ok := m.Neighbor(ti, e); ok && other == uj {
			a, b := m.Triangles[ti].Edge(e)
			return Adjacency{
				A:         a,
				B:         b,
				OppositeT: m.Triangles[ti].OppositeVertex(a, b),
				OppositeU: opposite,
			}, true
		}
	}
	return Adjacency{}, false
}

// FindOppositePoints lists, for each neighbor of ti, the neighbor's vertex
// across the shared edge.
func (m *Mesh) FindOppositePoints(ti int) []int {
	var result []int
	for e := 0; e < 3; e++ {
		if _, opposite, ok := m.Neighbor(ti, e); ok {
			result = append(result, opposite)
		}
	}
	return result
}

// PointInTriangle returns the first triangle containing p, boundary included,
// or -1.
func (m *Mesh) PointInTriangle(p Point) int {
	for ti, t := range m.Triangles {
		if t.IsInside(m.Points, p) {
			return ti
		}
	}
	return -1
}

// Edges lists every undirected edge in the mesh, sorted.
func (m *Mesh) Edges() []EdgeKey {
	keys := maps.Keys(m.edges)
	slices.SortFunc(keys, func(a, b EdgeKey) bool {
		if a.A != b.A {
			return a.A < b.A
		}
		return a.B < b.B
	})
	return keys
}

// IncidentTriangles returns the triangles on edge k: one on the boundary, two
// inside.
func (m *Mesh) IncidentTriangles(k EdgeKey) []int {
	return append([]int(nil), m.edges[k]...)
}

// Bounds covers every point in the arena.
func (m *Mesh) Bounds() r2.Rect {
	rect := r2.EmptyRect()
	for _, p := range m.Points {
		rect = rect.AddPoint(r2.Point{X: p.X, Y: p.Y})
	}
	return rect
}

// Area is the total area covered by the triangles.
func (m *Mesh) Area() float64 {
	var total float64
	for _, t := range m.Triangles {
		total += t.Area(m.Points)
	}
	return total
}

// Validate checks the structural invariants: every triangle counterclockwise
// and non-degenerate, the edge index in sync with the triangles, and no edge
// shared by more than two triangles.
func (m *Mesh) Validate() error {
	for ti, t := range m.Triangles {
		a, b, c := t.Points(m.Points)
		if Orientation(a, b, c) <= 0 {
			return errors.Errorf("triangle %d %s is not counterclockwise", ti, t)
		}
		for e := 0; e < 3; e++ {
			u, v := t.Edge(e)
			found := false
			for _, slot := range m.edges[MakeEdgeKey(u, v)] {
				if slot == ti {
					found = true
				}
			}
			if !found {
				return errors.Errorf("edge %d-%d of triangle %d missing from index", u, v, ti)
			}
		}
	}
	for k, slots := range m.edges {
		if len(slots) > 2 {
			return errors.Errorf("edge %d-%d shared by %d triangles", k.A, k.B, len(slots))
		}
		if len(slots) == 2 {
			t, u := m.Triangles[slots[0]], m.Triangles[slots[1]]
			if t.HasEdge(k.A, k.B) == u.HasEdge(k.A, k.B) {
				return errors.Errorf("triangles %d and %d traverse edge %d-%d in the same direction", slots[0], slots[1], k.A, k.B)
			}
		}
	}
	return nil
}

func (m *Mesh) String() string {
	return fmt.Sprintf("Mesh{%d points, %d triangles}", len(m.Points), len(m.Triangles))
}

// Debug logging names triangles with dbg.Name, which is costly, so the fields
// are only built when debug output is actually enabled.
func (m *Mesh) debug(msg string, fields func() []zap.Field) {
	if ce := m.log.Check(zap.DebugLevel, msg); ce != nil {
		ce.Write(fields()...)
	}
}

func (m *Mesh) triangleField(key string, ti int) zap.Field {
	t := m.Triangles[ti]
	state := dbg.Illegal
	if t.Delaunay {
		state = dbg.Delaunay
	} else if t.Flippable {
		state = dbg.Flippable
	}
	return zap.String(key, dbg.ColorName(dbg.Name(t), state)+" "+t.String())
}

// relative scale of the point set, used to turn Epsilon into an absolute
// distance for on-edge tests.
func (m *Mesh) scale() float64 {
	b := m.Bounds()
	if b.IsEmpty() {
		return 1
	}
	s := math.Max(b.X.Length(), b.Y.Length())
	if s == 0 {
		return 1
	}
	return s
}

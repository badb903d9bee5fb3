package advanced

import (
	"math"

	"go.uber.org/zap"
)

// insertSite places arena point pi into the triangulation by subdividing the
// triangle containing it: 1→3 for a point strictly inside, or splitting the
// edge (and the neighbor across it) when the point lies on an edge. A point
// that duplicates an existing vertex is skipped and false is returned. Panics
// with ErrOutsideMesh if no triangle contains the point and none has a
// boundary edge within tolerance of it.
func (m *Mesh) insertSite(pi int) bool {
	p := m.Points[pi]
	// Sites within Epsilon of the hull may round to either side of it.
	tol := 2 * m.opts.Epsilon * m.scale()
	ti := m.PointInTriangle(p)
	if ti < 0 {
		ti = m.boundaryTriangleNear(p, tol)
	}
	if ti < 0 {
		fatalf(ErrOutsideMesh, "point %d %s", pi, p)
	}
	t := m.Triangles[ti]
	for _, v := range t.V {
		if m.Points[v].Near(p, m.opts.DuplicateTolerance) {
			m.log.Warn("skipping duplicate site", zap.Int("site", pi), zap.Int("existing", v), zap.Stringer("at", p))
			return false
		}
	}

	for e := 0; e < 3; e++ {
		a, b := t.Edge(e)
		pa, pb := m.Points[a], m.Points[b]
		// Distance from p to the line a→b.
		if math.Abs(Orientation(pa, pb, p))/pb.Sub(pa).Length() <= tol {
			m.splitEdge(ti, e, pi)
			return true
		}
	}
	m.splitTriangle(ti, pi)
	return true
}

// boundaryTriangleNear returns the triangle owning a boundary edge whose
// segment passes within tol of p, or -1.
func (m *Mesh) boundaryTriangleNear(p Point, tol float64) int {
	for ti, t := range m.Triangles {
		for e := 0; e < 3; e++ {
			if _, _, ok := m.Neighbor(ti, e); ok {
				continue
			}
			a, b := t.Edge(e)
			pa, pb := m.Points[a], m.Points[b]
			ab := pb.Sub(pa)
			l := ab.Length()
			if l == 0 {
				continue
			}
			along := ab.Dot(p.Sub(pa)) / l
			if along < -tol || along > l+tol {
				continue
			}
			if math.Abs(ab.Cross(p.Sub(pa)))/l <= tol {
				return ti
			}
		}
	}
	return -1
}

// (a, b, c) becomes (a, b, p), (b, c, p) and (c, a, p). The first reuses the
// original slot.
func (m *Mesh) splitTriangle(ti, pi int) {
	a, b, c := m.Triangles[ti].V[0], m.Triangles[ti].V[1], m.Triangles[ti].V[2]
	m.unindexTriangle(ti)
	m.Triangles[ti].reassign(m.Points, a, b, pi, m.opts.Epsilon)
	m.indexTriangle(ti)
	m.appendTriangle(b, c, pi)
	m.appendTriangle(c, a, pi)
}

// Split edge e of ti at p. For ti = (a, b, c) with p on a→b this gives
// (a, p, c) and (p, b, c); the neighbor (b, a, d), if any, becomes (b, p, d)
// and (p, a, d).
func (m *Mesh) splitEdge(ti, e, pi int) {
	a, b := m.Triangles[ti].Edge(e)
	c := m.Triangles[ti].OppositeVertex(a, b)
	uj, d, hasNeighbor := m.Neighbor(ti, e)

	m.unindexTriangle(ti)
	m.Triangles[ti].reassign(m.Points, a, pi, c, m.opts.Epsilon)
	m.indexTriangle(ti)
	m.appendTriangle(pi, b, c)

	if hasNeighbor {
		m.unindexTriangle(uj)
		m.Triangles[uj].reassign(m.Points, b, pi, d, m.opts.Epsilon)
		m.indexTriangle(uj)
		m.appendTriangle(pi, a, d)
	}
}

func (m *Mesh) appendTriangle(a, b, c int) {
	t, err := newTriangle(m.Points, a, b, c, m.opts.Epsilon)
	must(err)
	m.Triangles = append(m.Triangles, t)
	m.indexTriangle(len(m.Triangles) - 1)
}

package advanced

import (
	"context"
	"math"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// CheckDelaunay runs the empty-circumcircle test for every triangle against
// the whole point pool and classifies the failures. A failing triangle is
// flippable when some neighbor's opposite vertex lies inside its circle and
// the two form a strictly convex quadrilateral, i.e. when a flip could fix it
// locally. Returns true iff every triangle is Delaunay.
func (m *Mesh) CheckDelaunay() bool {
	all := true
	for ti, t := range m.Triangles {
		if m.checkTriangle(t) {
			continue
		}
		all = false
		t.Flippable = m.flipCandidate(ti) >= 0
	}
	return all
}

// Same as Triangle.CheckDelaunay but skips the determinant for points that
// are clearly outside the circle.
func (m *Mesh) checkTriangle(t *Triangle) bool {
	reach := t.Radius * t.Radius * (1 + 1e-6)
	ok := true
	for i, p := range m.Points {
		if t.HasVertex(i) {
			continue
		}
		d := p.Sub(t.Center)
		if d.Dot(d) > reach {
			continue
		}
		if t.CircleContains(m.Points, p, m.opts.Epsilon) {
			ok = false
			break
		}
	}
	t.Delaunay = ok
	t.Flippable = false
	return ok
}

// The first neighbor of ti whose opposite vertex violates ti's circumcircle
// across a flippable edge, or -1.
func (m *Mesh) flipCandidate(ti int) int {
	t := m.Triangles[ti]
	for e := 0; e < 3; e++ {
		uj, opposite, ok := m.Neighbor(ti, e)
		if !ok || !t.CircleContains(m.Points, m.Points[opposite], m.opts.Epsilon) {
			continue
		}
		if adj, ok := m.Adjacent(ti, uj); ok && m.convexQuad(adj) {
			return uj
		}
	}
	return -1
}

// The quadrilateral around a shared edge can only be flipped when it is
// strictly convex, which holds iff the edge's endpoints lie on strictly
// opposite sides of the other diagonal.
func (m *Mesh) convexQuad(adj Adjacency) bool {
	pa, pb := m.Points[adj.A], m.Points[adj.B]
	pc, pd := m.Points[adj.OppositeT], m.Points[adj.OppositeU]
	cd := pd.Sub(pc)
	length := cd.Length()
	if length == 0 {
		return false
	}
	// Signed distances of a and b from the line c→d.
	da := cd.Cross(pa.Sub(pc)) / length
	db := cd.Cross(pb.Sub(pc)) / length
	tol := m.opts.Epsilon * length
	return da*db < 0 && math.Abs(da) > tol && math.Abs(db) > tol
}

// Flip replaces the shared diagonal of ti and uj with the other diagonal of
// their quadrilateral. With ti = (a, b, c) and uj = (b, a, d), the result is
// ti = (c, a, d) and uj = (d, b, c). Returns false without touching the mesh
// when the triangles are not adjacent or the quadrilateral is not strictly
// convex.
func (m *Mesh) Flip(ti, uj int) (flipped bool, err error) {
	defer func() {
		if recoveredErr := HandleTriangulatePanicRecover(recover()); recoveredErr != nil {
			flipped = false
			err = recoveredErr
		}
	}()
	return m.flip(ti, uj), nil
}

func (m *Mesh) flip(ti, uj int) bool {
	adj, ok := m.Adjacent(ti, uj)
	if !ok || !m.convexQuad(adj) {
		return false
	}
	a, b, c, d := adj.A, adj.B, adj.OppositeT, adj.OppositeU
	m.unindexTriangle(ti)
	m.unindexTriangle(uj)
	m.Triangles[ti].reassign(m.Points, c, a, d, m.opts.Epsilon)
	m.Triangles[uj].reassign(m.Points, d, b, c, m.opts.Epsilon)
	m.indexTriangle(ti)
	m.indexTriangle(uj)
	m.debug("flipped", func() []zap.Field {
		return []zap.Field{
			m.triangleField("t", ti),
			m.triangleField("u", uj),
			zap.Int("removed_a", a),
			zap.Int("removed_b", b),
		}
	})
	return true
}

// FlipTriangle flips ti with the first neighbor whose opposite vertex lies
// inside ti's circumcircle. If no such neighbor exists, ti's circle is simply
// recomputed and false is returned.
func (m *Mesh) FlipTriangle(ti int) (flipped bool, err error) {
	defer func() {
		if recoveredErr := HandleTriangulatePanicRecover(recover()); recoveredErr != nil {
			flipped = false
			err = recoveredErr
		}
	}()
	if ti < 0 || ti >= len(m.Triangles) {
		return false, errors.Errorf("triangle %d out of range [0, %d)", ti, len(m.Triangles))
	}
	return m.flipTriangle(ti), nil
}

func (m *Mesh) flipTriangle(ti int) bool {
	if uj := m.flipCandidate(ti); uj >= 0 && m.flip(ti, uj) {
		return true
	}
	must(m.Triangles[ti].computeCircle(m.Points, m.opts.Epsilon))
	return false
}

// Legalize flips edges until the mesh is Delaunay. Each pass flips every
// triangle that fails the local empty-circle test against a neighbor; once a
// pass flips nothing, the global check decides the result.
//
// A false result with a nil error means the remaining violations cannot be
// fixed by flips, which happens when a point lies across a boundary edge of a
// non-convex mesh. Running out of passes returns ErrLegalizationTimeout with
// the mesh left in its best-effort state, and a done ctx stops between passes.
func (m *Mesh) Legalize(ctx context.Context) (ok bool, err error) {
	defer func() {
		if recoveredErr := HandleTriangulatePanicRecover(recover()); recoveredErr != nil {
			ok = false
			err = recoveredErr
		}
	}()

	for pass := 0; pass < m.opts.MaxIterations; pass++ {
		if err := ctx.Err(); err != nil {
			return false, errors.Wrapf(err, "legalization stopped after %d passes", pass)
		}

		flips := 0
		for ti := range m.Triangles {
			if m.flipCandidate(ti) < 0 {
				continue
			}
			if m.flipTriangle(ti) {
				flips++
			}
		}
		m.log.Debug("legalization pass", zap.Int("pass", pass), zap.Int("flips", flips))

		if flips == 0 {
			all := m.CheckDelaunay()
			if !all {
				m.log.Warn("mesh left with non-Delaunay triangles no flip can repair",
					zap.Int("passes", pass+1))
			}
			return all, nil
		}
	}

	m.CheckDelaunay()
	m.log.Warn("legalization gave up", zap.Int("max_iterations", m.opts.MaxIterations))
	return false, errors.Wrapf(ErrLegalizationTimeout, "still flipping after %d passes", m.opts.MaxIterations)
}

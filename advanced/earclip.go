package advanced

import (
	"math"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Triangulate builds the polygon's mesh by ear clipping and then subdivides
// around each interior point. The boundary is made counterclockwise first, so
// mesh vertex i is poly.Points[i] after the call, followed by the interior
// points in order.
//
// Ears are taken in scan order, first found first clipped. This is simple and
// deterministic but makes no attempt at triangle quality; Legalize fixes that
// where the boundary allows. A polygon with no ear left before the last three
// vertices, or with zero area, fails with ErrDegeneratePolygon and no mesh.
func (poly *Polygon) Triangulate(opts ...Option) (mesh *Mesh, err error) {
	defer func() {
		if recoveredErr := HandleTriangulatePanicRecover(recover()); recoveredErr != nil {
			mesh = nil
			err = recoveredErr
		}
	}()

	n := len(poly.Points)
	if n < 3 {
		return nil, errors.Wrapf(ErrInsufficientPoints, "polygon has %d vertices", n)
	}
	poly.EnsureCCW()

	arena := make([]Point, 0, n+len(poly.Interior))
	arena = append(arena, poly.Points...)
	arena = append(arena, poly.Interior...)
	mesh = NewMesh(arena, opts...)
	// Area guards scale with the square of the polygon's extent. Containment
	// keeps the absolute AreaTolerance for polygons of unit size and up, and
	// shrinks with the polygon below that.
	scale := mesh.scale()
	areaEps := mesh.opts.Epsilon * scale * scale
	tol := mesh.opts.AreaTolerance * math.Min(1, scale*scale)

	if math.Abs(poly.SignedArea()) <= areaEps {
		return nil, errors.Wrapf(ErrDegeneratePolygon, "polygon of %d vertices encloses no area", n)
	}

	ring := make([]int, n)
	for i := range ring {
		ring[i] = i
	}
	for len(ring) > 3 {
		ear := findEar(mesh.Points, ring, areaEps, tol)
		if ear < 0 {
			return nil, errors.Wrapf(ErrDegeneratePolygon,
				"no ear among %d remaining vertices; polygon may be self-intersecting", len(ring))
		}
		prev := ring[CircularIndex(ear-1, len(ring))]
		next := ring[CircularIndex(ear+1, len(ring))]
		if _, err := mesh.AddTriangle(prev, ring[ear], next); err != nil {
			return nil, err
		}
		ring = append(ring[:ear], ring[ear+1:]...)
	}

	a, b, c := mesh.Points[ring[0]], mesh.Points[ring[1]], mesh.Points[ring[2]]
	if Orientation(a, b, c) <= areaEps {
		return nil, errors.Wrapf(ErrDegeneratePolygon, "final triangle %s %s %s has no area", a, b, c)
	}
	if _, err := mesh.AddTriangle(ring[0], ring[1], ring[2]); err != nil {
		return nil, err
	}

	for i := range poly.Interior {
		pi := n + i
		if !poly.ContainsPointByEvenOdd(mesh.Points[pi]) {
			return nil, errors.Wrapf(ErrOutsideMesh, "interior point %s is outside the polygon", mesh.Points[pi])
		}
		mesh.insertSite(pi)
	}

	mesh.log.Info("ear clipping done",
		zap.Int("vertices", n),
		zap.Int("interior", len(poly.Interior)),
		zap.Int("triangles", len(mesh.Triangles)))
	poly.Mesh = mesh
	return mesh, nil
}

// findEar returns the position in ring of the first ear, or -1. Scanning
// walks the ring as consecutive triples A, B, C starting from ring[0] as A, so
// the first candidate ear is ring[1]. B is an ear when A→B→C turns strictly
// left by more than convexEps and no other remaining vertex lies in ABC.
func findEar(pts []Point, ring []int, convexEps, tol float64) int {
	n := len(ring)
	for i := range ring {
		prev := i
		ear := CircularIndex(i+1, n)
		next := CircularIndex(i+2, n)
		a, b, c := pts[ring[prev]], pts[ring[ear]], pts[ring[next]]
		if b.Sub(a).Cross(c.Sub(b)) <= convexEps {
			continue
		}
		empty := true
		for j := range ring {
			if j == prev || j == ear || j == next {
				continue
			}
			if pointInTriangleByArea(pts[ring[j]], a, b, c, tol) {
				empty = false
				break
			}
		}
		if empty {
			return ear
		}
	}
	return -1
}

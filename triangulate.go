// A Delaunay mesh package for Go.
//
// This package triangulates a point set or a simple polygon, legalizes the
// result into a Delaunay triangulation by edge flipping, and derives the
// Voronoi diagram as its dual. Lower level access to the mesh, including
// single flips and adjacency queries, lives in the advanced package.
package delaunay

import (
	"context"

	"github.com/pkg/errors"

	"github.com/osuushi/delaunay/advanced"
)

type Point = advanced.Point
type Triangle = advanced.Triangle
type Mesh = advanced.Mesh
type Polygon = advanced.Polygon
type Diagram = advanced.Diagram
type VoronoiEdge = advanced.VoronoiEdge
type Method = advanced.Method
type Option = advanced.Option

const (
	Fan     = advanced.Fan
	EarClip = advanced.EarClip
	NoSite  = advanced.NoSite
)

var (
	WithMaxIterations      = advanced.WithMaxIterations
	WithEpsilon            = advanced.WithEpsilon
	WithAreaTolerance      = advanced.WithAreaTolerance
	WithDuplicateTolerance = advanced.WithDuplicateTolerance
	WithLogger             = advanced.WithLogger
)

// Take a set of points and build the initial triangulation.
//
// With Fan the points may be any cloud with at least three non-collinear
// points. With EarClip they are the ordered boundary of a simple polygon, in
// either winding. The result is not yet Delaunay; pass it to Legalize.
func Triangulate(points []Point, method Method, opts ...Option) (*Mesh, error) {
	return advanced.TriangulatePoints(points, method, opts...)
}

// Legalize flips edges until mesh is Delaunay, modifying it in place. See
// advanced.Mesh.Legalize for the meaning of a false result.
func Legalize(ctx context.Context, mesh *Mesh) (bool, error) {
	return mesh.Legalize(ctx)
}

// ConvexHull returns the hull of points in counterclockwise order.
func ConvexHull(points []Point) []Point {
	return advanced.ConvexHull(points)
}

// BuildVoronoi derives the Voronoi edges of mesh. Pass NoSite for the whole
// diagram, or a point index for just that site's cell.
func BuildVoronoi(mesh *Mesh, site int) (result *Diagram, err error) {
	defer func() {
		recoveredErr := advanced.HandleTriangulatePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	if site != NoSite && (site < 0 || site >= len(mesh.Points)) {
		return nil, errors.Errorf("site %d out of range [0, %d)", site, len(mesh.Points))
	}
	return advanced.BuildVoronoi(mesh, site), nil
}

// PointInTriangle returns the index of the triangle under p, or -1.
func PointInTriangle(mesh *Mesh, p Point) int {
	return mesh.PointInTriangle(p)
}

// FlipAt hit-tests p and flips the triangle under it with its first illegal
// neighbor. The hit triangle becomes the only highlighted one. A point outside
// the mesh is reported as advanced.ErrOutsideMesh.
func FlipAt(mesh *Mesh, p Point) (bool, error) {
	ti := mesh.PointInTriangle(p)
	if ti < 0 {
		return false, errors.Wrapf(advanced.ErrOutsideMesh, "no triangle under %s", p)
	}
	for _, t := range mesh.Triangles {
		t.Highlighted = false
	}
	mesh.Triangles[ti].Highlighted = true
	return mesh.FlipTriangle(ti)
}

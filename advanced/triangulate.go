package advanced

import (
	"fmt"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Method selects how an initial triangulation is built from a point set.
type Method int

const (
	// Fan triangulates the convex hull as a fan from its first vertex, then
	// subdivides around every remaining point. Works for any point cloud.
	Fan Method = iota
	// EarClip treats the points as the ordered boundary of a simple polygon.
	EarClip
)

func (m Method) String() string {
	switch m {
	case Fan:
		return "fan"
	case EarClip:
		return "earclip"
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// ParseMethod is the inverse of Method.String.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "fan":
		return Fan, nil
	case "earclip", "ear-clip", "ear":
		return EarClip, nil
	}
	return Fan, errors.Errorf("unknown triangulation method %q", s)
}

// TriangulatePoints builds the initial, not yet legalized, triangulation of
// points. The mesh arena keeps the points in input order, so mesh vertex i is
// points[i] for the Fan method. EarClip may reverse a clockwise boundary; see
// Polygon.Triangulate.
func TriangulatePoints(points []Point, method Method, opts ...Option) (mesh *Mesh, err error) {
	defer func() {
		if recoveredErr := HandleTriangulatePanicRecover(recover()); recoveredErr != nil {
			mesh = nil
			err = recoveredErr
		}
	}()

	if len(points) < 3 {
		return nil, errors.Wrapf(ErrInsufficientPoints, "need at least 3 points, got %d", len(points))
	}

	switch method {
	case EarClip:
		poly := NewPolygon(len(points))
		for _, p := range points {
			if err := poly.AddVertex(p); err != nil {
				return nil, err
			}
		}
		return poly.Triangulate(opts...)
	case Fan:
		return triangulateFan(points, opts...)
	}
	return nil, errors.Errorf("unsupported triangulation method %v", method)
}

func triangulateFan(points []Point, opts ...Option) (*Mesh, error) {
	mesh := NewMesh(points, opts...)
	hull := convexHullIndices(mesh.Points, mesh.opts.Epsilon)
	if len(hull) < 3 {
		return nil, errors.Wrapf(ErrDegeneratePolygon, "all %d points are collinear or coincident", len(points))
	}

	onHull := make(map[int]struct{}, len(hull))
	for _, i := range hull {
		onHull[i] = struct{}{}
	}
	for i := 1; i < len(hull)-1; i++ {
		if _, err := mesh.AddTriangle(hull[0], hull[i], hull[i+1]); err != nil {
			return nil, err
		}
	}

	skipped := 0
	for i := range mesh.Points {
		if _, ok := onHull[i]; ok {
			continue
		}
		if !mesh.insertSite(i) {
			skipped++
		}
	}
	mesh.log.Info("fan triangulation built",
		zap.Int("points", len(points)),
		zap.Int("hull", len(hull)),
		zap.Int("triangles", len(mesh.Triangles)),
		zap.Int("skipped", skipped))
	return mesh, nil
}

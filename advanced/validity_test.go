package advanced

// This contains no actual tests. It is just a helper for testing triangulation
// validity.

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// Helper to check that a polygon triangulation is valid. The rules are:
// 1. The set of points in the triangles must equal the set of points in the polygon.
// 2. The set of line segments in the polygon is a subset of the set of mesh edges.
// 3. Every triangle is counterclockwise and has nonzero area.
// 4. The sum of the areas of all triangles is equal to the area of the polygon.
// 5. The mesh's own structural checks pass.
func AssertValidTriangulation(t *testing.T, polygon *Polygon, mesh *Mesh) {
	require.True(t, polygon.IsCCW(), "polygon is not counterclockwise")
	require.NoError(t, mesh.Validate())

	used := make(map[int]struct{})
	var triangleArea float64
	for _, tri := range mesh.Triangles {
		a, b, c := tri.Points(mesh.Points)
		require.Greater(t, Orientation(a, b, c), 0.0, "clockwise or flat triangle: %s", tri.describe(mesh.Points))
		triangleArea += tri.Area(mesh.Points)
		for _, v := range tri.V {
			used[v] = struct{}{}
		}
	}
	require.Len(t, used, len(polygon.Points)+len(polygon.Interior), "every polygon and interior point must be a mesh vertex")

	edges := make(map[EdgeKey]struct{})
	for _, k := range mesh.Edges() {
		edges[k] = struct{}{}
	}
	n := len(polygon.Points)
	for i := range polygon.Points {
		k := MakeEdgeKey(i, (i+1)%n)
		_, ok := edges[k]
		require.True(t, ok, "segment %v-%v of the polygon is not a mesh edge", polygon.Points[k.A], polygon.Points[k.B])
	}

	require.InDelta(t, math.Abs(polygon.SignedArea()), triangleArea, 1e-6, "triangle areas must sum to the polygon area")
}

// Helper to check the empty-circumcircle property by brute force, using
// distances rather than the determinant so it is independent of the
// predicate under test.
func AssertDelaunay(t *testing.T, mesh *Mesh) {
	for ti, tri := range mesh.Triangles {
		for i, p := range mesh.Points {
			if tri.HasVertex(i) {
				continue
			}
			d := p.Sub(tri.Center).Length()
			require.GreaterOrEqual(t, d, tri.Radius*(1-1e-9),
				"point %d %s is inside the circumcircle of triangle %d %s", i, p, ti, tri)
		}
	}
}

func randomPoints(seed int64, n int, size float64) []Point {
	rng := rand.New(rand.NewSource(seed))
	points := make([]Point, n)
	for i := range points {
		points[i] = Point{rng.Float64() * size, rng.Float64() * size}
	}
	return points
}

// Some ad hoc polygons

func SimpleStar() *Polygon {
	const outerRadius = 5
	const innerRadius = 2
	const numPoints = 5
	poly := NewPolygon(numPoints * 2)
	for i := 0; i < numPoints*2; i++ {
		radius := float64(outerRadius)
		if i%2 == 1 {
			radius = innerRadius
		}
		angle := float64(i) * math.Pi / numPoints
		if err := poly.AddVertex(Point{radius * math.Cos(angle), radius * math.Sin(angle)}); err != nil {
			panic(err)
		}
	}
	return poly
}

func Square(size float64) *Polygon {
	return NewPolygonFrom([]Point{{0, 0}, {size, 0}, {size, size}, {0, size}})
}

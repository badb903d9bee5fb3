package advanced

import (
	"sort"
	"testing"

	"github.com/golang/geo/r2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Unit square split along 0-2, plus a center point that the fan method puts
// on that diagonal.
func squareWithCenter(t *testing.T) *Mesh {
	mesh, err := TriangulatePoints([]Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0.5, 0.5}}, Fan)
	require.NoError(t, err)
	require.Len(t, mesh.Triangles, 4)
	return mesh
}

func sortedVertices(tri *Triangle) [3]int {
	v := tri.V
	sort.Ints(v[:])
	return v
}

func TestMeshAddTriangle(t *testing.T) {
	mesh := NewMesh([]Point{{0, 0}, {1, 0}, {0, 1}, {2, 0}})

	ti, err := mesh.AddTriangle(0, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, ti)
	assert.Equal(t, [3]int{0, 1, 2}, mesh.Triangles[0].V)

	_, err = mesh.AddTriangle(0, 1, 7)
	assert.Error(t, err)

	_, err = mesh.AddTriangle(0, 1, 3)
	assert.Error(t, err, "collinear")
	assert.Len(t, mesh.Triangles, 1)
	assert.NoError(t, mesh.Validate())
}

func TestMeshCopiesPoints(t *testing.T) {
	points := []Point{{0, 0}, {1, 0}, {0, 1}}
	mesh := NewMesh(points)
	points[0] = Point{5, 5}
	assert.Equal(t, Point{0, 0}, mesh.Points[0])
}

func TestMeshAdjacency(t *testing.T) {
	mesh := NewMesh([]Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}})
	_, err := mesh.AddTriangle(0, 1, 2)
	require.NoError(t, err)
	_, err = mesh.AddTriangle(0, 2, 3)
	require.NoError(t, err)

	adj, ok := mesh.Adjacent(0, 1)
	require.True(t, ok)
	assert.Equal(t, Adjacency{A: 2, B: 0, OppositeT: 1, OppositeU: 3}, adj)

	_, ok = mesh.Adjacent(0, 0)
	assert.False(t, ok)

	assert.Equal(t, []int{1}, mesh.Neighbors(0))
	assert.Equal(t, []int{3}, mesh.FindOppositePoints(0))
	assert.Equal(t, []int{1}, mesh.FindOppositePoints(1))

	uj, opposite, ok := mesh.Neighbor(0, 2)
	assert.True(t, ok)
	assert.Equal(t, 1, uj)
	assert.Equal(t, 3, opposite)

	_, _, ok = mesh.Neighbor(0, 0)
	assert.False(t, ok, "0-1 is on the boundary")

	assert.Equal(t, []EdgeKey{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {2, 3}}, mesh.Edges())
	assert.ElementsMatch(t, []int{0, 1}, mesh.IncidentTriangles(MakeEdgeKey(2, 0)))
	assert.Equal(t, []int{0}, mesh.IncidentTriangles(EdgeKey{0, 1}))
}

func TestMeshPointInTriangle(t *testing.T) {
	mesh := squareWithCenter(t)
	for _, p := range []Point{{0.9, 0.5}, {0.5, 0.1}, {0.1, 0.5}, {0.5, 0.9}} {
		ti := mesh.PointInTriangle(p)
		require.GreaterOrEqual(t, ti, 0, "no triangle for %s", p)
		assert.True(t, mesh.Triangles[ti].IsInside(mesh.Points, p))
	}
	assert.Equal(t, -1, mesh.PointInTriangle(Point{2, 2}))
}

func TestMeshBoundsAndArea(t *testing.T) {
	mesh := squareWithCenter(t)
	assert.Equal(t, r2.RectFromPoints(r2.Point{X: 0, Y: 0}, r2.Point{X: 1, Y: 1}), mesh.Bounds())
	assert.InDelta(t, 1, mesh.Area(), Epsilon)
	assert.Equal(t, 1.0, mesh.scale())
	assert.NoError(t, mesh.Validate())
}

func TestMeshFlip(t *testing.T) {
	mesh := NewMesh([]Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}})
	_, err := mesh.AddTriangle(0, 1, 2)
	require.NoError(t, err)
	_, err = mesh.AddTriangle(0, 2, 3)
	require.NoError(t, err)

	flipped, err := mesh.Flip(0, 1)
	require.NoError(t, err)
	require.True(t, flipped)
	assert.Equal(t, [3]int{1, 2, 3}, sortedVertices(mesh.Triangles[0]))
	assert.Equal(t, [3]int{0, 1, 3}, sortedVertices(mesh.Triangles[1]))
	assert.NoError(t, mesh.Validate())
	assert.Equal(t, []EdgeKey{{0, 1}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}, mesh.Edges())

	// Flipping back restores the original diagonal, though the slots trade
	// places.
	flipped, err = mesh.Flip(0, 1)
	require.NoError(t, err)
	require.True(t, flipped)
	assert.ElementsMatch(t,
		[][3]int{{0, 1, 2}, {0, 2, 3}},
		[][3]int{sortedVertices(mesh.Triangles[0]), sortedVertices(mesh.Triangles[1])})
	assert.Equal(t, []EdgeKey{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {2, 3}}, mesh.Edges())
	assert.NoError(t, mesh.Validate())
}

func TestMeshFlipRejectsNonConvexQuad(t *testing.T) {
	// A dart: vertex 1 is reflex, so diagonal 0-2 would leave the quad.
	mesh := NewMesh([]Point{{0, 0}, {2, 1}, {4, 0}, {2, 3}})
	_, err := mesh.AddTriangle(0, 1, 3)
	require.NoError(t, err)
	_, err = mesh.AddTriangle(1, 2, 3)
	require.NoError(t, err)

	t0, t1 := mesh.Triangles[0].V, mesh.Triangles[1].V
	flipped, err := mesh.Flip(0, 1)
	require.NoError(t, err)
	assert.False(t, flipped)
	assert.Equal(t, t0, mesh.Triangles[0].V)
	assert.Equal(t, t1, mesh.Triangles[1].V)
}

func TestMeshFlipRejectsNonAdjacent(t *testing.T) {
	mesh := NewMesh([]Point{{0, 0}, {1, 0}, {0, 1}, {5, 5}, {6, 5}, {5, 6}})
	_, err := mesh.AddTriangle(0, 1, 2)
	require.NoError(t, err)
	_, err = mesh.AddTriangle(3, 4, 5)
	require.NoError(t, err)

	flipped, err := mesh.Flip(0, 1)
	assert.NoError(t, err)
	assert.False(t, flipped)
}

func TestFlipTriangle(t *testing.T) {
	// The long thin split of this kite is illegal: 3 is inside the circle of
	// (0, 1, 2).
	mesh := NewMesh([]Point{{0, 0}, {4, -1}, {8, 0}, {4, 1}})
	_, err := mesh.AddTriangle(0, 1, 2)
	require.NoError(t, err)
	_, err = mesh.AddTriangle(0, 2, 3)
	require.NoError(t, err)
	assert.False(t, mesh.CheckDelaunay())
	assert.True(t, mesh.Triangles[0].Flippable)

	flipped, err := mesh.FlipTriangle(0)
	require.NoError(t, err)
	assert.True(t, flipped)
	assert.True(t, mesh.CheckDelaunay())

	// Nothing left to flip
	flipped, err = mesh.FlipTriangle(0)
	require.NoError(t, err)
	assert.False(t, flipped)

	_, err = mesh.FlipTriangle(9)
	assert.Error(t, err)
}

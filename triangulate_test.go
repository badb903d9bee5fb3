package delaunay

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osuushi/delaunay/advanced"
)

// Smoke test. The internals are already tested.
func TestTriangulate(t *testing.T) {
	points := []Point{
		{X: 1, Y: -1},
		{X: 1, Y: 1},
		{X: -1, Y: 1},
		{X: -1, Y: -1},
		{X: 0.2, Y: 0.1},
	}

	mesh, err := Triangulate(points, Fan)
	require.NoError(t, err)
	assert.Len(t, mesh.Triangles, 4)

	ok, err := Legalize(context.Background(), mesh)
	require.NoError(t, err)
	assert.True(t, ok)

	assert.Len(t, ConvexHull(points), 4)

	d, err := BuildVoronoi(mesh, NoSite)
	require.NoError(t, err)
	assert.Len(t, d.Edges, 4)

	_, err = BuildVoronoi(mesh, 17)
	assert.Error(t, err)
}

func TestTriangulatePolygon(t *testing.T) {
	mesh, err := Triangulate([]Point{{X: 1, Y: -1}, {X: 1, Y: 1}, {X: -1, Y: 1}, {X: -1, Y: -1}}, EarClip)
	require.NoError(t, err)
	assert.Len(t, mesh.Triangles, 2)

	_, err = Triangulate([]Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}, EarClip)
	assert.True(t, errors.Is(err, advanced.ErrDegeneratePolygon))
}

func TestFlipAt(t *testing.T) {
	mesh, err := Triangulate([]Point{{X: 0, Y: 0}, {X: 4, Y: -1}, {X: 8, Y: 0}, {X: 4, Y: 1}}, EarClip)
	require.NoError(t, err)
	require.False(t, mesh.CheckDelaunay())

	ti := PointInTriangle(mesh, Point{X: 4, Y: -0.5})
	require.GreaterOrEqual(t, ti, 0)

	flipped, err := FlipAt(mesh, Point{X: 4, Y: -0.5})
	require.NoError(t, err)
	assert.True(t, flipped)
	assert.True(t, mesh.Triangles[ti].Highlighted)
	assert.True(t, mesh.CheckDelaunay())

	_, err = FlipAt(mesh, Point{X: 20, Y: 20})
	assert.True(t, errors.Is(err, advanced.ErrOutsideMesh))
	assert.Equal(t, -1, PointInTriangle(mesh, Point{X: 20, Y: 20}))
}

package advanced

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVoronoiSingleTriangle(t *testing.T) {
	mesh, err := TriangulatePoints([]Point{{0, 0}, {4, 0}, {0, 3}}, Fan)
	require.NoError(t, err)
	d := BuildVoronoi(mesh, NoSite)
	assert.Empty(t, d.Edges)
	assert.Empty(t, d.Cells)
}

func TestVoronoiSquareWithCenter(t *testing.T) {
	mesh := squareWithCenter(t)

	d := BuildVoronoi(mesh, NoSite)
	require.Len(t, d.Edges, 4)
	for _, e := range d.Edges {
		assert.Contains(t, e.Sites, 4, "only the spokes are interior")
	}
	assert.Len(t, d.Cell(4), 4)
	assert.Len(t, d.Cell(0), 1)
	assert.Empty(t, d.Cell(7))

	scoped := BuildVoronoi(mesh, 4)
	assert.Equal(t, d.Edges, scoped.Edges)

	corner := BuildVoronoi(mesh, 0)
	require.Len(t, corner.Edges, 1)
	assert.Equal(t, [2]int{0, 4}, corner.Edges[0].Sites)
}

func TestVoronoiEdgesBisectSites(t *testing.T) {
	points := randomPoints(21, 80, 50)
	mesh, err := TriangulatePoints(points, Fan)
	require.NoError(t, err)
	ok, err := mesh.Legalize(context.Background())
	require.NoError(t, err)
	require.True(t, ok)

	d := BuildVoronoi(mesh, NoSite)
	hull := ConvexHullIndices(points)
	assert.Len(t, d.Edges, (3*len(mesh.Triangles)-len(hull))/2)

	for _, e := range d.Edges {
		p, q := mesh.Points[e.Sites[0]], mesh.Points[e.Sites[1]]
		for _, end := range []Point{e.A, e.B} {
			assert.InDelta(t, end.Sub(p).Length(), end.Sub(q).Length(), 1e-6)
		}
		assert.Less(t, e.Triangles[0], e.Triangles[1])
	}

	// Each edge is listed in the cells of both sites it separates
	total := 0
	for _, cell := range d.Cells {
		total += len(cell)
	}
	assert.Equal(t, 2*len(d.Edges), total)
}

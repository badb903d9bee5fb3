package advanced

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvexHull(t *testing.T) {
	testCases := []struct {
		name   string
		points []Point
		want   []Point
	}{
		{
			name: "empty",
		},
		{
			name:   "single point",
			points: []Point{{3, 4}},
			want:   []Point{{3, 4}},
		},
		{
			name:   "coincident points",
			points: []Point{{1, 1}, {1, 1}, {1, 1}},
			want:   []Point{{1, 1}},
		},
		{
			name:   "two points",
			points: []Point{{5, 0}, {0, 0}},
			want:   []Point{{0, 0}, {5, 0}},
		},
		{
			name:   "collinear points",
			points: []Point{{0, 0}, {2, 2}, {1, 1}, {3, 3}},
			want:   []Point{{0, 0}, {3, 3}},
		},
		{
			name:   "triangle is its own hull",
			points: []Point{{0, 3}, {4, 0}, {0, 0}},
			want:   []Point{{0, 0}, {4, 0}, {0, 3}},
		},
		{
			name:   "square drops interior and edge points",
			points: []Point{{2, 2}, {0, 4}, {2, 0}, {4, 4}, {0, 0}, {4, 0}, {1, 3}},
			want:   []Point{{0, 0}, {4, 0}, {4, 4}, {0, 4}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := ConvexHull(tc.points)
			if diff := cmp.Diff(tc.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("ConvexHull() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestConvexHullProperties(t *testing.T) {
	points := randomPoints(11, 500, 1000)
	hull := ConvexHull(points)
	require.GreaterOrEqual(t, len(hull), 3)

	n := len(hull)
	for i := range hull {
		a, b, c := hull[i], hull[(i+1)%n], hull[(i+2)%n]
		assert.Greater(t, Orientation(a, b, c), 0.0, "hull must turn strictly left at %s", b)
	}
	for _, p := range points {
		for i := range hull {
			assert.True(t, IsOnTheLeft(p, hull[i], hull[(i+1)%n]), "%s escapes the hull", p)
		}
	}

	// Starts from the lexicographically smallest point
	for _, p := range points {
		assert.False(t, p.Less(hull[0]))
	}
}

func TestConvexHullIndices(t *testing.T) {
	points := []Point{{1, 1}, {0, 0}, {2, 0}, {1, 2}}
	assert.Equal(t, []int{1, 2, 3}, ConvexHullIndices(points))
}

func TestConvexHullDropsNearlyCollinearPoints(t *testing.T) {
	a, b, c := Point{0.1, 0.1}, Point{0.9, 0.37}, Point{0.2, 0.9}
	for _, f := range []float64{0.1, 0.3, 0.7, 0.9} {
		p := a.Add(b.Sub(a).Scale(f))
		assert.Equal(t, []int{0, 1, 2}, ConvexHullIndices([]Point{a, b, c, p}), "fraction %v", f)
	}
}

func TestIndexStack(t *testing.T) {
	var s IndexStack
	assert.True(t, s.Empty())
	assert.Equal(t, -1, s.Pop())
	assert.Equal(t, -1, s.Peek())

	s.Push(4)
	s.Push(7)
	assert.Equal(t, 7, s.Peek())
	assert.Equal(t, 7, s.Pop())
	assert.Equal(t, 4, s.Pop())
	assert.True(t, s.Empty())
}

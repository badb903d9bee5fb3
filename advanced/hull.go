package advanced

import "golang.org/x/exp/slices"

// ConvexHull returns the hull of points in counterclockwise order, starting
// from the lexicographically smallest point, using Andrew's monotone chain.
// Collinear boundary points are dropped. Fewer than three distinct points give
// a degenerate hull of one or two points.
func ConvexHull(points []Point) []Point {
	indices := ConvexHullIndices(points)
	hull := make([]Point, len(indices))
	for i, idx := range indices {
		hull[i] = points[idx]
	}
	return hull
}

// ConvexHullIndices is ConvexHull reporting indices into points instead.
func ConvexHullIndices(points []Point) []int {
	return convexHullIndices(points, DefaultEpsilon)
}

// convexHullIndices drops any point whose turn is within eps of straight,
// relative to the squared length of the two edges meeting at it.
func convexHullIndices(points []Point, eps float64) []int {
	n := len(points)
	if n == 0 {
		return nil
	}
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) bool {
		return points[a].Less(points[b])
	})
	if n == 1 {
		return order
	}

	var hull IndexStack
	// Pop while the last two hull points and p do not make a clear left turn.
	turnsLeft := func(p int) bool {
		l := len(hull)
		a, b := points[hull[l-2]], points[hull[l-1]]
		ab, bp := b.Sub(a), points[p].Sub(b)
		s := ab.Length() + bp.Length()
		return ab.Cross(bp) > eps*s*s
	}

	// Lower hull
	for _, p := range order {
		for len(hull) >= 2 && !turnsLeft(p) {
			hull.Pop()
		}
		hull.Push(p)
	}
	// Upper hull
	lower := len(hull) + 1
	for i := n - 2; i >= 0; i-- {
		p := order[i]
		for len(hull) >= lower && !turnsLeft(p) {
			hull.Pop()
		}
		hull.Push(p)
	}
	// The last point repeats the first.
	hull.Pop()

	// All points coincident.
	if len(hull) == 2 && points[hull[0]].Equal(points[hull[1]]) {
		hull.Pop()
	}
	return hull
}

// IndexStack is a LIFO of point indices.
type IndexStack []int

func (s *IndexStack) Push(i int) {
	*s = append(*s, i)
}

func (s *IndexStack) Pop() int {
	if len(*s) == 0 {
		return -1
	}
	i := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return i
}

func (s *IndexStack) Peek() int {
	if len(*s) == 0 {
		return -1
	}
	return (*s)[len(*s)-1]
}

func (s *IndexStack) Empty() bool {
	return len(*s) == 0
}

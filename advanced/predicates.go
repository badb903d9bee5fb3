package advanced

import "math"

// IsOnTheLeft reports whether p lies on or to the left of the directed line
// p1→p2.
func IsOnTheLeft(p, p1, p2 Point) bool {
	return p2.Sub(p1).Cross(p.Sub(p1)) >= 0
}

// Orientation is twice the signed area of abc: positive for a counterclockwise
// turn, negative for clockwise, zero when collinear.
func Orientation(a, b, c Point) float64 {
	return b.Sub(a).Cross(c.Sub(a))
}

// Area of triangle abc, always non-negative.
func Area(a, b, c Point) float64 {
	return math.Abs(Orientation(a, b, c)) / 2
}

// InCircleDeterminant evaluates the in-circle predicate for m against the
// circle through a, b and c. Each row is
//
//	[Vx-Mx, Vy-My, (Vx²-Mx²)+(Vy²-My²)]
//
// For counterclockwise abc the result is positive iff m lies strictly inside
// the circle, zero when m is on it, and negative outside.
func InCircleDeterminant(a, b, c, m Point) float64 {
	mat := inCircleMatrix(a, b, c, m)
	return mat.Determinant()
}

func inCircleMatrix(a, b, c, m Point) Matrix33 {
	var mat Matrix33
	for i, v := range [3]Point{a, b, c} {
		mat.M[i][0] = v.X - m.X
		mat.M[i][1] = v.Y - m.Y
		mat.M[i][2] = v.X*v.X - m.X*m.X + v.Y*v.Y - m.Y*m.Y
	}
	return mat
}

// InCircleLifted is the same predicate in its lifted-paraboloid form, with
// rows [x, y, x²+y², 1]. It agrees with InCircleDeterminant up to rounding.
func InCircleLifted(a, b, c, m Point) float64 {
	var mat Matrix44
	for i, v := range [4]Point{a, b, c, m} {
		mat.M[i] = [4]float64{v.X, v.Y, v.X*v.X + v.Y*v.Y, 1}
	}
	return mat.Determinant()
}

// Sum-of-sub-areas containment test used by ear clipping. Points on an edge
// count as inside, which is what keeps ears from swallowing boundary vertices.
func pointInTriangleByArea(p, a, b, c Point, tolerance float64) bool {
	areaABC := math.Abs(b.Sub(a).Cross(c.Sub(a)))
	areaPAB := math.Abs(p.Sub(a).Cross(b.Sub(a)))
	areaPBC := math.Abs(p.Sub(b).Cross(c.Sub(b)))
	areaPCA := math.Abs(p.Sub(c).Cross(a.Sub(c)))
	return math.Abs(areaABC-(areaPAB+areaPBC+areaPCA)) < tolerance
}

// Often we want to treat a slice as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives
// positive values.
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

// circleContains reports whether m lies strictly inside the circumcircle of
// counterclockwise abc. Determinants within eps of their own magnitude count as
// on the circle, so cocircular points never trigger a flip in either direction.
func circleContains(a, b, c, m Point, eps float64) bool {
	mat := inCircleMatrix(a, b, c, m)
	return mat.Determinant() > eps*mat.magnitude()
}

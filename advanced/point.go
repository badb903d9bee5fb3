package advanced

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// Point is both a location in the plane and a 2D vector. It is a plain value;
// triangles never hold points directly, only indices into a mesh's point arena.
type Point struct {
	X float64
	Y float64
}

func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

func (p Point) Neg() Point {
	return Point{-p.X, -p.Y}
}

func (p Point) Scale(k float64) Point {
	return Point{k * p.X, k * p.Y}
}

// Dot product.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// 2D cross product, i.e. the determinant of the 2x2 matrix [p q]. Positive
// when q is counterclockwise from p.
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Normalize scales the vector to unit length in place. A zero vector is left
// untouched and reported as ErrNumericDegeneracy.
func (p *Point) Normalize() error {
	l := p.Length()
	if l == 0 {
		return errors.Wrap(ErrNumericDegeneracy, "cannot normalize zero vector")
	}
	p.X /= l
	p.Y /= l
	return nil
}

// OrthoNormed returns the unit vector rotated +90° from p.
func (p Point) OrthoNormed() (Point, error) {
	l := p.Length()
	if l == 0 {
		return Point{}, errors.Wrap(ErrNumericDegeneracy, "zero vector has no orthogonal direction")
	}
	return Point{-p.Y / l, p.X / l}, nil
}

// Equal is exact component-wise comparison. Use Near for anything derived
// from arithmetic.
func (p Point) Equal(q Point) bool {
	return p.X == q.X && p.Y == q.Y
}

// Near reports whether q is within tol of p in both coordinates.
func (p Point) Near(q Point, tol float64) bool {
	return math.Abs(p.X-q.X) <= tol && math.Abs(p.Y-q.Y) <= tol
}

// Lexicographic order on (X, Y), used by the hull sort.
func (p Point) Less(q Point) bool {
	return p.X < q.X || (p.X == q.X && p.Y < q.Y)
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

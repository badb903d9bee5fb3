package advanced

import "github.com/pkg/errors"

// Failure kinds reported by the engine. Returned errors wrap one of these, so
// callers should match with errors.Is rather than comparing directly.
var (
	// No ear could be clipped, or the polygon encloses zero area.
	ErrDegeneratePolygon = errors.New("degenerate polygon")
	// Fewer than three usable points were supplied.
	ErrInsufficientPoints = errors.New("insufficient points")
	// Legalization ran out of passes while flips were still happening.
	ErrLegalizationTimeout = errors.New("legalization timeout")
	// A zero or near-zero denominator, from collinear or duplicate points.
	ErrNumericDegeneracy = errors.New("numeric degeneracy")
	// The polygon's vertex capacity is exhausted.
	ErrPolygonFull = errors.New("polygon full")
	// A point to be inserted lies outside every triangle.
	ErrOutsideMesh = errors.New("point outside mesh")
)

package render

import (
	"math"

	"github.com/fogleman/gg"
	"github.com/golang/geo/r2"

	"github.com/osuushi/delaunay/advanced"
)

// Drawing area used when there is nothing to fit.
var defaultWorld = r2.RectFromPoints(r2.Point{X: 0, Y: 0}, r2.Point{X: 200, Y: 200})

// Viewport maps world coordinates onto an image of Width x Height pixels. The
// world box's minimum corner lands at (Margin, Margin) and one uniform scale
// fits the whole box inside the margins. The Y axis is not flipped; scene
// files use screen-style coordinates.
type Viewport struct {
	World  r2.Rect
	Width  int
	Height int
	Margin float64
	Scale  float64

	forward gg.Matrix
	inverse gg.Matrix
}

func NewViewport(world r2.Rect, width, height int, margin float64) *Viewport {
	if world.IsEmpty() {
		world = defaultWorld
	}
	availW := float64(width) - 2*margin
	availH := float64(height) - 2*margin
	dataW := world.X.Length()
	dataH := world.Y.Length()

	scale := math.Inf(1)
	if dataW > 0 {
		scale = availW / dataW
	}
	if dataH > 0 {
		scale = math.Min(scale, availH/dataH)
	}
	// A single point, or all points coincident
	if math.IsInf(scale, 1) {
		scale = 1
	}

	origin := world.Lo()
	return &Viewport{
		World:  world,
		Width:  width,
		Height: height,
		Margin: margin,
		Scale:  scale,
		forward: gg.Identity().
			Translate(margin, margin).
			Scale(scale, scale).
			Translate(-origin.X, -origin.Y),
		inverse: gg.Identity().
			Translate(origin.X, origin.Y).
			Scale(1/scale, 1/scale).
			Translate(-margin, -margin),
	}
}

// Fit builds a viewport around every point of mesh.
func Fit(mesh *advanced.Mesh, width, height int, margin float64) *Viewport {
	return NewViewport(mesh.Bounds(), width, height, margin)
}

// Matrix is the world-to-screen transform, for use with gg.Context.
func (v *Viewport) Matrix() gg.Matrix {
	return v.forward
}

func (v *Viewport) ToScreen(p advanced.Point) (x, y float64) {
	return v.forward.TransformPoint(p.X, p.Y)
}

// ToWorld maps a pixel position, such as a click, back to world coordinates.
func (v *Viewport) ToWorld(x, y float64) advanced.Point {
	wx, wy := v.inverse.TransformPoint(x, y)
	return advanced.Point{X: wx, Y: wy}
}

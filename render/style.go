package render

import (
	"fmt"
	"image/color"
	"math"

	"golang.org/x/image/colornames"

	"github.com/osuushi/delaunay/advanced"
)

// Style selects what is drawn and how big.
type Style struct {
	Width   int
	Height  int
	Margin  float64
	Circles bool
	Voronoi bool
	Labels  bool
}

func DefaultStyle() Style {
	return Style{
		Width:   800,
		Height:  800,
		Margin:  20,
		Circles: true,
		Voronoi: true,
		Labels:  true,
	}
}

// Frame is everything one image shows. Only Mesh is required.
type Frame struct {
	Mesh    *advanced.Mesh
	Diagram *advanced.Diagram
	// Per vertex, either may be shorter than Mesh.Points or nil.
	Labels     []string
	SiteColors []string
}

func (f *Frame) label(i int) string {
	if i < len(f.Labels) {
		return f.Labels[i]
	}
	return ""
}

func (f *Frame) siteColor(i int) color.Color {
	if i < len(f.SiteColors) {
		if c, ok := colornames.Map[f.SiteColors[i]]; ok {
			return c
		}
	}
	return colornames.Blue
}

var (
	delaunayColor  = colornames.Cyan
	flippableColor = colornames.Gray
	illegalColor   = colornames.Yellow
	edgeColor      = colornames.Black
	voronoiColor   = colornames.Blue
	circleColor    = colornames.Dimgray
)

// TriangleColor is the fill for t: an explicit Color name if it has one,
// otherwise cyan when Delaunay, gray when a flip would fix it, and yellow
// when no flip can. Highlighted triangles are darkened.
func TriangleColor(t *advanced.Triangle) color.RGBA {
	c := illegalColor
	switch {
	case t.Color != "":
		if named, ok := colornames.Map[t.Color]; ok {
			c = named
		}
	case t.Delaunay:
		c = delaunayColor
	case t.Flippable:
		c = flippableColor
	}
	if t.Highlighted {
		c = darken(c, 0.75)
	}
	return c
}

// darken scales the HSL lightness of c by k.
func darken(c color.RGBA, k float64) color.RGBA {
	r, g, b := float64(c.R)/255, float64(c.G)/255, float64(c.B)/255
	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	l := (max + min) / 2

	var h, s float64
	if max != min {
		d := max - min
		if l > 0.5 {
			s = d / (2 - max - min)
		} else {
			s = d / (max + min)
		}
		switch max {
		case r:
			h = (g - b) / d
			if g < b {
				h += 6
			}
		case g:
			h = (b-r)/d + 2
		default:
			h = (r-g)/d + 4
		}
		h /= 6
	}

	l *= k
	if s == 0 {
		v := uint8(math.Round(l * 255))
		return color.RGBA{v, v, v, c.A}
	}
	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q
	return color.RGBA{
		R: uint8(math.Round(hueToRGB(p, q, h+1.0/3) * 255)),
		G: uint8(math.Round(hueToRGB(p, q, h) * 255)),
		B: uint8(math.Round(hueToRGB(p, q, h-1.0/3) * 255)),
		A: c.A,
	}
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	}
	return p
}

// CSS form of c, for SVG styles and chart options.
func cssColor(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("rgb(%d,%d,%d)", r>>8, g>>8, b>>8)
}

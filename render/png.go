package render

import (
	"io"

	"github.com/fogleman/gg"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	"github.com/osuushi/delaunay/advanced"
)

const (
	edgeWidth    = 2
	circleWidth  = 3
	voronoiWidth = 2
	siteRadius   = 5
	// Labels sit up and to the right of their site
	labelOffset = 10
)

// Draw renders f onto a new gg context. Triangles are filled by status and
// stroked black, then circumcircles, Voronoi edges and sites go on top.
func Draw(f *Frame, style Style) (*gg.Context, *Viewport) {
	vp := Fit(f.Mesh, style.Width, style.Height, style.Margin)
	c := gg.NewContext(style.Width, style.Height)
	c.SetColor(colornames.White)
	c.Clear()

	pts := f.Mesh.Points
	for _, t := range f.Mesh.Triangles {
		a, b, cc := t.Points(pts)
		tracePolygon(c, vp, a, b, cc)
		c.SetColor(TriangleColor(t))
		c.FillPreserve()
		c.SetColor(edgeColor)
		c.SetLineWidth(edgeWidth)
		c.Stroke()
	}

	if style.Circles {
		c.SetDash(8, 6)
		c.SetLineWidth(circleWidth)
		c.SetColor(circleColor)
		for _, t := range f.Mesh.Triangles {
			x, y := vp.ToScreen(t.Center)
			c.DrawCircle(x, y, t.Radius*vp.Scale)
			c.Stroke()
		}
		c.SetDash()
	}

	if style.Voronoi && f.Diagram != nil {
		c.SetLineWidth(voronoiWidth)
		c.SetColor(voronoiColor)
		for _, e := range f.Diagram.Edges {
			x1, y1 := vp.ToScreen(e.A)
			x2, y2 := vp.ToScreen(e.B)
			c.DrawLine(x1, y1, x2, y2)
			c.Stroke()
		}
	}

	c.SetFontFace(basicfont.Face7x13)
	for i, p := range pts {
		x, y := vp.ToScreen(p)
		c.DrawCircle(x, y, siteRadius)
		c.SetColor(f.siteColor(i))
		c.Fill()
		if label := f.label(i); style.Labels && label != "" {
			c.SetColor(colornames.Black)
			c.DrawStringAnchored(label, x+labelOffset, y-labelOffset, 0, 0)
		}
	}
	return c, vp
}

func tracePolygon(c *gg.Context, vp *Viewport, points ...advanced.Point) {
	for i, p := range points {
		x, y := vp.ToScreen(p)
		if i == 0 {
			c.MoveTo(x, y)
		} else {
			c.LineTo(x, y)
		}
	}
	c.ClosePath()
}

// PNG draws f and writes it to w.
func PNG(w io.Writer, f *Frame, style Style) error {
	c, _ := Draw(f, style)
	return c.EncodePNG(w)
}

func SavePNG(path string, f *Frame, style Style) error {
	c, _ := Draw(f, style)
	return c.SavePNG(path)
}

package render

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
	"golang.org/x/image/colornames"
)

// SVG writes f as a vector image. Coordinates are rounded to whole pixels.
func SVG(w io.Writer, f *Frame, style Style) error {
	vp := Fit(f.Mesh, style.Width, style.Height, style.Margin)
	canvas := svg.New(w)
	canvas.Start(style.Width, style.Height)
	canvas.Title("delaunay mesh")
	canvas.Rect(0, 0, style.Width, style.Height, "fill:"+cssColor(colornames.White))

	pts := f.Mesh.Points
	canvas.Gstyle(fmt.Sprintf("stroke:%s;stroke-width:%d", cssColor(edgeColor), edgeWidth))
	for _, t := range f.Mesh.Triangles {
		xs := make([]int, 3)
		ys := make([]int, 3)
		for k, vi := range t.V {
			xs[k], ys[k] = pixel(vp, pts[vi].X, pts[vi].Y)
		}
		canvas.Polygon(xs, ys, "fill:"+cssColor(TriangleColor(t)))
	}
	canvas.Gend()

	if style.Circles {
		canvas.Gstyle(fmt.Sprintf("fill:none;stroke:%s;stroke-width:%d;stroke-dasharray:8,6", cssColor(circleColor), circleWidth))
		for _, t := range f.Mesh.Triangles {
			x, y := pixel(vp, t.Center.X, t.Center.Y)
			canvas.Circle(x, y, int(math.Round(t.Radius*vp.Scale)))
		}
		canvas.Gend()
	}

	if style.Voronoi && f.Diagram != nil {
		canvas.Gstyle(fmt.Sprintf("stroke:%s;stroke-width:%d", cssColor(voronoiColor), voronoiWidth))
		for _, e := range f.Diagram.Edges {
			x1, y1 := pixel(vp, e.A.X, e.A.Y)
			x2, y2 := pixel(vp, e.B.X, e.B.Y)
			canvas.Line(x1, y1, x2, y2)
		}
		canvas.Gend()
	}

	for i, p := range pts {
		x, y := pixel(vp, p.X, p.Y)
		canvas.Circle(x, y, siteRadius, "fill:"+cssColor(f.siteColor(i)))
		if label := f.label(i); style.Labels && label != "" {
			canvas.Text(x+labelOffset, y-labelOffset, label, "font-family:monospace;font-size:13px;fill:black")
		}
	}
	canvas.End()
	return nil
}

func pixel(vp *Viewport, x, y float64) (int, int) {
	sx, sy := vp.forward.TransformPoint(x, y)
	return int(math.Round(sx)), int(math.Round(sy))
}

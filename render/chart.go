package render

import (
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"golang.org/x/image/colornames"
)

// Chart builds an interactive echarts page for f: sites as a scatter series,
// with every Delaunay edge and, if enabled, every Voronoi edge overlapped as
// its own two-point line.
func Chart(f *Frame, style Style, title string) *charts.Scatter {
	scatter := charts.NewScatter()
	prepareScatter(scatter, style, title)

	pts := f.Mesh.Points
	sites := make([]opts.ScatterData, 0, len(pts))
	for i, p := range pts {
		sites = append(sites, opts.ScatterData{
			Name:  f.label(i),
			Value: []float64{p.X, p.Y},
		})
	}
	scatter.AddSeries("Sites", sites).
		SetSeriesOptions(
			charts.WithItemStyleOpts(opts.ItemStyle{
				Color: cssColor(voronoiColor),
			}),
		)

	for _, k := range f.Mesh.Edges() {
		a, b := pts[k.A], pts[k.B]
		scatter.Overlap(segment("Delaunay", a.X, a.Y, b.X, b.Y, cssColor(edgeColor)))
	}
	if style.Voronoi && f.Diagram != nil {
		for _, e := range f.Diagram.Edges {
			scatter.Overlap(segment("Voronoi", e.A.X, e.A.Y, e.B.X, e.B.Y, cssColor(colornames.Orange)))
		}
	}
	return scatter
}

// RenderChart writes the chart from Chart to w as a standalone HTML page.
func RenderChart(w io.Writer, f *Frame, style Style, title string) error {
	return Chart(f, style, title).Render(w)
}

func prepareScatter(scatter *charts.Scatter, style Style, title string) {
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:  pixels(style.Width),
			Height: pixels(style.Height),
		}),
		charts.WithTitleOpts(opts.Title{
			Title: title,
			Left:  "10%",
		}),
		charts.WithLegendOpts(opts.Legend{
			Right: "10%",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type: "value",
			Name: "x",
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(false),
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type: "value",
			Name: "y",
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(false),
			},
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			FilterMode: "none",
			Orient:     "horizontal",
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			FilterMode: "none",
			Orient:     "vertical",
		}),
	)
}

func segment(series string, x1, y1, x2, y2 float64, color string) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithXAxisOpts(opts.XAxis{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Show: opts.Bool(true)}),
	)
	line.AddSeries(series, []opts.LineData{
		{Value: []float64{x1, y1}},
		{Value: []float64{x2, y2}},
	}).SetSeriesOptions(
		charts.WithLineStyleOpts(opts.LineStyle{
			Width: 2,
			Color: color,
		}),
	)
	return line
}

func pixels(n int) string {
	return strconv.Itoa(n) + "px"
}

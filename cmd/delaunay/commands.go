package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/osuushi/delaunay"
	"github.com/osuushi/delaunay/advanced"
	"github.com/osuushi/delaunay/dbg"
	"github.com/osuushi/delaunay/internal/pipeline"
	"github.com/osuushi/delaunay/render"
	"github.com/osuushi/delaunay/scene"
)

func (e *env) build(ctx context.Context, in *input, site int, raw bool) (*pipeline.Result, error) {
	method, err := e.method(in)
	if err != nil {
		return nil, err
	}
	return pipeline.Run(ctx, e.cfg, e.log, pipeline.Request{
		Points:   in.Points,
		Interior: in.Interior,
		Method:   method,
		Raw:      raw,
		Site:     site,
	})
}

func (e *env) runMesh(ctx context.Context, path string) error {
	in, err := loadInput(path, e.in, e.log)
	if err != nil {
		return err
	}
	result, err := e.build(ctx, in, advanced.NoSite, e.opts.raw)
	if result == nil {
		return err
	}
	frame := result.Frame(in.Labels, in.Colors, len(in.Points))
	e.printSummary(result)
	e.printTriangles(result.Mesh)
	if e.opts.dump {
		fmt.Fprint(e.out, dbg.Dump(result.Mesh.Triangles))
	}
	if outErr := e.writeOutputs(frame); outErr != nil {
		return outErr
	}
	return err
}

func (e *env) runHull(path string) error {
	in, err := loadInput(path, e.in, e.log)
	if err != nil {
		return err
	}
	sites := in.sites()
	if len(sites) == 0 {
		return errors.Wrap(advanced.ErrInsufficientPoints, "no points")
	}
	// Same format as the text input, so the hull can be piped back in
	for _, p := range delaunay.ConvexHull(sites) {
		fmt.Fprintf(e.out, "%s %s\n", formatFloat(p.X), formatFloat(p.Y))
	}
	return nil
}

func (e *env) runVoronoi(ctx context.Context, path, siteValue string) error {
	in, err := loadInput(path, e.in, e.log)
	if err != nil {
		return err
	}
	site, err := resolveSite(siteValue, in)
	if err != nil {
		return err
	}
	result, err := e.build(ctx, in, site, e.opts.raw)
	if result == nil {
		return err
	}
	frame := result.Frame(in.Labels, in.Colors, len(in.Points))
	e.printSummary(result)
	for _, edge := range result.Diagram.Edges {
		fmt.Fprintf(e.out, "%s | %s: %s -> %s\n",
			siteName(frame, edge.Sites[0]),
			siteName(frame, edge.Sites[1]),
			scene.FormatPosition(edge.A),
			scene.FormatPosition(edge.B),
		)
	}
	if outErr := e.writeOutputs(frame); outErr != nil {
		return outErr
	}
	return err
}

// runFlip works on the mesh as triangulated, before legalization, since a
// legal mesh has nothing to flip. With pixel set, at is a position on the
// image the render settings would produce, as if clicked.
func (e *env) runFlip(ctx context.Context, path, at string, pixel bool) error {
	p, err := scene.ParsePosition(at)
	if err != nil {
		return errors.Wrap(err, "--at")
	}
	in, err := loadInput(path, e.in, e.log)
	if err != nil {
		return err
	}
	result, err := e.build(ctx, in, advanced.NoSite, true)
	if err != nil {
		return err
	}
	mesh := result.Mesh
	if pixel {
		style := pipeline.Style(e.cfg)
		p = render.Fit(mesh, style.Width, style.Height, style.Margin).ToWorld(p.X, p.Y)
		e.log.Debug("pixel to world", zap.String("at", at), zap.Stringer("world", p))
	}
	hit := delaunay.PointInTriangle(mesh, p)
	flipped, err := delaunay.FlipAt(mesh, p)
	if err != nil {
		return err
	}
	au := aurora.NewAurora(e.opts.color)
	if flipped {
		fmt.Fprintf(e.out, "%s triangle %d at %s\n", au.Green("flipped"), hit, scene.FormatPosition(p))
	} else {
		fmt.Fprintf(e.out, "%s for triangle %d at %s\n", au.Yellow("no flip"), hit, scene.FormatPosition(p))
	}
	result.Delaunay = mesh.CheckDelaunay()
	// Triangles moved, so rebuild the dual
	result.Diagram = advanced.BuildVoronoi(mesh, advanced.NoSite)

	e.printSummary(result)
	e.printTriangles(mesh)
	return e.writeOutputs(result.Frame(in.Labels, in.Colors, len(in.Points)))
}

func (e *env) printSummary(result *pipeline.Result) {
	au := aurora.NewAurora(e.opts.color)
	status := au.Green("delaunay")
	if !result.Delaunay {
		status = au.Yellow("not delaunay")
	}
	fmt.Fprintf(e.out, "%s %d points, %d triangles, %d voronoi edges, %s (%s)\n",
		au.Bold("mesh:"),
		len(result.Mesh.Points),
		len(result.Mesh.Triangles),
		len(result.Diagram.Edges),
		status,
		result.Elapsed.Round(time.Microsecond),
	)
}

func (e *env) printTriangles(mesh *advanced.Mesh) {
	for i, t := range mesh.Triangles {
		state := triangleState(t)
		name := dbg.Name(t)
		if e.opts.color {
			name = dbg.ColorName(name, state)
		} else {
			name += " (" + state.String() + ")"
		}
		highlight := ""
		if t.Highlighted {
			highlight = " *"
		}
		fmt.Fprintf(e.out, "%4d %v %s center=%s r=%s%s\n",
			i, t.V, name, scene.FormatPosition(t.Center), formatFloat(t.Radius), highlight)
	}
}

func triangleState(t *advanced.Triangle) dbg.State {
	switch {
	case t.Delaunay:
		return dbg.Delaunay
	case t.Flippable:
		return dbg.Flippable
	}
	return dbg.Illegal
}

func siteName(frame *render.Frame, i int) string {
	if i < len(frame.Labels) && frame.Labels[i] != "" {
		return frame.Labels[i]
	}
	return strconv.Itoa(i)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', 6, 64)
}

// writeOutputs renders frame to every requested file, then previews the PNG.
// A preview without --png goes through a temporary file.
func (e *env) writeOutputs(frame *render.Frame) error {
	style := pipeline.Style(e.cfg)
	if e.opts.png != "" {
		if err := render.SavePNG(e.opts.png, frame, style); err != nil {
			return errors.Wrap(err, "png")
		}
		e.log.Info("wrote png", zap.String("path", e.opts.png))
	}
	if e.opts.svg != "" {
		if err := writeFile(e.opts.svg, func(f *os.File) error { return render.SVG(f, frame, style) }); err != nil {
			return errors.Wrap(err, "svg")
		}
		e.log.Info("wrote svg", zap.String("path", e.opts.svg))
	}
	if e.opts.html != "" {
		title := fmt.Sprintf("%d sites, %d triangles", len(frame.Mesh.Points), len(frame.Mesh.Triangles))
		if err := writeFile(e.opts.html, func(f *os.File) error { return render.RenderChart(f, frame, style, title) }); err != nil {
			return errors.Wrap(err, "html")
		}
		e.log.Info("wrote chart", zap.String("path", e.opts.html))
	}
	if !e.opts.preview {
		return nil
	}
	out, ok := e.out.(*os.File)
	if !ok {
		return nil
	}
	path := e.opts.png
	if path == "" {
		path = filepath.Join(os.TempDir(), "delaunay-preview.png")
		if err := render.SavePNG(path, frame, style); err != nil {
			return errors.Wrap(err, "preview")
		}
	}
	if !render.Preview(path, out) {
		e.log.Debug("stdout is not a terminal, skipping preview")
	}
	return nil
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

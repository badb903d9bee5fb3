// Package pipeline runs the full build shared by the CLI and the demo server:
// triangulate, legalize under the configured deadline, then derive Voronoi.
package pipeline

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/osuushi/delaunay/advanced"
	"github.com/osuushi/delaunay/config"
	"github.com/osuushi/delaunay/render"
)

type Request struct {
	// Sites for Fan, or the polygon boundary for EarClip.
	Points []advanced.Point
	// EarClip only: points strictly inside the boundary.
	Interior []advanced.Point
	Method   advanced.Method
	// Leave the mesh as triangulated, without legalizing.
	Raw bool
	// NoSite for the whole Voronoi diagram, or an input point index for one
	// cell.
	Site int
}

type Result struct {
	Mesh    *advanced.Mesh
	Diagram *advanced.Diagram
	// Whether the final mesh is Delaunay.
	Delaunay bool
	// Set when the boundary was clockwise and had to be reversed, so mesh
	// vertex i is input point len(Points)-1-i for the boundary.
	Reversed bool
	Elapsed  time.Duration
}

// Run builds the mesh for req. A legalization that runs out of iterations or
// time still yields a usable best-effort Result alongside the error.
func Run(ctx context.Context, cfg *config.Config, log *zap.Logger, req Request) (*Result, error) {
	start := time.Now()
	opts := cfg.Options(log)
	result := &Result{}

	var err error
	switch req.Method {
	case advanced.EarClip:
		poly := advanced.NewPolygonFrom(req.Points)
		for _, p := range req.Interior {
			poly.AddInteriorPoint(p)
		}
		result.Reversed = !poly.IsCCW()
		result.Mesh, err = poly.Triangulate(opts...)
	default:
		points := append(append([]advanced.Point(nil), req.Points...), req.Interior...)
		result.Mesh, err = advanced.TriangulatePoints(points, req.Method, opts...)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "triangulate %d points by %s", len(req.Points)+len(req.Interior), req.Method)
	}
	log.Info("triangulated",
		zap.Stringer("method", req.Method),
		zap.Int("points", len(result.Mesh.Points)),
		zap.Int("triangles", len(result.Mesh.Triangles)),
	)

	var legalizeErr error
	if req.Raw {
		result.Delaunay = result.Mesh.CheckDelaunay()
	} else {
		legalizeErr = legalize(ctx, cfg, log, result)
		if legalizeErr != nil && !errors.Is(legalizeErr, advanced.ErrLegalizationTimeout) &&
			!errors.Is(legalizeErr, context.DeadlineExceeded) {
			return nil, legalizeErr
		}
	}

	if req.Site != advanced.NoSite && (req.Site < 0 || req.Site >= len(result.Mesh.Points)) {
		return nil, errors.Errorf("site %d out of range [0, %d)", req.Site, len(result.Mesh.Points))
	}
	result.Diagram = advanced.BuildVoronoi(result.Mesh, result.MeshSite(req.Site, len(req.Points)))
	result.Elapsed = time.Since(start)
	return result, legalizeErr
}

func legalize(ctx context.Context, cfg *config.Config, log *zap.Logger, result *Result) error {
	if cfg.Legalize.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Legalize.Timeout)
		defer cancel()
	}
	ok, err := result.Mesh.Legalize(ctx)
	result.Delaunay = ok && err == nil
	if ctx.Err() != nil {
		log.Warn("legalization interrupted, keeping best-effort mesh",
			zap.Duration("timeout", cfg.Legalize.Timeout))
	}
	return err
}

// Style converts the render section of the config.
func Style(cfg *config.Config) render.Style {
	return render.Style{
		Width:   cfg.Render.Width,
		Height:  cfg.Render.Height,
		Margin:  float64(cfg.Render.Margin),
		Circles: cfg.Render.Circles,
		Voronoi: cfg.Render.Voronoi,
		Labels:  cfg.Render.Labels,
	}
}

// Frame pairs the result with per-input-point labels and colors, following
// the boundary reversal if there was one.
func (r *Result) Frame(labels, colors []string, boundary int) *render.Frame {
	if r.Reversed {
		labels = reverseHead(labels, boundary)
		colors = reverseHead(colors, boundary)
	}
	return &render.Frame{
		Mesh:       r.Mesh,
		Diagram:    r.Diagram,
		Labels:     labels,
		SiteColors: colors,
	}
}

// MeshSite maps an input point index to its mesh vertex, following the
// reversal of a boundary of the given length.
func (r *Result) MeshSite(site, boundary int) int {
	if r.Reversed && site >= 0 && site < boundary {
		return boundary - 1 - site
	}
	return site
}

// reverseHead copies s with its first n entries reversed.
func reverseHead(s []string, n int) []string {
	if len(s) == 0 {
		return s
	}
	out := append([]string(nil), s...)
	if n > len(out) {
		n = len(out)
	}
	for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

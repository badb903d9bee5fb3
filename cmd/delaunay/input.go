package main

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/osuushi/delaunay/advanced"
	"github.com/osuushi/delaunay/scene"
)

// input is what a command works on, whatever file format it came from.
type input struct {
	// Boundary for ear clipping, or just the sites.
	Points   []advanced.Point
	Interior []advanced.Point
	Labels   []string
	Colors   []string
	Scene    *scene.Scene
	// Whether the input really is a polygon, not a bag of sites.
	Polygon bool
}

// All points, boundary first.
func (in *input) sites() []advanced.Point {
	return append(append([]advanced.Point(nil), in.Points...), in.Interior...)
}

// loadInput reads path by extension: .json is a scene, .svg a polygon with
// circles for interior points, anything else (or "-" for stdin) is text.
func loadInput(path string, stdin io.Reader, log *zap.Logger) (*input, error) {
	if path == "" || path == "-" {
		return readText(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open input")
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		sc, err := scene.Load(f)
		if err != nil {
			return nil, errors.Wrapf(err, "scene %s", path)
		}
		for _, name := range sc.Skipped {
			log.Warn("skipping site with malformed position", zap.String("site", name))
		}
		in := &input{Points: sc.Sites(), Labels: sc.Names(), Scene: sc}
		for _, site := range append(append([]scene.Site(nil), sc.Servers...), sc.Drones...) {
			in.Colors = append(in.Colors, site.Color)
		}
		return in, nil
	case ".svg":
		poly, err := scene.LoadPolygon(f)
		if err != nil {
			return nil, errors.Wrapf(err, "polygon %s", path)
		}
		return &input{Points: poly.Points, Interior: poly.Interior, Polygon: true}, nil
	}
	return readText(f)
}

// readText reads newline separated "x y" points. A blank line ends the first
// group, which is then the polygon boundary; any later points are interior.
func readText(r io.Reader) (*input, error) {
	groups := [][]advanced.Point{}
	points := []advanced.Point{}
	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "#") {
			continue
		}

		// If it's empty, and we collected any points, this is the end of the group
		if line == "" {
			if len(points) > 0 {
				groups = append(groups, points)
				points = []advanced.Point{}
			}
			continue
		}

		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read points")
	}

	// Handle trailing group if any
	if len(points) > 0 {
		groups = append(groups, points)
	}

	in := &input{}
	if len(groups) == 0 {
		return in, nil
	}
	in.Points = groups[0]
	for _, g := range groups[1:] {
		in.Interior = append(in.Interior, g...)
	}
	in.Polygon = len(groups) > 1
	return in, nil
}

func parsePoint(line string) (advanced.Point, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return advanced.Point{}, errors.Errorf("expected \"x y\", got %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return advanced.Point{}, errors.Wrap(err, "x")
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return advanced.Point{}, errors.Wrap(err, "y")
	}
	return advanced.Point{X: x, Y: y}, nil
}

// resolveSite turns a --site value into a vertex index: a server name when
// the input is a scene, otherwise a number.
func resolveSite(value string, in *input) (int, error) {
	if value == "" {
		return advanced.NoSite, nil
	}
	if in.Scene != nil {
		if i := in.Scene.ServerIndex(value); i >= 0 {
			return i, nil
		}
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return 0, errors.Errorf("no site %q", value)
	}
	return i, nil
}

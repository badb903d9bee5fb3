package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/osuushi/delaunay/config"
)

const kite = "0 0\n4 -1\n8 0\n4 1\n"

func testEnv(stdin string, opts options) (*env, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return &env{
		cfg:  config.Default(),
		log:  zap.NewNop(),
		out:  out,
		in:   strings.NewReader(stdin),
		opts: opts,
	}, out
}

func TestMeshCommand(t *testing.T) {
	e, out := testEnv(kite, options{})
	require.NoError(t, e.runMesh(context.Background(), ""))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "mesh: 4 points, 2 triangles, 1 voronoi edges, delaunay ("), lines[0])
	for _, line := range lines[1:] {
		assert.Contains(t, line, "(delaunay)")
	}
}

func TestMeshCommandRaw(t *testing.T) {
	e, out := testEnv(kite, options{raw: true})
	require.NoError(t, e.runMesh(context.Background(), ""))
	assert.Contains(t, out.String(), "not delaunay")
	assert.Contains(t, out.String(), "(flippable)")
}

func TestMeshCommandDump(t *testing.T) {
	e, out := testEnv(kite, options{dump: true})
	require.NoError(t, e.runMesh(context.Background(), ""))
	assert.Contains(t, out.String(), "Triangle")
	assert.Contains(t, out.String(), "Radius:")
}

func TestMeshCommandEarClip(t *testing.T) {
	e, out := testEnv("", options{})
	require.NoError(t, e.runMesh(context.Background(), "../../scene/fixtures/ell-with-sites.svg"))
	// Six boundary vertices and three interior sites
	assert.Contains(t, out.String(), "mesh: 9 points, 10 triangles")
}

func TestMeshCommandFailure(t *testing.T) {
	e, _ := testEnv("0 0\n1 1\n", options{})
	err := e.runMesh(context.Background(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insufficient points")
}

func TestHullCommand(t *testing.T) {
	e, out := testEnv("0 0\n10 0\n5 2\n10 10\n0 10\n", options{})
	require.NoError(t, e.runHull(""))
	assert.Equal(t, "0 0\n10 0\n10 10\n0 10\n", out.String())
}

func TestVoronoiCommand(t *testing.T) {
	e, out := testEnv("", options{})
	require.NoError(t, e.runVoronoi(context.Background(), "../../scene/testdata/drones.json", "Paris"))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Greater(t, len(lines), 1)
	for _, line := range lines[1:] {
		assert.Contains(t, line, "Paris")
	}

	e, _ = testEnv("", options{})
	assert.Error(t, e.runVoronoi(context.Background(), "../../scene/testdata/drones.json", "Atlantis"))
}

func TestFlipCommand(t *testing.T) {
	e, out := testEnv(kite, options{})
	require.NoError(t, e.runFlip(context.Background(), "", "4,-0.5", false))
	text := out.String()
	assert.True(t, strings.HasPrefix(text, "flipped triangle 0 at 4,-0.5\n"), text)
	assert.Contains(t, text, "delaunay")
	assert.Contains(t, text, " *\n")

	e, _ = testEnv(kite, options{})
	err := e.runFlip(context.Background(), "", "100,100", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "point outside mesh")

	e, _ = testEnv(kite, options{})
	assert.Error(t, e.runFlip(context.Background(), "", "nowhere", false))
}

func TestOutputs(t *testing.T) {
	dir := t.TempDir()
	opts := options{
		png:  filepath.Join(dir, "mesh.png"),
		svg:  filepath.Join(dir, "mesh.svg"),
		html: filepath.Join(dir, "mesh.html"),
		// Not a terminal, so this is a no-op
		preview: true,
	}
	e, _ := testEnv("", opts)
	require.NoError(t, e.runMesh(context.Background(), "../../scene/testdata/drones.json"))

	for _, path := range []string{opts.png, opts.svg, opts.html} {
		info, err := os.Stat(path)
		require.NoError(t, err, path)
		assert.Positive(t, info.Size(), path)
	}
	svg, err := os.ReadFile(opts.svg)
	require.NoError(t, err)
	assert.Contains(t, string(svg), ">London</text>")
}

func TestPolygonForcesEarClip(t *testing.T) {
	// One group of text points would otherwise be meshed by the fan method
	e, out := testEnv("0 0\n10 0\n10 10\n5 2\n0 10\n", options{method: "earclip"})
	require.NoError(t, e.runMesh(context.Background(), ""))
	assert.Contains(t, out.String(), "mesh: 5 points, 3 triangles")
}

func TestUnknownMethod(t *testing.T) {
	e, _ := testEnv(kite, options{method: "seidel"})
	assert.Error(t, e.runMesh(context.Background(), ""))

	e, _ = testEnv(kite, options{})
	e.cfg.Triangulation.Method = "seidel"
	err := e.runMesh(context.Background(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "triangulation.method")
}

func TestFlipCommandPixel(t *testing.T) {
	e, out := testEnv(kite, options{})
	e.cfg.Render.Width = 100
	e.cfg.Render.Height = 100
	e.cfg.Render.Margin = 10
	// The kite spans 8 units across 80 pixels, so world (4,-0.5) sits at
	// pixel (50, 10+0.5*10)
	require.NoError(t, e.runFlip(context.Background(), "", "50,15", true))
	assert.True(t, strings.HasPrefix(out.String(), "flipped triangle 0 at 4,-0.5\n"), out.String())
}

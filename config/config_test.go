package config

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/osuushi/delaunay/advanced"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	m, err := cfg.Method()
	require.NoError(t, err)
	assert.Equal(t, advanced.Fan, m)

	o := advanced.NewOptions(cfg.Options(zap.NewNop())...)
	assert.Equal(t, advanced.NewOptions().MaxIterations, o.MaxIterations)
	assert.Equal(t, advanced.DefaultEpsilon, o.Epsilon)
}

func TestLoad(t *testing.T) {
	cfg, err := Load("testdata/tuned.yaml")
	require.NoError(t, err)

	m, err := cfg.Method()
	require.NoError(t, err)
	assert.Equal(t, advanced.EarClip, m)
	assert.Equal(t, 1e-4, cfg.Triangulation.AreaTolerance)
	assert.Equal(t, advanced.DefaultEpsilon, cfg.Triangulation.Epsilon, "unset keys keep defaults")
	assert.Equal(t, 50, cfg.Legalize.MaxIterations)
	assert.Equal(t, 2*time.Second, cfg.Legalize.Timeout)
	assert.Equal(t, 400, cfg.Render.Width)
	assert.Equal(t, 800, cfg.Render.Height)
	assert.False(t, cfg.Render.Voronoi)
	assert.True(t, cfg.Render.Circles)
	assert.Equal(t, "debug", cfg.Log.Level)

	o := advanced.NewOptions(cfg.Options(nil)...)
	assert.Equal(t, 50, o.MaxIterations)
	assert.Equal(t, 1e-4, o.AreaTolerance)
}

func TestMethodUnknown(t *testing.T) {
	cfg := Default()
	cfg.Triangulation.Method = "seidel"
	_, err := cfg.Method()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "triangulation.method")
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load("testdata/nope.yaml")
	assert.Error(t, err)
}

func TestRead(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		cfg, err := Read(strings.NewReader(""))
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	testCases := []struct {
		name, yaml string
	}{
		{"unknown key", "legalize:\n  max_iter: 5\n"},
		{"unknown method", "triangulation:\n  method: seidel\n"},
		{"zero iterations", "legalize:\n  max_iterations: 0\n"},
		{"negative tolerance", "triangulation:\n  epsilon: -1\n"},
		{"margin too wide", "render:\n  width: 100\n  margin: 50\n"},
		{"bad duration", "legalize:\n  timeout: soon\n"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tc.yaml))
			assert.Error(t, err)
		})
	}
}

package scene

import (
	"embed"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/osuushi/delaunay/advanced"
)

// Fixtures are available by name in the fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(t *testing.T, name string) *advanced.Polygon {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	require.NoError(t, err, "could not load fixture %q", name)
	defer fixture.Close()

	poly, err := LoadPolygon(fixture)
	require.NoError(t, err, "failed to parse fixture %q", name)
	return poly
}

package server

import (
	"math"
	"math/rand"

	"github.com/osuushi/delaunay/advanced"
)

// RandomSites scatters n sites with integer coordinates over width x height.
func RandomSites(rng *rand.Rand, n, width, height int) []advanced.Point {
	sites := make([]advanced.Point, n)
	for i := range sites {
		sites[i] = advanced.Point{
			X: float64(rng.Intn(width)),
			Y: float64(rng.Intn(height)),
		}
	}
	return sites
}

// GridSites lays out n sites on a near-square grid, each centered in its
// cell. The last row may be short.
func GridSites(n, width, height int) []advanced.Point {
	if n <= 0 {
		return nil
	}
	sites := make([]advanced.Point, 0, n)
	rows := int(math.Sqrt(float64(n)))
	cols := (n + rows - 1) / rows

	xStep := float64(width) / float64(cols)
	yStep := float64(height) / float64(rows)

	for i := 0; i < rows && len(sites) < n; i++ {
		for j := 0; j < cols && len(sites) < n; j++ {
			sites = append(sites, advanced.Point{
				X: xStep/2 + float64(j)*xStep,
				Y: yStep/2 + float64(i)*yStep,
			})
		}
	}
	return sites
}

// Package scene loads site sets from disk: the JSON scene format, with servers
// and drones placed by "x,y" strings, and SVG polygons.
package scene

import (
	"encoding/json"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/slices"

	"github.com/osuushi/delaunay/advanced"
)

// Site is a named point in a scene.
type Site struct {
	Name     string `json:"name"`
	Position string `json:"position"`
	Color    string `json:"color,omitempty"`

	Point advanced.Point `json:"-"`
}

// Scene is the decoded form of
//
//	{
//	  "servers": [{"name": "London", "position": "120,80", "color": "red"}],
//	  "drones":  [{"name": "d1", "position": "40,200"}]
//	}
//
// Entries whose position does not parse are dropped and their names recorded
// in Skipped, so one bad line does not lose the whole scene.
type Scene struct {
	Servers []Site `json:"servers"`
	Drones  []Site `json:"drones"`

	Skipped []string `json:"-"`
}

// Load decodes a scene and parses every position. Drones are sorted by name.
func Load(r io.Reader) (*Scene, error) {
	var s Scene
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return nil, errors.Wrap(err, "decode scene")
	}
	s.Servers = s.resolve(s.Servers)
	s.Drones = s.resolve(s.Drones)
	slices.SortStableFunc(s.Drones, func(a, b Site) bool {
		return a.Name < b.Name
	})
	return &s, nil
}

func (s *Scene) resolve(sites []Site) []Site {
	kept := sites[:0]
	for _, site := range sites {
		p, err := ParsePosition(site.Position)
		if err != nil {
			s.Skipped = append(s.Skipped, site.Name)
			continue
		}
		site.Point = p
		kept = append(kept, site)
	}
	return kept
}

// ParsePosition parses "x,y". Surrounding spaces around each number are
// allowed; anything else is an error.
func ParsePosition(s string) (advanced.Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return advanced.Point{}, errors.Errorf("position %q is not \"x,y\"", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return advanced.Point{}, errors.Wrapf(err, "position %q", s)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return advanced.Point{}, errors.Wrapf(err, "position %q", s)
	}
	return advanced.Point{X: x, Y: y}, nil
}

// FormatPosition is the inverse of ParsePosition, using the shortest
// representation that round-trips.
func FormatPosition(p advanced.Point) string {
	return strconv.FormatFloat(p.X, 'g', -1, 64) + "," + strconv.FormatFloat(p.Y, 'g', -1, 64)
}

// Sites lists every point, servers first, so server i is mesh vertex i.
func (s *Scene) Sites() []advanced.Point {
	points := make([]advanced.Point, 0, len(s.Servers)+len(s.Drones))
	for _, site := range s.Servers {
		points = append(points, site.Point)
	}
	for _, site := range s.Drones {
		points = append(points, site.Point)
	}
	return points
}

// Names lists site names in the same order as Sites.
func (s *Scene) Names() []string {
	names := make([]string, 0, len(s.Servers)+len(s.Drones))
	for _, site := range s.Servers {
		names = append(names, site.Name)
	}
	for _, site := range s.Drones {
		names = append(names, site.Name)
	}
	return names
}

// ServerIndex finds the vertex index of the named server, or -1.
func (s *Scene) ServerIndex(name string) int {
	for i, site := range s.Servers {
		if site.Name == name {
			return i
		}
	}
	return -1
}

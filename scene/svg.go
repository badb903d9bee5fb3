package scene

import (
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"

	"github.com/osuushi/delaunay/advanced"
)

// This is not a full (or even correct) svg parser. It finds the one polygon
// element and uses its points as the boundary, and takes the center of every
// circle element as an interior point. Transforms and units are ignored.

// LoadPolygon reads an SVG document into a polygon ready for triangulation.
// The boundary keeps its file order; Polygon.Triangulate fixes the winding.
func LoadPolygon(r io.Reader) (*advanced.Polygon, error) {
	rootEl, err := svgparser.Parse(r, true)
	if err != nil {
		return nil, errors.Wrap(err, "parse svg")
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) == 0 {
		return nil, errors.New("no polygon element")
	}
	if len(polygons) > 1 {
		return nil, errors.Errorf("%d polygon elements, expected one", len(polygons))
	}

	points, err := parsePoints(polygons[0].Attributes["points"])
	if err != nil {
		return nil, err
	}
	poly := advanced.NewPolygonFrom(points)

	for _, circleEl := range rootEl.FindAll("circle") {
		x, err := parseAttr(circleEl, "cx")
		if err != nil {
			return nil, err
		}
		y, err := parseAttr(circleEl, "cy")
		if err != nil {
			return nil, err
		}
		poly.AddInteriorPoint(advanced.Point{X: x, Y: y})
	}
	return poly, nil
}

// Points attribute: "x,y x,y ...".
func parsePoints(pointString string) ([]advanced.Point, error) {
	pointStrings := strings.Fields(pointString)
	points := make([]advanced.Point, 0, len(pointStrings))
	for _, pointString := range pointStrings {
		p, err := ParsePosition(pointString)
		if err != nil {
			return nil, errors.Wrap(err, "polygon points")
		}
		points = append(points, p)
	}
	return points, nil
}

func parseAttr(el *svgparser.Element, name string) (float64, error) {
	raw, ok := el.Attributes[name]
	if !ok {
		return 0, errors.Errorf("%s element without %s", el.Name, name)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "%s attribute %s", el.Name, name)
	}
	return v, nil
}

package dbg

import (
	"github.com/davecgh/go-spew/spew"
	"github.com/logrusorgru/aurora"
)

// State of a triangle as far as coloring is concerned.
type State int

const (
	Delaunay State = iota
	Flippable
	Illegal
)

func (s State) String() string {
	switch s {
	case Delaunay:
		return "delaunay"
	case Flippable:
		return "flippable"
	}
	return "illegal"
}

// ColorName colors a readable name by triangle state, matching the colors used
// when rendering: cyan for Delaunay, gray for flippable, yellow otherwise.
func ColorName(name string, state State) string {
	switch state {
	case Delaunay:
		return aurora.Cyan(name).String()
	case Flippable:
		return aurora.Gray(12, name).String()
	default:
		return aurora.Yellow(name).String()
	}
}

var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
	DisableMethods:          true,
}

// Dump renders v as a deterministic multi-line string.
func Dump(v interface{}) string {
	return dumper.Sdump(v)
}

package advanced

import "go.uber.org/zap"

// NoSite asks BuildVoronoi for the whole diagram rather than one cell.
const NoSite = -1

// VoronoiEdge joins the circumcenters of the two triangles on either side of a
// Delaunay edge. Sites are the Delaunay edge's endpoints, i.e. the two sites
// the Voronoi edge separates.
type VoronoiEdge struct {
	A, B      Point
	Sites     [2]int
	Triangles [2]int
}

// Diagram is the Voronoi dual of a mesh. Cells maps a site to the indices of
// its edges in Edges. Cells on the hull are left open: edges on the boundary
// of the mesh have no second triangle and so no dual edge.
type Diagram struct {
	Edges []VoronoiEdge
	Cells map[int][]int
}

// BuildVoronoi derives the Voronoi edges of mesh, each emitted once. With a
// site other than NoSite only the edges bounding that site's cell are kept,
// which are the duals of the Delaunay edges incident to it.
func BuildVoronoi(mesh *Mesh, site int) *Diagram {
	d := &Diagram{Cells: make(map[int][]int)}
	for _, k := range mesh.Edges() {
		if site != NoSite && k.A != site && k.B != site {
			continue
		}
		slots := mesh.edges[k]
		if len(slots) != 2 {
			continue
		}
		t, u := slots[0], slots[1]
		if t > u {
			t, u = u, t
		}
		d.Edges = append(d.Edges, VoronoiEdge{
			A:         mesh.Triangles[t].Center,
			B:         mesh.Triangles[u].Center,
			Sites:     [2]int{k.A, k.B},
			Triangles: [2]int{t, u},
		})
		idx := len(d.Edges) - 1
		d.Cells[k.A] = append(d.Cells[k.A], idx)
		d.Cells[k.B] = append(d.Cells[k.B], idx)
	}
	mesh.log.Debug("voronoi built", zap.Int("site", site), zap.Int("edges", len(d.Edges)))
	return d
}

// Cell returns the edges bounding site's cell.
func (d *Diagram) Cell(site int) []VoronoiEdge {
	result := make([]VoronoiEdge, 0, len(d.Cells[site]))
	for _, idx := range d.Cells[site] {
		result = append(result, d.Edges[idx])
	}
	return result
}

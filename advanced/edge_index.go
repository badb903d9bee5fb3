package advanced

// EdgeKey identifies an undirected edge by its two vertex indices, smaller
// first, so both triangles sharing an edge produce the same key.
type EdgeKey struct {
	A, B int
}

func MakeEdgeKey(a, b int) EdgeKey {
	if a > b {
		a, b = b, a
	}
	return EdgeKey{a, b}
}

// Maps each edge to the triangle slots incident to it. In a valid mesh every
// entry holds one triangle (boundary) or two (interior).
type edgeIndex map[EdgeKey][]int

func (ix edgeIndex) add(k EdgeKey, ti int) {
	for _, existing := range ix[k] {
		if existing == ti {
			return
		}
	}
	ix[k] = append(ix[k], ti)
}

func (ix edgeIndex) remove(k EdgeKey, ti int) {
	slots := ix[k]
	for i, existing := range slots {
		if existing == ti {
			slots[i] = slots[len(slots)-1]
			slots = slots[:len(slots)-1]
			break
		}
	}
	if len(slots) == 0 {
		delete(ix, k)
	} else {
		ix[k] = slots
	}
}

// The triangle across k from ti, or -1 on a boundary edge.
func (ix edgeIndex) other(k EdgeKey, ti int) int {
	for _, existing := range ix[k] {
		if existing != ti {
			return existing
		}
	}
	return -1
}

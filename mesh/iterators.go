package mesh

// VertexHalfEdges returns every outgoing half-edge around vertex v, in CCW
// order, each exactly once. A lonely vertex (no stored half-edge) yields an
// empty slice.
//
// The walk rotates via previous.twin starting from v's stored half-edge.
// If v sits on a single boundary hole, the rotation eventually lands on a
// boundary half-edge (face = None); that half-edge is included and the walk
// then turns back at the start, rotating via twin.next to pick up the
// half-edges on the other side of it. The result runs in CCW order from
// the half-edge just after the hole to the boundary half-edge.
func (m *Mesh) VertexHalfEdges(v VertexID) []HalfEdgeID {
	start := m.conn.vertexHalfEdge(v)
	if start == NoHalfEdge {
		return nil
	}

	var result []HalfEdgeID
	current := start

	for {
		result = append(result, current)

		if m.conn.halfEdgeFace(current) == NoFace {
			break
		}

		next := m.conn.halfEdgeTwin(m.conn.prevInFace(current))
		if next == start {
			return result
		}
		current = next
	}

	for cur := start; ; {
		t := m.conn.halfEdgeTwin(cur)
		if m.conn.halfEdgeFace(t) == NoFace {
			break
		}
		cur = m.conn.halfEdgeNext(t)
		if cur == start {
			break
		}
		result = append([]HalfEdgeID{cur}, result...)
	}

	return result
}

// FaceHalfEdges returns the three half-edges bounding face f, in order.
func (m *Mesh) FaceHalfEdges(f FaceID) [3]HalfEdgeID {
	h0 := m.conn.faceHalfEdge(f)
	h1 := m.conn.halfEdgeNext(h0)
	h2 := m.conn.halfEdgeNext(h1)
	return [3]HalfEdgeID{h0, h1, h2}
}

// Vertices returns a snapshot of every vertex handle at the moment of the
// call. The caller may mutate the mesh while iterating the result; handles
// that are later removed remain in the slice but no longer name anything
// (VertexExists reports false for them).
func (m *Mesh) Vertices() []VertexID {
	return m.conn.vertexIDs()
}

// HalfEdges returns a snapshot of every half-edge handle, interior and
// boundary.
func (m *Mesh) HalfEdges() []HalfEdgeID {
	return m.conn.halfEdgeIDs()
}

// Faces returns a snapshot of every face handle.
func (m *Mesh) Faces() []FaceID {
	return m.conn.faceIDs()
}

// Edges returns a snapshot with exactly one half-edge per undirected edge:
// the one whose handle is numerically less than its twin's.
func (m *Mesh) Edges() []HalfEdgeID {
	all := m.conn.halfEdgeIDs()
	edges := make([]HalfEdgeID, 0, len(all)/2+1)
	for _, h := range all {
		if h < m.conn.halfEdgeTwin(h) {
			edges = append(edges, h)
		}
	}
	return edges
}

// CanonicalEdge returns the canonical representative of h's undirected
// edge: the smaller of h and its twin.
func (m *Mesh) CanonicalEdge(h HalfEdgeID) HalfEdgeID {
	t := m.conn.halfEdgeTwin(h)
	if t < h {
		return t
	}
	return h
}

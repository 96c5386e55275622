package mesh

// IsValid checks every core invariant (I1-I9) and returns the first
// violation found, naming the invariant and the offending IDs. A nil
// result means the mesh is valid. This is the primary round-trip test
// oracle; it is never called by mutating operations themselves.
func (m *Mesh) IsValid() error {
	for _, h := range m.conn.halfEdgeIDs() {
		t := m.conn.halfEdgeTwin(h)
		if t == NoHalfEdge {
			return m.invalid("I6", "half-edge %d has no twin", h)
		}
		if m.conn.halfEdgeTwin(t) != h {
			return m.invalid("I1", "half-edge %d and twin %d are not symmetric", h, t)
		}
		if m.conn.halfEdgeVertex(t) == m.conn.halfEdgeVertex(h) {
			return m.invalid("I2", "half-edge %d and its twin %d target the same vertex %d", h, t, m.conn.halfEdgeVertex(h))
		}

		if f := m.conn.halfEdgeFace(h); f != NoFace {
			n1 := m.conn.halfEdgeNext(h)
			n2 := m.conn.halfEdgeNext(n1)
			n3 := m.conn.halfEdgeNext(n2)
			if n3 != h {
				return m.invalid("I3", "half-edge %d does not close a 3-cycle", h)
			}
			if m.conn.halfEdgeFace(n1) != f || m.conn.halfEdgeFace(n2) != f {
				return m.invalid("I3", "half-edges around face %d do not share the same face", f)
			}
		}
	}

	for _, f := range m.conn.faceIDs() {
		h := m.conn.faceHalfEdge(f)
		if m.conn.halfEdgeFace(h) != f {
			return m.invalid("I4", "face %d's stored half-edge %d does not point back to it", f, h)
		}
	}

	for _, v := range m.conn.vertexIDs() {
		h := m.conn.vertexHalfEdge(v)
		if h == NoHalfEdge {
			continue
		}
		if !m.conn.halfEdgeExists(h) {
			return m.invalid("I5", "vertex %d's stored half-edge %d does not exist", v, h)
		}
		if origin := m.conn.halfEdgeVertex(m.conn.halfEdgeTwin(h)); origin != v {
			return m.invalid("I5", "vertex %d's stored half-edge %d does not originate at it", v, h)
		}
	}

	seen := make(map[[2]VertexID]HalfEdgeID)
	for _, h := range m.conn.halfEdgeIDs() {
		o, t := m.EdgeEndpoints(h)
		key := [2]VertexID{o, t}
		if other, ok := seen[key]; ok && other != h {
			return m.invalid("I7", "vertices %d and %d are connected by more than one directed half-edge (%d and %d)", o, t, other, h)
		}
		seen[key] = h
	}

	for _, v := range m.conn.vertexIDs() {
		for _, h := range m.VertexHalfEdges(v) {
			_, t := m.EdgeEndpoints(h)
			if !m.AreConnected(t, v) {
				return m.invalid("I9", "vertex %d connects to %d but not vice versa", v, t)
			}
		}
	}

	for _, h := range m.conn.halfEdgeIDs() {
		if m.conn.halfEdgeFace(h) == NoFace {
			continue
		}
		if m.EdgeLength(h) < m.margin {
			return m.invalid("I8", "half-edge %d has degenerate length below margin", h)
		}
	}

	for _, f := range m.conn.faceIDs() {
		if m.FaceArea(f) < m.margin {
			return m.invalid("I8", "face %d has degenerate area below margin", f)
		}
	}

	return nil
}

func (m *Mesh) invalid(invariant, format string, args ...any) *ValidityError {
	return newValidityError(invariant, format, args...)
}

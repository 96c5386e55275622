package mesh

// EdgeEndpoints returns the two vertices an undirected edge connects: the
// origin and target of half-edge h.
func (m *Mesh) EdgeEndpoints(h HalfEdgeID) (origin, target VertexID) {
	return m.origin(h), m.conn.halfEdgeVertex(h)
}

// origin returns the vertex half-edge h points away from.
func (m *Mesh) origin(h HalfEdgeID) VertexID {
	return m.conn.halfEdgeVertex(m.conn.halfEdgeTwin(h))
}

// FaceVertices returns the three vertices bounding face f, in winding order.
func (m *Mesh) FaceVertices(f FaceID) (v0, v1, v2 VertexID) {
	hs := m.FaceHalfEdges(f)
	return m.origin(hs[0]), m.origin(hs[1]), m.origin(hs[2])
}

// FaceHalfEdgeOf returns the half-edge of face f that targets v, and
// whether one was found.
func (m *Mesh) FaceHalfEdgeOf(f FaceID, v VertexID) (HalfEdgeID, bool) {
	for _, h := range m.FaceHalfEdges(f) {
		if m.conn.halfEdgeVertex(h) == v {
			return h, true
		}
	}
	return NoHalfEdge, false
}

// IsBoundaryHalfEdge reports whether h has no incident face.
func (m *Mesh) IsBoundaryHalfEdge(h HalfEdgeID) bool {
	return m.conn.halfEdgeIsBoundary(h)
}

// IsBoundaryEdge reports whether either side of h's undirected edge is a
// boundary half-edge.
func (m *Mesh) IsBoundaryEdge(h HalfEdgeID) bool {
	return m.conn.halfEdgeIsBoundary(h) || m.conn.halfEdgeIsBoundary(m.conn.halfEdgeTwin(h))
}

// IsBoundaryVertex reports whether v has a boundary half-edge anywhere in
// its one-ring.
func (m *Mesh) IsBoundaryVertex(v VertexID) bool {
	for _, h := range m.VertexHalfEdges(v) {
		if m.conn.halfEdgeIsBoundary(h) {
			return true
		}
	}
	return false
}

// IncidentFaces returns the distinct faces incident to vertex v.
func (m *Mesh) IncidentFaces(v VertexID) []FaceID {
	var faces []FaceID
	for _, h := range m.VertexHalfEdges(v) {
		if f := m.conn.halfEdgeFace(h); f != NoFace {
			faces = append(faces, f)
		}
	}
	return faces
}

// HalfEdgeBetween returns the half-edge from u to v, and whether one
// exists. By I7 there is at most one.
func (m *Mesh) HalfEdgeBetween(u, v VertexID) (HalfEdgeID, bool) {
	for _, h := range m.VertexHalfEdges(u) {
		if m.conn.halfEdgeVertex(h) == v {
			return h, true
		}
	}
	return NoHalfEdge, false
}

// AreConnected reports whether u and v are joined by an edge in either
// direction.
func (m *Mesh) AreConnected(u, v VertexID) bool {
	if _, ok := m.HalfEdgeBetween(u, v); ok {
		return true
	}
	_, ok := m.HalfEdgeBetween(v, u)
	return ok
}

// OppositeVertex returns the vertex of face f(h) that is neither endpoint
// of half-edge h (the vertex "across" h within its triangle), and whether
// h bounds a face at all.
func (m *Mesh) OppositeVertex(h HalfEdgeID) (VertexID, bool) {
	if m.conn.halfEdgeFace(h) == NoFace {
		return NoVertex, false
	}
	return m.conn.halfEdgeVertex(m.conn.halfEdgeNext(h)), true
}

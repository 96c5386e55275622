package mesh

// Walker is a cursor over the half-edge graph: a small value carrying the
// current half-edge ID plus its cached record, so that movement is
// branchless after a single map lookup. It is not a pointer; copying a
// Walker copies the cursor.
type Walker struct {
	mesh    *Mesh
	current HalfEdgeID
	record  halfEdgeRecord
	ok      bool
}

// WalkHalfEdge seeds a Walker at a given half-edge.
func (m *Mesh) WalkHalfEdge(h HalfEdgeID) Walker {
	return m.walkerAt(h)
}

// WalkVertex seeds a Walker at a vertex's stored outgoing half-edge.
func (m *Mesh) WalkVertex(v VertexID) Walker {
	return m.walkerAt(m.conn.vertexHalfEdge(v))
}

// WalkFace seeds a Walker at a face's stored half-edge.
func (m *Mesh) WalkFace(f FaceID) Walker {
	return m.walkerAt(m.conn.faceHalfEdge(f))
}

func (m *Mesh) walkerAt(h HalfEdgeID) Walker {
	r, ok := m.conn.halfedges[h]
	return Walker{mesh: m, current: h, record: r, ok: ok}
}

// Valid reports whether the walker's current half-edge still exists. A
// walker becomes invalid when its current half-edge is removed by a
// mutation; subsequent queries return the zero value.
func (w Walker) Valid() bool { return w.ok }

// AsTwin moves to the current half-edge's twin.
func (w Walker) AsTwin() Walker {
	if !w.ok {
		return w
	}
	return w.mesh.walkerAt(w.record.twin)
}

// AsNext moves to the current half-edge's next (around its face).
func (w Walker) AsNext() Walker {
	if !w.ok {
		return w
	}
	return w.mesh.walkerAt(w.record.next)
}

// AsPrevious moves to the current half-edge's previous (two nexts, since
// every face is a triangle).
func (w Walker) AsPrevious() Walker {
	return w.AsNext().AsNext()
}

// HalfEdgeID returns the current half-edge handle.
func (w Walker) HalfEdgeID() HalfEdgeID { return w.current }

// TwinID returns the current half-edge's twin handle.
func (w Walker) TwinID() HalfEdgeID {
	if !w.ok {
		return NoHalfEdge
	}
	return w.record.twin
}

// NextID returns the current half-edge's next handle.
func (w Walker) NextID() HalfEdgeID {
	if !w.ok {
		return NoHalfEdge
	}
	return w.record.next
}

// PreviousID returns the current half-edge's previous handle.
func (w Walker) PreviousID() HalfEdgeID {
	return w.AsNext().NextID()
}

// VertexID returns the vertex the current half-edge points to.
func (w Walker) VertexID() VertexID {
	if !w.ok {
		return NoVertex
	}
	return w.record.vertex
}

// FaceID returns the face the current half-edge bounds (NoFace if the
// half-edge is a boundary half-edge).
func (w Walker) FaceID() FaceID {
	if !w.ok {
		return NoFace
	}
	return w.record.face
}

// IsBoundary reports whether the current half-edge is a boundary half-edge.
func (w Walker) IsBoundary() bool {
	return w.ok && w.record.face == NoFace
}

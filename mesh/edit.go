package mesh

import "github.com/ajcurley/trimesh/geom"

// FlipEdge rotates the shared diagonal of the two triangles adjacent to h
// so that it connects the opposite pair of vertices instead. Fails with
// ErrActionWillResultInInvalidMesh if h is a boundary half-edge (either
// side has no face) or if the flip would duplicate an edge (I7); on
// failure the mesh is unchanged.
func (m *Mesh) FlipEdge(h HalfEdgeID) error {
	c := m.conn
	t := c.halfEdgeTwin(h)

	f1, f2 := c.halfEdgeFace(h), c.halfEdgeFace(t)
	if f1 == NoFace || f2 == NoFace {
		return ErrActionWillResultInInvalidMesh
	}

	a, b := m.origin(h), c.halfEdgeVertex(h)
	h1 := c.halfEdgeNext(h)
	h2 := c.halfEdgeNext(h1)
	cVert := c.halfEdgeVertex(h1)

	t1 := c.halfEdgeNext(t)
	t2 := c.halfEdgeNext(t1)
	dVert := c.halfEdgeVertex(t1)

	if _, ok := m.HalfEdgeBetween(cVert, dVert); ok {
		return ErrActionWillResultInInvalidMesh
	}
	if _, ok := m.HalfEdgeBetween(dVert, cVert); ok {
		return ErrActionWillResultInInvalidMesh
	}

	c.setHalfEdgeVertex(h, dVert)
	c.setHalfEdgeVertex(t, cVert)

	c.setHalfEdgeNext(h, t2)
	c.setHalfEdgeNext(t2, h1)
	c.setHalfEdgeNext(h1, h)
	c.setHalfEdgeFace(t2, f1)
	c.setFaceHalfEdge(f1, h)

	c.setHalfEdgeNext(t, h2)
	c.setHalfEdgeNext(h2, t1)
	c.setHalfEdgeNext(t1, t)
	c.setHalfEdgeFace(h2, f2)
	c.setFaceHalfEdge(f2, t)

	c.setVertexHalfEdge(a, t1)
	c.setVertexHalfEdge(b, h1)
	c.setVertexHalfEdge(cVert, h)
	c.setVertexHalfEdge(dVert, t)

	return nil
}

// SplitEdge inserts a new vertex at p on h's undirected edge and
// re-triangulates each incident face by connecting the new vertex to that
// face's opposite vertex. Produces 2 new faces, or 1 if the edge is a
// boundary edge (the outside gets a new boundary half-edge instead of a
// face). Returns the new vertex ID.
func (m *Mesh) SplitEdge(h HalfEdgeID, p geom.Vector) VertexID {
	c := m.conn
	t := c.halfEdgeTwin(h)
	b := c.halfEdgeVertex(h)

	nv := c.newVertex()
	m.pos.set(nv, p)

	c.setHalfEdgeVertex(h, nv)

	hb := c.newHalfEdge(b, NoHalfEdge, NoFace)
	tb := c.newHalfEdge(nv, NoHalfEdge, NoFace)
	c.setHalfEdgeTwin(hb, tb)

	if f1 := c.halfEdgeFace(h); f1 != NoFace {
		h1 := c.halfEdgeNext(h)
		h2 := c.halfEdgeNext(h1)
		cVert := c.halfEdgeVertex(h1)

		hc := c.newHalfEdge(cVert, NoHalfEdge, f1)
		hcRev := c.newHalfEdge(nv, NoHalfEdge, NoFace)
		c.setHalfEdgeTwin(hc, hcRev)

		c.setHalfEdgeNext(h, hc)
		c.setHalfEdgeNext(hc, h2)
		c.setHalfEdgeNext(h2, h)
		c.setFaceHalfEdge(f1, h)

		f1b := c.newFace()
		c.setHalfEdgeFace(hb, f1b)
		c.setHalfEdgeFace(h1, f1b)
		c.setHalfEdgeFace(hcRev, f1b)
		c.setHalfEdgeNext(hb, h1)
		c.setHalfEdgeNext(h1, hcRev)
		c.setHalfEdgeNext(hcRev, hb)
		c.setFaceHalfEdge(f1b, hb)
	} else {
		xold := c.halfEdgeNext(h)
		c.setHalfEdgeNext(h, hb)
		c.setHalfEdgeNext(hb, xold)
	}

	if f2 := c.halfEdgeFace(t); f2 != NoFace {
		t1 := c.halfEdgeNext(t)
		t2 := c.halfEdgeNext(t1)
		dVert := c.halfEdgeVertex(t1)

		td := c.newHalfEdge(nv, NoHalfEdge, f2)
		tdRev := c.newHalfEdge(dVert, NoHalfEdge, NoFace)
		c.setHalfEdgeTwin(td, tdRev)

		c.setHalfEdgeNext(t, t1)
		c.setHalfEdgeNext(t1, td)
		c.setHalfEdgeNext(td, t)
		c.setFaceHalfEdge(f2, t)

		f2b := c.newFace()
		c.setHalfEdgeFace(tb, f2b)
		c.setHalfEdgeFace(tdRev, f2b)
		c.setHalfEdgeFace(t2, f2b)
		c.setHalfEdgeNext(tb, tdRev)
		c.setHalfEdgeNext(tdRev, t2)
		c.setHalfEdgeNext(t2, tb)
		c.setFaceHalfEdge(f2b, tb)
	} else {
		yold := c.boundaryPredecessor(t)
		if yold != NoHalfEdge {
			c.setHalfEdgeNext(yold, tb)
		}
		c.setHalfEdgeNext(tb, t)
	}

	c.setVertexHalfEdge(nv, hb)
	c.setVertexHalfEdge(b, tb)

	return nv
}

// SplitFace adds a new interior vertex at p and replaces face f by three
// faces meeting at the new vertex. Returns the new vertex ID.
func (m *Mesh) SplitFace(f FaceID, p geom.Vector) VertexID {
	c := m.conn
	hs := m.FaceHalfEdges(f)
	h0, h1, h2 := hs[0], hs[1], hs[2]
	v0, v1, v2 := m.origin(h0), m.origin(h1), m.origin(h2)

	nv := c.newVertex()
	m.pos.set(nv, p)

	e0 := c.newHalfEdge(nv, NoHalfEdge, NoFace)
	e0r := c.newHalfEdge(v0, NoHalfEdge, NoFace)
	c.setHalfEdgeTwin(e0, e0r)

	e1 := c.newHalfEdge(nv, NoHalfEdge, NoFace)
	e1r := c.newHalfEdge(v1, NoHalfEdge, NoFace)
	c.setHalfEdgeTwin(e1, e1r)

	e2 := c.newHalfEdge(nv, NoHalfEdge, NoFace)
	e2r := c.newHalfEdge(v2, NoHalfEdge, NoFace)
	c.setHalfEdgeTwin(e2, e2r)

	fb := c.newFace()
	fc := c.newFace()

	// FA reuses f: (h0, e1, e0r)
	c.setHalfEdgeNext(h0, e1)
	c.setHalfEdgeNext(e1, e0r)
	c.setHalfEdgeNext(e0r, h0)
	c.setHalfEdgeFace(h0, f)
	c.setHalfEdgeFace(e1, f)
	c.setHalfEdgeFace(e0r, f)
	c.setFaceHalfEdge(f, h0)

	// FB: (h1, e2, e1r)
	c.setHalfEdgeNext(h1, e2)
	c.setHalfEdgeNext(e2, e1r)
	c.setHalfEdgeNext(e1r, h1)
	c.setHalfEdgeFace(h1, fb)
	c.setHalfEdgeFace(e2, fb)
	c.setHalfEdgeFace(e1r, fb)
	c.setFaceHalfEdge(fb, h1)

	// FC: (h2, e0, e2r)
	c.setHalfEdgeNext(h2, e0)
	c.setHalfEdgeNext(e0, e2r)
	c.setHalfEdgeNext(e2r, h2)
	c.setHalfEdgeFace(h2, fc)
	c.setHalfEdgeFace(e0, fc)
	c.setHalfEdgeFace(e2r, fc)
	c.setFaceHalfEdge(fc, h2)

	c.setVertexHalfEdge(nv, e0r)

	return nv
}

// CollapseEdge merges the two endpoints of h into a single vertex at their
// midpoint. Destroys the two adjacent faces (or one if h is a boundary
// edge) plus their non-shared half-edges; the surviving flanking
// half-edges are re-twinned across the deleted faces. Every half-edge
// pointing to the dying vertex is retargeted to the surviving vertex.
// Returns the surviving vertex ID.
//
// The result may contain degenerate faces if the collapse removes the
// last distinguishing edge of a neighbouring triangle; running a quality
// pass afterward is the caller's responsibility.
func (m *Mesh) CollapseEdge(h HalfEdgeID) VertexID {
	c := m.conn
	t := c.halfEdgeTwin(h)

	survivor := m.origin(h)
	dying := c.halfEdgeVertex(h)

	mid := m.pos.get(survivor).Lerp(m.pos.get(dying), 0.5)

	for _, out := range m.VertexHalfEdges(dying) {
		c.setHalfEdgeVertex(c.halfEdgeTwin(out), survivor)
	}

	m.collapseSide(h)
	m.collapseSide(t)

	c.removeVertex(dying)
	m.pos.remove(dying)
	m.pos.set(survivor, mid)

	if !c.halfEdgeExists(c.vertexHalfEdge(survivor)) {
		c.setVertexHalfEdge(survivor, c.findOutgoing(survivor))
	}

	return survivor
}

// findOutgoing scans for any half-edge originating at v. Used to repair a
// vertex's stored half-edge after the one it pointed to was removed.
func (c *connectivity) findOutgoing(v VertexID) HalfEdgeID {
	for id, r := range c.halfedges {
		if tr, ok := c.halfedges[r.twin]; ok && tr.vertex == v {
			return id
		}
	}
	return NoHalfEdge
}

// collapseSide removes the face incident to h (if any) and re-twins its
// two other flanking half-edges across the gap, then removes h itself.
func (m *Mesh) collapseSide(h HalfEdgeID) {
	c := m.conn
	f := c.halfEdgeFace(h)
	if f == NoFace {
		c.removeHalfEdge(h)
		return
	}

	n1 := c.halfEdgeNext(h)
	n2 := c.halfEdgeNext(n1)

	flankA, flankB := c.halfEdgeTwin(n1), c.halfEdgeTwin(n2)
	c.setHalfEdgeTwin(flankA, flankB)

	for _, v := range []VertexID{c.halfEdgeVertex(n1), c.halfEdgeVertex(n2), c.halfEdgeVertex(h)} {
		if c.vertexHalfEdge(v) == n1 || c.vertexHalfEdge(v) == n2 || c.vertexHalfEdge(v) == h {
			c.setVertexHalfEdge(v, flankB)
		}
	}

	delete(c.halfedges, n1)
	freeID(&c.freeHalfEdges, n1)
	delete(c.halfedges, n2)
	freeID(&c.freeHalfEdges, n2)
	delete(c.halfedges, h)
	freeID(&c.freeHalfEdges, h)

	c.removeFace(f)
}

// RemoveFace detaches f from its three half-edges (their face becomes
// None) and cascade-removes any half-edge left with no face on either
// side, then any vertex left with no half-edge.
func (m *Mesh) RemoveFace(f FaceID) {
	c := m.conn
	hs := m.FaceHalfEdges(f)

	for _, h := range hs {
		c.setHalfEdgeFace(h, NoFace)
	}
	c.removeFace(f)

	for _, h := range hs {
		t := c.halfEdgeTwin(h)
		if c.halfEdgeFace(h) == NoFace && c.halfEdgeFace(t) == NoFace {
			o, d := m.origin(h), c.halfEdgeVertex(h)
			c.removeHalfEdge(h)
			c.removeHalfEdge(t)
			m.repairOrPrune(o)
			m.repairOrPrune(d)
		}
	}
}

// repairOrPrune re-seeds v's stored half-edge if the one it pointed to was
// just removed, or removes v outright if no outgoing half-edge remains.
func (m *Mesh) repairOrPrune(v VertexID) {
	c := m.conn
	if c.halfEdgeExists(c.vertexHalfEdge(v)) {
		return
	}
	if out := c.findOutgoing(v); out != NoHalfEdge {
		c.setVertexHalfEdge(v, out)
		return
	}
	c.removeVertex(v)
	m.pos.remove(v)
}

// SplitVertex splits one vertex into two along two of its outgoing
// half-edges, start and end. start and each half-edge after it, walked by
// previous.twin (the rotation VertexHalfEdges uses), up to but not
// including end, move to a newly created vertex at the same position as
// the original: their twins are retargeted to it. Used
// by BevelCurve. Returns the new vertex ID.
func (m *Mesh) SplitVertex(start, end HalfEdgeID) VertexID {
	c := m.conn
	v := m.origin(start)

	nv := c.newVertex()
	m.pos.set(nv, m.pos.get(v))

	cur := start
	for cur != end {
		t := c.halfEdgeTwin(cur)
		c.setHalfEdgeVertex(t, nv)
		cur = c.halfEdgeTwin(c.prevInFace(cur))
	}

	c.setVertexHalfEdge(nv, start)
	if c.vertexHalfEdge(v) == start {
		c.setVertexHalfEdge(v, end)
	}

	return nv
}

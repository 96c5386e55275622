package mesh

// Append copies every vertex and face of other into m as new entities,
// remembering the vertex mapping, then retwins any pair of half-edges
// whose endpoints (in the new, m-local vertex numbering) already match an
// already-copied face. Any half-edge still without a twin after all faces
// are copied gets a fresh boundary half-edge. Returns the vertex mapping
// other -> m.
func (m *Mesh) Append(other *Mesh) map[VertexID]VertexID {
	vmap := make(map[VertexID]VertexID, other.NumVertices())

	for _, v := range other.conn.vertexIDs() {
		nv := m.conn.newVertex()
		x, y, z := other.Position(v)
		m.SetPosition(nv, x, y, z)
		vmap[v] = nv
	}

	type edgeKey [2]VertexID
	shared := make(map[edgeKey]HalfEdgeID)

	for _, f := range other.conn.faceIDs() {
		ov0, ov1, ov2 := other.FaceVertices(f)
		v0, v1, v2 := vmap[ov0], vmap[ov1], vmap[ov2]

		_, hs := m.conn.createFace(v0, v1, v2)

		edges := [3][2]VertexID{{v0, v1}, {v1, v2}, {v2, v0}}
		for i, he := range hs {
			a, b := edges[i][0], edges[i][1]
			key := edgeKey{a, b}
			if a > b {
				key = edgeKey{b, a}
			}

			if twin, ok := shared[key]; ok {
				m.conn.setHalfEdgeTwin(he, twin)
				delete(shared, key)
			} else {
				shared[key] = he
			}
		}
	}

	m.conn.closeBoundary()

	return vmap
}

// MergeWith appends other into m and then merges overlapping primitives.
// Not transactional: if the merge pass fails with
// ErrActionWillResultInNonManifoldMesh, the append has already happened
// and is not rolled back (documented in §9 of the design notes as an open
// question the source itself leaves unresolved).
func (m *Mesh) MergeWith(other *Mesh) error {
	m.Append(other)
	return m.MergeOverlappingPrimitives()
}

// halfEdgeState classifies an undirected edge by how many faces are
// incident to it, for the purpose of merge preconditions.
type halfEdgeState int

const (
	edgeAlone halfEdgeState = iota
	edgeBoundary
	edgeInterior
)

func (m *Mesh) edgeState(h HalfEdgeID) halfEdgeState {
	t := m.conn.halfEdgeTwin(h)
	switch {
	case m.conn.halfEdgeFace(h) != NoFace && m.conn.halfEdgeFace(t) != NoFace:
		return edgeInterior
	case m.conn.halfEdgeFace(h) != NoFace || m.conn.halfEdgeFace(t) != NoFace:
		return edgeBoundary
	default:
		return edgeAlone
	}
}

// MergeOverlappingPrimitives finds vertices, edges and faces that
// geometrically coincide within the mesh's margin and fuses each group
// into one representative, fusing faces first, then vertices, then
// half-edges, and finishing with FixOrientation. Fails with
// ErrActionWillResultInNonManifoldMesh if fusing two half-edges would
// produce a fan of more than two faces around an edge; the surrounding
// merge may already have partially mutated the mesh in that case (see
// DESIGN.md's note on the open question this mirrors from the source).
func (m *Mesh) MergeOverlappingPrimitives() error {
	vertexClass := m.findVertexClasses()
	m.mergeFaceClasses(vertexClass)
	m.mergeVertexClasses(vertexClass)
	if err := m.mergeHalfEdgeClasses(); err != nil {
		return err
	}
	m.FixOrientation()
	return nil
}

// findVertexClasses groups vertices within margin of one another and
// returns a map from vertex ID to a representative (the lowest ID in its
// class). O(V^2); a spatial hash is a valid redesign (see §9) but out of
// scope here.
func (m *Mesh) findVertexClasses() map[VertexID]VertexID {
	ids := m.conn.vertexIDs()
	rep := make(map[VertexID]VertexID, len(ids))
	for _, v := range ids {
		rep[v] = v
	}

	sqr := m.SqrMargin()
	for i, a := range ids {
		for _, b := range ids[i+1:] {
			if rep[a] == rep[b] {
				continue
			}
			if m.pos.get(a).Sub(m.pos.get(b)).SqrMag() <= sqr {
				lo, hi := a, b
				if rep[hi] < rep[lo] {
					lo, hi = hi, lo
				}
				from, to := rep[hi], rep[lo]
				for _, v := range ids {
					if rep[v] == from {
						rep[v] = to
					}
				}
			}
		}
	}
	return rep
}

// mergeFaceClasses removes duplicate faces: any two faces whose three
// vertex classes coincide (in any order, so copies wound either way
// match) are collapsed to one.
func (m *Mesh) mergeFaceClasses(class map[VertexID]VertexID) {
	type key [3]VertexID
	seen := make(map[key]bool)

	for _, f := range m.conn.faceIDs() {
		v0, v1, v2 := m.FaceVertices(f)
		k := canonicalTriple(class[v0], class[v1], class[v2])
		if seen[k] {
			m.RemoveFace(f)
			continue
		}
		seen[k] = true
	}
}

func canonicalTriple(a, b, c VertexID) [3]VertexID {
	arr := [3]VertexID{a, b, c}
	for i := 0; i < 3; i++ {
		for j := i + 1; j < 3; j++ {
			if arr[j] < arr[i] {
				arr[i], arr[j] = arr[j], arr[i]
			}
		}
	}
	return arr
}

// mergeVertexClasses retargets every half-edge pointing to a
// non-representative vertex to its class representative, then removes
// the dying vertices.
func (m *Mesh) mergeVertexClasses(class map[VertexID]VertexID) {
	for _, h := range m.conn.halfEdgeIDs() {
		v := m.conn.halfEdgeVertex(h)
		if rep := class[v]; rep != v {
			m.conn.setHalfEdgeVertex(h, rep)
		}
	}

	for v, rep := range class {
		if rep != v && m.conn.vertexExists(v) {
			m.conn.removeVertex(v)
			m.pos.remove(v)
		}
	}

	for v := range class {
		if !m.conn.vertexExists(v) {
			continue
		}
		if !m.conn.halfEdgeExists(m.conn.vertexHalfEdge(v)) {
			m.conn.setVertexHalfEdge(v, m.conn.findOutgoing(v))
		}
	}
}

// mergeHalfEdgeClasses finds pairs of undirected edges whose endpoint
// pairs now coincide (post vertex-merge) and fuses them, enforcing
// manifoldness: an Interior edge may only fuse with an Alone edge; two
// Boundary edges may only fuse if doing so would not create a fan of more
// than two faces.
func (m *Mesh) mergeHalfEdgeClasses() error {
	type key [2]VertexID
	groups := make(map[key][]HalfEdgeID)

	for _, h := range m.conn.halfEdgeIDs() {
		if !m.conn.halfEdgeExists(h) {
			continue
		}
		if m.CanonicalEdge(h) != h {
			continue
		}
		o, t := m.EdgeEndpoints(h)
		k := key{o, t}
		if o > t {
			k = key{t, o}
		}
		groups[k] = append(groups[k], h)
	}

	for _, edges := range groups {
		if len(edges) < 2 {
			continue
		}

		canonical := edges[0]
		for _, h := range edges[1:] {
			if !m.conn.halfEdgeExists(h) || !m.conn.halfEdgeExists(canonical) {
				continue
			}
			if err := m.fuseHalfEdges(canonical, h); err != nil {
				return err
			}
		}
	}

	return nil
}

// fuseHalfEdges fuses the undirected edge of b into that of a. Both sides'
// faces (if any) are kept; the pair survives as whichever one or two
// half-edges actually bound a face, the other pair's half-edges are
// discarded. Fails with ErrActionWillResultInNonManifoldMesh if the two
// edges together already bound more than two faces (a>2-fan).
func (m *Mesh) fuseHalfEdges(a, b HalfEdgeID) error {
	c := m.conn

	facesOf := func(h HalfEdgeID) int {
		n := 0
		if c.halfEdgeFace(h) != NoFace {
			n++
		}
		if c.halfEdgeFace(c.halfEdgeTwin(h)) != NoFace {
			n++
		}
		return n
	}
	if facesOf(a)+facesOf(b) > 2 {
		return ErrActionWillResultInNonManifoldMesh
	}

	oa, ta := m.EdgeEndpoints(a)
	ob, tb := m.EdgeEndpoints(b)

	at := c.halfEdgeTwin(a)
	bt := c.halfEdgeTwin(b)

	faceSide := func(h, t HalfEdgeID) (face, boundary HalfEdgeID, has bool) {
		if c.halfEdgeFace(h) != NoFace {
			return h, t, true
		}
		if c.halfEdgeFace(t) != NoFace {
			return t, h, true
		}
		return NoHalfEdge, NoHalfEdge, false
	}

	aFace, aBoundary, aHas := faceSide(a, at)
	bFace, bBoundary, bHas := faceSide(b, bt)

	discard := func(h HalfEdgeID) {
		if h != NoHalfEdge && c.halfEdgeExists(h) {
			delete(c.halfedges, h)
			freeID(&c.freeHalfEdges, h)
		}
	}

	switch {
	case aHas && bHas:
		// Both sides already bound a face; glue the two face-bearing
		// half-edges into each other's twin and drop both boundary stubs.
		c.setHalfEdgeTwin(aFace, bFace)
		discard(aBoundary)
		discard(bBoundary)
	case aHas:
		discard(b)
		discard(bt)
	case bHas:
		discard(a)
		discard(at)
	default:
		discard(b)
		discard(bt)
	}

	for _, v := range []VertexID{oa, ta, ob, tb} {
		if c.vertexExists(v) && !c.halfEdgeExists(c.vertexHalfEdge(v)) {
			c.setVertexHalfEdge(v, c.findOutgoing(v))
		}
	}

	return nil
}

package mesh

import "github.com/ajcurley/trimesh/geom"

// Stitch pairs a vertex created in one mesh with the vertex created in
// another mesh that occupies the same geometric point, recorded by the
// primitive splitter so that downstream component-splitting can find the
// intersection curve again.
type Stitch struct {
	VertexA VertexID
	VertexB VertexID
}

// primKey identifies a primitive within one mesh for deduplication and
// face/edge-split registry lookups.
type primKey struct {
	kind primitiveKind
	id   uint64
}

func keyOf(p Primitive) primKey {
	switch {
	case p.IsVertex():
		return primKey{primitiveVertex, uint64(p.Vertex())}
	case p.IsEdge():
		return primKey{primitiveEdge, uint64(p.HalfEdge())}
	default:
		return primKey{primitiveFace, uint64(p.Face())}
	}
}

// SplitPrimitives splits both m and other so that every geometric
// intersection point between them becomes a vertex in both meshes, with a
// matching stitched boundary on each side. It implements the algorithm of
// §4.5: face splits first (registered per-face so repeat hits route to
// the correct child face), then edge splits (registered per-edge), then
// iterates on the half-edges newly produced by those splits until no new
// edges are produced.
func (m *Mesh) SplitPrimitives(other *Mesh) []Stitch {
	faceRegistryA := make(map[primKey]FaceID)
	faceRegistryB := make(map[primKey]FaceID)
	edgeRegistryA := make(map[primKey]HalfEdgeID)
	edgeRegistryB := make(map[primKey]HalfEdgeID)

	var stitches []Stitch

	edgesA := m.conn.halfEdgeIDs()
	edgesB := other.conn.halfEdgeIDs()

	for {
		type hit struct {
			primA, primB Primitive
			pointA       geom.Vector
		}
		var hits []hit

		for _, h := range edgesA {
			if !m.conn.halfEdgeExists(h) {
				continue
			}
			o, t := m.EdgeEndpoints(h)
			p0, p1 := m.pos.get(o), m.pos.get(t)
			for _, f := range other.conn.faceIDs() {
				if inter, ok := other.FaceLinePiece(f, p0, p1); ok && !inter.IsLinePiece {
					hits = append(hits, hit{primA: EdgePrimitive(h), primB: inter.Primitive0, pointA: inter.Point0})
				}
			}
		}

		for _, h := range edgesB {
			if !other.conn.halfEdgeExists(h) {
				continue
			}
			o, t := other.EdgeEndpoints(h)
			p0, p1 := other.pos.get(o), other.pos.get(t)
			for _, f := range m.conn.faceIDs() {
				if inter, ok := m.FaceLinePiece(f, p0, p1); ok && !inter.IsLinePiece {
					hits = append(hits, hit{primA: inter.Primitive0, primB: EdgePrimitive(h), pointA: inter.Point0})
				}
			}
		}

		if len(hits) == 0 {
			break
		}

		var nextA, nextB []HalfEdgeID

		for _, hit := range hits {
			va := m.resolveVertex(hit.primA, hit.pointA, faceRegistryA, edgeRegistryA, &nextA)
			vb := other.resolveVertex(hit.primB, hit.pointA, faceRegistryB, edgeRegistryB, &nextB)
			if va == NoVertex || vb == NoVertex {
				continue
			}
			stitches = append(stitches, Stitch{VertexA: va, VertexB: vb})
		}

		if len(nextA) == 0 && len(nextB) == 0 {
			break
		}
		edgesA, edgesB = nextA, nextB
	}

	return stitches
}

// resolveVertex turns a primitive + point into a concrete vertex in this
// mesh, splitting a face or edge if necessary and recording any newly
// created outgoing half-edges (other than along the original split edge)
// for the next iteration of SplitPrimitives.
func (m *Mesh) resolveVertex(p Primitive, point geom.Vector, faceRegistry map[primKey]FaceID, edgeRegistry map[primKey]HalfEdgeID, newEdges *[]HalfEdgeID) VertexID {
	switch {
	case p.IsVertex():
		return p.Vertex()

	case p.IsEdge():
		h := p.HalfEdge()
		if existing, ok := edgeRegistry[keyOf(p)]; ok {
			h = existing
		}
		if !m.conn.halfEdgeExists(h) {
			return NoVertex
		}
		o, t := m.EdgeEndpoints(h)
		nv := m.SplitEdge(h, point)
		for _, out := range m.VertexHalfEdges(nv) {
			if tgt := m.conn.halfEdgeVertex(out); tgt == o || tgt == t {
				continue
			}
			*newEdges = append(*newEdges, out)
		}
		return nv

	case p.IsFace():
		f := p.Face()
		if existing, ok := faceRegistry[keyOf(p)]; ok {
			f = existing
		}
		if !m.conn.faceExists(f) {
			return NoVertex
		}
		nv := m.SplitFace(f, point)
		for _, out := range m.VertexHalfEdges(nv) {
			*newEdges = append(*newEdges, out)
			if other := m.conn.halfEdgeFace(m.conn.halfEdgeTwin(out)); other != NoFace {
				faceRegistry[primKey{primitiveFace, uint64(other)}] = other
			}
		}
		return nv
	}

	return NoVertex
}

// IsAtIntersectionPredicate returns a BlockPredicate, for use with
// ConnectedComponentsWithLimit/Split, that is true for a half-edge h iff
// both of its endpoints stitch to vertices in other AND the two faces
// incident to h do not both overlap with faces of other on the same side
// (an overlap is a face whose three vertices all stitch to positions
// coincident with another face's three vertices). counterpart maps a
// stitched vertex of m to its partner vertex in other; pass a nil other
// (and nil counterpart) to fall back to the plain both-endpoints-stitched
// test when no overlap information is available.
func (m *Mesh) IsAtIntersectionPredicate(stitched map[VertexID]bool, counterpart map[VertexID]VertexID, other *Mesh) BlockPredicate {
	return func(h HalfEdgeID) bool {
		o, t := m.EdgeEndpoints(h)
		if !stitched[o] || !stitched[t] {
			return false
		}
		if other == nil {
			return true
		}

		f1 := m.conn.halfEdgeFace(h)
		f2 := m.conn.halfEdgeFace(m.conn.halfEdgeTwin(h))
		if m.faceCoincidesWithOther(f1, other, counterpart) && m.faceCoincidesWithOther(f2, other, counterpart) {
			return false
		}
		return true
	}
}

// faceCoincidesWithOther reports whether f's three vertices all stitch
// (via counterpart) to the three vertices of some face of other -- i.e.
// f lies entirely on top of a face other already has, rather than
// genuinely crossing into it.
func (m *Mesh) faceCoincidesWithOther(f FaceID, other *Mesh, counterpart map[VertexID]VertexID) bool {
	if f == NoFace {
		return false
	}

	v0, v1, v2 := m.FaceVertices(f)
	c0, ok0 := counterpart[v0]
	c1, ok1 := counterpart[v1]
	c2, ok2 := counterpart[v2]
	if !ok0 || !ok1 || !ok2 {
		return false
	}

	for _, g := range other.IncidentFaces(c0) {
		g0, g1, g2 := other.FaceVertices(g)
		if sameVertexTriple(g0, g1, g2, c0, c1, c2) {
			return true
		}
	}
	return false
}

func sameVertexTriple(a0, a1, a2, b0, b1, b2 VertexID) bool {
	matches := func(x VertexID) bool { return x == b0 || x == b1 || x == b2 }
	return matches(a0) && matches(a1) && matches(a2)
}

// SplitAtIntersection composes the primitive splitter, stitch lookup and
// component splitter: it cuts both m and other along their intersection
// curve and returns the resulting pieces of each.
func (m *Mesh) SplitAtIntersection(other *Mesh) (piecesA, piecesB []*Mesh, stitches []Stitch) {
	stitches = m.SplitPrimitives(other)

	stitchedA := make(map[VertexID]bool, len(stitches))
	stitchedB := make(map[VertexID]bool, len(stitches))
	counterpartA := make(map[VertexID]VertexID, len(stitches))
	counterpartB := make(map[VertexID]VertexID, len(stitches))
	for _, s := range stitches {
		stitchedA[s.VertexA] = true
		stitchedB[s.VertexB] = true
		counterpartA[s.VertexA] = s.VertexB
		counterpartB[s.VertexB] = s.VertexA
	}

	piecesA = m.Split(m.IsAtIntersectionPredicate(stitchedA, counterpartA, other))
	piecesB = other.Split(other.IsAtIntersectionPredicate(stitchedB, counterpartB, m))

	return piecesA, piecesB, stitches
}

package mesh

import "container/heap"

// vertexRecord is the connectivity record for a vertex: one outgoing
// half-edge, or NoHalfEdge if the vertex is lonely.
type vertexRecord struct {
	halfedge HalfEdgeID
}

// halfEdgeRecord is the connectivity record for a half-edge. vertex is the
// half-edge's target (the vertex it points to); face is NoFace for a
// boundary half-edge. twin is NoHalfEdge only transiently, mid-construction
// -- every committed half-edge has a twin (I6).
type halfEdgeRecord struct {
	vertex VertexID
	twin   HalfEdgeID
	next   HalfEdgeID
	face   FaceID
}

// faceRecord is the connectivity record for a face: one of its three
// bounding half-edges.
type faceRecord struct {
	halfedge HalfEdgeID
}

// connectivity is the authoritative, sole mutator of mesh topology: three
// keyed arenas (vertex/half-edge/face to record) addressed by opaque
// handles that stay valid across unrelated edits. Allocation always reuses
// the lowest free slot so that repeated edit/cleanup cycles do not leak the
// handle space, mirroring the arena-plus-freelist design of the connectivity
// store this kernel generalizes from an index-array predecessor to
// hash-map-keyed, removal-stable records.
type connectivity struct {
	vertices  map[VertexID]vertexRecord
	halfedges map[HalfEdgeID]halfEdgeRecord
	faces     map[FaceID]faceRecord

	nextVertex   VertexID
	nextHalfEdge HalfEdgeID
	nextFace     FaceID

	freeVertices  idHeap[VertexID]
	freeHalfEdges idHeap[HalfEdgeID]
	freeFaces     idHeap[FaceID]
}

func newConnectivity() *connectivity {
	return &connectivity{
		vertices:     make(map[VertexID]vertexRecord),
		halfedges:    make(map[HalfEdgeID]halfEdgeRecord),
		faces:        make(map[FaceID]faceRecord),
		nextVertex:   1,
		nextHalfEdge: 1,
		nextFace:     1,
	}
}

// idHeap is a min-heap of freed handles, reused for whichever ID type
// needs lowest-free-slot allocation.
type idHeap[T ~uint64] []T

func (h idHeap[T]) Len() int            { return len(h) }
func (h idHeap[T]) Less(i, j int) bool  { return h[i] < h[j] }
func (h idHeap[T]) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *idHeap[T]) Push(x interface{}) { *h = append(*h, x.(T)) }
func (h *idHeap[T]) Pop() interface{} {
	old := *h
	n := len(old)
	v := old[n-1]
	*h = old[:n-1]
	return v
}

func allocID[T ~uint64](free *idHeap[T], next *T) T {
	if len(*free) > 0 {
		return heap.Pop(free).(T)
	}
	id := *next
	*next++
	return id
}

func freeID[T ~uint64](free *idHeap[T], id T) {
	heap.Push(free, id)
}

// --- vertices ---

func (c *connectivity) newVertex() VertexID {
	id := allocID(&c.freeVertices, &c.nextVertex)
	c.vertices[id] = vertexRecord{halfedge: NoHalfEdge}
	return id
}

func (c *connectivity) vertexExists(v VertexID) bool {
	_, ok := c.vertices[v]
	return ok
}

func (c *connectivity) vertexHalfEdge(v VertexID) HalfEdgeID {
	return c.vertices[v].halfedge
}

func (c *connectivity) setVertexHalfEdge(v VertexID, h HalfEdgeID) {
	r := c.vertices[v]
	r.halfedge = h
	c.vertices[v] = r
}

func (c *connectivity) removeVertex(v VertexID) {
	delete(c.vertices, v)
	freeID(&c.freeVertices, v)
}

func (c *connectivity) numVertices() int { return len(c.vertices) }

// vertexIDs returns a snapshot of the current vertex handles. Global
// iterators must snapshot like this: callers routinely mutate the mesh
// while iterating, and a live map range would be unsound.
func (c *connectivity) vertexIDs() []VertexID {
	ids := make([]VertexID, 0, len(c.vertices))
	for id := range c.vertices {
		ids = append(ids, id)
	}
	return ids
}

// --- half-edges ---

func (c *connectivity) newHalfEdge(vertex VertexID, next HalfEdgeID, face FaceID) HalfEdgeID {
	id := allocID(&c.freeHalfEdges, &c.nextHalfEdge)
	c.halfedges[id] = halfEdgeRecord{vertex: vertex, twin: NoHalfEdge, next: next, face: face}
	return id
}

func (c *connectivity) halfEdgeExists(h HalfEdgeID) bool {
	_, ok := c.halfedges[h]
	return ok
}

func (c *connectivity) halfEdgeVertex(h HalfEdgeID) VertexID     { return c.halfedges[h].vertex }
func (c *connectivity) halfEdgeTwin(h HalfEdgeID) HalfEdgeID     { return c.halfedges[h].twin }
func (c *connectivity) halfEdgeNext(h HalfEdgeID) HalfEdgeID     { return c.halfedges[h].next }
func (c *connectivity) halfEdgeFace(h HalfEdgeID) FaceID         { return c.halfedges[h].face }
func (c *connectivity) halfEdgeIsBoundary(h HalfEdgeID) bool     { return c.halfedges[h].face == NoFace }

func (c *connectivity) setHalfEdgeVertex(h HalfEdgeID, v VertexID) {
	r := c.halfedges[h]
	r.vertex = v
	c.halfedges[h] = r
}

func (c *connectivity) setHalfEdgeNext(h, next HalfEdgeID) {
	r := c.halfedges[h]
	r.next = next
	c.halfedges[h] = r
}

func (c *connectivity) setHalfEdgeFace(h HalfEdgeID, f FaceID) {
	r := c.halfedges[h]
	r.face = f
	c.halfedges[h] = r
}

// setHalfEdgeTwin sets the twin relationship symmetrically: a.twin = b and
// b.twin = a.
func (c *connectivity) setHalfEdgeTwin(a, b HalfEdgeID) {
	ra := c.halfedges[a]
	ra.twin = b
	c.halfedges[a] = ra

	rb := c.halfedges[b]
	rb.twin = a
	c.halfedges[b] = rb
}

// clearHalfEdgeTwin sets h's own twin field to NoHalfEdge without touching
// whatever h.twin currently points at. Used when a half-edge's existing
// twin relationship has been invalidated by surgery elsewhere (the old
// twin gets its own twin reassigned separately, or discarded).
func (c *connectivity) clearHalfEdgeTwin(h HalfEdgeID) {
	r := c.halfedges[h]
	r.twin = NoHalfEdge
	c.halfedges[h] = r
}

// removeHalfEdge deletes h and clears its twin's back-pointer (the twin
// itself is not removed; the caller decides its fate).
func (c *connectivity) removeHalfEdge(h HalfEdgeID) {
	if twin, ok := c.halfedges[h]; ok && twin.twin != NoHalfEdge {
		if r, ok := c.halfedges[twin.twin]; ok {
			r.twin = NoHalfEdge
			c.halfedges[twin.twin] = r
		}
	}
	delete(c.halfedges, h)
	freeID(&c.freeHalfEdges, h)
}

func (c *connectivity) numHalfEdges() int { return len(c.halfedges) }

func (c *connectivity) halfEdgeIDs() []HalfEdgeID {
	ids := make([]HalfEdgeID, 0, len(c.halfedges))
	for id := range c.halfedges {
		ids = append(ids, id)
	}
	return ids
}

// --- faces ---

func (c *connectivity) newFace() FaceID {
	id := allocID(&c.freeFaces, &c.nextFace)
	c.faces[id] = faceRecord{halfedge: NoHalfEdge}
	return id
}

func (c *connectivity) faceExists(f FaceID) bool {
	_, ok := c.faces[f]
	return ok
}

func (c *connectivity) faceHalfEdge(f FaceID) HalfEdgeID { return c.faces[f].halfedge }

func (c *connectivity) setFaceHalfEdge(f FaceID, h HalfEdgeID) {
	r := c.faces[f]
	r.halfedge = h
	c.faces[f] = r
}

func (c *connectivity) removeFace(f FaceID) {
	delete(c.faces, f)
	freeID(&c.freeFaces, f)
}

func (c *connectivity) numFaces() int { return len(c.faces) }

func (c *connectivity) faceIDs() []FaceID {
	ids := make([]FaceID, 0, len(c.faces))
	for id := range c.faces {
		ids = append(ids, id)
	}
	return ids
}

// createFace atomically builds three half-edges and one face from three
// vertices in CCW winding order, wires their next-cycle, and updates the
// three vertices' stored outgoing half-edge. Twins are left unset (NoHalfEdge):
// callers pair them either via a shared-edge dedup pass (builder) or an
// explicit retwin pass (append).
func (c *connectivity) createFace(v0, v1, v2 VertexID) (FaceID, [3]HalfEdgeID) {
	h0 := c.newHalfEdge(v1, NoHalfEdge, NoFace)
	h1 := c.newHalfEdge(v2, NoHalfEdge, NoFace)
	h2 := c.newHalfEdge(v0, NoHalfEdge, NoFace)

	c.setHalfEdgeNext(h0, h1)
	c.setHalfEdgeNext(h1, h2)
	c.setHalfEdgeNext(h2, h0)

	f := c.newFace()
	c.setFaceHalfEdge(f, h0)

	c.setHalfEdgeFace(h0, f)
	c.setHalfEdgeFace(h1, f)
	c.setHalfEdgeFace(h2, f)

	c.setVertexHalfEdge(v0, h0)
	c.setVertexHalfEdge(v1, h1)
	c.setVertexHalfEdge(v2, h2)

	return f, [3]HalfEdgeID{h0, h1, h2}
}

// clone deep-copies the connectivity store.
func (c *connectivity) clone() *connectivity {
	out := &connectivity{
		vertices:     make(map[VertexID]vertexRecord, len(c.vertices)),
		halfedges:    make(map[HalfEdgeID]halfEdgeRecord, len(c.halfedges)),
		faces:        make(map[FaceID]faceRecord, len(c.faces)),
		nextVertex:   c.nextVertex,
		nextHalfEdge: c.nextHalfEdge,
		nextFace:     c.nextFace,
	}
	for k, v := range c.vertices {
		out.vertices[k] = v
	}
	for k, v := range c.halfedges {
		out.halfedges[k] = v
	}
	for k, v := range c.faces {
		out.faces[k] = v
	}
	out.freeVertices = append(idHeap[VertexID]{}, c.freeVertices...)
	out.freeHalfEdges = append(idHeap[HalfEdgeID]{}, c.freeHalfEdges...)
	out.freeFaces = append(idHeap[FaceID]{}, c.freeFaces...)
	return out
}

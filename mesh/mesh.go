// Package mesh implements an in-memory half-edge connectivity engine for
// manifold triangle meshes: the data model and invariants (checked by
// IsValid), local
// topological edits, traversal and iteration, geometric intersection
// primitives, mesh-mesh intersection with primitive splitting, connected
// component splitting, and mesh stitching (append + overlap-merge).
//
// A Mesh is a value obtained from New, NewFromIndexed or NewFromTriMesh. It
// is not safe for concurrent mutation; two independently constructed Mesh
// values may be used from different goroutines without synchronization.
package mesh

import "github.com/ajcurley/trimesh/geom"

// DefaultMargin is the default absolute classification margin (epsilon)
// used by intersection primitives and the validity predicate: vertex
// coincidence, plane inclusion and segment distance are all classified
// against this single scalar. It is part of the public contract; construct
// a Mesh with a different value via Builder.WithMargin if a consumer needs
// a looser or tighter tolerance.
const DefaultMargin = 1e-7

// Mesh is a representation of a triangle mesh efficient for calculating on
// and making local changes to. Positions and connectivity are modeled as
// separate tables so that purely topological edits need not touch geometry.
type Mesh struct {
	conn   *connectivity
	pos    *positions
	margin float64
}

func newMesh(margin float64) *Mesh {
	if margin <= 0 {
		margin = DefaultMargin
	}
	return &Mesh{
		conn:   newConnectivity(),
		pos:    newPositions(),
		margin: margin,
	}
}

// Margin returns the absolute classification margin (epsilon) this mesh
// uses for intersection and validity queries.
func (m *Mesh) Margin() float64 { return m.margin }

// SqrMargin returns Margin() squared, the threshold used by
// squared-distance comparisons.
func (m *Mesh) SqrMargin() float64 { return m.margin * m.margin }

// NumVertices returns the number of vertices.
func (m *Mesh) NumVertices() int { return m.conn.numVertices() }

// NumHalfEdges returns the number of half-edges (interior and boundary).
func (m *Mesh) NumHalfEdges() int { return m.conn.numHalfEdges() }

// NumFaces returns the number of faces.
func (m *Mesh) NumFaces() int { return m.conn.numFaces() }

// VertexExists reports whether v currently names a vertex.
func (m *Mesh) VertexExists(v VertexID) bool { return m.conn.vertexExists(v) }

// HalfEdgeExists reports whether h currently names a half-edge.
func (m *Mesh) HalfEdgeExists(h HalfEdgeID) bool { return m.conn.halfEdgeExists(h) }

// FaceExists reports whether f currently names a face.
func (m *Mesh) FaceExists(f FaceID) bool { return m.conn.faceExists(f) }

// Position returns the position of vertex v.
func (m *Mesh) Position(v VertexID) (x, y, z float64) {
	p := m.pos.get(v)
	return p.X(), p.Y(), p.Z()
}

// SetPosition sets the position of vertex v.
func (m *Mesh) SetPosition(v VertexID, x, y, z float64) {
	m.pos.set(v, geom.NewVector(x, y, z))
}

// Clone returns a deep copy of the mesh. A Mesh may be cloned freely; two
// independent clones may be processed in parallel by different threads
// without synchronization.
func (m *Mesh) Clone() *Mesh {
	return &Mesh{
		conn:   m.conn.clone(),
		pos:    m.pos.clone(),
		margin: m.margin,
	}
}

// Translate shifts every vertex position by (dx, dy, dz).
func (m *Mesh) Translate(dx, dy, dz float64) {
	offset := geom.NewVector(dx, dy, dz)
	for id, p := range m.pos.points {
		m.pos.points[id] = p.Add(offset)
	}
}

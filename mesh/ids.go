package mesh

// VertexID is an opaque, stable handle to a vertex. IDs are map keys, not
// array indices: they remain valid across unrelated edits until the vertex
// they name is removed.
type VertexID uint64

// HalfEdgeID is an opaque, stable handle to a half-edge.
type HalfEdgeID uint64

// FaceID is an opaque, stable handle to a face.
type FaceID uint64

// NoVertex, NoHalfEdge and NoFace are the sentinel "absent" handles. A
// freshly allocated ID is never equal to its sentinel, so a zero-valued
// field unambiguously means "not set".
const (
	NoVertex   VertexID   = 0
	NoHalfEdge HalfEdgeID = 0
	NoFace     FaceID     = 0
)

// Primitive is a sum type over the three handle kinds, returned alongside
// intersection points so callers know which topological entity to
// subdivide.
type Primitive struct {
	kind primitiveKind
	v    VertexID
	h    HalfEdgeID
	f    FaceID
}

type primitiveKind uint8

const (
	primitiveVertex primitiveKind = iota
	primitiveEdge
	primitiveFace
)

// VertexPrimitive wraps a vertex handle as a Primitive.
func VertexPrimitive(v VertexID) Primitive { return Primitive{kind: primitiveVertex, v: v} }

// EdgePrimitive wraps a half-edge handle as a Primitive. Callers should pass
// the canonical half-edge of the edge (see Mesh.CanonicalEdge).
func EdgePrimitive(h HalfEdgeID) Primitive { return Primitive{kind: primitiveEdge, h: h} }

// FacePrimitive wraps a face handle as a Primitive.
func FacePrimitive(f FaceID) Primitive { return Primitive{kind: primitiveFace, f: f} }

// IsVertex reports whether the primitive names a vertex.
func (p Primitive) IsVertex() bool { return p.kind == primitiveVertex }

// IsEdge reports whether the primitive names an edge.
func (p Primitive) IsEdge() bool { return p.kind == primitiveEdge }

// IsFace reports whether the primitive names a face.
func (p Primitive) IsFace() bool { return p.kind == primitiveFace }

// Vertex returns the wrapped vertex handle; valid only when IsVertex.
func (p Primitive) Vertex() VertexID { return p.v }

// HalfEdge returns the wrapped half-edge handle; valid only when IsEdge.
func (p Primitive) HalfEdge() HalfEdgeID { return p.h }

// Face returns the wrapped face handle; valid only when IsFace.
func (p Primitive) Face() FaceID { return p.f }

// Equal reports whether two primitives name the same entity.
func (p Primitive) Equal(other Primitive) bool {
	if p.kind != other.kind {
		return false
	}
	switch p.kind {
	case primitiveVertex:
		return p.v == other.v
	case primitiveEdge:
		return p.h == other.h
	default:
		return p.f == other.f
	}
}

package mesh

import (
	"math"

	"github.com/ajcurley/trimesh/geom"
)

// PlaneLineResult tags the outcome of PlaneLinePiece.
type PlaneLineResult int

const (
	// NoPlaneIntersection means the segment does not meet the plane.
	NoPlaneIntersection PlaneLineResult = iota
	// P0InPlane means the segment's first endpoint lies in the plane.
	P0InPlane
	// P1InPlane means the segment's second endpoint lies in the plane.
	P1InPlane
	// LineInPlane means the whole segment lies in the plane. See §9: when
	// a segment lies entirely within a face's plane but extends outside
	// the triangle, no LinePiece is produced if both endpoints are
	// outside the triangle; this is a documented limitation, not a bug.
	LineInPlane
	// PlaneIntersection means the segment crosses the plane at a single
	// interior point.
	PlaneIntersection
)

// Intersection is either a single point tagged with the primitive it
// belongs to, or a line piece spanning two primitives (used when a
// segment lies along a shared edge or face boundary).
type Intersection struct {
	IsLinePiece bool

	Primitive0 Primitive
	Point0     geom.Vector

	Primitive1 Primitive
	Point1     geom.Vector
}

// PlaneRay returns the ray parameter t >= 0 at which the ray meets the
// plane through a with unit normal n, or ok=false if the ray is parallel
// to the plane or the intersection lies behind the origin.
func PlaneRay(r geom.Ray, a, n geom.Vector) (t float64, ok bool) {
	denom := n.Dot(r.Direction)
	if math.Abs(denom) < 1e-12 {
		return 0, false
	}
	t = n.Dot(a.Sub(r.Origin)) / denom
	return t, t >= 0
}

// PlaneLinePiece classifies a line segment p0-p1 against the plane
// through a with unit normal n.
func PlaneLinePiece(p0, p1, a, n geom.Vector, margin float64) (PlaneLineResult, geom.Vector) {
	d0 := n.Dot(p0.Sub(a))
	d1 := n.Dot(p1.Sub(a))

	in0 := math.Abs(d0) <= margin
	in1 := math.Abs(d1) <= margin

	switch {
	case in0 && in1:
		return LineInPlane, geom.Vector{}
	case in0:
		return P0InPlane, p0
	case in1:
		return P1InPlane, p1
	}

	if (d0 > 0) == (d1 > 0) {
		return NoPlaneIntersection, geom.Vector{}
	}

	s := d0 / (d0 - d1)
	return PlaneIntersection, p0.Lerp(p1, s)
}

// PointInTriangle reports whether p, assumed already on the triangle's
// plane, lies within it via barycentric coordinates.
func PointInTriangle(p, a, b, c geom.Vector) bool {
	t := geom.NewTriangle(a, b, c)
	u, v, w := t.Barycentric(p)
	return u > 0 && u < 1 && v > 0 && v < 1 && w > 0 && w < 1
}

// PointToSegmentDistance returns the distance from p to the segment a-b,
// via clamped projection.
func PointToSegmentDistance(p, a, b geom.Vector) float64 {
	ab := b.Sub(a)
	denom := ab.Dot(ab)
	if denom < 1e-18 {
		return p.Sub(a).Mag()
	}
	s := clamp(p.Sub(a).Dot(ab)/denom, 0, 1)
	closest := a.Add(ab.MulScalar(s))
	return p.Sub(closest).Mag()
}

// VertexPoint returns v if p lies within margin of v's position.
func (m *Mesh) VertexPoint(v VertexID, p geom.Vector) (Primitive, bool) {
	if m.pos.get(v).Sub(p).SqrMag() <= m.SqrMargin() {
		return VertexPrimitive(v), true
	}
	return Primitive{}, false
}

// EdgePoint classifies p (assumed on h's line) against h's undirected
// edge: the nearer endpoint if p is within margin of it, else the edge
// itself (canonicalized to the smaller of h and its twin) if the
// perpendicular distance to the segment is within margin.
func (m *Mesh) EdgePoint(h HalfEdgeID, p geom.Vector) (Primitive, bool) {
	o, t := m.EdgeEndpoints(h)
	if prim, ok := m.VertexPoint(o, p); ok {
		return prim, true
	}
	if prim, ok := m.VertexPoint(t, p); ok {
		return prim, true
	}
	if PointToSegmentDistance(p, m.pos.get(o), m.pos.get(t)) <= m.Margin() {
		return EdgePrimitive(m.CanonicalEdge(h)), true
	}
	return Primitive{}, false
}

// FacePoint classifies p against face f: off-plane points return false;
// in-plane points dispatch to each bounding edge first, then to a
// barycentric interior test.
func (m *Mesh) FacePoint(f FaceID, p geom.Vector) (Primitive, bool) {
	n := m.FaceUnitNormal(f)
	v0, _, _ := m.FaceVertices(f)
	a := m.pos.get(v0)

	if math.Abs(n.Dot(p.Sub(a))) > m.Margin() {
		return Primitive{}, false
	}

	for _, h := range m.FaceHalfEdges(f) {
		if prim, ok := m.EdgePoint(h, p); ok {
			return prim, true
		}
	}

	va, vb, vc := m.FaceVertices(f)
	if PointInTriangle(p, m.pos.get(va), m.pos.get(vb), m.pos.get(vc)) {
		return FacePrimitive(f), true
	}

	return Primitive{}, false
}

// FaceRay intersects ray r with face f's plane, then classifies the hit
// point against the face.
func (m *Mesh) FaceRay(f FaceID, r geom.Ray) (Primitive, geom.Vector, bool) {
	n := m.FaceUnitNormal(f)
	v0, _, _ := m.FaceVertices(f)
	a := m.pos.get(v0)

	t, ok := PlaneRay(r, a, n)
	if !ok {
		return Primitive{}, geom.Vector{}, false
	}

	p := r.At(t)
	prim, ok := m.FacePoint(f, p)
	return prim, p, ok
}

// FaceLinePiece intersects segment p0-p1 with face f's plane and
// classifies the result against the face.
func (m *Mesh) FaceLinePiece(f FaceID, p0, p1 geom.Vector) (Intersection, bool) {
	n := m.FaceUnitNormal(f)
	v0, _, _ := m.FaceVertices(f)
	a := m.pos.get(v0)

	result, p := PlaneLinePiece(p0, p1, a, n, m.Margin())

	switch result {
	case PlaneIntersection:
		if prim, ok := m.FacePoint(f, p); ok {
			return Intersection{Primitive0: prim, Point0: p}, true
		}
	case P0InPlane:
		if prim, ok := m.FacePoint(f, p0); ok {
			return Intersection{Primitive0: prim, Point0: p0}, true
		}
	case P1InPlane:
		if prim, ok := m.FacePoint(f, p1); ok {
			return Intersection{Primitive0: prim, Point0: p1}, true
		}
	case LineInPlane:
		prim0, ok0 := m.FacePoint(f, p0)
		prim1, ok1 := m.FacePoint(f, p1)
		switch {
		case ok0 && ok1:
			return Intersection{IsLinePiece: true, Primitive0: prim0, Point0: p0, Primitive1: prim1, Point1: p1}, true
		case ok0:
			return Intersection{Primitive0: prim0, Point0: p0}, true
		case ok1:
			return Intersection{Primitive0: prim1, Point0: p1}, true
		}
	}

	return Intersection{}, false
}

// MeshRayIntersection returns the closest face/point the ray hits across
// the whole mesh, brute force over all faces (O(F); see §9 — no spatial
// index is required for correctness).
func (m *Mesh) MeshRayIntersection(r geom.Ray) (Primitive, geom.Vector, bool) {
	var (
		best      Primitive
		bestPoint geom.Vector
		bestDist  = math.Inf(1)
		found     bool
	)

	for _, f := range m.conn.faceIDs() {
		prim, p, ok := m.FaceRay(f, r)
		if !ok {
			continue
		}
		if d := p.Sub(r.Origin).SqrMag(); d < bestDist {
			bestDist, best, bestPoint, found = d, prim, p, true
		}
	}

	return best, bestPoint, found
}

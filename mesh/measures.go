package mesh

import (
	"math"

	"github.com/ajcurley/trimesh/geom"
)

// EdgeVector returns the vector from h's origin to its target.
func (m *Mesh) EdgeVector(h HalfEdgeID) geom.Vector {
	o, t := m.EdgeEndpoints(h)
	return m.pos.get(t).Sub(m.pos.get(o))
}

// EdgeLength returns the Euclidean length of h's undirected edge.
func (m *Mesh) EdgeLength(h HalfEdgeID) float64 {
	return m.EdgeVector(h).Mag()
}

// EdgeDirection returns the unit vector from h's origin to its target.
func (m *Mesh) EdgeDirection(h HalfEdgeID) geom.Vector {
	return m.EdgeVector(h).Unit()
}

// EdgeMidpoint returns the midpoint of h's undirected edge.
func (m *Mesh) EdgeMidpoint(h HalfEdgeID) geom.Vector {
	o, t := m.EdgeEndpoints(h)
	return m.pos.get(o).Lerp(m.pos.get(t), 0.5)
}

// FaceTriangle returns face f's geometry as a geom.Triangle.
func (m *Mesh) FaceTriangle(f FaceID) geom.Triangle {
	v0, v1, v2 := m.FaceVertices(f)
	return geom.NewTriangle(m.pos.get(v0), m.pos.get(v1), m.pos.get(v2))
}

// FaceNormal returns face f's (non-unit) normal.
func (m *Mesh) FaceNormal(f FaceID) geom.Vector {
	return m.FaceTriangle(f).Normal()
}

// FaceUnitNormal returns face f's unit normal.
func (m *Mesh) FaceUnitNormal(f FaceID) geom.Vector {
	return m.FaceTriangle(f).UnitNormal()
}

// FaceArea returns face f's area.
func (m *Mesh) FaceArea(f FaceID) float64 {
	return m.FaceTriangle(f).Area()
}

// FaceCenter returns face f's centroid.
func (m *Mesh) FaceCenter(f FaceID) geom.Vector {
	return m.FaceTriangle(f).Center()
}

// VertexNormal returns the angle-weighted average of the unit normals of
// vertex v's incident faces, renormalized. Returns the zero vector for a
// lonely vertex or one with no incident faces.
func (m *Mesh) VertexNormal(v VertexID) geom.Vector {
	sum := geom.Vector{}
	for _, f := range m.IncidentFaces(v) {
		sum = sum.Add(m.faceAngleWeightedNormal(f, v))
	}
	if sum.SqrMag() < math.SmallestNonzeroFloat64 {
		return sum
	}
	return sum.Unit()
}

// faceAngleWeightedNormal returns face f's unit normal scaled by the
// interior angle of f at vertex v, so that VertexNormal's sum favors faces
// that meet v at a wider angle.
func (m *Mesh) faceAngleWeightedNormal(f FaceID, v VertexID) geom.Vector {
	v0, v1, v2 := m.FaceVertices(f)

	var a, b, c geom.Vector
	switch v {
	case v0:
		a, b, c = m.pos.get(v1), m.pos.get(v0), m.pos.get(v2)
	case v1:
		a, b, c = m.pos.get(v2), m.pos.get(v1), m.pos.get(v0)
	default:
		a, b, c = m.pos.get(v0), m.pos.get(v2), m.pos.get(v1)
	}

	u := a.Sub(b).Unit()
	w := c.Sub(b).Unit()

	return m.FaceUnitNormal(f).MulScalar(clampedAngle(u.Dot(w)))
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// clampedAngle returns acos of a dot product of two unit vectors, clamped
// to [-1, 1] first to absorb floating-point drift that would otherwise
// make acos return NaN.
func clampedAngle(cosTheta float64) float64 {
	return math.Acos(clamp(cosTheta, -1, 1))
}

package geom

// Triangle is a triangle in three-dimensional Cartesian space, given by its
// three corner points in CCW winding order.
type Triangle struct {
	P Vector
	Q Vector
	R Vector
}

// NewTriangle constructs a Triangle from its three corners.
func NewTriangle(p, q, r Vector) Triangle {
	return Triangle{p, q, r}
}

// Area computes the triangle's area.
func (t Triangle) Area() float64 {
	u := t.Q.Sub(t.P)
	v := t.R.Sub(t.P)
	return u.Cross(v).Mag() * 0.5
}

// Normal computes the (non-unit) normal, oriented by the CCW winding of
// P, Q, R.
func (t Triangle) Normal() Vector {
	u := t.Q.Sub(t.P)
	v := t.R.Sub(t.P)
	return u.Cross(v)
}

// UnitNormal computes the unit normal.
func (t Triangle) UnitNormal() Vector {
	return t.Normal().Unit()
}

// Center computes the centroid.
func (t Triangle) Center() Vector {
	return t.P.Add(t.Q).Add(t.R).DivScalar(3)
}

// Barycentric computes the barycentric coordinates (u, v, w) of p with
// respect to the triangle, assuming p already lies in the triangle's plane.
// p = u*P + v*Q + w*R.
func (t Triangle) Barycentric(p Vector) (u, v, w float64) {
	v0 := t.Q.Sub(t.P)
	v1 := t.R.Sub(t.P)
	v2 := p.Sub(t.P)

	d00 := v0.Dot(v0)
	d01 := v0.Dot(v1)
	d11 := v1.Dot(v1)
	d20 := v2.Dot(v0)
	d21 := v2.Dot(v1)

	denom := d00*d11 - d01*d01
	v = (d11*d20 - d01*d21) / denom
	w = (d00*d21 - d01*d20) / denom
	u = 1 - v - w
	return u, v, w
}

// IntersectsAABB implements the IntersectsAABB interface (used by
// brute-force face/box overlap tests).
func (t Triangle) IntersectsAABB(query AABB) bool {
	return NewAABBFromVectors([]Vector{t.P, t.Q, t.R}).IntersectsAABB(query)
}

// IntersectsRay implements the IntersectsRay interface.
func (t Triangle) IntersectsRay(r Ray) bool {
	_, ok := r.IntersectsTriangle(t)
	return ok
}

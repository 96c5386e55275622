package geom

// IntersectsAABB is implemented by anything that can test intersection
// against an axis-aligned bounding box.
type IntersectsAABB interface {
	IntersectsAABB(AABB) bool
}

// IntersectsRay is implemented by anything that can test intersection
// against a ray.
type IntersectsRay interface {
	IntersectsRay(Ray) bool
}

// IntersectsSphere is implemented by anything that can test intersection
// against a sphere.
type IntersectsSphere interface {
	IntersectsSphere(Sphere) bool
}

// IntersectsTriangle is implemented by anything that can test intersection
// against a triangle.
type IntersectsTriangle interface {
	IntersectsTriangle(Triangle) bool
}

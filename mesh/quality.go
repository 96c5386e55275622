package mesh

import "github.com/ajcurley/trimesh/geom"

// SmoothVertices moves every non-boundary vertex toward the centroid of
// its one-ring neighbours by factor (0 leaves the mesh unchanged, 1 moves
// fully to the centroid). Boundary vertices are left in place so the
// mesh's silhouette does not shrink.
func (m *Mesh) SmoothVertices(factor float64) {
	targets := make(map[VertexID]geom.Vector)

	for _, v := range m.conn.vertexIDs() {
		if m.IsBoundaryVertex(v) {
			continue
		}

		outs := m.VertexHalfEdges(v)
		if len(outs) == 0 {
			continue
		}

		sum := geom.Vector{}
		for _, h := range outs {
			sum = sum.Add(m.pos.get(m.conn.halfEdgeVertex(h)))
		}
		centroid := sum.MulScalar(1 / float64(len(outs)))
		targets[v] = m.pos.get(v).Lerp(centroid, factor)
	}

	for v, p := range targets {
		m.pos.set(v, p)
	}
}

// ImproveByFlipping runs one pass over every edge, flipping it when doing
// so increases the smaller of the two angles opposite the edge
// (minOppositeAngle) compared to the current pair, a Delaunay-style flip
// heuristic, and flipping back otherwise; it skips edges FlipEdge rejects (boundary or
// duplicate-edge). Returns the number of edges flipped.
func (m *Mesh) ImproveByFlipping() int {
	flips := 0

	for _, h := range m.Edges() {
		if !m.conn.halfEdgeExists(h) {
			continue
		}
		if m.conn.halfEdgeFace(h) == NoFace || m.conn.halfEdgeFace(m.conn.halfEdgeTwin(h)) == NoFace {
			continue
		}

		before := minOppositeAngle(m, h)

		if err := m.FlipEdge(h); err != nil {
			continue
		}

		after := minOppositeAngle(m, h)
		if after <= before {
			// Flipping made the local triangulation worse; flip back.
			_ = m.FlipEdge(h)
			continue
		}

		flips++
	}

	return flips
}

// minOppositeAngle returns the smaller of the two opposite-vertex angles
// across h's two incident triangles, used as the flip-quality heuristic.
func minOppositeAngle(m *Mesh, h HalfEdgeID) float64 {
	f1, f2 := m.conn.halfEdgeFace(h), m.conn.halfEdgeFace(m.conn.halfEdgeTwin(h))
	if f1 == NoFace || f2 == NoFace {
		return 0
	}

	a1 := triangleAngleAt(m, f1, oppositeOf(m, h))
	a2 := triangleAngleAt(m, f2, oppositeOf(m, m.conn.halfEdgeTwin(h)))

	if a1 < a2 {
		return a1
	}
	return a2
}

func oppositeOf(m *Mesh, h HalfEdgeID) VertexID {
	v, _ := m.OppositeVertex(h)
	return v
}

func triangleAngleAt(m *Mesh, f FaceID, v VertexID) float64 {
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
	return clampedAngle(u.Dot(w))
}

// CollapseSmallFaces collapses the shortest edge of every face whose area
// falls below threshold, smallest faces first, until none remain below
// it. Returns the number of edge collapses performed; one collapse can
// remove two faces.
func (m *Mesh) CollapseSmallFaces(threshold float64) int {
	collapsed := 0

	for {
		var smallest FaceID
		found := false
		bestArea := threshold

		for _, f := range m.conn.faceIDs() {
			if a := m.FaceArea(f); a < bestArea {
				bestArea, smallest, found = a, f, true
			}
		}

		if !found {
			break
		}

		hs := m.FaceHalfEdges(smallest)
		shortest := hs[0]
		for _, h := range hs[1:] {
			if m.EdgeLength(h) < m.EdgeLength(shortest) {
				shortest = h
			}
		}

		m.CollapseEdge(shortest)
		collapsed++
	}

	return collapsed
}

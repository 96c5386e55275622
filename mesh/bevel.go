package mesh

import "github.com/ajcurley/trimesh/geom"

// BevelCurve splits every interior vertex of a contiguous path of
// vertices into two copies displaced by ±amount along the average unit
// normal of all faces incident to that vertex, then stitches the resulting gap with
// new triangles. path must have at least 2 vertices, each consecutive
// pair must already be connected by an edge, and no vertex in path may be
// a boundary vertex. Returns ErrInvalidArgument on a precondition
// violation; the mesh is left unchanged in that case.
func (m *Mesh) BevelCurve(path []VertexID, amount float64) error {
	if len(path) < 2 {
		return ErrInvalidArgument
	}

	for i := 0; i+1 < len(path); i++ {
		if !m.AreConnected(path[i], path[i+1]) {
			return ErrInvalidArgument
		}
	}
	for _, v := range path {
		if m.IsBoundaryVertex(v) {
			return ErrInvalidArgument
		}
	}

	type pair struct{ outer, inner VertexID }
	splits := make([]pair, len(path))

	// seam holds, per consecutive path pair, the two half-edges of the
	// original shared edge -- captured before any SplitVertex call, since
	// SplitVertex reassigns half-edge targets in place.
	type seam struct{ forward, backward HalfEdgeID }
	seams := make([]seam, len(path)-1)
	for i := 0; i+1 < len(path); i++ {
		f, _ := m.HalfEdgeBetween(path[i], path[i+1])
		b, _ := m.HalfEdgeBetween(path[i+1], path[i])
		seams[i] = seam{forward: f, backward: b}
	}

	for i, v := range path {
		if i == 0 || i == len(path)-1 {
			splits[i] = pair{outer: v, inner: v}
			continue
		}

		start, end := seams[i].forward, seams[i-1].backward
		if start == NoHalfEdge || end == NoHalfEdge {
			return ErrInvalidArgument
		}

		normal := m.averageNormalAt(v)
		nv := m.SplitVertex(start, end)

		splits[i] = pair{outer: v, inner: nv}

		m.displaceAlong(v, normal, amount)
		m.displaceAlong(nv, normal, -amount)
	}

	// SplitVertex reassigns half-edge targets but never touches twin
	// pointers, so every seam pair is still mutually twinned despite no
	// longer sharing endpoints (I6 broken). The wall triangles below
	// supply the real twins; rungBefore/rungAfter collect the half-edge
	// each side of an interior path vertex's rung contributes, since the
	// two segments meeting at that vertex are stitched in separate loop
	// iterations.
	rungBefore := make([]HalfEdgeID, len(path))
	rungAfter := make([]HalfEdgeID, len(path))

	for i := 0; i+1 < len(splits); i++ {
		a, b := splits[i], splits[i+1]
		hA, hB := seams[i].forward, seams[i].backward
		needA := a.inner != a.outer
		needB := b.inner != b.outer

		if !needA && !needB {
			// Neither endpoint split: this stretch of the path is
			// untouched, and hA/hB remain a valid twin pair as-is.
			continue
		}

		m.conn.clearHalfEdgeTwin(hA)
		m.conn.clearHalfEdgeTwin(hB)

		if needB {
			_, f1 := m.conn.createFace(b.outer, a.outer, b.inner)
			m.conn.setHalfEdgeTwin(hA, f1[0])
			rungBefore[i+1] = f1[2]

			if needA {
				_, f2 := m.conn.createFace(b.inner, a.outer, a.inner)
				m.conn.setHalfEdgeTwin(f1[1], f2[0])
				m.conn.setHalfEdgeTwin(hB, f2[2])
				rungAfter[i] = f2[1]
			} else {
				m.conn.setHalfEdgeTwin(hB, f1[1])
			}
		} else {
			_, f := m.conn.createFace(b.outer, a.outer, a.inner)
			m.conn.setHalfEdgeTwin(hA, f[0])
			m.conn.setHalfEdgeTwin(hB, f[2])
			rungAfter[i] = f[1]
		}
	}

	for i := range path {
		if rungBefore[i] != NoHalfEdge && rungAfter[i] != NoHalfEdge {
			m.conn.setHalfEdgeTwin(rungBefore[i], rungAfter[i])
		}
	}

	m.conn.closeBoundary()

	return nil
}

func (m *Mesh) averageNormalAt(v VertexID) geom.Vector {
	n := geom.Vector{}
	faces := m.IncidentFaces(v)
	for _, f := range faces {
		n = n.Add(m.FaceUnitNormal(f))
	}
	if len(faces) > 0 && n.SqrMag() > 0 {
		n = n.Unit()
	}
	return n
}

func (m *Mesh) displaceAlong(v VertexID, dir geom.Vector, amount float64) {
	x, y, z := m.Position(v)
	p := dir.MulScalar(amount)
	m.SetPosition(v, x+p.X(), y+p.Y(), z+p.Z())
}

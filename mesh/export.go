package mesh

// Indexed is the indexed export shape: indices[3F] refer to positions in
// iteration order of the connectivity store; normals are the average of
// adjacent face normals, renormalized.
type Indexed struct {
	Indices   []uint32
	Positions [][3]float64
	Normals   [][3]float64
}

// ExportIndexed returns the mesh as an indexed buffer triple. Vertex
// index i refers to the i-th vertex in the iteration order of Vertices().
func (m *Mesh) ExportIndexed() Indexed {
	ids := m.conn.vertexIDs()
	index := make(map[VertexID]uint32, len(ids))

	out := Indexed{
		Positions: make([][3]float64, len(ids)),
		Normals:   make([][3]float64, len(ids)),
	}

	for i, v := range ids {
		index[v] = uint32(i)
		x, y, z := m.Position(v)
		out.Positions[i] = [3]float64{x, y, z}
	}

	for i, v := range ids {
		n := m.VertexNormal(v)
		out.Normals[i] = [3]float64{n.X(), n.Y(), n.Z()}
	}

	for _, f := range m.conn.faceIDs() {
		v0, v1, v2 := m.FaceVertices(f)
		out.Indices = append(out.Indices, index[v0], index[v1], index[v2])
	}

	return out
}

// NonIndexed is the non-indexed export shape: each face contributes its
// three vertex records directly, in order, with no shared-vertex
// deduplication.
type NonIndexed struct {
	Positions [][3]float64
	Normals   [][3]float64
}

// ExportNonIndexed returns the mesh with every face's three vertices
// written out directly (positions[9F], normals[9F]).
func (m *Mesh) ExportNonIndexed() NonIndexed {
	var out NonIndexed

	for _, f := range m.conn.faceIDs() {
		v0, v1, v2 := m.FaceVertices(f)
		for _, v := range []VertexID{v0, v1, v2} {
			x, y, z := m.Position(v)
			n := m.VertexNormal(v)
			out.Positions = append(out.Positions, [3]float64{x, y, z})
			out.Normals = append(out.Normals, [3]float64{n.X(), n.Y(), n.Z()})
		}
	}

	return out
}

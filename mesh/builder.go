package mesh

import "github.com/ajcurley/trimesh/geom"

// TriMeshSource is a generic construction record: triangle indices plus
// vertex positions, optionally with per-vertex normals (accepted but unused
// by the builder -- positions are the only geometry the connectivity store
// needs; normals are recomputed on export). If Indices is nil, every three
// consecutive Positions form a triangle.
type TriMeshSource struct {
	Indices   []uint32
	Positions [][3]float64
	Normals   [][3]float64
}

// Builder constructs a Mesh from raw geometry. The zero value is ready to
// use; chain WithMargin to override DefaultMargin.
type Builder struct {
	margin float64
}

// NewBuilder constructs a Builder using DefaultMargin.
func NewBuilder() *Builder {
	return &Builder{margin: DefaultMargin}
}

// WithMargin overrides the classification margin (epsilon) of the mesh
// this builder produces.
func (b *Builder) WithMargin(margin float64) *Builder {
	b.margin = margin
	return b
}

// BuildIndexed constructs a Mesh from a flat index buffer (length 3*F) and
// a flat position buffer (length 3*V).
func (b *Builder) BuildIndexed(indices []uint32, positions []float64) (*Mesh, error) {
	if len(positions) == 0 {
		return nil, ErrNoPositionsSpecified
	}

	points := make([][3]float64, len(positions)/3)
	for i := range points {
		points[i] = [3]float64{positions[3*i], positions[3*i+1], positions[3*i+2]}
	}

	return b.Build(TriMeshSource{Indices: indices, Positions: points})
}

// Build constructs a Mesh from a TriMeshSource.
func (b *Builder) Build(source TriMeshSource) (*Mesh, error) {
	if len(source.Positions) == 0 {
		return nil, ErrNoPositionsSpecified
	}

	m := newMesh(b.margin)
	verts := make([]VertexID, len(source.Positions))

	for i, p := range source.Positions {
		v := m.conn.newVertex()
		m.pos.set(v, geom.NewVector(p[0], p[1], p[2]))
		verts[i] = v
	}

	faces := faceIndexTriples(source.Indices, len(source.Positions))

	type edgeKey [2]VertexID
	shared := make(map[edgeKey]HalfEdgeID)

	for _, tri := range faces {
		v0, v1, v2 := verts[tri[0]], verts[tri[1]], verts[tri[2]]
		_, hs := m.conn.createFace(v0, v1, v2)

		edges := [3][2]VertexID{{v0, v1}, {v1, v2}, {v2, v0}}
		for i, he := range hs {
			a, c := edges[i][0], edges[i][1]
			key := edgeKey{a, c}
			if a > c {
				key = edgeKey{c, a}
			}

			if twin, ok := shared[key]; ok {
				m.conn.setHalfEdgeTwin(he, twin)
				delete(shared, key)
			} else {
				shared[key] = he
			}
		}
	}

	m.conn.closeBoundary()

	return m, nil
}

// faceIndexTriples normalizes a construction source into a list of
// 0-based vertex-index triples: the explicit index buffer if present,
// else every three consecutive positions.
func faceIndexTriples(indices []uint32, numPositions int) [][3]int {
	if len(indices) > 0 {
		faces := make([][3]int, len(indices)/3)
		for i := range faces {
			faces[i] = [3]int{int(indices[3*i]), int(indices[3*i+1]), int(indices[3*i+2])}
		}
		return faces
	}

	faces := make([][3]int, numPositions/3)
	for i := range faces {
		faces[i] = [3]int{3 * i, 3*i + 1, 3*i + 2}
	}
	return faces
}

package mesh

// New constructs a Mesh from a generic TriMeshSource using DefaultMargin.
func New(source TriMeshSource) (*Mesh, error) {
	return NewBuilder().Build(source)
}

// NewFromIndexed constructs a Mesh from a flat index buffer and a flat
// position buffer using DefaultMargin.
func NewFromIndexed(indices []uint32, positions []float64) (*Mesh, error) {
	return NewBuilder().BuildIndexed(indices, positions)
}

// NewFromTriMesh is an alias of New retained for readers coming from
// interchange formats that call their construction record a "TriMesh".
func NewFromTriMesh(source TriMeshSource) (*Mesh, error) {
	return New(source)
}

package mesh

import (
	"testing"

	"github.com/ajcurley/trimesh/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlipEdgeOnSquareDiagonal(t *testing.T) {
	m := mustBuild(squareSource())

	// The diagonal v0-v2 is the only interior edge; find it.
	var diagonal HalfEdgeID
	for _, h := range m.Edges() {
		if !m.IsBoundaryEdge(h) {
			diagonal = h
			break
		}
	}
	require.NotZero(t, diagonal)

	before, _ := m.EdgeEndpoints(diagonal)
	require.NoError(t, m.FlipEdge(diagonal))
	assert.NoError(t, m.IsValid())

	after, _ := m.EdgeEndpoints(diagonal)
	assert.NotEqual(t, before, after, "flipping should retarget the diagonal's origin")
	assert.Equal(t, 2, m.NumFaces())
	assert.Equal(t, 4, m.NumVertices())
}

func TestFlipEdgeRejectsBoundaryHalfEdge(t *testing.T) {
	m := mustBuild(squareSource())

	var boundary HalfEdgeID
	for _, h := range m.HalfEdges() {
		if m.IsBoundaryHalfEdge(h) {
			boundary = h
			break
		}
	}
	require.NotZero(t, boundary)

	err := m.FlipEdge(boundary)
	assert.ErrorIs(t, err, ErrActionWillResultInInvalidMesh)
}

func TestSplitEdgeInteriorProducesTwoNewFaces(t *testing.T) {
	m := mustBuild(cubeSource())
	h := m.Edges()[0]

	facesBefore := m.NumFaces()
	verticesBefore := m.NumVertices()

	o, tgt := m.EdgeEndpoints(h)
	mid := m.pos.get(o).Lerp(m.pos.get(tgt), 0.5)

	nv := m.SplitEdge(h, mid)
	assert.NoError(t, m.IsValid())
	assert.Equal(t, facesBefore+2, m.NumFaces())
	assert.Equal(t, verticesBefore+1, m.NumVertices())
	assert.True(t, m.VertexExists(nv))
}

func TestSplitEdgeOnBoundaryProducesOneNewFace(t *testing.T) {
	m := mustBuild(squareSource())

	var boundary HalfEdgeID
	for _, h := range m.HalfEdges() {
		if m.IsBoundaryHalfEdge(h) {
			boundary = h
			break
		}
	}
	require.NotZero(t, boundary)

	facesBefore := m.NumFaces()
	o, tgt := m.EdgeEndpoints(boundary)
	mid := m.pos.get(o).Lerp(m.pos.get(tgt), 0.5)

	m.SplitEdge(boundary, mid)
	assert.NoError(t, m.IsValid())
	assert.Equal(t, facesBefore+1, m.NumFaces())
}

func TestSplitFaceAddsInteriorVertexAndThreeFaces(t *testing.T) {
	m := mustBuild(cubeSource())
	f := m.Faces()[0]

	facesBefore := m.NumFaces()
	center := m.FaceCenter(f)

	nv := m.SplitFace(f, center)
	assert.NoError(t, m.IsValid())
	assert.Equal(t, facesBefore+2, m.NumFaces())
	assert.Equal(t, 3, len(m.IncidentFaces(nv)))
}

func TestCollapseEdgeOnInteriorEdgeMergesVertices(t *testing.T) {
	m := mustBuild(cubeSource())
	h := m.Edges()[0]
	o, tgt := m.EdgeEndpoints(h)

	verticesBefore := m.NumVertices()
	survivor := m.CollapseEdge(h)

	assert.True(t, survivor == o || survivor == tgt)
	assert.Equal(t, verticesBefore-1, m.NumVertices())
	assert.False(t, m.VertexExists(o) && m.VertexExists(tgt))
}

func TestCollapseEdgeOnBoundaryEdge(t *testing.T) {
	m := mustBuild(squareSource())

	var boundary HalfEdgeID
	for _, h := range m.HalfEdges() {
		if m.IsBoundaryHalfEdge(h) {
			boundary = h
			break
		}
	}
	require.NotZero(t, boundary)

	facesBefore := m.NumFaces()
	survivor := m.CollapseEdge(boundary)

	assert.True(t, m.VertexExists(survivor))
	assert.Equal(t, facesBefore-1, m.NumFaces())
}

func TestRemoveFaceCascadesDanglingVertices(t *testing.T) {
	m := mustBuild(squareSource())
	f := m.Faces()[0]

	m.RemoveFace(f)
	assert.False(t, m.FaceExists(f))
	assert.NoError(t, m.IsValid())
}

func TestRemoveAllFacesLeavesEmptyMesh(t *testing.T) {
	m := mustBuild(squareSource())

	for _, f := range m.Faces() {
		m.RemoveFace(f)
	}

	assert.Equal(t, 0, m.NumFaces())
	assert.Equal(t, 0, m.NumHalfEdges())
	assert.Equal(t, 0, m.NumVertices())
}

func TestSplitVertexCreatesNewVertexAtSamePosition(t *testing.T) {
	m := mustBuild(cubeSource())
	v := m.Vertices()[0]
	outs := m.VertexHalfEdges(v)
	want := 4
	if x, y, z := m.Position(v); x == y && y == z {
		want = 6
	}
	require.Equal(t, want, len(outs))

	x, y, z := m.Position(v)
	nv := m.SplitVertex(outs[0], outs[1])

	nx, ny, nz := m.Position(nv)
	assert.Equal(t, x, nx)
	assert.Equal(t, y, ny)
	assert.Equal(t, z, nz)
	assert.NotEqual(t, v, nv)
}

func TestSplitEdgeNewVertexPosition(t *testing.T) {
	m := mustBuild(cubeSource())
	h := m.Edges()[0]
	p := geom.NewVector(0.25, 0.25, 0.25)

	nv := m.SplitEdge(h, p)
	x, y, z := m.Position(nv)
	assert.Equal(t, 0.25, x)
	assert.Equal(t, 0.25, y)
	assert.Equal(t, 0.25, z)
}

package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWalkHalfEdgeNavigatesTwinNextPrevious(t *testing.T) {
	m := mustBuild(cubeSource())
	f := m.Faces()[0]
	hs := m.FaceHalfEdges(f)

	w := m.WalkHalfEdge(hs[0])
	assert.True(t, w.Valid())
	assert.Equal(t, hs[0], w.HalfEdgeID())
	assert.Equal(t, hs[1], w.NextID())
	assert.Equal(t, hs[2], w.PreviousID())
	assert.Equal(t, f, w.FaceID())
	assert.False(t, w.IsBoundary())

	twin := w.AsTwin()
	assert.Equal(t, m.conn.halfEdgeTwin(hs[0]), twin.HalfEdgeID())

	next := w.AsNext()
	assert.Equal(t, hs[1], next.HalfEdgeID())

	prev := w.AsPrevious()
	assert.Equal(t, hs[2], prev.HalfEdgeID())
}

func TestWalkVertexAndWalkFaceSeedCorrectly(t *testing.T) {
	m := mustBuild(cubeSource())
	v := m.Vertices()[0]
	f := m.Faces()[0]

	wv := m.WalkVertex(v)
	assert.True(t, wv.Valid())
	assert.Equal(t, m.conn.vertexHalfEdge(v), wv.HalfEdgeID())

	wf := m.WalkFace(f)
	assert.True(t, wf.Valid())
	assert.Equal(t, f, wf.FaceID())
}

func TestWalkerBecomesInvalidAfterRemoval(t *testing.T) {
	m := mustBuild(squareSource())
	f := m.Faces()[0]
	hs := m.FaceHalfEdges(f)

	w := m.WalkHalfEdge(hs[0])
	assert.True(t, w.Valid())

	m.RemoveFace(f)

	stale := m.WalkHalfEdge(hs[0])
	if m.HalfEdgeExists(hs[0]) {
		assert.True(t, stale.Valid())
	} else {
		assert.False(t, stale.Valid())
		assert.Equal(t, NoVertex, stale.VertexID())
		assert.Equal(t, NoFace, stale.FaceID())
	}
}

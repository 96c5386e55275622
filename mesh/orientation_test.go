package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlipFaceOrientationReversesWinding(t *testing.T) {
	m := mustBuild(cubeSource())
	f := m.Faces()[0]

	v0, v1, v2 := m.FaceVertices(f)
	normalBefore := m.FaceNormal(f)

	m.FlipFaceOrientation(f)

	nv0, nv1, nv2 := m.FaceVertices(f)
	assert.Equal(t, v0, nv0)
	assert.Equal(t, v2, nv1)
	assert.Equal(t, v1, nv2)

	normalAfter := m.FaceNormal(f)
	assert.InDelta(t, -1, normalBefore.Unit().Dot(normalAfter.Unit()), 1e-9)
}

func TestFixOrientationRepairsFlippedNeighbor(t *testing.T) {
	m := mustBuild(cubeSource())
	f := m.Faces()[0]

	m.FlipFaceOrientation(f)
	require.Error(t, m.IsValid(), "flipping one face in isolation should desynchronize it from its neighbours")

	m.FixOrientation()
	assert.NoError(t, m.IsValid())
}

func TestFixOrientationIsIdempotent(t *testing.T) {
	m := mustBuild(cubeSource())
	f := m.Faces()[0]
	m.FlipFaceOrientation(f)

	m.FixOrientation()
	snapshot := make(map[HalfEdgeID]VertexID)
	for _, h := range m.HalfEdges() {
		snapshot[h] = m.conn.halfEdgeVertex(h)
	}

	m.FixOrientation()
	for _, h := range m.HalfEdges() {
		assert.Equal(t, snapshot[h], m.conn.halfEdgeVertex(h))
	}
}

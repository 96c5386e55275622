package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEdgeEndpointsAgreeWithTwin(t *testing.T) {
	m := mustBuild(cubeSource())

	for _, h := range m.HalfEdges() {
		o, tgt := m.EdgeEndpoints(h)
		twin := m.conn.halfEdgeTwin(h)
		to, tt := m.EdgeEndpoints(twin)
		assert.Equal(t, o, tt)
		assert.Equal(t, tgt, to)
	}
}

func TestFaceVerticesMatchFaceHalfEdges(t *testing.T) {
	m := mustBuild(cubeSource())
	f := m.Faces()[0]

	v0, v1, v2 := m.FaceVertices(f)
	hs := m.FaceHalfEdges(f)

	assert.Equal(t, v0, m.origin(hs[0]))
	assert.Equal(t, v1, m.origin(hs[1]))
	assert.Equal(t, v2, m.origin(hs[2]))
}

func TestIsBoundaryPredicatesOnClosedCube(t *testing.T) {
	m := mustBuild(cubeSource())

	for _, h := range m.HalfEdges() {
		assert.False(t, m.IsBoundaryHalfEdge(h))
		assert.False(t, m.IsBoundaryEdge(h))
	}
	for _, v := range m.Vertices() {
		assert.False(t, m.IsBoundaryVertex(v))
	}
}

func TestIsBoundaryPredicatesOnOpenSquare(t *testing.T) {
	m := mustBuild(squareSource())

	boundaryVertices := 0
	for _, v := range m.Vertices() {
		if m.IsBoundaryVertex(v) {
			boundaryVertices++
		}
	}
	assert.Equal(t, 4, boundaryVertices)
}

func TestIncidentFacesCountsMatchValence(t *testing.T) {
	m := mustBuild(cubeSource())

	for _, v := range m.Vertices() {
		faces := m.IncidentFaces(v)
		want := 4
		if x, y, z := m.Position(v); x == y && y == z {
			want = 6
		}
		assert.Equal(t, want, len(faces), "a closed cube corner touches as many triangles as its valence: 6 at (0,0,0) and (1,1,1), 4 elsewhere")
	}
}

func TestHalfEdgeBetweenAndAreConnected(t *testing.T) {
	m := mustBuild(cubeSource())
	h := m.HalfEdges()[0]
	o, tgt := m.EdgeEndpoints(h)

	found, ok := m.HalfEdgeBetween(o, tgt)
	assert.True(t, ok)
	assert.Equal(t, h, found)

	assert.True(t, m.AreConnected(o, tgt))
	assert.True(t, m.AreConnected(tgt, o))

	lonely := m.conn.newVertex()
	assert.False(t, m.AreConnected(o, lonely))
}

func TestOppositeVertexOnInteriorHalfEdge(t *testing.T) {
	m := mustBuild(cubeSource())
	f := m.Faces()[0]
	hs := m.FaceHalfEdges(f)

	opp, ok := m.OppositeVertex(hs[0])
	assert.True(t, ok)

	v0, v1, v2 := m.FaceVertices(f)
	assert.NotEqual(t, v0, opp)
	assert.NotEqual(t, v1, opp)
	assert.Contains(t, []VertexID{v0, v1, v2}, opp)
}

func TestOppositeVertexOnBoundaryHalfEdgeReturnsFalse(t *testing.T) {
	m := mustBuild(squareSource())

	for _, h := range m.HalfEdges() {
		if m.IsBoundaryHalfEdge(h) {
			_, ok := m.OppositeVertex(h)
			assert.False(t, ok)
			return
		}
	}
	t.Fatal("expected at least one boundary half-edge")
}

func TestCanonicalEdgeIsStableUnderTwin(t *testing.T) {
	m := mustBuild(cubeSource())
	h := m.HalfEdges()[0]
	twin := m.conn.halfEdgeTwin(h)

	assert.Equal(t, m.CanonicalEdge(h), m.CanonicalEdge(twin))
}

package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSmoothVerticesLeavesBoundaryInPlace(t *testing.T) {
	m := mustBuild(squareSource())

	before := make(map[VertexID][3]float64)
	for _, v := range m.Vertices() {
		x, y, z := m.Position(v)
		before[v] = [3]float64{x, y, z}
	}

	m.SmoothVertices(1.0)

	// Every vertex of the open square is a boundary vertex, so nothing moves.
	for _, v := range m.Vertices() {
		x, y, z := m.Position(v)
		b := before[v]
		assert.Equal(t, b, [3]float64{x, y, z})
	}
}

func TestSmoothVerticesMovesInteriorVertexTowardCentroid(t *testing.T) {
	source := TriMeshSource{
		Positions: [][3]float64{
			{0, 0, 0},
			{2, 0, 0},
			{2, 2, 0},
			{0, 2, 0},
			{1, 1, 0},
		},
		Indices: []uint32{
			0, 1, 4,
			1, 2, 4,
			2, 3, 4,
			3, 0, 4,
		},
	}
	m := mustBuild(source)

	var interior VertexID
	for _, v := range m.Vertices() {
		if !m.IsBoundaryVertex(v) {
			interior = v
			break
		}
	}
	require := assert.New(t)
	require.NotZero(interior)

	x, y, z := m.Position(interior)
	require.Equal(1.0, x)
	require.Equal(1.0, y)
	require.Equal(0.0, z)

	m.SmoothVertices(0.5)
	nx, ny, _ := m.Position(interior)
	// The centroid of the four boundary neighbours is also (1,1), so a
	// centered interior vertex stays put.
	require.InDelta(1.0, nx, 1e-9)
	require.InDelta(1.0, ny, 1e-9)
}

func TestImproveByFlippingReturnsNonNegativeCount(t *testing.T) {
	m := mustBuild(cubeSource())
	flips := m.ImproveByFlipping()
	assert.GreaterOrEqual(t, flips, 0)
	assert.NoError(t, m.IsValid())
}

func TestCollapseSmallFacesRemovesDegenerateFaces(t *testing.T) {
	source := TriMeshSource{
		Positions: [][3]float64{
			{0, 0, 0},
			{1, 0, 0},
			{1, 1, 0},
			{0, 1, 0},
			{0.5, 0.5, 0},
			{0.5001, 0.5, 0},
		},
		Indices: []uint32{
			0, 1, 4,
			1, 2, 5,
			2, 3, 5,
			3, 0, 4,
			4, 1, 5,
			4, 5, 3,
		},
	}
	m := mustBuild(source)

	facesBefore := m.NumFaces()
	collapsed := m.CollapseSmallFaces(0.01)
	assert.GreaterOrEqual(t, collapsed, 0)
	assert.LessOrEqual(t, m.NumFaces(), facesBefore)
}

package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// disjointTrianglesSource returns two triangles that share no vertices,
// forming two separate connected components.
func disjointTrianglesSource() TriMeshSource {
	return TriMeshSource{
		Positions: [][3]float64{
			{0, 0, 0}, {1, 0, 0}, {0, 1, 0},
			{10, 0, 0}, {11, 0, 0}, {10, 1, 0},
		},
		Indices: []uint32{
			0, 1, 2,
			3, 4, 5,
		},
	}
}

func TestConnectedComponentsOnSingleCubeIsOne(t *testing.T) {
	m := mustBuild(cubeSource())
	components := m.ConnectedComponentsWithLimit(nil)
	assert.Equal(t, 1, len(components))
	assert.Equal(t, 12, len(components[0]))
}

func TestConnectedComponentsOnDisjointTrianglesIsTwo(t *testing.T) {
	m := mustBuild(disjointTrianglesSource())
	components := m.ConnectedComponentsWithLimit(nil)
	assert.Equal(t, 2, len(components))
	for _, c := range components {
		assert.Equal(t, 1, len(c))
	}
}

func TestConnectedComponentsRespectsBlockPredicate(t *testing.T) {
	m := mustBuild(squareSource())

	var diagonal HalfEdgeID
	for _, h := range m.Edges() {
		if !m.IsBoundaryEdge(h) {
			diagonal = h
			break
		}
	}
	require.NotZero(t, diagonal)

	block := func(h HalfEdgeID) bool {
		return m.CanonicalEdge(h) == m.CanonicalEdge(diagonal)
	}

	components := m.ConnectedComponentsWithLimit(block)
	assert.Equal(t, 2, len(components), "blocking the shared diagonal should split the square into its two triangles")
}

func TestSplitReturnsIndependentClonedMeshes(t *testing.T) {
	m := mustBuild(disjointTrianglesSource())
	pieces := m.Split(nil)

	require.Equal(t, 2, len(pieces))
	for _, piece := range pieces {
		assert.Equal(t, 1, piece.NumFaces())
		assert.NoError(t, piece.IsValid())
	}
}

func TestCloneSubsetPrunesExcludedVertices(t *testing.T) {
	m := mustBuild(disjointTrianglesSource())
	faces := m.Faces()

	subset := m.CloneSubset(func(f FaceID) bool { return f == faces[0] })
	assert.Equal(t, 1, subset.NumFaces())
	assert.Equal(t, 3, subset.NumVertices())
	assert.NoError(t, subset.IsValid())
}

package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// adjacentSquareSource returns a unit square in the z=0 plane translated by
// (dx, 0, 0), built the same way as squareSource so that two instances
// glued at dx=1 share exactly one edge (the two vertices at x=1).
func adjacentSquareSource(dx float64) TriMeshSource {
	return TriMeshSource{
		Positions: [][3]float64{
			{dx + 0, 0, 0},
			{dx + 1, 0, 0},
			{dx + 1, 1, 0},
			{dx + 0, 1, 0},
		},
		Indices: []uint32{
			0, 1, 2,
			0, 2, 3,
		},
	}
}

func TestAppendCopiesVerticesAndFacesWithoutWelding(t *testing.T) {
	a := mustBuild(squareSource())
	b := mustBuild(adjacentSquareSource(1))

	vmap := a.Append(b)
	assert.Equal(t, b.NumVertices(), len(vmap))
	assert.Equal(t, 8, a.NumVertices(), "append does not weld shared-position vertices on its own")
	assert.Equal(t, 4, a.NumFaces())
	assert.NoError(t, a.IsValid())
}

func TestMergeWithWeldsSharedEdgeIntoInteriorEdge(t *testing.T) {
	a := mustBuild(squareSource())
	b := mustBuild(adjacentSquareSource(1))

	err := a.MergeWith(b)
	require.NoError(t, err)
	assert.NoError(t, a.IsValid())

	assert.Equal(t, 6, a.NumVertices(), "the two vertices along the shared edge should have merged")
	assert.Equal(t, 4, a.NumFaces())

	sharedEdgeIsInterior := false
	for _, h := range a.Edges() {
		if !a.IsBoundaryEdge(h) {
			o, tgt := a.EdgeEndpoints(h)
			ox, _, _ := a.Position(o)
			tx, _, _ := a.Position(tgt)
			if ox == 1 && tx == 1 {
				sharedEdgeIsInterior = true
			}
		}
	}
	assert.True(t, sharedEdgeIsInterior, "the weld seam at x=1 should now be a shared interior edge")
}

func TestMergeOverlappingPrimitivesIsIdempotent(t *testing.T) {
	a := mustBuild(squareSource())
	b := mustBuild(adjacentSquareSource(1))
	require.NoError(t, a.MergeWith(b))

	verticesAfterFirst := a.NumVertices()
	facesAfterFirst := a.NumFaces()

	require.NoError(t, a.MergeOverlappingPrimitives())
	assert.Equal(t, verticesAfterFirst, a.NumVertices())
	assert.Equal(t, facesAfterFirst, a.NumFaces())
}

func TestFindVertexClassesGroupsCoincidentVertices(t *testing.T) {
	a := mustBuild(squareSource())
	b := mustBuild(adjacentSquareSource(1))
	a.Append(b)

	classes := a.findVertexClasses()

	byRep := make(map[VertexID][]VertexID)
	for v, rep := range classes {
		byRep[rep] = append(byRep[rep], v)
	}

	groupsOfTwo := 0
	for _, group := range byRep {
		if len(group) == 2 {
			groupsOfTwo++
		}
	}
	assert.Equal(t, 2, groupsOfTwo, "exactly the two coincident vertex pairs along the shared edge should be grouped")
}

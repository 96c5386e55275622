package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExportIndexedProducesConsistentBuffers(t *testing.T) {
	m := mustBuild(cubeSource())
	out := m.ExportIndexed()

	assert.Equal(t, m.NumVertices(), len(out.Positions))
	assert.Equal(t, m.NumVertices(), len(out.Normals))
	assert.Equal(t, m.NumFaces()*3, len(out.Indices))

	for _, idx := range out.Indices {
		assert.Less(t, int(idx), len(out.Positions))
	}
}

func TestExportNonIndexedHasNoSharedVertices(t *testing.T) {
	m := mustBuild(cubeSource())
	out := m.ExportNonIndexed()

	assert.Equal(t, m.NumFaces()*3, len(out.Positions))
	assert.Equal(t, m.NumFaces()*3, len(out.Normals))
}

func TestExportIndexedRoundTripsThroughBuildIndexed(t *testing.T) {
	m := mustBuild(cubeSource())
	out := m.ExportIndexed()

	flat := make([]float64, 0, len(out.Positions)*3)
	for _, p := range out.Positions {
		flat = append(flat, p[0], p[1], p[2])
	}

	rebuilt, err := NewFromIndexed(out.Indices, flat)
	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(m.NumVertices(), rebuilt.NumVertices())
	assert.Equal(m.NumFaces(), rebuilt.NumFaces())
	assert.NoError(rebuilt.IsValid())
}

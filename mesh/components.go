package mesh

import (
	"strconv"

	"github.com/katalvlaran/lvlath/graph/algorithms"
	"github.com/katalvlaran/lvlath/graph/core"
)

// BlockPredicate reports whether a half-edge's twin-adjacency should not
// be crossed when computing connected components of faces.
type BlockPredicate func(h HalfEdgeID) bool

// ConnectedComponentsWithLimit partitions every face into maximal sets
// reachable via face-adjacent half-edges whose twin is not blocked by
// limit. A nil limit blocks nothing (ordinary connected components). Face
// adjacency is modeled as an undirected graph over string-keyed face IDs
// and walked with BFS from each unvisited face.
func (m *Mesh) ConnectedComponentsWithLimit(limit BlockPredicate) [][]FaceID {
	g := core.NewGraph(false, false)

	faceKey := func(f FaceID) string { return strconv.FormatUint(uint64(f), 10) }

	for _, f := range m.conn.faceIDs() {
		g.AddVertex(&core.Vertex{ID: faceKey(f)})
	}

	seenEdge := make(map[[2]FaceID]bool)
	for _, h := range m.conn.halfEdgeIDs() {
		if limit != nil && limit(h) {
			continue
		}
		f1 := m.conn.halfEdgeFace(h)
		f2 := m.conn.halfEdgeFace(m.conn.halfEdgeTwin(h))
		if f1 == NoFace || f2 == NoFace {
			continue
		}
		a, b := f1, f2
		if b < a {
			a, b = b, a
		}
		key := [2]FaceID{a, b}
		if seenEdge[key] {
			continue
		}
		seenEdge[key] = true
		g.AddEdge(faceKey(a), faceKey(b), 1)
	}

	visited := make(map[string]bool)
	var components [][]FaceID

	for _, f := range m.conn.faceIDs() {
		start := faceKey(f)
		if visited[start] {
			continue
		}

		result, err := algorithms.BFS(g, start, nil)
		if err != nil {
			visited[start] = true
			components = append(components, []FaceID{f})
			continue
		}

		var group []FaceID
		for _, v := range result.Order {
			visited[v.ID] = true
			id, _ := strconv.ParseUint(v.ID, 10, 64)
			group = append(group, FaceID(id))
		}
		components = append(components, group)
	}

	return components
}

// CloneSubset returns a deep copy of the mesh restricted to faces where
// included is true. Half-edges on the boundary of the kept region (whose
// twin bounds an excluded face) become boundary half-edges; vertices left
// with no incident half-edge are pruned.
func (m *Mesh) CloneSubset(included func(FaceID) bool) *Mesh {
	out := newMesh(m.margin)
	vmap := make(map[VertexID]VertexID)

	vertexOf := func(v VertexID) VertexID {
		if nv, ok := vmap[v]; ok {
			return nv
		}
		nv := out.conn.newVertex()
		x, y, z := m.Position(v)
		out.SetPosition(nv, x, y, z)
		vmap[v] = nv
		return nv
	}

	for _, f := range m.conn.faceIDs() {
		if !included(f) {
			continue
		}
		v0, v1, v2 := m.FaceVertices(f)
		out.conn.createFace(vertexOf(v0), vertexOf(v1), vertexOf(v2))
	}

	type edgeKey [2]VertexID
	shared := make(map[edgeKey]HalfEdgeID)
	for _, h := range out.conn.halfEdgeIDs() {
		o, t := out.EdgeEndpoints(h)
		key := edgeKey{o, t}
		if o > t {
			key = edgeKey{t, o}
		}
		if twin, ok := shared[key]; ok {
			out.conn.setHalfEdgeTwin(h, twin)
			delete(shared, key)
		} else {
			shared[key] = h
		}
	}

	out.conn.closeBoundary()

	return out
}

// Split partitions the mesh into connected components limited by
// predicate and returns each as an independent cloned mesh.
func (m *Mesh) Split(limit BlockPredicate) []*Mesh {
	components := m.ConnectedComponentsWithLimit(limit)
	meshes := make([]*Mesh, len(components))

	for i, group := range components {
		set := make(map[FaceID]bool, len(group))
		for _, f := range group {
			set[f] = true
		}
		meshes[i] = m.CloneSubset(func(f FaceID) bool { return set[f] })
	}

	return meshes
}

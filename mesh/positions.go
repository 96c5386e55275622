package mesh

import "github.com/ajcurley/trimesh/geom"

// positions stores the geometric plane separately from connectivity: a map
// VertexID -> position. Keeping the two apart lets topological edits proceed
// without touching geometry, and geometric edits (translate, smooth) proceed
// without touching topology.
type positions struct {
	points map[VertexID]geom.Vector
}

func newPositions() *positions {
	return &positions{points: make(map[VertexID]geom.Vector)}
}

func (p *positions) get(v VertexID) geom.Vector {
	return p.points[v]
}

func (p *positions) set(v VertexID, point geom.Vector) {
	p.points[v] = point
}

func (p *positions) remove(v VertexID) {
	delete(p.points, v)
}

func (p *positions) clone() *positions {
	out := newPositions()
	for k, v := range p.points {
		out.points[k] = v
	}
	return out
}

// Package spatial provides an optional acceleration structure over mesh
// faces. The kernel's own intersection routines are brute force by design
// (see mesh package docs); this index is a recommended but strictly
// optional improvement layered on top, never a correctness dependency.
package spatial

import (
	"errors"

	"github.com/ajcurley/trimesh/geom"
	"github.com/ajcurley/trimesh/mesh"
)

const (
	maxDepth     = 21
	maxLeafItems = 64
)

var (
	ErrItemNotInserted = errors.New("spatial: item not inserted")
	ErrCannotSplitNode = errors.New("spatial: cannot split node")
)

// FaceOctree indexes a mesh's faces by their triangle bounding boxes,
// keyed by Morton-style octant codes the way octant children are numbered
// in geom.AABB.Octant.
type FaceOctree struct {
	mesh  *mesh.Mesh
	nodes map[uint64]*octreeNode
	faces []mesh.FaceID
}

// NewFaceOctree constructs an octree bounded by aabb, ready to have faces
// of m inserted into it.
func NewFaceOctree(m *mesh.Mesh, aabb geom.AABB) *FaceOctree {
	return &FaceOctree{
		mesh:  m,
		nodes: map[uint64]*octreeNode{1: newOctreeNode(1, aabb)},
	}
}

// IndexAll inserts every current face of the octree's mesh.
func (o *FaceOctree) IndexAll() error {
	for _, f := range o.mesh.Faces() {
		if err := o.Insert(f); err != nil {
			return err
		}
	}
	return nil
}

// Insert adds a single face to the index by its triangle's bounding box.
func (o *FaceOctree) Insert(f mesh.FaceID) error {
	box := triangleAABB(o.mesh, f)

	var codes []uint64
	queue := []uint64{1}

	for len(queue) > 0 {
		code := queue[0]
		queue = queue[1:]
		node := o.nodes[code]

		if !box.IntersectsAABB(node.aabb) {
			continue
		}

		if node.isLeaf {
			codes = append(codes, code)
		} else {
			queue = append(queue, node.children()...)
		}
	}

	if len(codes) == 0 {
		return ErrItemNotInserted
	}

	index := len(o.faces)
	o.faces = append(o.faces, f)

	for _, code := range codes {
		node := o.nodes[code]
		node.items = append(node.items, index)

		if node.shouldSplit() {
			if err := o.split(code); err != nil {
				return err
			}
		}
	}

	return nil
}

// split divides a leaf node into its eight octant children, redistributing
// its items among those that still overlap.
func (o *FaceOctree) split(code uint64) error {
	node := o.nodes[code]
	if !node.canSplit() {
		return ErrCannotSplitNode
	}

	for _, childCode := range node.children() {
		octant := childCode & 0x7
		aabb := node.aabb.Octant(octant)
		child := newOctreeNode(childCode, aabb)

		for _, index := range node.items {
			box := triangleAABB(o.mesh, o.faces[index])
			if box.IntersectsAABB(aabb) {
				child.items = append(child.items, index)
			}
		}

		o.nodes[childCode] = child
	}

	node.items = nil
	node.isLeaf = false

	return nil
}

// Query returns every indexed face whose bounding box intersects query.
func (o *FaceOctree) Query(query geom.AABB) []mesh.FaceID {
	seen := make(map[int]bool)
	var result []mesh.FaceID

	queue := []uint64{1}
	for len(queue) > 0 {
		code := queue[0]
		queue = queue[1:]
		node, ok := o.nodes[code]
		if !ok || !query.IntersectsAABB(node.aabb) {
			continue
		}

		if node.isLeaf {
			for _, index := range node.items {
				if !seen[index] {
					seen[index] = true
					result = append(result, o.faces[index])
				}
			}
		} else {
			queue = append(queue, node.children()...)
		}
	}

	return result
}

func triangleAABB(m *mesh.Mesh, f mesh.FaceID) geom.AABB {
	v0, v1, v2 := m.FaceVertices(f)
	var points []geom.Vector
	for _, v := range []mesh.VertexID{v0, v1, v2} {
		x, y, z := m.Position(v)
		points = append(points, geom.NewVector(x, y, z))
	}
	return geom.NewAABBFromVectors(points)
}

type octreeNode struct {
	items  []int
	aabb   geom.AABB
	code   uint64
	isLeaf bool
}

func newOctreeNode(code uint64, aabb geom.AABB) *octreeNode {
	return &octreeNode{aabb: aabb, code: code, isLeaf: true}
}

func (n *octreeNode) depth() int {
	for d := 0; d <= maxDepth; d++ {
		if n.code>>uint(3*d) == 1 {
			return d
		}
	}
	panic("spatial: invalid octree code")
}

func (n *octreeNode) children() []uint64 {
	children := make([]uint64, 8)
	for octant := range children {
		children[octant] = n.code<<3 | uint64(octant)
	}
	return children
}

func (n *octreeNode) canSplit() bool {
	return n.isLeaf && n.depth() < maxDepth
}

func (n *octreeNode) shouldSplit() bool {
	return n.canSplit() && len(n.items) > maxLeafItems
}

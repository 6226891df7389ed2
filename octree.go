package main

// octreeNode is an owned recursive tree node. A node is either a leaf (no children, may hold
// object indices) or fully internal (eight children, no objects) — the mixed case never occurs.
// ChildrenOffset/ObjectsOffset/ObjectCount are back-patched by the linearizer; -1 is the
// sentinel for "not applicable", matching the linearized NodeArray.
type octreeNode struct {
	Bounds   AABB
	IsLeaf   bool
	Children [8]*octreeNode

	// ObjectIndices holds the primitive indices assigned to this node. Populated during build
	// for every node (parents included) and cleared from parents once they subdivide.
	ObjectIndices []int

	// linearization slots, filled in by the linearizer; until then ChildrenOffset and
	// ObjectsOffset are -1 and ObjectCount is 0.
	ChildrenOffset int
	ObjectsOffset  int
	ObjectCount    int
}

func newOctreeLeaf(bounds AABB, objectIndices []int) *octreeNode {
	return &octreeNode{
		Bounds:         bounds,
		IsLeaf:         true,
		ObjectIndices:  objectIndices,
		ChildrenOffset: -1,
		ObjectsOffset:  -1,
		ObjectCount:    0,
	}
}

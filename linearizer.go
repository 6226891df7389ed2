package main

// LinearNode is one entry of a linearized NodeArray: a GPU-traversable, pointer-free
// representation of a tree node.
type LinearNode struct {
	Bounds         AABB
	ChildrenOffset int // index of first child in NodeArray, or -1 if leaf
	ObjectsOffset  int // index of first entry in ObjectIndexArray, or -1 if internal/empty leaf
	ObjectCount    int // 0 for internal nodes
}

// Linearize traverses root breadth-first and emits NodeArray (one entry per node, dense-indexed)
// and ObjectIndexArray (the concatenation of every leaf's object slice, in BFS order). The
// eight children of any internal node occupy contiguous positions in NodeArray: the first
// child's index alone locates all eight.
//
// Two passes: the first assigns dense indices breadth-first (children of a node enqueued in
// octant order), the second emits each node's record now that every node's index is known. The
// emit pass also back-patches each tree node's own linearization slots, so the tree and the
// flat arrays agree after Linearize returns; the tree's structure is never touched.
func Linearize(root *octreeNode) (nodes []LinearNode, objectIndices []int) {
	var order []*octreeNode
	nodeToIndex := make(map[*octreeNode]int)

	queue := []*octreeNode{root}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]

		nodeToIndex[n] = len(order)
		order = append(order, n)

		if !n.IsLeaf {
			for k := 0; k < 8; k++ {
				queue = append(queue, n.Children[k])
			}
		}
	}

	nodes = make([]LinearNode, len(order))
	for i, n := range order {
		rec := LinearNode{Bounds: n.Bounds}
		if n.IsLeaf {
			rec.ChildrenOffset = -1
			if len(n.ObjectIndices) > 0 {
				rec.ObjectsOffset = len(objectIndices)
				rec.ObjectCount = len(n.ObjectIndices)
				objectIndices = append(objectIndices, n.ObjectIndices...)
			} else {
				rec.ObjectsOffset = -1
			}
		} else {
			rec.ChildrenOffset = nodeToIndex[n.Children[0]]
			rec.ObjectsOffset = -1
			rec.ObjectCount = 0
		}
		nodes[i] = rec

		n.ChildrenOffset = rec.ChildrenOffset
		n.ObjectsOffset = rec.ObjectsOffset
		n.ObjectCount = rec.ObjectCount
	}

	return nodes, objectIndices
}

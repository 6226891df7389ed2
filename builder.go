package main

import "fmt"

// Build computes the root AABB as the union of every sphere's bounds, seeds it with every
// primitive index, and recursively subdivides it under the given depth cap and leaf threshold.
// It fails with ErrEmptyScene if spheres is empty. A root that collapses to a single point
// (every primitive has zero extent at the same location) still succeeds, returning a single
// leaf and a DegenerateBoundsWarning the caller may choose to log.
func Build(spheres []Sphere, maxDepth, leafThreshold int) (*octreeNode, error) {
	if len(spheres) == 0 {
		return nil, ErrEmptyScene
	}

	bounds := SphereBounds(spheres[0])
	for _, s := range spheres[1:] {
		bounds = UnionAABB(bounds, SphereBounds(s))
	}

	root := &octreeNode{
		Bounds:         bounds,
		IsLeaf:         true,
		ChildrenOffset: -1,
		ObjectsOffset:  -1,
	}
	root.ObjectIndices = make([]int, len(spheres))
	for i := range spheres {
		root.ObjectIndices[i] = i
	}

	if bounds.Min == bounds.Max {
		// Every primitive has zero extent at the same point: the root has no volume to split,
		// so subdivision terminates immediately and every primitive stays in the single leaf.
		return root, &DegenerateBoundsWarning{Point: bounds.Min}
	}

	subdivide(root, spheres, 0, maxDepth, leafThreshold)
	return root, nil
}

// subdivide applies the termination rule, then splits a node into its eight octants and
// distributes the parent's object indices among the children whose bounds they overlap.
// Children with an empty object list are kept as empty leaves rather than pruned: the octant
// numbering is positional, and the linearizer's dense-children guarantee requires every internal
// node to have exactly eight children present.
func subdivide(node *octreeNode, spheres []Sphere, depth, maxDepth, leafThreshold int) {
	if depth >= maxDepth || len(node.ObjectIndices) <= leafThreshold {
		return
	}

	if VERBOSE_BUILD {
		fmt.Printf("[Octree] depth %d: subdividing node with %d objects, bounds %v..%v\n",
			depth, len(node.ObjectIndices), node.Bounds.Min, node.Bounds.Max)
	}

	node.IsLeaf = false
	mid := node.Bounds.Midpoint()

	for k := 0; k < 8; k++ {
		childBounds := octantBounds(node.Bounds, mid, k)
		var childObjects []int
		for _, i := range node.ObjectIndices {
			if childBounds.OverlapsSphere(spheres[i]) {
				childObjects = append(childObjects, i)
			}
		}
		node.Children[k] = newOctreeLeaf(childBounds, childObjects)
	}

	// Parents hold no primitives once they have children.
	node.ObjectIndices = nil

	for k := 0; k < 8; k++ {
		child := node.Children[k]
		if len(child.ObjectIndices) > 0 {
			subdivide(child, spheres, depth+1, maxDepth, leafThreshold)
		}
	}
}

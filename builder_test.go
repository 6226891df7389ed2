package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildEmptySceneFails(t *testing.T) {
	// A build with zero primitives must refuse outright.
	_, err := Build(nil, 4, 0)
	assert.ErrorIs(t, err, ErrEmptyScene)
}

func TestBuildDegenerateSceneWarns(t *testing.T) {
	// Three zero-radius spheres at the origin: the root collapses to a point, the build
	// still succeeds with a single leaf holding all three.
	spheres := []Sphere{
		NewSphere(Point{}, 0, Point{}),
		NewSphere(Point{}, 0, Point{}),
		NewSphere(Point{}, 0, Point{}),
	}

	root, err := Build(spheres, 4, 0)
	require.NotNil(t, root)

	var warning *DegenerateBoundsWarning
	require.ErrorAs(t, err, &warning)
	assert.True(t, root.IsLeaf)
	assert.Len(t, root.ObjectIndices, 3)
}

func TestBuildSingleSphereSubdivision(t *testing.T) {
	// Single sphere at origin, radius 1, depth cap 4, leaf threshold 0. The sphere overlaps every cell
	// through depth 2 (the farthest depth-2 corner sits at squared distance 0.75 < 1), so the
	// tree is full down to depth 3. From depth 3 on, corner cells start falling outside the
	// ball: 408 of the 512 depth-3 cells overlap and subdivide, giving 3264 depth-4 cells, of
	// which 2728 reference the sphere. All of these counts are exact: midpoints and squared
	// distances are exact binary fractions, so the build is bit-deterministic.
	spheres := []Sphere{NewSphere(Point{}, 1, Point{})}

	root, err := Build(spheres, 4, 0)
	require.NoError(t, err)
	assert.Equal(t, AABB{Min: Point{X: -1, Y: -1, Z: -1}, Max: Point{X: 1, Y: 1, Z: 1}}, root.Bounds)

	nodes, objectIndices := Linearize(root)
	assert.Len(t, nodes, 1+8+64+512+3264)
	assert.Len(t, objectIndices, 2728)

	// Depths 0..2 are fully internal: the first 1+8+64 nodes of the BFS order all carry a
	// children offset.
	for i := 0; i < 1+8+64; i++ {
		assert.NotEqual(t, -1, nodes[i].ChildrenOffset, "node %d should be internal", i)
	}

	// The only primitive is sphere 0, so every object entry references it.
	for _, idx := range objectIndices {
		require.Equal(t, 0, idx)
	}
}

func TestBuildTwoDisjointSpheresSplitCleanly(t *testing.T) {
	// Two disjoint unit spheres at (-2,0,0) and (2,0,0) with a single split: each lands only
	// in its own side's four octants.
	spheres := []Sphere{
		NewSphere(Point{X: -2, Y: 0, Z: 0}, 1, Point{}),
		NewSphere(Point{X: 2, Y: 0, Z: 0}, 1, Point{}),
	}

	root, err := Build(spheres, 1, 0)
	require.NoError(t, err)

	assert.Equal(t, AABB{Min: Point{X: -3, Y: -1, Z: -1}, Max: Point{X: 3, Y: 1, Z: 1}}, root.Bounds)
	require.False(t, root.IsLeaf)

	for k := 0; k < 8; k++ {
		child := root.Children[k]
		require.True(t, child.IsLeaf)
		require.Len(t, child.ObjectIndices, 1)
		if k&1 == 0 {
			assert.Equal(t, 0, child.ObjectIndices[0])
		} else {
			assert.Equal(t, 1, child.ObjectIndices[0])
		}
	}

	_, objectIndices := Linearize(root)
	assert.Len(t, objectIndices, 8)
}

func TestBuildSphereOnSplitPlaneOverlapsAllEightChildren(t *testing.T) {
	// A sphere centered on the split point is tangent-or-overlapping every octant, so all
	// eight children reference it.
	spheres := []Sphere{NewSphere(Point{}, 0.5, Point{})}

	root, err := Build(spheres, 1, 0)
	require.NoError(t, err)
	require.False(t, root.IsLeaf)

	for k := 0; k < 8; k++ {
		assert.Len(t, root.Children[k].ObjectIndices, 1)
	}

	_, objectIndices := Linearize(root)
	assert.Len(t, objectIndices, 8)
}

func TestBuildDeterministic(t *testing.T) {
	// Identical inputs and parameters must produce byte-identical linearized buffers.
	spheres := newRandomScene(20)

	root1, err := Build(spheres, 3, 0)
	require.NoError(t, err)
	root2, err := Build(spheres, 3, 0)
	require.NoError(t, err)

	nodes1, objs1 := Linearize(root1)
	nodes2, objs2 := Linearize(root2)

	assert.Equal(t, nodes1, nodes2)
	assert.Equal(t, objs1, objs2)
}

func TestBuildTerminationIdempotence(t *testing.T) {
	// Raising the depth cap past saturation must not change the tree. Eight spheres,
	// one per octant, well clear of every split plane: a single split leaves every leaf with
	// exactly one object, so with threshold 1 the tree saturates at depth 1 and deeper caps change
	// nothing.
	var spheres []Sphere
	for k := 0; k < 8; k++ {
		c := Point{X: -5, Y: -5, Z: -5}
		if k&1 != 0 {
			c.X = 5
		}
		if k&2 != 0 {
			c.Y = 5
		}
		if k&4 != 0 {
			c.Z = 5
		}
		spheres = append(spheres, NewSphere(c, 1, Point{}))
	}

	shallow, err := Build(spheres, 3, 1)
	require.NoError(t, err)
	deep, err := Build(spheres, 10, 1)
	require.NoError(t, err)

	nodesShallow, objsShallow := Linearize(shallow)
	nodesDeep, objsDeep := Linearize(deep)

	assert.Equal(t, nodesShallow, nodesDeep)
	assert.Equal(t, objsShallow, objsDeep)
}

func TestBuildEveryInternalNodeHasEightChildren(t *testing.T) {
	// A node has either zero or exactly eight children, never something in between.
	spheres := newRandomScene(30)
	root, err := Build(spheres, 3, 1)
	require.NoError(t, err)

	var walk func(n *octreeNode)
	walk = func(n *octreeNode) {
		if n.IsLeaf {
			for _, c := range n.Children {
				assert.Nil(t, c)
			}
			return
		}
		for _, c := range n.Children {
			require.NotNil(t, c)
			walk(c)
		}
	}
	walk(root)
}

func TestBuildBoundsContainment(t *testing.T) {
	// Every primitive a node references must overlap that node's bounds.
	spheres := newRandomScene(25)
	root, err := Build(spheres, 3, 0)
	require.NoError(t, err)

	var walk func(n *octreeNode)
	walk = func(n *octreeNode) {
		if n.IsLeaf {
			for _, i := range n.ObjectIndices {
				assert.True(t, n.Bounds.OverlapsSphere(spheres[i]))
			}
			return
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(root)
}

func TestBuildRootCompleteness(t *testing.T) {
	// The root bounds equal the union of every primitive's bounding AABB.
	spheres := newRandomScene(15)
	root, err := Build(spheres, 3, 0)
	require.NoError(t, err)

	want := SphereBounds(spheres[0])
	for _, s := range spheres[1:] {
		want = UnionAABB(want, SphereBounds(s))
	}

	assert.Equal(t, want, root.Bounds)
}

func TestBuildCoverage(t *testing.T) {
	// Every primitive appears in at least one leaf.
	spheres := newRandomScene(25)
	root, err := Build(spheres, 3, 0)
	require.NoError(t, err)

	seen := make(map[int]bool)
	var walk func(n *octreeNode)
	walk = func(n *octreeNode) {
		if n.IsLeaf {
			for _, i := range n.ObjectIndices {
				seen[i] = true
			}
			return
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(root)

	for i := range spheres {
		assert.True(t, seen[i], "sphere %d missing from every leaf", i)
	}
}

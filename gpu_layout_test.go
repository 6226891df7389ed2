package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackGPULayoutRecordShapes(t *testing.T) {
	spheres := []Sphere{
		NewSphere(Point{X: 1, Y: 2, Z: 3}, 4, Point{X: 0.1, Y: 0.2, Z: 0.3}),
		NewMetalSphere(Point{X: -1, Y: -2, Z: -3}, 0.5, Point{X: 0.9, Y: 0.8, Z: 0.7}, 0.25),
	}

	root, err := Build(spheres, 1, 0)
	require.NoError(t, err)
	nodes, objectIndices := Linearize(root)

	layout := PackGPULayout(spheres, nodes, objectIndices)

	require.Len(t, layout.SphereGeometry, 2)
	assert.Equal(t, Vec4{1, 2, 3, 4}, layout.SphereGeometry[0])

	assert.Equal(t, Vec4{0, 0.1, 0.2, 0.3}, layout.SphereMaterialA[0])
	assert.Equal(t, float32(Metal), layout.SphereMaterialA[1].X)

	assert.Equal(t, Vec4{0, 1, 0, 0}, layout.SphereMaterialB[0])
	assert.Equal(t, float32(0.25), layout.SphereMaterialB[1].X)

	require.Len(t, layout.NodeBoundsA, len(nodes))
	require.Len(t, layout.NodeBoundsB, len(nodes))
	require.Len(t, layout.NodeCounts, len(nodes))
	require.Len(t, layout.ObjectIndices, len(objectIndices))

	for i, n := range nodes {
		assert.Equal(t, float32(n.ChildrenOffset), layout.NodeBoundsA[i].W)
		assert.Equal(t, float32(n.ObjectsOffset), layout.NodeBoundsB[i].W)
		assert.Equal(t, int32(n.ObjectCount), layout.NodeCounts[i])
	}
}

func TestF32ClampsNaN(t *testing.T) {
	nan := float64(0)
	nan = nan / nan // produces NaN without a compile-time constant-fold
	assert.Equal(t, float32(0), f32(nan))
}

func TestF32PassesThroughFiniteValues(t *testing.T) {
	assert.Equal(t, float32(3.5), f32(3.5))
}

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSphereBounds(t *testing.T) {
	s := NewSphere(Point{X: 1, Y: 2, Z: 3}, 2, Point{})
	b := SphereBounds(s)

	assert.Equal(t, Point{X: -1, Y: 0, Z: 1}, b.Min)
	assert.Equal(t, Point{X: 3, Y: 4, Z: 5}, b.Max)
}

func TestSphereBoundsZeroRadiusIsAPoint(t *testing.T) {
	s := NewSphere(Point{X: 5, Y: 5, Z: 5}, 0, Point{})
	b := SphereBounds(s)

	assert.Equal(t, b.Min, b.Max)
}

func TestUnionAABB(t *testing.T) {
	a := NewAABB(Point{X: -1, Y: -1, Z: -1}, Point{X: 1, Y: 1, Z: 1})
	b := NewAABB(Point{X: 0, Y: 5, Z: -5}, Point{X: 2, Y: 6, Z: 0})

	u := UnionAABB(a, b)

	assert.Equal(t, Point{X: -1, Y: -1, Z: -5}, u.Min)
	assert.Equal(t, Point{X: 2, Y: 6, Z: 1}, u.Max)
}

func TestOverlapsSphereTangentCountsAsOverlap(t *testing.T) {
	box := NewAABB(Point{X: -1, Y: -1, Z: -1}, Point{X: 1, Y: 1, Z: 1})
	tangent := NewSphere(Point{X: 2, Y: 0, Z: 0}, 1, Point{})

	assert.True(t, box.OverlapsSphere(tangent))
}

func TestOverlapsSphereDisjointDoesNotOverlap(t *testing.T) {
	box := NewAABB(Point{X: -1, Y: -1, Z: -1}, Point{X: 1, Y: 1, Z: 1})
	far := NewSphere(Point{X: 10, Y: 10, Z: 10}, 1, Point{})

	assert.False(t, box.OverlapsSphere(far))
}

func TestOverlapsSphereOnSplitPlaneOverlapsBothSides(t *testing.T) {
	left := NewAABB(Point{X: -1, Y: -1, Z: -1}, Point{X: 0, Y: 1, Z: 1})
	right := NewAABB(Point{X: 0, Y: -1, Z: -1}, Point{X: 1, Y: 1, Z: 1})
	onPlane := NewSphere(Point{X: 0, Y: 0, Z: 0}, 0.5, Point{})

	assert.True(t, left.OverlapsSphere(onPlane))
	assert.True(t, right.OverlapsSphere(onPlane))
}

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestOctantBitEncoding pins the chosen octant-numbering contract: bit 0 = X, bit 1 = Y,
// bit 2 = Z. The shader's traversal assumes this exact mapping.
func TestOctantBitEncoding(t *testing.T) {
	box := NewAABB(Point{X: -1, Y: -1, Z: -1}, Point{X: 1, Y: 1, Z: 1})
	m := box.Midpoint()

	cases := []struct {
		k       int
		wantMin Point
		wantMax Point
	}{
		{0, Point{X: -1, Y: -1, Z: -1}, Point{X: 0, Y: 0, Z: 0}},
		{1, Point{X: 0, Y: -1, Z: -1}, Point{X: 1, Y: 0, Z: 0}},
		{2, Point{X: -1, Y: 0, Z: -1}, Point{X: 0, Y: 1, Z: 0}},
		{3, Point{X: 0, Y: 0, Z: -1}, Point{X: 1, Y: 1, Z: 0}},
		{4, Point{X: -1, Y: -1, Z: 0}, Point{X: 0, Y: 0, Z: 1}},
		{5, Point{X: 0, Y: -1, Z: 0}, Point{X: 1, Y: 0, Z: 1}},
		{6, Point{X: -1, Y: 0, Z: 0}, Point{X: 0, Y: 1, Z: 1}},
		{7, Point{X: 0, Y: 0, Z: 0}, Point{X: 1, Y: 1, Z: 1}},
	}

	for _, tc := range cases {
		got := octantBounds(box, m, tc.k)
		assert.Equal(t, tc.wantMin, got.Min, "octant %d min", tc.k)
		assert.Equal(t, tc.wantMax, got.Max, "octant %d max", tc.k)
	}
}

func TestOctantBoundsInvalidIndexPanics(t *testing.T) {
	box := NewAABB(Point{X: -1, Y: -1, Z: -1}, Point{X: 1, Y: 1, Z: 1})
	require.Panics(t, func() {
		octantBounds(box, box.Midpoint(), 8)
	})
}

// TestOctantsTileParentExactly checks invariant 4: the eight octants union back to the parent
// and their interiors are pairwise disjoint up to shared split planes.
func TestOctantsTileParentExactly(t *testing.T) {
	box := NewAABB(Point{X: -2, Y: -3, Z: -4}, Point{X: 2, Y: 3, Z: 4})
	m := box.Midpoint()

	union := octantBounds(box, m, 0)
	for k := 1; k < 8; k++ {
		union = UnionAABB(union, octantBounds(box, m, k))
	}

	assert.Equal(t, box.Min, union.Min)
	assert.Equal(t, box.Max, union.Max)

	for i := 0; i < 8; i++ {
		a := octantBounds(box, m, i)
		for j := i + 1; j < 8; j++ {
			b := octantBounds(box, m, j)
			interiorsMeet := maxF(a.Min.X, b.Min.X) < minF(a.Max.X, b.Max.X) &&
				maxF(a.Min.Y, b.Min.Y) < minF(a.Max.Y, b.Max.Y) &&
				maxF(a.Min.Z, b.Min.Z) < minF(a.Max.Z, b.Max.Z)
			assert.False(t, interiorsMeet, "octants %d and %d share interior volume", i, j)
		}
	}
}

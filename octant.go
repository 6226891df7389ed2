package main

// Octant numbering is a fixed 3-bit encoding: bit 0 selects the X half (0 = low, 1 = high), bit 1
// selects Y, bit 2 selects Z. This is a contract shared with the fragment shader, not a free
// parameter — any consistent mapping works, but CPU and shader must agree on this one.
const (
	octantLoX = 0
	octantHiX = 1
	octantLoY = 0
	octantHiY = 2
	octantLoZ = 0
	octantHiZ = 4
)

// octantBounds returns the AABB of octant k (0..7) of a box split at its midpoint m.
func octantBounds(b AABB, m Point, k int) AABB {
	if k < 0 || k > 7 {
		invalidOctant(k)
	}

	min, max := b.Min, b.Max

	if k&1 != 0 {
		min.X = m.X
	} else {
		max.X = m.X
	}
	if k&2 != 0 {
		min.Y = m.Y
	} else {
		max.Y = m.Y
	}
	if k&4 != 0 {
		min.Z = m.Z
	} else {
		max.Z = m.Z
	}

	return AABB{Min: min, Max: max}
}

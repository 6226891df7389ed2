package main

// AABB is an axis-aligned bounding box: a pair of 3D points with Min <= Max component-wise.
type AABB struct {
	Min Point
	Max Point
}

// NewAABB creates an AABB from explicit bounds.
func NewAABB(min, max Point) AABB {
	return AABB{Min: min, Max: max}
}

// SphereBounds returns the tight AABB of a sphere: center minus radius to center plus radius
// along every axis. Zero-radius spheres collapse to a point AABB.
func SphereBounds(s Sphere) AABB {
	r := Point{X: s.Radius, Y: s.Radius, Z: s.Radius}
	return AABB{Min: s.Center.Sub(r), Max: s.Center.Add(r)}
}

// UnionAABB returns the smallest AABB enclosing both a and b.
func UnionAABB(a, b AABB) AABB {
	return AABB{
		Min: Point{
			X: minF(a.Min.X, b.Min.X),
			Y: minF(a.Min.Y, b.Min.Y),
			Z: minF(a.Min.Z, b.Min.Z),
		},
		Max: Point{
			X: maxF(a.Max.X, b.Max.X),
			Y: maxF(a.Max.Y, b.Max.Y),
			Z: maxF(a.Max.Z, b.Max.Z),
		},
	}
}

// Midpoint returns the center of the box, used to split it into eight octants.
func (b AABB) Midpoint() Point {
	return Point{
		X: (b.Min.X + b.Max.X) / 2,
		Y: (b.Min.Y + b.Max.Y) / 2,
		Z: (b.Min.Z + b.Max.Z) / 2,
	}
}

// OverlapsSphere reports whether the sphere overlaps the box. It finds the closest point on the
// box to the sphere's center by clamping each coordinate into [Min,Max], then compares squared
// distance against squared radius. No square root; a sphere tangent to a face counts as
// overlapping.
func (b AABB) OverlapsSphere(s Sphere) bool {
	closestX := clamp(s.Center.X, b.Min.X, b.Max.X)
	closestY := clamp(s.Center.Y, b.Min.Y, b.Max.Y)
	closestZ := clamp(s.Center.Z, b.Min.Z, b.Max.Z)

	dx := closestX - s.Center.X
	dy := closestY - s.Center.Y
	dz := closestZ - s.Center.Z

	distSq := dx*dx + dy*dy + dz*dz
	return distSq <= s.Radius*s.Radius
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

package main

import "github.com/chewxy/math32"

// Vec4 is a 4-component float32 record, the fixed width every per-sphere and per-node buffer
// packs into; vector hardware prefers 4-wide records over mixing scalars with vectors, even
// where trailing lanes go unused.
type Vec4 struct {
	X, Y, Z, W float32
}

// GPULayout holds the seven flat, binding-ready arrays the driver uploads at startup. Binding
// slots are fixed integers 0..6 in this order and form part of the CPU/shader contract.
type GPULayout struct {
	SphereGeometry  []Vec4  // binding 0: center.xyz, radius
	SphereMaterialA []Vec4  // binding 1: material kind, albedo.rgb
	SphereMaterialB []Vec4  // binding 2: fuzz, refractive index, unused, unused
	NodeBoundsA     []Vec4  // binding 3: bounds.min.xyz, children_offset
	NodeBoundsB     []Vec4  // binding 4: bounds.max.xyz, objects_offset
	NodeCounts      []int32 // binding 5: object_count
	ObjectIndices   []int32 // binding 6: concatenated object indices
}

// f32 narrows a CPU float64 coordinate to the float32 the shader-facing records require. NaN
// values are not forwarded to the shader as-is; they are clamped to zero rather than
// propagating into the traversal.
func f32(v float64) float32 {
	out := float32(v)
	if math32.IsNaN(out) {
		return 0
	}
	return out
}

// PackGPULayout re-packs spheres and the linearized tree into the seven fixed-width records the
// shader bindings expect.
func PackGPULayout(spheres []Sphere, nodes []LinearNode, objectIndices []int) GPULayout {
	layout := GPULayout{
		SphereGeometry:  make([]Vec4, len(spheres)),
		SphereMaterialA: make([]Vec4, len(spheres)),
		SphereMaterialB: make([]Vec4, len(spheres)),
		NodeBoundsA:     make([]Vec4, len(nodes)),
		NodeBoundsB:     make([]Vec4, len(nodes)),
		NodeCounts:      make([]int32, len(nodes)),
		ObjectIndices:   make([]int32, len(objectIndices)),
	}

	for i, s := range spheres {
		layout.SphereGeometry[i] = Vec4{f32(s.Center.X), f32(s.Center.Y), f32(s.Center.Z), f32(s.Radius)}
		layout.SphereMaterialA[i] = Vec4{f32(float64(s.Material)), f32(s.Albedo.X), f32(s.Albedo.Y), f32(s.Albedo.Z)}
		layout.SphereMaterialB[i] = Vec4{f32(s.Fuzz), f32(s.RefractiveIndex), 0, 0}
	}

	for i, n := range nodes {
		layout.NodeBoundsA[i] = Vec4{f32(n.Bounds.Min.X), f32(n.Bounds.Min.Y), f32(n.Bounds.Min.Z), f32(float64(n.ChildrenOffset))}
		layout.NodeBoundsB[i] = Vec4{f32(n.Bounds.Max.X), f32(n.Bounds.Max.Y), f32(n.Bounds.Max.Z), f32(float64(n.ObjectsOffset))}
		layout.NodeCounts[i] = int32(n.ObjectCount)
	}

	for i, v := range objectIndices {
		layout.ObjectIndices[i] = int32(v)
	}

	return layout
}

package main

// MaterialKind selects the shading model the fragment shader applies to a sphere. Values are
// forwarded to the shader as a float lane (see PackGPULayout's SphereMaterialA), so the ordering here is part of
// the CPU/shader contract.
type MaterialKind int

const (
	Diffuse MaterialKind = iota
	Metal
	Dielectric
)

// Sphere is an immutable scene primitive: a center, radius and material descriptor. Spheres are
// never mutated after scene construction; the builder only ever reads them by index.
type Sphere struct {
	Center Point
	Radius float64

	Material        MaterialKind
	Albedo          Point // reused as an RGB triple
	Fuzz            float64
	RefractiveIndex float64
}

// NewSphere creates a diffuse sphere with the given center, radius and albedo.
func NewSphere(center Point, radius float64, albedo Point) Sphere {
	return Sphere{
		Center:          center,
		Radius:          radius,
		Material:        Diffuse,
		Albedo:          albedo,
		Fuzz:            0,
		RefractiveIndex: 1.0,
	}
}

// NewMetalSphere creates a metal sphere with the given fuzz (roughness).
func NewMetalSphere(center Point, radius float64, albedo Point, fuzz float64) Sphere {
	s := NewSphere(center, radius, albedo)
	s.Material = Metal
	s.Fuzz = fuzz
	return s
}

// NewDielectricSphere creates a dielectric (glass) sphere with the given refractive index.
func NewDielectricSphere(center Point, radius float64, refractiveIndex float64) Sphere {
	s := NewSphere(center, radius, Point{X: 1, Y: 1, Z: 1})
	s.Material = Dielectric
	s.RefractiveIndex = refractiveIndex
	return s
}

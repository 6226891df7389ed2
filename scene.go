package main

import "math/rand"

// NewScene builds the sphere list the driver will hand to Build. DEBUG selects a trivial
// three-sphere scene; otherwise USE_PREBUILT chooses between a small fixed layout and a random
// scene of NUM_SPHERES spheres, mirroring the three generateSpheres variants of the original
// program.
func NewScene() []Sphere {
	if DEBUG {
		return newDebugScene()
	}
	if USE_PREBUILT {
		return newPrebuiltScene()
	}
	return newRandomScene(NUM_SPHERES)
}

// newDebugScene returns the trivial three-sphere layout used to inspect octree subdivision by
// hand: each sphere sits in a different octant of a cube centered on the origin.
func newDebugScene() []Sphere {
	return []Sphere{
		NewSphere(Point{X: -10, Y: -10, Z: -10}, 3, Point{X: 0.596282, Y: 0.140784, Z: 0.017972}),
		NewSphere(Point{X: 10, Y: 10, Z: 10}, 3, Point{X: 0.952200, Y: 0.391551, Z: 0.915972}),
		NewSphere(Point{X: -10, Y: 10, Z: -10}, 3, Point{X: 0.002612, Y: 0.598319, Z: 0.435378}),
	}
}

// newPrebuiltScene returns a small, fixed, hand-placed scene: a ground plane plus a few spheres
// spanning every material kind, useful for smoke-testing the renderer without the cost of a full
// random scene.
func newPrebuiltScene() []Sphere {
	return []Sphere{
		NewSphere(Point{X: 0, Y: -1000, Z: 0}, 1000, Point{X: 0.5, Y: 0.5, Z: 0.5}),
		NewSphere(Point{X: -4, Y: 1, Z: 0}, 1, Point{X: 0.4, Y: 0.2, Z: 0.1}),
		NewDielectricSphere(Point{X: 0, Y: 1, Z: 0}, 1, 1.5),
		NewMetalSphere(Point{X: 4, Y: 1, Z: 0}, 1, Point{X: 0.7, Y: 0.6, Z: 0.5}, 0.0),
	}
}

// newRandomScene returns a ground plane plus n randomly placed, randomly shaded small spheres,
// mirroring generateRandomSpheres: material kind, albedo, fuzz and refractive index are all
// drawn at random, biased toward diffuse spheres.
func newRandomScene(n int) []Sphere {
	spheres := make([]Sphere, 0, n+1)
	spheres = append(spheres, NewSphere(Point{X: 0, Y: -1000, Z: 0}, 1000, Point{X: 0.5, Y: 0.5, Z: 0.5}))

	for len(spheres) <= n {
		center := Point{
			X: (rand.Float64()*2 - 1) * 10,
			Y: 0.2,
			Z: (rand.Float64()*2 - 1) * 10,
		}

		roll := rand.Float64()
		switch {
		case roll < 0.8:
			albedo := Point{X: rand.Float64() * rand.Float64(), Y: rand.Float64() * rand.Float64(), Z: rand.Float64() * rand.Float64()}
			spheres = append(spheres, NewSphere(center, 0.2, albedo))
		case roll < 0.95:
			albedo := Point{X: 0.5 + rand.Float64()/2, Y: 0.5 + rand.Float64()/2, Z: 0.5 + rand.Float64()/2}
			spheres = append(spheres, NewMetalSphere(center, 0.2, albedo, rand.Float64()/2))
		default:
			spheres = append(spheres, NewDielectricSphere(center, 0.2, 1.5))
		}
	}

	return spheres
}

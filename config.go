package main

// Process-global configuration, compile-time constants matching the original program's
// config.h. A runtime-configurable variant would work just as well as long as the shader-side
// uniforms stay in lockstep; constants are a simplification, not a contract.
const (
	// DEBUG swaps in the trivial three-sphere scene and pulls the camera back to frame it.
	DEBUG = false

	// USE_OCTREE: if false the shader is told to brute-force every sphere; the CPU still
	// builds and uploads the tree regardless, the shader just ignores it.
	USE_OCTREE = true

	// USE_PREBUILT selects the small fixed scene over the random one when DEBUG is off.
	USE_PREBUILT = false
	NUM_SPHERES  = 100

	// MAX_DEPTH and MAX_SPHERES_PER_NODE are D_max and T of the build policy.
	MAX_DEPTH              = 3
	DEBUG_DEPTH            = 3
	MAX_SPHERES_PER_NODE   = 0
	DEBUG_SPHERES_PER_NODE = 2

	// NUM_SAMPLES and MAX_RAYS_DEPTH are forwarded to the shader uniforms.
	NUM_SAMPLES    = 16
	MAX_RAYS_DEPTH = 8

	SCR_WIDTH  = 800
	SCR_HEIGHT = 600

	COLLECT_STATS = false
	OUTPUT_FILE   = "stats.csv"

	// VERBOSE_BUILD opts into the per-level subdivision trail the original program printed
	// unconditionally; off by default so a normal run stays quiet.
	VERBOSE_BUILD = false
)

// EffectiveDepth returns the recursion cap the driver should build with: DEBUG mode takes
// DEBUG_DEPTH in place of MAX_DEPTH (the two are currently equal).
func EffectiveDepth() int {
	if DEBUG {
		return DEBUG_DEPTH
	}
	return MAX_DEPTH
}

// EffectiveSpheresPerNode returns the leaf threshold T, same DEBUG override as EffectiveDepth.
func EffectiveSpheresPerNode() int {
	if DEBUG {
		return DEBUG_SPHERES_PER_NODE
	}
	return MAX_SPHERES_PER_NODE
}

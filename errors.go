package main

import (
	"errors"
	"fmt"
)

// ErrEmptyScene is returned by Build when the caller supplies zero primitives.
var ErrEmptyScene = errors.New("octree: empty scene")

// ErrUploadFailed is returned by the driver when a GPU buffer allocation fails.
var ErrUploadFailed = errors.New("octree: gpu upload failed")

// DegenerateBoundsWarning describes a root AABB that collapsed to a single point (every
// primitive has zero extent at the same location). The build still succeeds, producing a single
// leaf; this is a warning a caller may choose to log, not a fatal error.
type DegenerateBoundsWarning struct {
	Point Point
}

func (w *DegenerateBoundsWarning) Error() string {
	return "octree: degenerate bounds, root collapsed to a point"
}

// invalidOctant panics: an octant index outside 0..7 reaching child assignment indicates a
// programming bug in the builder, not a data problem.
func invalidOctant(k int) {
	panic(fmt.Sprintf("octree: invalid octant index %d, want 0..7", k))
}

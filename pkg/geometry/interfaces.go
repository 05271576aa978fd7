package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// MinDistance is the smallest hit distance a shape reports. Closer roots
// are treated as the ray leaving its own surface.
const MinDistance = 1e-4

// Shape interface for objects that can be hit by rays
type Shape interface {
	// Intersect returns the nearest hit along the ray at a distance of at
	// least MinDistance
	Intersect(ray core.Ray) (HitInfo, bool)

	// Materials lists every material handle the shape can report
	Materials() []material.Handle

	// Validate reports malformed geometry
	Validate() error
}

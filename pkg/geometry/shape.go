package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// HitInfo contains information about a ray-object intersection
type HitInfo struct {
	Distance float64         // Distance along the ray
	Point    core.Vec3       // Point of intersection
	Normal   core.Vec3       // Unit surface normal
	Material material.Handle // Material of the hit surface
}

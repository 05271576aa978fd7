package integrator

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor computes the color seen along ray. depth is 0 for primary rays
	// and grows by one for every reflection or refraction.
	RayColor(ray core.Ray, s *scene.Scene, depth int) core.Color
}

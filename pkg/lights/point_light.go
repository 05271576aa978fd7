package lights

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// PointLight is an infinitely small light with a scalar intensity
type PointLight struct {
	Position  core.Vec3
	Intensity float64
}

// NewPointLight creates a new point light
func NewPointLight(position core.Vec3, intensity float64) PointLight {
	return PointLight{Position: position, Intensity: intensity}
}

// Validate reports whether the light can take part in a render
func (l PointLight) Validate() error {
	if math.IsNaN(l.Intensity) || math.IsInf(l.Intensity, 0) || l.Intensity < 0 {
		return fmt.Errorf("light intensity must be finite and non-negative, got %v", l.Intensity)
	}
	return nil
}

// DirectionFrom returns the unit direction from point towards the light and
// the distance between them
func (l PointLight) DirectionFrom(point core.Vec3) (core.Vec3, float64) {
	toLight := l.Position.Sub(point)
	return core.Normalize(toLight), toLight.Len()
}

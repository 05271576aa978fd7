package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material material.Handle
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, mat material.Handle) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: mat,
	}
}

// Intersect tests if a ray intersects with the sphere
func (s *Sphere) Intersect(ray core.Ray) (HitInfo, bool) {
	// Project the origin-to-center vector onto the ray
	l := s.Center.Sub(ray.Origin)
	tca := l.Dot(ray.Direction)

	// Squared distance from the center to the ray line
	d2 := l.Dot(l) - tca*tca
	r2 := s.Radius * s.Radius
	if d2 > r2 {
		return HitInfo{}, false
	}

	thc := math.Sqrt(r2 - d2)

	// Near root first, far root if the origin is inside the sphere
	t := tca - thc
	if t < MinDistance {
		t = tca + thc
		if t < MinDistance {
			return HitInfo{}, false
		}
	}

	point := ray.At(t)
	return HitInfo{
		Distance: t,
		Point:    point,
		Normal:   core.Normalize(point.Sub(s.Center)),
		Material: s.Material,
	}, true
}

// Materials returns the material handle of the sphere
func (s *Sphere) Materials() []material.Handle {
	return []material.Handle{s.Material}
}

// Validate checks the radius
func (s *Sphere) Validate() error {
	if !(s.Radius > 0) || math.IsInf(s.Radius, 0) {
		return fmt.Errorf("sphere radius must be positive and finite, got %v", s.Radius)
	}
	return nil
}

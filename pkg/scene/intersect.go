package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
)

// Intersect returns the nearest hit among all shapes. Every shape is tested;
// there is no acceleration structure. A ray with a zero direction never hits.
func (s *Scene) Intersect(ray core.Ray) (geometry.HitInfo, bool) {
	hit, _, isHit := s.IntersectShape(ray)
	return hit, isHit
}

// IntersectShape is Intersect that also returns the shape that was hit
func (s *Scene) IntersectShape(ray core.Ray) (geometry.HitInfo, geometry.Shape, bool) {
	if core.IsZero(ray.Direction) {
		return geometry.HitInfo{}, nil, false
	}

	var closest geometry.HitInfo
	var closestShape geometry.Shape

	for _, shape := range s.shapes {
		if hit, isHit := shape.Intersect(ray); isHit {
			if closestShape == nil || hit.Distance < closest.Distance {
				closest = hit
				closestShape = shape
			}
		}
	}

	return closest, closestShape, closestShape != nil
}

// Occluded reports whether anything lies along the ray closer than maxDistance
func (s *Scene) Occluded(ray core.Ray, maxDistance float64) bool {
	hit, isHit := s.Intersect(ray)
	return isHit && hit.Distance < maxDistance
}

package integrator

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// WhittedIntegrator combines Lambert and Phong direct lighting with hard
// shadows, mirror reflection and refraction, recursing to a fixed depth
type WhittedIntegrator struct {
	config core.RenderConfig
}

// NewWhittedIntegrator creates a new Whitted integrator
func NewWhittedIntegrator(config core.RenderConfig) *WhittedIntegrator {
	return &WhittedIntegrator{config: config}
}

// RayColor computes the color for a single ray. Rays with depth greater than
// MaxDepth see the background, so a primary ray spawns MaxDepth+1 levels of
// secondary rays.
func (w *WhittedIntegrator) RayColor(ray core.Ray, s *scene.Scene, depth int) core.Color {
	if depth > w.config.MaxDepth {
		return w.config.Background
	}

	hit, isHit := s.Intersect(ray)
	if !isHit {
		return w.config.Background
	}

	mat := s.MaterialFor(hit.Material)

	reflectColor := w.RayColor(ReflectedRay(ray, hit, w.config.Bias), s, depth+1)
	refractColor := w.RayColor(RefractedRay(ray, hit, mat.RefractiveIndex, w.config.Bias), s, depth+1)

	diffuse, specular := DirectLighting(s, ray, hit, mat, w.config.Bias)

	return mat.DiffuseColor.Multiply(diffuse * mat.Diffuse()).
		Add(core.White.Multiply(specular * mat.Specular())).
		Add(reflectColor.Multiply(mat.Reflective())).
		Add(refractColor.Multiply(mat.Refractive()))
}

// DirectLighting sums the Lambert and Phong terms of every light that is not
// blocked between the hit point and the light
func DirectLighting(s *scene.Scene, ray core.Ray, hit geometry.HitInfo, mat material.Material, bias float64) (diffuse, specular float64) {
	for _, light := range s.Lights() {
		lightDir, lightDistance := light.DirectionFrom(hit.Point)

		shadowRay := core.NewRay(offsetOrigin(hit, lightDir, bias), lightDir)
		if s.Occluded(shadowRay, lightDistance) {
			continue
		}

		diffuse += light.Intensity * math.Max(0, lightDir.Dot(hit.Normal))

		highlight := math.Max(0, core.Reflect(lightDir, hit.Normal).Dot(ray.Direction))
		specular += light.Intensity * math.Pow(highlight, mat.SpecularExponent)
	}
	return diffuse, specular
}

// ReflectedRay returns the mirror ray leaving the hit point
func ReflectedRay(ray core.Ray, hit geometry.HitInfo, bias float64) core.Ray {
	dir := core.Normalize(core.Reflect(ray.Direction, hit.Normal))
	return core.NewRay(offsetOrigin(hit, dir, bias), dir)
}

// RefractedRay returns the transmitted ray leaving the hit point. Under total
// internal reflection its direction is the zero vector, which hits nothing.
func RefractedRay(ray core.Ray, hit geometry.HitInfo, refractiveIndex, bias float64) core.Ray {
	dir := core.Normalize(Refract(ray.Direction, hit.Normal, refractiveIndex))
	return core.NewRay(offsetOrigin(hit, dir, bias), dir)
}

// Refract bends incident through a surface with the given normal using
// Snell's law. The outside medium is vacuum. A ray arriving from inside
// the surface swaps the indices and flips the normal. Returns the zero
// vector on total internal reflection.
func Refract(incident, normal core.Vec3, refractiveIndex float64) core.Vec3 {
	cosi := -math.Max(-1, math.Min(1, incident.Dot(normal)))
	etai, etat := 1.0, refractiveIndex
	n := normal
	if cosi < 0 {
		cosi = -cosi
		etai, etat = etat, etai
		n = n.Mul(-1)
	}

	eta := etai / etat
	k := 1 - eta*eta*(1-cosi*cosi)
	if k < 0 {
		return core.Vec3{}
	}
	return incident.Mul(eta).Add(n.Mul(eta*cosi - math.Sqrt(k)))
}

// offsetOrigin moves the hit point slightly to the side of the surface that
// dir leaves towards
func offsetOrigin(hit geometry.HitInfo, dir core.Vec3, bias float64) core.Vec3 {
	offset := hit.Normal.Mul(bias)
	if dir.Dot(hit.Normal) < 0 {
		return hit.Point.Sub(offset)
	}
	return hit.Point.Add(offset)
}

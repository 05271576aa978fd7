package core

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Vec3 represents a 3D vector
type Vec3 = mgl64.Vec3

// Vec4 represents a 4D vector
type Vec4 = mgl64.Vec4

// NewVec3 creates a new Vec3
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{x, y, z}
}

// NewVec4 creates a new Vec4
func NewVec4(x, y, z, w float64) Vec4 {
	return Vec4{x, y, z, w}
}

// Normalize returns a unit vector in the same direction.
// The zero vector normalizes to the zero vector instead of NaN.
func Normalize(v Vec3) Vec3 {
	length := v.Len()
	if length == 0 {
		return Vec3{0, 0, 0}
	}
	return v.Mul(1.0 / length)
}

// IsZero reports whether all components of v are zero
func IsZero(v Vec3) bool {
	return v[0] == 0 && v[1] == 0 && v[2] == 0
}

// Reflect mirrors the incident direction about the normal
func Reflect(incident, normal Vec3) Vec3 {
	return incident.Sub(normal.Mul(2.0 * incident.Dot(normal)))
}

// Ray represents a ray with an origin and direction
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// NewRay creates a new ray
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

package material

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Material describes how a surface responds to light. Values are immutable
// once added to a Registry.
type Material struct {
	RefractiveIndex  float64    // 1.0 means no bending
	Albedo           core.Vec4  // Weights for diffuse, specular, reflective and refractive terms
	DiffuseColor     core.Color // Base surface color
	SpecularExponent float64    // Phong shininess
}

// New creates a new material
func New(refractiveIndex float64, albedo core.Vec4, diffuse core.Color, specularExponent float64) Material {
	return Material{
		RefractiveIndex:  refractiveIndex,
		Albedo:           albedo,
		DiffuseColor:     diffuse,
		SpecularExponent: specularExponent,
	}
}

// Diffuse returns the weight of the Lambertian term
func (m Material) Diffuse() float64 { return m.Albedo[0] }

// Specular returns the weight of the Phong highlight
func (m Material) Specular() float64 { return m.Albedo[1] }

// Reflective returns the weight of the mirror reflection
func (m Material) Reflective() float64 { return m.Albedo[2] }

// Refractive returns the weight of the transmitted ray
func (m Material) Refractive() float64 { return m.Albedo[3] }

// Matte returns a purely diffuse material
func Matte(diffuse core.Color) Material {
	return New(1.0, core.NewVec4(1, 0, 0, 0), diffuse, 0)
}

// Checker is the mostly diffuse material of the checkerboard cells
func Checker(diffuse core.Color) Material {
	return New(1.0, core.NewVec4(0.9, 0.1, 0.0, 0.0), diffuse, 10)
}

// Ivory is a mostly diffuse material with a soft highlight
func Ivory() Material {
	return New(1.0, core.NewVec4(0.6, 0.3, 0.1, 0.0), core.NewColor(0.4, 0.4, 0.3), 50)
}

// Glass is a transparent material with a sharp highlight
func Glass() Material {
	return New(1.5, core.NewVec4(0.0, 0.5, 0.1, 0.8), core.NewColor(0.6, 0.7, 0.8), 125)
}

// RedRubber is a dull red material
func RedRubber() Material {
	return New(1.0, core.NewVec4(0.9, 0.1, 0.0, 0.0), core.NewColor(0.3, 0.1, 0.1), 10)
}

// Mirror reflects most light and has a very bright, tight highlight
func Mirror() Material {
	return New(1.0, core.NewVec4(0.0, 10.0, 0.8, 0.0), core.NewColor(1.0, 1.0, 1.0), 1425)
}

package scene

import (
	"errors"
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

var (
	// ErrInvalidShape is returned when a shape fails validation or references
	// a material outside the scene's registry
	ErrInvalidShape = errors.New("invalid shape")
	// ErrInvalidLight is returned when a light fails validation
	ErrInvalidLight = errors.New("invalid light")
)

// Scene contains all the elements needed for rendering. It owns the
// materials and lights; shapes refer to materials by handle. A scene is
// built once and only read while rendering.
type Scene struct {
	materials *material.Registry
	lights    []lights.PointLight
	shapes    []geometry.Shape
}

// New creates an empty scene
func New() *Scene {
	return &Scene{
		materials: material.NewRegistry(),
	}
}

// AddMaterial registers a named material and returns its handle
func (s *Scene) AddMaterial(name string, m material.Material) (material.Handle, error) {
	return s.materials.Add(name, m)
}

// Material returns the handle registered under name
func (s *Scene) Material(name string) (material.Handle, error) {
	return s.materials.Lookup(name)
}

// MaterialFor resolves a handle reported by a hit
func (s *Scene) MaterialFor(h material.Handle) material.Material {
	return s.materials.Get(h)
}

// Materials returns the scene's material registry
func (s *Scene) Materials() *material.Registry {
	return s.materials
}

// AddLight adds a point light
func (s *Scene) AddLight(light lights.PointLight) error {
	if err := light.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidLight, err)
	}
	s.lights = append(s.lights, light)
	return nil
}

// AddShape adds a shape after checking its geometry and that every material
// it can report belongs to this scene
func (s *Scene) AddShape(shape geometry.Shape) error {
	if shape == nil {
		return fmt.Errorf("%w: nil shape", ErrInvalidShape)
	}
	if err := shape.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidShape, err)
	}
	for _, h := range shape.Materials() {
		if !s.materials.Contains(h) {
			return fmt.Errorf("%w: material handle %d is not registered in this scene", ErrInvalidShape, h)
		}
	}
	s.shapes = append(s.shapes, shape)
	return nil
}

// Lights returns the lights of the scene
func (s *Scene) Lights() []lights.PointLight {
	return s.lights
}

// Shapes returns the shapes of the scene
func (s *Scene) Shapes() []geometry.Shape {
	return s.shapes
}

// GetPrimitiveCount returns the number of shapes in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.shapes)
}

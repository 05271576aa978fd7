package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewDefaultScene creates four spheres of different materials above a
// checkerboard, lit by three point lights
func NewDefaultScene() (*Scene, error) {
	b := newBuilder()

	ivory := b.material("ivory", material.Ivory())
	glass := b.material("glass", material.Glass())
	rubber := b.material("red_rubber", material.RedRubber())
	mirror := b.material("mirror", material.Mirror())
	checkerOrange := b.material("checker_orange", material.Checker(core.NewColor(0.3, 0.2, 0.1)))
	checkerWhite := b.material("checker_white", material.Checker(core.NewColor(0.3, 0.3, 0.3)))

	b.shape(geometry.NewSphere(core.NewVec3(-3, 0, -16), 2, ivory))
	b.shape(geometry.NewSphere(core.NewVec3(-1.0, -1.5, -12), 2, glass))
	b.shape(geometry.NewSphere(core.NewVec3(1.5, -0.5, -18), 3, rubber))
	b.shape(geometry.NewSphere(core.NewVec3(7, 5, -18), 4, mirror))
	// Orange is even: over z < 0 floor parity inverts truncated parity, which puts white on even cells
	b.shape(geometry.NewCheckerboard(-4, checkerOrange, checkerWhite))

	b.light(lights.NewPointLight(core.NewVec3(-20, 20, 20), 1.5))
	b.light(lights.NewPointLight(core.NewVec3(30, 50, -25), 1.8))
	b.light(lights.NewPointLight(core.NewVec3(30, 20, 30), 1.7))

	return b.build()
}

// NewCheckerboardScene creates an empty checkerboard under a single light
func NewCheckerboardScene() (*Scene, error) {
	b := newBuilder()

	orange := b.material("checker_orange", material.Checker(core.NewColor(0.3, 0.2, 0.1)))
	white := b.material("checker_white", material.Checker(core.NewColor(0.3, 0.3, 0.3)))

	// Orange is even: over z < 0 floor parity inverts truncated parity, which puts white on even cells
	b.shape(geometry.NewCheckerboard(-4, orange, white))
	b.light(lights.NewPointLight(core.NewVec3(0, 20, -20), 2.0))

	return b.build()
}

// NewMirrorsScene creates two mirror spheres facing each other with a rubber
// sphere between them, so reflections run into the depth limit
func NewMirrorsScene() (*Scene, error) {
	b := newBuilder()

	mirror := b.material("mirror", material.Mirror())
	rubber := b.material("red_rubber", material.RedRubber())
	checkerOrange := b.material("checker_orange", material.Checker(core.NewColor(0.3, 0.2, 0.1)))
	checkerWhite := b.material("checker_white", material.Checker(core.NewColor(0.3, 0.3, 0.3)))

	// Both mirrors share the same material handle
	b.shape(geometry.NewSphere(core.NewVec3(-5, 0, -18), 3, mirror))
	b.shape(geometry.NewSphere(core.NewVec3(5, 0, -18), 3, mirror))
	b.shape(geometry.NewSphere(core.NewVec3(0, -2, -15), 1.5, rubber))
	// Orange is even: over z < 0 floor parity inverts truncated parity, which puts white on even cells
	b.shape(geometry.NewCheckerboard(-4, checkerOrange, checkerWhite))

	b.light(lights.NewPointLight(core.NewVec3(-20, 20, 20), 1.5))
	b.light(lights.NewPointLight(core.NewVec3(20, 30, 0), 1.5))

	return b.build()
}

// builder collects the first construction error so scene recipes read
// as plain lists
type builder struct {
	scene *Scene
	err   error
}

func newBuilder() *builder {
	return &builder{scene: New()}
}

func (b *builder) material(name string, m material.Material) material.Handle {
	if b.err != nil {
		return material.InvalidHandle
	}
	h, err := b.scene.AddMaterial(name, m)
	if err != nil {
		b.err = err
	}
	return h
}

func (b *builder) shape(shape geometry.Shape) {
	if b.err != nil {
		return
	}
	b.err = b.scene.AddShape(shape)
}

func (b *builder) light(light lights.PointLight) {
	if b.err != nil {
		return
	}
	b.err = b.scene.AddLight(light)
}

func (b *builder) build() (*Scene, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.scene, nil
}

package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// parityOffset keeps floor() away from negative arguments across the board
const parityOffset = 1000.0

// parallelEpsilon is the smallest vertical direction component that still
// crosses the board
const parallelEpsilon = 1e-3

// Checkerboard is a horizontal plane at a fixed height clipped to a
// rectangle, tiled with 2x2 unit cells of two alternating materials
type Checkerboard struct {
	Height     float64 // Y coordinate of the plane
	MinX, MaxX float64 // Horizontal extent
	MinZ, MaxZ float64 // Depth band
	Even       material.Handle
	Odd        material.Handle
}

// NewCheckerboard creates a checkerboard using the standard footprint:
// |x| < 10 and -30 < z < -10
func NewCheckerboard(height float64, even, odd material.Handle) *Checkerboard {
	return &Checkerboard{
		Height: height,
		MinX:   -10,
		MaxX:   10,
		MinZ:   -30,
		MaxZ:   -10,
		Even:   even,
		Odd:    odd,
	}
}

// Intersect tests if a ray intersects with the board
func (c *Checkerboard) Intersect(ray core.Ray) (HitInfo, bool) {
	// Rays parallel to the plane never cross it
	if math.Abs(ray.Direction.Y()) < parallelEpsilon {
		return HitInfo{}, false
	}

	t := (c.Height - ray.Origin.Y()) / ray.Direction.Y()
	if t < MinDistance {
		return HitInfo{}, false
	}

	point := ray.At(t)
	x, z := point.X(), point.Z()
	if x <= c.MinX || x >= c.MaxX || z <= c.MinZ || z >= c.MaxZ {
		return HitInfo{}, false
	}

	return HitInfo{
		Distance: t,
		Point:    point,
		Normal:   core.NewVec3(0, 1, 0),
		Material: c.MaterialAt(x, z),
	}, true
}

// MaterialAt returns the cell material at horizontal position (x, z)
func (c *Checkerboard) MaterialAt(x, z float64) material.Handle {
	cell := int64(math.Floor(0.5*x+parityOffset)) + int64(math.Floor(0.5*z))
	if cell&1 == 0 {
		return c.Even
	}
	return c.Odd
}

// Materials returns both cell materials
func (c *Checkerboard) Materials() []material.Handle {
	return []material.Handle{c.Even, c.Odd}
}

// Validate checks the footprint
func (c *Checkerboard) Validate() error {
	if !(c.MinX < c.MaxX) || !(c.MinZ < c.MaxZ) {
		return fmt.Errorf("checkerboard footprint is empty: x [%v, %v], z [%v, %v]", c.MinX, c.MaxX, c.MinZ, c.MaxZ)
	}
	if math.IsNaN(c.Height) || math.IsInf(c.Height, 0) {
		return fmt.Errorf("checkerboard height must be finite, got %v", c.Height)
	}
	return nil
}

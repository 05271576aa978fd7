package renderer

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Camera is a pinhole camera at the origin looking down -Z
type Camera struct {
	origin      core.Vec3
	width       int
	height      int
	tanHalfFov  float64 // tan(vfov/2)
	aspectRatio float64
}

// NewCamera creates a pinhole camera for a width x height image with the
// given vertical field of view in degrees
func NewCamera(width, height int, vfov float64) *Camera {
	return &Camera{
		origin:      core.NewVec3(0, 0, 0),
		width:       width,
		height:      height,
		tanHalfFov:  math.Tan(vfov * math.Pi / 180 / 2),
		aspectRatio: float64(width) / float64(height),
	}
}

// GetRay returns the primary ray through pixel (i, j), offset by (dx, dy)
// from the pixel center. Row 0 is the top of the image.
func (c *Camera) GetRay(i, j int, dx, dy float64) core.Ray {
	x := (2*(float64(i)+0.5+dx)/float64(c.width) - 1) * c.tanHalfFov * c.aspectRatio
	y := -(2*(float64(j)+0.5+dy)/float64(c.height) - 1) * c.tanHalfFov
	return core.NewRay(c.origin, core.Normalize(core.NewVec3(x, y, -1)))
}

// HorizontalFov returns the horizontal field of view in degrees
func (c *Camera) HorizontalFov() float64 {
	return 2 * math.Atan(c.tanHalfFov*c.aspectRatio) * 180 / math.Pi
}

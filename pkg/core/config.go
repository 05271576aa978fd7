package core

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig is returned when a RenderConfig fails validation
var ErrInvalidConfig = errors.New("invalid render config")

// RenderConfig contains the values shared by the renderer and the shading engine
type RenderConfig struct {
	Width       int     // Image width in pixels
	Height      int     // Image height in pixels
	VFov        float64 // Vertical field of view in degrees
	MaxDepth    int     // Maximum recursion depth; rays deeper than this see the background
	Bias        float64 // Offset along the normal applied to secondary ray origins
	Background  Color   // Color returned for rays that escape the scene
	Supersample bool    // Average four rotated-grid samples per pixel
	TileSize    int     // Size of the square tiles handed to workers
	NumWorkers  int     // Number of parallel workers (0 = use CPU count)
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		Width:      1024,
		Height:     768,
		VFov:       45.0,
		MaxDepth:   4,
		Bias:       1e-3,
		Background: NewColor(0.2, 0.7, 0.8),
		TileSize:   32,
		NumWorkers: 0,
	}
}

// AspectRatio returns width divided by height
func (c RenderConfig) AspectRatio() float64 {
	return float64(c.Width) / float64(c.Height)
}

// SamplesPerPixel returns the number of primary rays traced for each pixel
func (c RenderConfig) SamplesPerPixel() int {
	if c.Supersample {
		return 4
	}
	return 1
}

// Validate checks that the configuration can be rendered
func (c RenderConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: image size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	if math.IsNaN(c.VFov) || c.VFov <= 0 || c.VFov >= 180 {
		return fmt.Errorf("%w: vertical fov %v must be in (0, 180)", ErrInvalidConfig, c.VFov)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("%w: max depth %d", ErrInvalidConfig, c.MaxDepth)
	}
	if math.IsNaN(c.Bias) || c.Bias < 0 {
		return fmt.Errorf("%w: bias %v", ErrInvalidConfig, c.Bias)
	}
	if c.TileSize <= 0 {
		return fmt.Errorf("%w: tile size %d", ErrInvalidConfig, c.TileSize)
	}
	if c.NumWorkers < 0 {
		return fmt.Errorf("%w: worker count %d", ErrInvalidConfig, c.NumWorkers)
	}
	return nil
}

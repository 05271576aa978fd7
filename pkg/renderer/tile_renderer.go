package renderer

import (
	"image"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// rotatedGrid holds the four sub-pixel offsets used for supersampling
var rotatedGrid = [4][2]float64{
	{0.125, 0.375},
	{0.375, -0.125},
	{-0.125, -0.375},
	{-0.375, 0.125},
}

// TileRenderer shades the pixels of individual tiles. It holds no mutable
// state and is shared by all workers.
type TileRenderer struct {
	scene       *scene.Scene
	integrator  integrator.Integrator
	camera      *Camera
	supersample bool
}

// NewTileRenderer creates a new tile renderer
func NewTileRenderer(s *scene.Scene, integratorInst integrator.Integrator, camera *Camera, supersample bool) *TileRenderer {
	return &TileRenderer{
		scene:       s,
		integrator:  integratorInst,
		camera:      camera,
		supersample: supersample,
	}
}

// RenderTileBounds renders pixels within the specified bounds into fb.
// Each pixel slot is written once.
func (tr *TileRenderer) RenderTileBounds(bounds image.Rectangle, fb *core.Framebuffer) RenderStats {
	stats := RenderStats{TilesRendered: 1}

	for j := bounds.Min.Y; j < bounds.Max.Y; j++ {
		for i := bounds.Min.X; i < bounds.Max.X; i++ {
			color, samples := tr.RenderPixel(i, j)
			fb.Set(i, j, color)
			stats.TotalPixels++
			stats.TotalSamples += samples
		}
	}

	return stats
}

// RenderPixel returns the color of pixel (i, j) and the number of primary
// rays traced for it
func (tr *TileRenderer) RenderPixel(i, j int) (core.Color, int) {
	if !tr.supersample {
		ray := tr.camera.GetRay(i, j, 0, 0)
		return tr.integrator.RayColor(ray, tr.scene, 0), 1
	}

	var sum core.Color
	for _, offset := range rotatedGrid {
		ray := tr.camera.GetRay(i, j, offset[0], offset[1])
		sum = sum.Add(tr.integrator.RayColor(ray, tr.scene, 0))
	}
	return sum.Divide(float64(len(rotatedGrid))), len(rotatedGrid)
}

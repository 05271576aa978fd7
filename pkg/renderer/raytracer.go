package renderer

import (
	"fmt"
	"log"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// DefaultLogger implements core.Logger with the standard log package
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	log.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// Raytracer renders a scene into a framebuffer, distributing tiles over a
// worker pool
type Raytracer struct {
	scene        *scene.Scene
	config       core.RenderConfig
	tileRenderer *TileRenderer
	logger       core.Logger
}

// NewRaytracer creates a new raytracer using the Whitted integrator
func NewRaytracer(s *scene.Scene, config core.RenderConfig, logger core.Logger) (*Raytracer, error) {
	return NewRaytracerWithIntegrator(s, integrator.NewWhittedIntegrator(config), config, logger)
}

// NewRaytracerWithIntegrator creates a raytracer with a custom integrator
func NewRaytracerWithIntegrator(s *scene.Scene, integratorInst integrator.Integrator, config core.RenderConfig, logger core.Logger) (*Raytracer, error) {
	if s == nil {
		return nil, fmt.Errorf("scene must not be nil")
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = NewDefaultLogger()
	}

	camera := NewCamera(config.Width, config.Height, config.VFov)
	return &Raytracer{
		scene:        s,
		config:       config,
		tileRenderer: NewTileRenderer(s, integratorInst, camera, config.Supersample),
		logger:       logger,
	}, nil
}

// Render traces every pixel of the image and returns the framebuffer once
// all workers have finished
func (rt *Raytracer) Render() (*core.Framebuffer, RenderStats) {
	start := time.Now()
	fb := core.NewFramebuffer(rt.config.Width, rt.config.Height)
	tiles := NewTileGrid(rt.config.Width, rt.config.Height, rt.config.TileSize)

	pool := NewWorkerPool(rt.tileRenderer, rt.config.NumWorkers, len(tiles))
	rt.logger.Printf("Rendering %dx%d, %d tiles, %d samples per pixel (using %d workers)...\n",
		rt.config.Width, rt.config.Height, len(tiles), rt.config.SamplesPerPixel(), pool.GetNumWorkers())

	pool.Start()
	for taskID, tile := range tiles {
		pool.SubmitTask(TileTask{
			Tile:        tile,
			TaskID:      taskID,
			Framebuffer: fb,
		})
	}

	stats := RenderStats{NumWorkers: pool.GetNumWorkers()}
	for i := 0; i < len(tiles); i++ {
		result := pool.GetResult()
		stats.Merge(result.Stats)
	}
	pool.Stop()

	stats.Elapsed = time.Since(start)
	rt.logger.Printf("Render completed in %v (%d primary rays)\n", stats.Elapsed, stats.TotalSamples)
	return fb, stats
}

// RenderPixel renders a single pixel without the worker pool
func (rt *Raytracer) RenderPixel(i, j int) core.Color {
	color, _ := rt.tileRenderer.RenderPixel(i, j)
	return color
}

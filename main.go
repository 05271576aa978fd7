package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/output"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Config holds the command line settings
type Config struct {
	Scene       string
	Output      string
	Format      string
	Width       int
	Height      int
	VFov        float64
	MaxDepth    int
	Supersample bool
	Workers     int
	Thumbnail   uint
	Publish     bool
}

// Helper to get environment variables with a default value
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return value
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value, err := strconv.ParseFloat(getEnv(key, ""), 64); err == nil {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, err := strconv.ParseBool(getEnv(key, "")); err == nil {
		return value
	}
	return fallback
}

func main() {
	// A missing .env file is fine; flags and the environment still apply
	_ = godotenv.Load(getEnv("RAYTRACER_ENV_FILE", ".env"))

	defaults := core.DefaultRenderConfig()
	cfg := Config{}
	flag.StringVar(&cfg.Scene, "scene", getEnv("RAYTRACER_SCENE", "default"), "Scene name: "+strings.Join(scene.Names(), ", "))
	flag.StringVar(&cfg.Output, "output", getEnv("RAYTRACER_OUTPUT", ""), "Output file (default output/<scene>/render_<timestamp>.<format>)")
	flag.StringVar(&cfg.Format, "format", getEnv("RAYTRACER_FORMAT", "ppm"), "Output format when -output is not set: ppm, p3, png, jpg, bmp, tif")
	flag.IntVar(&cfg.Width, "width", getEnvInt("RAYTRACER_WIDTH", defaults.Width), "Image width in pixels")
	flag.IntVar(&cfg.Height, "height", getEnvInt("RAYTRACER_HEIGHT", defaults.Height), "Image height in pixels")
	flag.Float64Var(&cfg.VFov, "fov", getEnvFloat("RAYTRACER_FOV", defaults.VFov), "Vertical field of view in degrees")
	flag.IntVar(&cfg.MaxDepth, "depth", getEnvInt("RAYTRACER_MAX_DEPTH", defaults.MaxDepth), "Maximum recursion depth")
	flag.BoolVar(&cfg.Supersample, "supersample", getEnvBool("RAYTRACER_SUPERSAMPLE", false), "Average 4 rotated-grid samples per pixel")
	flag.IntVar(&cfg.Workers, "workers", getEnvInt("RAYTRACER_WORKERS", 0), "Number of parallel workers (0 = auto-detect CPU count)")
	thumbnail := flag.Int("thumbnail", getEnvInt("RAYTRACER_THUMBNAIL", 0), "Also write a thumbnail no larger than NxN pixels (0 = off)")
	flag.BoolVar(&cfg.Publish, "publish", getEnvBool("RAYTRACER_PUBLISH", false), "Upload the image to the S3 bucket from S3_* env vars")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		showHelp()
		return
	}
	if *thumbnail > 0 {
		cfg.Thumbnail = uint(*thumbnail)
	}

	if err := run(cfg); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func showHelp() {
	fmt.Println("Whitted Raytracer")
	fmt.Println("Usage: raytracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Available scenes:")
	for _, info := range scene.ListScenes() {
		fmt.Printf("  %-13s %s\n", info.ID, info.Description)
	}
	fmt.Println()
	fmt.Println("Settings can also come from RAYTRACER_* variables or a .env file.")
}

func run(cfg Config) error {
	if cfg.Output == "" && !output.Supported(cfg.Format) {
		return fmt.Errorf("unsupported output format: %s", cfg.Format)
	}

	selectedScene, err := createScene(cfg.Scene)
	if err != nil {
		return err
	}

	renderConfig := buildRenderConfig(cfg)
	raytracer, err := renderer.NewRaytracer(selectedScene, renderConfig, renderer.NewDefaultLogger())
	if err != nil {
		return err
	}

	fb, stats := raytracer.Render()
	log.Printf("Rendered %d pixels with %.1f samples per pixel on %d workers",
		stats.TotalPixels, stats.AverageSamples(), stats.NumWorkers)

	// An explicit output path picks the encoder by extension
	filename, format := cfg.Output, strings.TrimPrefix(filepath.Ext(cfg.Output), ".")
	if filename == "" {
		outputDir := createOutputDir(cfg.Scene)
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		timestamp := time.Now().Format("20060102_150405")
		filename = filepath.Join(outputDir, fmt.Sprintf("render_%s.%s", timestamp, output.Extension(cfg.Format)))
		format = cfg.Format
		if err := output.SaveImageAs(filename, fb, format); err != nil {
			return err
		}
	} else if err := output.SaveImage(filename, fb); err != nil {
		return err
	}
	log.Printf("Render saved as %s", filename)

	if cfg.Thumbnail > 0 {
		thumbName := thumbnailPath(filename)
		if err := output.SaveThumbnail(thumbName, fb, cfg.Thumbnail, cfg.Thumbnail); err != nil {
			return err
		}
		log.Printf("Thumbnail saved as %s", thumbName)
	}

	if cfg.Publish {
		if err := publish(filename, fb, format); err != nil {
			return err
		}
	}
	return nil
}

// createScene builds a built-in scene by name
func createScene(name string) (*scene.Scene, error) {
	return scene.Create(name)
}

func buildRenderConfig(cfg Config) core.RenderConfig {
	config := core.DefaultRenderConfig()
	config.Width = cfg.Width
	config.Height = cfg.Height
	config.VFov = cfg.VFov
	config.MaxDepth = cfg.MaxDepth
	config.Supersample = cfg.Supersample
	config.NumWorkers = cfg.Workers
	return config
}

// createOutputDir returns the directory renders of a scene are written to
func createOutputDir(sceneName string) string {
	return filepath.Join("output", sceneName)
}

// thumbnailPath places a PNG thumbnail next to the full image
func thumbnailPath(filename string) string {
	return strings.TrimSuffix(filename, filepath.Ext(filename)) + "_thumb.png"
}

func s3ConfigFromEnv() output.S3Config {
	return output.S3Config{
		Bucket:    os.Getenv("S3_BUCKET"),
		Region:    getEnv("S3_REGION", "us-east-1"),
		Endpoint:  os.Getenv("S3_ENDPOINT"),
		AccessKey: os.Getenv("S3_ACCESS_KEY"),
		SecretKey: os.Getenv("S3_SECRET_KEY"),
	}
}

func publish(filename string, fb *core.Framebuffer, format string) error {
	publisher, err := output.NewPublisher(s3ConfigFromEnv(), renderer.NewDefaultLogger())
	if err != nil {
		return err
	}

	key := filepath.ToSlash(filename)
	return publisher.PublishFramebuffer(context.Background(), key, fb, format)
}

package server

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/disintegration/imaging"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/output"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene       string  // Built-in scene name
	Width       int     // Image width
	Height      int     // Image height
	VFov        float64 // Vertical field of view in degrees
	MaxDepth    int     // Maximum recursion depth
	Supersample bool    // Rotated-grid 4x supersampling
	Format      string  // png, jpg, bmp, ppm or p3
	Thumb       int     // Downscale to fit thumb x thumb (0 = full size)
	Publish     bool    // Upload the result to S3
}

var supportedFormats = map[string]bool{
	"png": true, "jpg": true, "jpeg": true, "bmp": true, "gif": true,
	"ppm": true, "p3": true,
}

// parseRenderRequest parses request parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	query := r.URL.Query()
	defaults := core.DefaultRenderConfig()
	req := &RenderRequest{Scene: "default", Format: "png"}

	if name := query.Get("scene"); name != "" {
		req.Scene = name
	}
	if format := strings.ToLower(query.Get("format")); format != "" {
		if !supportedFormats[format] {
			return nil, fmt.Errorf("unsupported format: %s", format)
		}
		req.Format = format
	}

	var err error
	if req.Width, err = parseIntParam(query, "width", 400, 1, 2000); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(query, "height", 300, 1, 2000); err != nil {
		return nil, err
	}
	if req.VFov, err = parseFloatParam(query, "fov", defaults.VFov, 1, 179); err != nil {
		return nil, err
	}
	if req.MaxDepth, err = parseIntParam(query, "depth", defaults.MaxDepth, 0, 16); err != nil {
		return nil, err
	}
	if req.Supersample, err = parseBoolParam(query, "supersample", false); err != nil {
		return nil, err
	}
	if req.Thumb, err = parseIntParam(query, "thumb", 0, 0, 2000); err != nil {
		return nil, err
	}
	if req.Publish, err = parseBoolParam(query, "publish", false); err != nil {
		return nil, err
	}

	if req.Thumb > 0 && (req.Format == "ppm" || req.Format == "p3") {
		return nil, fmt.Errorf("thumbnails are not available as %s", req.Format)
	}
	return req, nil
}

// renderConfig converts the request into a render configuration
func (req *RenderRequest) renderConfig() core.RenderConfig {
	config := core.DefaultRenderConfig()
	config.Width = req.Width
	config.Height = req.Height
	config.VFov = req.VFov
	config.MaxDepth = req.MaxDepth
	config.Supersample = req.Supersample
	return config
}

// handleRender renders a built-in scene synchronously and returns the image
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}
	if req.Publish && s.publisher == nil {
		writeError(w, http.StatusServiceUnavailable, "Publishing is not configured")
		return
	}

	sceneObj, err := scene.Create(req.Scene)
	if errors.Is(err, scene.ErrUnknownScene) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	renderID := fmt.Sprintf("%s-%d", req.Scene, time.Now().UnixNano())
	logger := NewWebLogger(renderID, s.consoleChan)

	raytracer, err := renderer.NewRaytracer(sceneObj, req.renderConfig(), logger)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	fb, stats := raytracer.Render()

	var buf bytes.Buffer
	if req.Thumb > 0 {
		format, ferr := imaging.FormatFromExtension(req.Format)
		if ferr == nil {
			err = output.EncodeImage(&buf, output.Thumbnail(fb, uint(req.Thumb), uint(req.Thumb)), format)
		} else {
			err = ferr
		}
	} else {
		err = output.Encode(&buf, fb, req.Format)
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("Encode error: %v", err))
		return
	}

	contentType := output.ContentType(req.Format)
	if req.Publish {
		key := fmt.Sprintf("renders/%s.%s", renderID, output.Extension(req.Format))
		if err := s.publisher.Publish(r.Context(), key, buf.Bytes(), contentType); err != nil {
			logger.Printf("Upload failed: %v\n", err)
			writeError(w, http.StatusBadGateway, "Upload failed")
			return
		}
		w.Header().Set("X-Render-Key", key)
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("X-Render-Time-Ms", strconv.FormatInt(stats.Elapsed.Milliseconds(), 10))
	w.Header().Set("X-Render-Samples", strconv.Itoa(stats.TotalSamples))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

package server

import (
	"fmt"
	"net/http"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/output"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	Material     string                 `json:"material,omitempty"`
	GeometryType string                 `json:"geometryType,omitempty"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	Properties   map[string]interface{} `json:"properties,omitempty"`
}

// extractMaterialInfo describes a material for the inspector
func extractMaterialInfo(mat material.Material) map[string]interface{} {
	kind := "diffuse"
	switch {
	case mat.Refractive() > 0:
		kind = "transparent"
	case mat.Reflective() > 0:
		kind = "reflective"
	}

	c := mat.DiffuseColor
	return map[string]interface{}{
		"kind":             kind,
		"albedo":           [4]float64{mat.Albedo[0], mat.Albedo[1], mat.Albedo[2], mat.Albedo[3]},
		"color":            fmt.Sprintf("#%02x%02x%02x", output.ChannelToByte(c.R), output.ChannelToByte(c.G), output.ChannelToByte(c.B)),
		"refractiveIndex":  mat.RefractiveIndex,
		"specularExponent": mat.SpecularExponent,
	}
}

func geometryType(shape geometry.Shape) string {
	switch shape.(type) {
	case *geometry.Sphere:
		return "sphere"
	case *geometry.Checkerboard:
		return "checkerboard"
	default:
		return "unknown"
	}
}

// inspectPixel casts the center ray of a pixel and returns the closest
// shape it hits
func inspectPixel(sceneObj *scene.Scene, camera *renderer.Camera, x, y int) (geometry.HitInfo, geometry.Shape, bool) {
	return sceneObj.IntersectShape(camera.GetRay(x, y, 0, 0))
}

// handleInspect reports what the center ray of a pixel hits
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	sceneName := query.Get("scene")
	if sceneName == "" {
		sceneName = "default"
	}

	width, err := parseIntParam(query, "width", 400, 1, 2000)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	height, err := parseIntParam(query, "height", 300, 1, 2000)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	fov, err := parseFloatParam(query, "fov", core.DefaultRenderConfig().VFov, 1, 179)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	x, err := parseIntParam(query, "x", width/2, 0, width-1)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	y, err := parseIntParam(query, "y", height/2, 0, height-1)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	sceneObj, err := scene.Create(sceneName)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	hit, shape, ok := inspectPixel(sceneObj, renderer.NewCamera(width, height, fov), x, y)
	if !ok {
		writeJSON(w, http.StatusOK, InspectResponse{Hit: false})
		return
	}

	name, _ := sceneObj.Materials().Name(hit.Material)
	writeJSON(w, http.StatusOK, InspectResponse{
		Hit:          true,
		Material:     name,
		GeometryType: geometryType(shape),
		Point:        [3]float64{hit.Point.X(), hit.Point.Y(), hit.Point.Z()},
		Normal:       [3]float64{hit.Normal.X(), hit.Normal.Y(), hit.Normal.Z()},
		Distance:     hit.Distance,
		Properties:   extractMaterialInfo(sceneObj.MaterialFor(hit.Material)),
	})
}

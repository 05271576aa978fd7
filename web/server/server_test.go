package server

import (
	"bytes"
	"encoding/json"
	"image"
	_ "image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"

	"github.com/df07/go-whitted-raytracer/pkg/output"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// fakeS3 records uploaded object keys
type fakeS3 struct {
	s3iface.S3API
	keys []string
}

func (f *fakeS3) PutObjectWithContext(ctx aws.Context, input *s3.PutObjectInput, opts ...request.Option) (*s3.PutObjectOutput, error) {
	f.keys = append(f.keys, aws.StringValue(input.Key))
	return &s3.PutObjectOutput{}, nil
}

func get(t *testing.T, handler http.Handler, path string, params url.Values) *httptest.ResponseRecorder {
	t.Helper()
	target := path
	if len(params) > 0 {
		target += "?" + params.Encode()
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandleHealth(t *testing.T) {
	rec := get(t, NewServer(0, nil).Handler(), "/api/health", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	var body map[string]interface{}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body["status"] != "ok" || body["publishing"] != false {
		t.Errorf("Unexpected body %v", body)
	}
}

func TestHandleScenes(t *testing.T) {
	rec := get(t, NewServer(0, nil).Handler(), "/api/scenes", nil)

	var scenes []scene.SceneInfo
	if err := json.NewDecoder(rec.Body).Decode(&scenes); err != nil {
		t.Fatal(err)
	}
	if len(scenes) != len(scene.Names()) {
		t.Errorf("Expected %d scenes, got %d", len(scene.Names()), len(scenes))
	}
}

func TestHandleRender_PNG(t *testing.T) {
	handler := NewServer(0, nil).Handler()
	rec := get(t, handler, "/api/render", url.Values{
		"scene":  {"default"},
		"width":  {"32"},
		"height": {"24"},
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("Expected image/png, got %s", ct)
	}
	if samples := rec.Header().Get("X-Render-Samples"); samples != "768" {
		t.Errorf("Expected 768 samples, got %s", samples)
	}

	img, format, err := image.Decode(rec.Body)
	if err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if format != "png" || img.Bounds().Dx() != 32 || img.Bounds().Dy() != 24 {
		t.Errorf("Unexpected image %s %v", format, img.Bounds())
	}
}

func TestHandleRender_PPMMatchesEncoder(t *testing.T) {
	handler := NewServer(0, nil).Handler()
	rec := get(t, handler, "/api/render", url.Values{
		"scene":       {"mirrors"},
		"width":       {"8"},
		"height":      {"6"},
		"format":      {"ppm"},
		"supersample": {"true"},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("P6\n8 6\n255\n")) {
		t.Errorf("Unexpected PPM header %q", rec.Body.Bytes()[:12])
	}
	if rec.Body.Len() != len("P6\n8 6\n255\n")+8*6*3 {
		t.Errorf("Unexpected PPM size %d", rec.Body.Len())
	}
	if samples := rec.Header().Get("X-Render-Samples"); samples != "192" {
		t.Errorf("Expected 192 samples, got %s", samples)
	}
}

func TestHandleRender_Thumbnail(t *testing.T) {
	handler := NewServer(0, nil).Handler()
	rec := get(t, handler, "/api/render", url.Values{
		"width":  {"64"},
		"height": {"32"},
		"thumb":  {"16"},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	img, _, err := image.Decode(rec.Body)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 16 || img.Bounds().Dy() != 8 {
		t.Errorf("Expected 16x8 thumbnail, got %v", img.Bounds())
	}
}

func TestHandleRender_Errors(t *testing.T) {
	handler := NewServer(0, nil).Handler()

	tests := []struct {
		name     string
		params   url.Values
		expected int
	}{
		{"unknown scene", url.Values{"scene": {"nonexistent"}}, http.StatusNotFound},
		{"width too large", url.Values{"width": {"5000"}}, http.StatusBadRequest},
		{"width not a number", url.Values{"width": {"abc"}}, http.StatusBadRequest},
		{"negative depth", url.Values{"depth": {"-1"}}, http.StatusBadRequest},
		{"bad format", url.Values{"format": {"webp"}}, http.StatusBadRequest},
		{"bad supersample", url.Values{"supersample": {"maybe"}}, http.StatusBadRequest},
		{"ppm thumbnail", url.Values{"format": {"ppm"}, "thumb": {"10"}}, http.StatusBadRequest},
		{"publish without S3", url.Values{"publish": {"true"}}, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, handler, "/api/render", tt.params)
			if rec.Code != tt.expected {
				t.Errorf("Expected %d, got %d: %s", tt.expected, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestHandleRender_Publish(t *testing.T) {
	fake := &fakeS3{}
	server := NewServer(0, output.NewPublisherWithClient(fake, "renders", nil))

	rec := get(t, server.Handler(), "/api/render", url.Values{
		"scene":   {"checkerboard"},
		"width":   {"8"},
		"height":  {"8"},
		"publish": {"true"},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if len(fake.keys) != 1 {
		t.Fatalf("Expected 1 upload, got %d", len(fake.keys))
	}
	if key := rec.Header().Get("X-Render-Key"); key != fake.keys[0] {
		t.Errorf("Header key %q does not match uploaded key %q", key, fake.keys[0])
	}
}

func TestHandleConsole_DrainsRenderLogs(t *testing.T) {
	handler := NewServer(0, nil).Handler()
	get(t, handler, "/api/render", url.Values{"width": {"4"}, "height": {"4"}})

	rec := get(t, handler, "/api/console", nil)
	var messages []ConsoleMessage
	if err := json.NewDecoder(rec.Body).Decode(&messages); err != nil {
		t.Fatal(err)
	}
	if len(messages) != 2 {
		t.Fatalf("Expected 2 console messages, got %d", len(messages))
	}

	rec = get(t, handler, "/api/console", nil)
	body, _ := io.ReadAll(rec.Body)
	if string(bytes.TrimSpace(body)) != "[]" {
		t.Errorf("Expected empty console after drain, got %s", body)
	}
}

func TestHandleInspect(t *testing.T) {
	handler := NewServer(0, nil).Handler()

	tests := []struct {
		name         string
		x, y         string
		hit          bool
		material     string
		geometryType string
	}{
		{"center hits glass sphere", "50", "50", true, "glass", "sphere"},
		{"top row sees the sky", "50", "0", false, "", ""},
		{"lower left hits the board", "0", "73", true, "", "checkerboard"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, handler, "/api/inspect", url.Values{
				"scene":  {"default"},
				"width":  {"101"},
				"height": {"101"},
				"fov":    {"60"},
				"x":      {tt.x},
				"y":      {tt.y},
			})
			if rec.Code != http.StatusOK {
				t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
			}

			var resp InspectResponse
			if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
				t.Fatal(err)
			}
			if resp.Hit != tt.hit {
				t.Fatalf("Expected hit=%v, got %+v", tt.hit, resp)
			}
			if tt.material != "" && resp.Material != tt.material {
				t.Errorf("Expected material %s, got %s", tt.material, resp.Material)
			}
			if resp.GeometryType != tt.geometryType {
				t.Errorf("Expected geometry %q, got %q", tt.geometryType, resp.GeometryType)
			}
		})
	}

	rec := get(t, handler, "/api/inspect", url.Values{"width": {"10"}, "x": {"10"}})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for out-of-range pixel, got %d", rec.Code)
	}
}

func TestParseParams(t *testing.T) {
	values := url.Values{"n": {"5"}, "f": {"0.5"}, "b": {"1"}}

	if n, err := parseIntParam(values, "n", 1, 0, 10); err != nil || n != 5 {
		t.Errorf("parseIntParam = %d, %v", n, err)
	}
	if n, err := parseIntParam(values, "missing", 3, 0, 10); err != nil || n != 3 {
		t.Errorf("parseIntParam default = %d, %v", n, err)
	}
	if _, err := parseIntParam(values, "n", 1, 6, 10); err == nil {
		t.Error("Expected range error")
	}
	if f, err := parseFloatParam(values, "f", 1, 0, 1); err != nil || f != 0.5 {
		t.Errorf("parseFloatParam = %f, %v", f, err)
	}
	if b, err := parseBoolParam(values, "b", false); err != nil || !b {
		t.Errorf("parseBoolParam = %v, %v", b, err)
	}
}

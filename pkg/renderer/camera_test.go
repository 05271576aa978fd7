package renderer

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestCamera_CenterPixelLooksForward(t *testing.T) {
	camera := NewCamera(3, 3, 60)
	ray := camera.GetRay(1, 1, 0, 0)

	if !ray.Direction.ApproxEqualThreshold(core.NewVec3(0, 0, -1), 1e-12) {
		t.Errorf("Expected (0,0,-1), got %v", ray.Direction)
	}
	if !core.IsZero(ray.Origin) {
		t.Errorf("Expected origin at zero, got %v", ray.Origin)
	}
}

func TestCamera_PixelFormula(t *testing.T) {
	camera := NewCamera(4, 2, 90)
	ray := camera.GetRay(0, 0, 0, 0)

	// tan(45deg) = 1, aspect 2: x = (2*0.5/4 - 1) * 2, y = -(2*0.5/2 - 1)
	expected := core.Normalize(core.NewVec3(-1.5, 0.5, -1))
	if !ray.Direction.ApproxEqualThreshold(expected, 1e-12) {
		t.Errorf("Expected %v, got %v", expected, ray.Direction)
	}
}

func TestCamera_Orientation(t *testing.T) {
	camera := NewCamera(64, 48, 60)

	tests := []struct {
		name  string
		i, j  int
		check func(core.Vec3) bool
	}{
		{"top row points up", 32, 0, func(d core.Vec3) bool { return d.Y() > 0 }},
		{"bottom row points down", 32, 47, func(d core.Vec3) bool { return d.Y() < 0 }},
		{"left column points left", 0, 24, func(d core.Vec3) bool { return d.X() < 0 }},
		{"right column points right", 63, 24, func(d core.Vec3) bool { return d.X() > 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := camera.GetRay(tt.i, tt.j, 0, 0).Direction
			if !tt.check(d) {
				t.Errorf("Unexpected direction %v for pixel (%d,%d)", d, tt.i, tt.j)
			}
			if math.Abs(d.Len()-1) > 1e-12 {
				t.Errorf("Direction not normalized: %v", d)
			}
		})
	}
}

func TestCamera_Symmetry(t *testing.T) {
	camera := NewCamera(10, 6, 45)
	a := camera.GetRay(0, 0, 0, 0).Direction
	b := camera.GetRay(9, 5, 0, 0).Direction

	if math.Abs(a.X()+b.X()) > 1e-12 || math.Abs(a.Y()+b.Y()) > 1e-12 || math.Abs(a.Z()-b.Z()) > 1e-12 {
		t.Errorf("Corner rays should mirror each other: %v vs %v", a, b)
	}
}

func TestCamera_HorizontalFov(t *testing.T) {
	square := NewCamera(100, 100, 60)
	if math.Abs(square.HorizontalFov()-60) > 1e-9 {
		t.Errorf("Square image should have equal fovs, got %f", square.HorizontalFov())
	}

	wide := NewCamera(200, 100, 60)
	expected := 2 * math.Atan(2*math.Tan(math.Pi/6)) * 180 / math.Pi
	if math.Abs(wide.HorizontalFov()-expected) > 1e-9 {
		t.Errorf("Expected horizontal fov %f, got %f", expected, wide.HorizontalFov())
	}
}

func TestCamera_SubPixelOffset(t *testing.T) {
	camera := NewCamera(8, 8, 60)

	// Half a pixel right of pixel 3 is the left edge of pixel 4
	a := camera.GetRay(3, 2, 0.5, 0).Direction
	b := camera.GetRay(4, 2, -0.5, 0).Direction
	if !a.ApproxEqualThreshold(b, 1e-12) {
		t.Errorf("Expected equal directions, got %v and %v", a, b)
	}
}

package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

func TestSphere_Intersect_Hit(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -10), 2, material.Handle(3))
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	hit, isHit := sphere.Intersect(ray)
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}
	if math.Abs(hit.Distance-8.0) > 1e-12 {
		t.Errorf("Expected distance 8, got %f", hit.Distance)
	}
	if !hit.Normal.ApproxEqualThreshold(core.NewVec3(0, 0, 1), 1e-12) {
		t.Errorf("Expected normal (0,0,1), got %v", hit.Normal)
	}
	if !hit.Point.ApproxEqualThreshold(core.NewVec3(0, 0, -8), 1e-12) {
		t.Errorf("Expected point (0,0,-8), got %v", hit.Point)
	}
	if hit.Material != 3 {
		t.Errorf("Expected material handle 3, got %d", hit.Material)
	}
}

func TestSphere_Intersect_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -10), 2, 0)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0))

	if hit, isHit := sphere.Intersect(ray); isHit {
		t.Errorf("Expected miss, but got hit at distance %f", hit.Distance)
	}
}

func TestSphere_Intersect_Cases(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, 0)

	tests := []struct {
		name           string
		origin         core.Vec3
		direction      core.Vec3
		expectHit      bool
		expectedT      float64
		expectedNormal core.Vec3
	}{
		{
			name:           "from outside",
			origin:         core.NewVec3(0, 0, 3),
			direction:      core.NewVec3(0, 0, -1),
			expectHit:      true,
			expectedT:      2.0,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "from inside uses far root",
			origin:         core.NewVec3(0, 0, 0),
			direction:      core.NewVec3(0, 0, 1),
			expectHit:      true,
			expectedT:      1.0,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:      "sphere behind origin",
			origin:    core.NewVec3(0, 0, 3),
			direction: core.NewVec3(0, 0, 1),
			expectHit: false,
		},
		{
			name:      "passes beside",
			origin:    core.NewVec3(1.5, 0, 3),
			direction: core.NewVec3(0, 0, -1),
			expectHit: false,
		},
		{
			name:      "origin on surface leaving",
			origin:    core.NewVec3(0, 0, 1),
			direction: core.NewVec3(0, 0, 1),
			expectHit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := sphere.Intersect(core.NewRay(tt.origin, tt.direction))
			if isHit != tt.expectHit {
				t.Fatalf("Expected hit=%t, got %t", tt.expectHit, isHit)
			}
			if !isHit {
				return
			}
			if math.Abs(hit.Distance-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.Distance)
			}
			if !hit.Normal.ApproxEqualThreshold(tt.expectedNormal, 1e-9) {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
			if math.Abs(hit.Normal.Len()-1) > 1e-9 {
				t.Errorf("Normal is not unit length: %v", hit.Normal)
			}
		})
	}
}

func TestSphere_Validate(t *testing.T) {
	tests := []struct {
		radius  float64
		wantErr bool
	}{
		{1, false},
		{0, true},
		{-1, true},
		{math.NaN(), true},
		{math.Inf(1), true},
	}

	for _, tt := range tests {
		err := NewSphere(core.NewVec3(0, 0, 0), tt.radius, 0).Validate()
		if (err != nil) != tt.wantErr {
			t.Errorf("radius %v: error = %v, wantErr %v", tt.radius, err, tt.wantErr)
		}
	}
}

package renderer

import (
	"math"
	"testing"

	"github.com/df07/go-grid-raytracer/pkg/core"
)

func TestExposure(t *testing.T) {
	tests := []struct {
		name     string
		mean     float64
		expected float64
	}{
		{"mid grey", 0.5, 1.0},
		{"dark scene", 0.1, 5.0},
		{"bright scene", 2.0, 0.25},
		{"black scene", 0.0, 1.0},
		{"NaN mean", math.NaN(), 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Exposure(tt.mean); math.Abs(got-tt.expected) > 1e-12 {
				t.Errorf("Expected exposure %f, got %f", tt.expected, got)
			}
		})
	}
}

func TestPackRGB(t *testing.T) {
	tests := []struct {
		name     string
		color    core.Vec3
		expected uint32
	}{
		{"black", core.NewVec3(0, 0, 0), 0x000000},
		{"white", core.NewVec3(1, 1, 1), 0xFFFFFF},
		{"red", core.NewVec3(1, 0, 0), 0xFF0000},
		{"green", core.NewVec3(0, 1, 0), 0x00FF00},
		{"blue", core.NewVec3(0, 0, 1), 0x0000FF},
		{"half blue", core.NewVec3(0, 0, 0.5), 0x00007F},
		{"over range clamps", core.NewVec3(4, 1.5, 1.01), 0xFFFFFF},
		{"negative clamps", core.NewVec3(-1, 0.5, -0.2), 0x007F00},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PackRGB(tt.color); got != tt.expected {
				t.Errorf("Expected %06X, got %06X", tt.expected, got)
			}
		})
	}
}

func TestUnpackRGB(t *testing.T) {
	r, g, b := UnpackRGB(0x12AB7F)
	if r != 0x12 || g != 0xAB || b != 0x7F {
		t.Errorf("Expected (12, AB, 7F), got (%X, %X, %X)", r, g, b)
	}
}

func TestToneMap_MeanMapsToTarget(t *testing.T) {
	// A grey pixel at the mean luminance is exposed to the target and
	// the curve sends the target to x/(x+k) = 0.5
	for _, grey := range []float64{0.01, 0.3, 1.0, 25.0} {
		c := core.NewVec3(grey, grey, grey)
		got := ToneMap(c, Exposure(c.Luminance()))
		if got != 0x7F7F7F {
			t.Errorf("Grey %f: expected 7F7F7F, got %06X", grey, got)
		}
	}
}

func TestToneMap_Monotonic(t *testing.T) {
	prev := uint32(0)
	for i := 0; i <= 100; i++ {
		x := float64(i) * 0.25
		r, _, _ := UnpackRGB(ToneMap(core.NewVec3(x, 0, 0), 1.0))
		if uint32(r) < prev {
			t.Fatalf("Curve decreased at %f: %d < %d", x, r, prev)
		}
		prev = uint32(r)
	}
	if prev == 255 {
		t.Errorf("Expected highlights to roll off below full scale, got %d", prev)
	}
}

func TestToneMap_BlackAndNegative(t *testing.T) {
	if got := ToneMap(core.NewVec3(0, 0, 0), 3.0); got != 0 {
		t.Errorf("Expected black, got %06X", got)
	}
	if got := ToneMap(core.NewVec3(-1, -2, -3), 1.0); got != 0 {
		t.Errorf("Expected negative radiance to clamp to black, got %06X", got)
	}
}

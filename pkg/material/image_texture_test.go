package material

import (
	"testing"

	"github.com/df07/go-grid-raytracer/pkg/core"
)

func TestImageTextureEvaluate(t *testing.T) {
	// Layout:
	//   white black
	//   black white
	white := core.NewVec3(1, 1, 1)
	black := core.NewVec3(0, 0, 0)
	texture := NewImageTexture(2, 2, []core.Vec3{
		white, black, // Row 0 (top in image coords)
		black, white, // Row 1 (bottom in image coords)
	})

	tests := []struct {
		name     string
		uv       core.Vec2
		expected core.Vec3
	}{
		{"bottom-left", core.NewVec2(0.1, 0.1), black},
		{"bottom-right", core.NewVec2(0.9, 0.1), white},
		{"top-left", core.NewVec2(0.1, 0.9), white},
		{"top-right", core.NewVec2(0.9, 0.9), black},
		{"wraps above one", core.NewVec2(1.1, 1.9), white},
		{"wraps negative", core.NewVec2(-0.1, 0.1), white},
		{"v of one wraps to bottom row", core.NewVec2(0, 1), black},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := texture.Evaluate(tt.uv); got != tt.expected {
				t.Errorf("UV%v: expected %v, got %v", tt.uv, tt.expected, got)
			}
		})
	}
}

func TestCheckerTexture(t *testing.T) {
	red := core.NewVec3(1, 0, 0)
	blue := core.NewVec3(0, 0, 1)
	texture := NewCheckerTexture(8, 2, red, blue)

	if texture.Width != 8 || texture.Height != 8 {
		t.Fatalf("Expected 8x8 texture, got %dx%d", texture.Width, texture.Height)
	}
	if got := texture.Pixels[0]; got != red {
		t.Errorf("Expected top-left red, got %v", got)
	}
	if got := texture.Pixels[4]; got != blue {
		t.Errorf("Expected top-right blue, got %v", got)
	}
	if got := texture.Pixels[4*8+4]; got != red {
		t.Errorf("Expected bottom-right red, got %v", got)
	}
}

func TestNilTextureIsWhite(t *testing.T) {
	var texture *ImageTexture
	if got := texture.Evaluate(core.NewVec2(0.5, 0.5)); got != core.NewVec3(1, 1, 1) {
		t.Errorf("Expected white from nil texture, got %v", got)
	}
}

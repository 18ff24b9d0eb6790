package core

import (
	"math"
	"testing"
)

func TestVec3_Reflect(t *testing.T) {
	tests := []struct {
		name     string
		vector   Vec3
		normal   Vec3
		expected Vec3
	}{
		{
			name:     "Head-on reflection",
			vector:   NewVec3(0, 0, -1),
			normal:   NewVec3(0, 0, 1),
			expected: NewVec3(0, 0, 1),
		},
		{
			name:     "45 degree reflection",
			vector:   NewVec3(1, -1, 0),
			normal:   NewVec3(0, 1, 0),
			expected: NewVec3(1, 1, 0),
		},
		{
			name:     "Grazing ray is unchanged",
			vector:   NewVec3(1, 0, 0),
			normal:   NewVec3(0, 1, 0),
			expected: NewVec3(1, 0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.vector.Reflect(tt.normal)

			const tolerance = 1e-9
			if result.Subtract(tt.expected).Length() > tolerance {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestVec3_NormalizeZero(t *testing.T) {
	if n := NewVec3(0, 0, 0).Normalize(); !n.IsZero() {
		t.Errorf("Expected zero vector, got %v", n)
	}
	n := NewVec3(3, 4, 0).Normalize()
	if math.Abs(n.Length()-1) > 1e-12 {
		t.Errorf("Expected unit length, got %f", n.Length())
	}
}

func TestVec3_Luminance(t *testing.T) {
	if l := NewVec3(1, 1, 1).Luminance(); math.Abs(l-1) > 1e-12 {
		t.Errorf("Expected white luminance 1, got %f", l)
	}
	if l := NewVec3(1, 0, 0).Luminance(); math.Abs(l-0.3) > 1e-12 {
		t.Errorf("Expected red luminance 0.3, got %f", l)
	}
	if l := NewVec3(0, 0, 1).Luminance(); math.Abs(l-0.2) > 1e-12 {
		t.Errorf("Expected blue luminance 0.2, got %f", l)
	}
}

func TestVec3_CrossHandedness(t *testing.T) {
	x := NewVec3(1, 0, 0)
	y := NewVec3(0, 1, 0)
	if z := x.Cross(y); z != NewVec3(0, 0, 1) {
		t.Errorf("Expected x × y = +z, got %v", z)
	}
}

package core

import (
	"math"
	"testing"
)

func TestRay_InvDirectionSignedInfinity(t *testing.T) {
	ray := NewRay(NewVec3(0, 0, 0), NewVec3(1, 0, math.Copysign(0, -1)))

	if ray.InvDirection.X != 1 {
		t.Errorf("Expected inverse X of 1, got %f", ray.InvDirection.X)
	}
	if !math.IsInf(ray.InvDirection.Y, 1) {
		t.Errorf("Expected +Inf for +0 component, got %f", ray.InvDirection.Y)
	}
	if !math.IsInf(ray.InvDirection.Z, -1) {
		t.Errorf("Expected -Inf for -0 component, got %f", ray.InvDirection.Z)
	}
}

func TestRay_IntersectBox(t *testing.T) {
	box := NewAABB(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))

	tests := []struct {
		name     string
		ray      Ray
		wantHit  bool
		wantTMin float64
		wantTMax float64
	}{
		{
			name:     "Ray from outside enters box",
			ray:      NewRay(NewVec3(0, 0, -5), NewVec3(0, 0, 1)),
			wantHit:  true,
			wantTMin: 4,
			wantTMax: 6,
		},
		{
			name:     "Ray starting inside box",
			ray:      NewRay(NewVec3(0, 0, 0), NewVec3(1, 0, 0)),
			wantHit:  true,
			wantTMin: -1,
			wantTMax: 1,
		},
		{
			name:    "Parallel ray outside slab misses",
			ray:     NewRay(NewVec3(0, 2, -5), NewVec3(0, 0, 1)),
			wantHit: false,
		},
		{
			name:     "Parallel ray on slab boundary hits",
			ray:      NewRay(NewVec3(0, 1, -5), NewVec3(0, 0, 1)),
			wantHit:  true,
			wantTMin: 4,
			wantTMax: 6,
		},
		{
			name:    "Box behind ray misses",
			ray:     NewRay(NewVec3(0, 0, 5), NewVec3(0, 0, 1)),
			wantHit: false,
		},
		{
			name:    "Diagonal miss",
			ray:     NewRay(NewVec3(-5, 3, 0), NewVec3(1, 0, 0.1)),
			wantHit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tMin, tMax, ok := tt.ray.IntersectBox(box)
			if ok != tt.wantHit {
				t.Fatalf("Expected hit=%v, got %v (tMin=%f tMax=%f)", tt.wantHit, ok, tMin, tMax)
			}
			if !ok {
				return
			}
			if math.Abs(tMin-tt.wantTMin) > 1e-9 || math.Abs(tMax-tt.wantTMax) > 1e-9 {
				t.Errorf("Expected [%f, %f], got [%f, %f]", tt.wantTMin, tt.wantTMax, tMin, tMax)
			}
		})
	}
}

func TestRay_SpawnIncrementsDepth(t *testing.T) {
	ray := NewRayAtDepth(NewVec3(0, 0, 0), NewVec3(0, 0, -1), 2, 1.5)
	child := ray.Spawn(NewVec3(1, 0, 0), NewVec3(0, 1, 0))

	if child.Depth != 3 {
		t.Errorf("Expected depth 3, got %d", child.Depth)
	}
	if child.IOR != 1.5 {
		t.Errorf("Expected IOR context to carry over, got %f", child.IOR)
	}
}

func TestAABB_UnionAndExtend(t *testing.T) {
	box := EmptyAABB().Extend(NewVec3(1, 2, 3)).Extend(NewVec3(-1, 0, 5))
	if box.Min != NewVec3(-1, 0, 3) || box.Max != NewVec3(1, 2, 5) {
		t.Errorf("Unexpected extended box %v", box)
	}

	u := box.Union(NewAABB(NewVec3(0, -4, 0), NewVec3(0, 0, 0)))
	if u.Min != NewVec3(-1, -4, 0) || u.Max != NewVec3(1, 2, 5) {
		t.Errorf("Unexpected union %v", u)
	}
	if v := NewAABB(NewVec3(0, 0, 0), NewVec3(2, 0, 2)).Volume(); v != 0 {
		t.Errorf("Expected flat box volume 0, got %f", v)
	}
}

package grid

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-grid-raytracer/pkg/core"
	"github.com/df07/go-grid-raytracer/pkg/geometry"
)

// randomScene scatters spheres and triangles through [-5, 5]^3
func randomScene(random *rand.Rand, spheres, triangles int) []geometry.Shape {
	point := func() core.Vec3 {
		return core.NewVec3(random.Float64()*10-5, random.Float64()*10-5, random.Float64()*10-5)
	}

	var shapes []geometry.Shape
	for i := 0; i < spheres; i++ {
		shapes = append(shapes, geometry.NewSphere(point(), 0.1+random.Float64()*0.6, testMaterial))
	}
	for i := 0; i < triangles; i++ {
		base := point()
		jitter := func() core.Vec3 {
			return core.NewVec3(random.Float64()*2-1, random.Float64()*2-1, random.Float64()*2-1)
		}
		shapes = append(shapes, geometry.NewTriangle(base, base.Add(jitter()), base.Add(jitter()), testMaterial))
	}
	return shapes
}

func assertSameHit(t *testing.T, ray core.Ray, got, want geometry.Intersection) {
	t.Helper()
	if got.Hit != want.Hit {
		t.Fatalf("Ray %v: grid hit=%v, linear scan hit=%v", ray, got.Hit, want.Hit)
	}
	if !want.Hit {
		return
	}
	if got.Shape != want.Shape {
		t.Fatalf("Ray %v: grid hit a different shape (t=%f vs t=%f)", ray, got.T, want.T)
	}
	if math.Abs(got.T-want.T) > 1e-9 {
		t.Fatalf("Ray %v: grid t=%f, linear scan t=%f", ray, got.T, want.T)
	}
}

func TestGrid_MatchesLinearScan(t *testing.T) {
	random := rand.New(rand.NewSource(3))
	shapes := randomScene(random, 60, 40)
	brute := geometry.ShapeList(shapes)

	configs := []Config{
		{Cells: [3]int{1, 1, 1}},
		{Cells: [3]int{7, 5, 9}},
		{Density: 0.5},
		{},
	}

	for _, config := range configs {
		g := New(shapes, config)
		hits := 0
		for i := 0; i < 3000; i++ {
			// Origins alternate between outside and inside the grid
			var origin core.Vec3
			if i%2 == 0 {
				dir := core.NewVec3(random.NormFloat64(), random.NormFloat64(), random.NormFloat64()).Normalize()
				origin = dir.Multiply(20)
			} else {
				origin = core.NewVec3(random.Float64()*8-4, random.Float64()*8-4, random.Float64()*8-4)
			}
			target := core.NewVec3(random.Float64()*10-5, random.Float64()*10-5, random.Float64()*10-5)
			ray := core.NewRay(origin, target.Subtract(origin))

			want := brute.Intersect(ray)
			assertSameHit(t, ray, g.Intersect(ray), want)
			if want.Hit {
				hits++
			}
		}
		if hits == 0 {
			t.Fatalf("Config %+v: expected some hits", config)
		}
	}
}

func TestGrid_TraversalCases(t *testing.T) {
	shapes := []geometry.Shape{
		geometry.NewSphere(core.NewVec3(-4, -4, -4), 0.5, testMaterial),
		geometry.NewSphere(core.NewVec3(4, 4, 4), 0.5, testMaterial),
		geometry.NewSphere(core.NewVec3(2, 0, 0), 0.75, testMaterial),
		geometry.NewSphere(core.NewVec3(-2, 0, 0), 0.75, testMaterial),
		geometry.NewTriangle(core.NewVec3(-1, -1, 2), core.NewVec3(1, -1, 2), core.NewVec3(0, 1, 2), testMaterial),
	}
	g := New(shapes, Config{Cells: [3]int{6, 6, 6}})
	brute := geometry.ShapeList(shapes)

	// A y boundary between cells, computed from the grid itself
	boundaryY := g.Bounds.Min.Y + 3*g.cellSize.Y

	tests := []struct {
		name      string
		ray       core.Ray
		shouldHit bool
	}{
		{
			name:      "enters from outside",
			ray:       core.NewRay(core.NewVec3(20, 0, 0), core.NewVec3(-1, 0, 0)),
			shouldHit: true,
		},
		{
			name:      "tangent to a cell boundary",
			ray:       core.NewRay(core.NewVec3(-20, boundaryY, 0), core.NewVec3(1, 0, 0)),
			shouldHit: true,
		},
		{
			name:      "starts inside and travels backwards",
			ray:       core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(-1, 0, 0)),
			shouldHit: true,
		},
		{
			name:      "front-facing triangle from +Z",
			ray:       core.NewRay(core.NewVec3(0, -0.2, 20), core.NewVec3(0, 0, -1)),
			shouldHit: true,
		},
		{
			name:      "crosses the grid without hitting",
			ray:       core.NewRay(core.NewVec3(-20, 3, -1), core.NewVec3(1, 0, 0.05)),
			shouldHit: false,
		},
		{
			name:      "misses the grid entirely",
			ray:       core.NewRay(core.NewVec3(0, 50, 0), core.NewVec3(1, 0, 0)),
			shouldHit: false,
		},
		{
			name:      "grid behind ray",
			ray:       core.NewRay(core.NewVec3(20, 0, 0), core.NewVec3(1, 0, 0)),
			shouldHit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := g.Intersect(tt.ray)
			if got.Hit != tt.shouldHit {
				t.Fatalf("Expected hit=%v, got %v", tt.shouldHit, got.Hit)
			}
			assertSameHit(t, tt.ray, got, brute.Intersect(tt.ray))
		})
	}
}

func TestGrid_SpanningShapeNotReportedEarly(t *testing.T) {
	// The tilted triangle's box covers every cell, so it is tested in the
	// first cell visited; its hit lies beyond that cell and a nearer
	// sphere in a later cell must still win.
	tilted := geometry.NewTriangle(
		core.NewVec3(-5, -5, 5), core.NewVec3(5, -5, -5), core.NewVec3(-5, 5, -5), testMaterial)
	near := geometry.NewSphere(core.NewVec3(-1, -1, 0), 0.3, testMaterial)
	shapes := []geometry.Shape{tilted, near}
	g := New(shapes, Config{Cells: [3]int{5, 5, 5}})

	ray := core.NewRay(core.NewVec3(-1, -1, 8), core.NewVec3(0, 0, -1))
	if got := countCellsHolding(g, tilted); got != 125 {
		t.Fatalf("Expected tilted triangle in every cell, got %d", got)
	}

	hit := g.Intersect(ray)
	assertSameHit(t, ray, hit, geometry.ShapeList(shapes).Intersect(ray))
	if hit.Shape != near || math.Abs(hit.T-7.7) > 1e-9 {
		t.Errorf("Expected the near sphere at t=7.7, got t=%f", hit.T)
	}
}

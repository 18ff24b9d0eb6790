package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-grid-raytracer/pkg/core"
)

// newTestCube builds a closed cube of outward-facing triangles
func newTestCube(center core.Vec3, half float64) []*Triangle {
	p := func(x, y, z float64) core.Vec3 {
		return center.Add(core.NewVec3(x*half, y*half, z*half))
	}
	quad := func(a, b, c, d core.Vec3) []*Triangle {
		return []*Triangle{NewTriangle(a, b, c, testMaterial), NewTriangle(a, c, d, testMaterial)}
	}

	var tris []*Triangle
	tris = append(tris, quad(p(-1, -1, 1), p(1, -1, 1), p(1, 1, 1), p(-1, 1, 1))...)     // +Z
	tris = append(tris, quad(p(1, -1, -1), p(-1, -1, -1), p(-1, 1, -1), p(1, 1, -1))...) // -Z
	tris = append(tris, quad(p(1, -1, 1), p(1, -1, -1), p(1, 1, -1), p(1, 1, 1))...)     // +X
	tris = append(tris, quad(p(-1, -1, -1), p(-1, -1, 1), p(-1, 1, 1), p(-1, 1, -1))...) // -X
	tris = append(tris, quad(p(-1, 1, 1), p(1, 1, 1), p(1, 1, -1), p(-1, 1, -1))...)     // +Y
	tris = append(tris, quad(p(-1, -1, -1), p(1, -1, -1), p(1, -1, 1), p(-1, -1, 1))...) // -Y
	return tris
}

func TestModel_IntersectReportsNearestTriangle(t *testing.T) {
	tris := newTestCube(core.NewVec3(0, 0, -5), 1)
	model := NewModel(tris, testMaterial)

	ray := core.NewRay(core.NewVec3(0.2, 0.3, 0), core.NewVec3(0, 0, -1))
	hit := model.Intersect(ray)
	if !hit.Hit {
		t.Fatal("Expected ray to hit cube")
	}
	if math.Abs(hit.T-4) > 1e-9 {
		t.Errorf("Expected t=4 at front face, got %f", hit.T)
	}

	tri, ok := hit.Shape.(*Triangle)
	if !ok {
		t.Fatalf("Expected intersection to name a triangle, got %T", hit.Shape)
	}
	if tri != tris[0] && tri != tris[1] {
		t.Error("Expected a +Z face triangle")
	}
	if n := hit.Normal(); n.Subtract(core.NewVec3(0, 0, 1)).Length() > 1e-9 {
		t.Errorf("Expected front face normal, got %v", n)
	}
	if n := model.Normal(hit.Point); n.Subtract(core.NewVec3(0, 0, 1)).Length() > 1e-9 {
		t.Errorf("Expected model normal to resolve to front face, got %v", n)
	}
}

func TestModel_BoundingBoxRejection(t *testing.T) {
	model := NewModel(newTestCube(core.NewVec3(0, 0, -5), 1), testMaterial)

	bbox := model.BoundingBox()
	if bbox.Min != core.NewVec3(-1, -1, -6) || bbox.Max != core.NewVec3(1, 1, -4) {
		t.Errorf("Unexpected model bounds %v", bbox)
	}

	misses := []core.Ray{
		core.NewRay(core.NewVec3(3, 0, 0), core.NewVec3(0, 0, -1)),
		core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1)),
		core.NewRay(core.NewVec3(0, 5, -5), core.NewVec3(1, 0, 0)),
	}
	for _, ray := range misses {
		if hit := model.Intersect(ray); hit.Hit {
			t.Errorf("Expected ray %v to miss, got t=%f", ray, hit.T)
		}
	}
}

func TestModel_Empty(t *testing.T) {
	model := NewModel(nil, testMaterial)
	if hit := model.Intersect(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1))); hit.Hit {
		t.Error("Expected empty model to miss")
	}
	if n := model.Normal(core.Vec3{}); !n.IsZero() {
		t.Errorf("Expected zero normal for empty model, got %v", n)
	}
}

func TestIntersectObjects_NearestWins(t *testing.T) {
	near := NewSphere(core.NewVec3(0, 0, -5), 1, testMaterial)
	far := NewSphere(core.NewVec3(0, 0, -10), 1, testMaterial)
	ray := core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1))

	for _, shapes := range [][]Shape{{near, far}, {far, near}} {
		hit := IntersectObjects(shapes, ray)
		if !hit.Hit || hit.Shape != near {
			t.Errorf("Expected the near sphere to win")
		}
		if math.Abs(hit.T-4) > 1e-9 {
			t.Errorf("Expected t=4, got %f", hit.T)
		}
	}

	if hit := (ShapeList{}).Intersect(ray); hit.Hit || hit.T != MissT {
		t.Errorf("Expected empty list to report a sentinel miss, got %+v", hit)
	}
}

package geometry

import (
	"github.com/df07/go-grid-raytracer/pkg/core"
	"github.com/df07/go-grid-raytracer/pkg/material"
)

// determinantEpsilon rejects back-facing and edge-on triangles.
// Triangles are single sided: only rays against the winding normal hit.
const determinantEpsilon = 1e-8

// Triangle represents a single triangle defined by three vertices
type Triangle struct {
	V0, V1, V2 core.Vec3 // The three vertices
	Material   material.Material
	normal     core.Vec3 // Cached normal vector
	bbox       core.AABB // Cached bounding box
}

// NewTriangle creates a new triangle from three vertices
func NewTriangle(v0, v1, v2 core.Vec3, material material.Material) *Triangle {
	t := &Triangle{
		V0:       v0,
		V1:       v1,
		V2:       v2,
		Material: material,
	}

	// Precompute normal and bounding box for efficiency
	t.normal = v1.Subtract(v0).Cross(v2.Subtract(v0)).Normalize()
	t.bbox = core.NewAABBFromPoints(v0, v1, v2)

	return t
}

// barycentric runs the Möller-Trumbore test and returns the hit
// distance with the barycentric weights of V1 and V2
func (t *Triangle) barycentric(ray core.Ray) (tHit, u, v float64, ok bool) {
	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)

	h := ray.Direction.Cross(edge2)
	det := edge1.Dot(h)

	// Back-facing or parallel to the plane
	if det < determinantEpsilon {
		return 0, 0, 0, false
	}

	f := 1.0 / det
	s := ray.Origin.Subtract(t.V0)
	u = f * s.Dot(h)
	if u < 0.0 || u > 1.0 {
		return 0, 0, 0, false
	}

	q := s.Cross(edge1)
	v = f * ray.Direction.Dot(q)
	if v < 0.0 || u+v > 1.0 {
		return 0, 0, 0, false
	}

	tHit = f * edge2.Dot(q)
	if tHit < 0 {
		return 0, 0, 0, false
	}
	return tHit, u, v, true
}

// Intersect tests if a ray intersects with the triangle using the
// Möller-Trumbore algorithm
func (t *Triangle) Intersect(ray core.Ray) Intersection {
	tHit, _, _, ok := t.barycentric(ray)
	if !ok {
		return NoHit()
	}
	return Intersection{
		Hit:   true,
		Shape: t,
		Point: ray.At(tHit),
		T:     tHit,
	}
}

// Normal returns the face normal; shading is flat across the triangle
func (t *Triangle) Normal(point core.Vec3) core.Vec3 {
	return t.normal
}

// BoundingBox returns the axis-aligned bounding box for this triangle
func (t *Triangle) BoundingBox() core.AABB {
	return t.bbox
}

// GetMaterial returns the triangle's surface material
func (t *Triangle) GetMaterial() material.Material {
	return t.Material
}

// Albedo returns the triangle's base color
func (t *Triangle) Albedo(hit Intersection) core.Vec3 {
	return t.Material.Color
}

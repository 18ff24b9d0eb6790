package geometry

import (
	"math"

	"github.com/df07/go-grid-raytracer/pkg/core"
	"github.com/df07/go-grid-raytracer/pkg/material"
)

// Model is a triangle mesh exposed as a single shape. It owns its
// triangles and rejects rays against the aggregate bounding box before
// testing them linearly.
type Model struct {
	Triangles []*Triangle
	Material  material.Material
	bbox      core.AABB
}

// NewModel creates a model from triangles, precomputing the bounding box
func NewModel(triangles []*Triangle, material material.Material) *Model {
	bbox := core.EmptyAABB()
	for _, tri := range triangles {
		bbox = bbox.Union(tri.BoundingBox())
	}
	return &Model{
		Triangles: triangles,
		Material:  material,
		bbox:      bbox,
	}
}

// Intersect returns the nearest triangle hit. The intersection names
// the triangle itself, so normals and albedo are resolved against it.
func (m *Model) Intersect(ray core.Ray) Intersection {
	if len(m.Triangles) == 0 {
		return NoHit()
	}
	if _, _, ok := ray.IntersectBox(m.bbox); !ok {
		return NoHit()
	}

	nearest := NoHit()
	for _, tri := range m.Triangles {
		if hit := tri.Intersect(ray); nearest.Closer(hit) {
			nearest = hit
		}
	}
	return nearest
}

// Normal returns the normal of the triangle whose plane lies closest to
// point. Intersection.Normal resolves against the hit triangle directly
// and does not go through here.
func (m *Model) Normal(point core.Vec3) core.Vec3 {
	var best *Triangle
	bestDist := math.Inf(1)
	for _, tri := range m.Triangles {
		d := math.Abs(point.Subtract(tri.V0).Dot(tri.normal))
		if d < bestDist {
			best, bestDist = tri, d
		}
	}
	if best == nil {
		return core.Vec3{}
	}
	return best.normal
}

// BoundingBox returns the precomputed aggregate bounding box
func (m *Model) BoundingBox() core.AABB {
	return m.bbox
}

// GetMaterial returns the material the model was built with
func (m *Model) GetMaterial() material.Material {
	return m.Material
}

// Albedo returns the model's base color
func (m *Model) Albedo(hit Intersection) core.Vec3 {
	return m.Material.Color
}

package geometry

import (
	"math"

	"github.com/df07/go-grid-raytracer/pkg/core"
	"github.com/df07/go-grid-raytracer/pkg/material"
)

// Shape is the capability set every renderable primitive provides
type Shape interface {
	// Intersect reports the nearest hit with t >= 0, or a miss
	Intersect(ray core.Ray) Intersection
	// Normal returns the unit surface normal at a point on the shape
	Normal(point core.Vec3) core.Vec3
	// BoundingBox returns the shape's axis-aligned extent
	BoundingBox() core.AABB
	GetMaterial() material.Material
	// Albedo returns the diffuse color at a hit produced by this shape
	Albedo(hit Intersection) core.Vec3
}

// Intersector finds the nearest hit along a ray. Both a plain shape
// list and the uniform grid implement it.
type Intersector interface {
	Intersect(ray core.Ray) Intersection
}

// Intersection is the nearest-hit record returned by value from every
// intersection query. When Hit is false T holds MissT, so any real hit
// compares as nearer.
type Intersection struct {
	Hit   bool
	Shape Shape     // Concrete primitive that was hit; a Model reports its triangle
	Point core.Vec3 // World-space hit point
	T     float64   // Parametric distance along the ray
	UV    core.Vec2 // Texture coordinates, set by textured shapes only
}

// MissT is the sentinel distance stored in a miss
const MissT = math.MaxFloat64

// NoHit returns an empty intersection record
func NoHit() Intersection {
	return Intersection{T: MissT}
}

// Closer reports whether other is a hit nearer than i
func (i Intersection) Closer(other Intersection) bool {
	return other.Hit && other.T < i.T
}

// Normal returns the hit shape's normal at the hit point
func (i Intersection) Normal() core.Vec3 {
	if !i.Hit {
		return core.Vec3{}
	}
	return i.Shape.Normal(i.Point)
}

// ShapeList is a flat list of shapes searched linearly
type ShapeList []Shape

// Intersect returns the nearest hit among all shapes in the list
func (l ShapeList) Intersect(ray core.Ray) Intersection {
	return IntersectObjects(l, ray)
}

// IntersectObjects scans shapes linearly and returns the nearest hit
// with t >= 0
func IntersectObjects(shapes []Shape, ray core.Ray) Intersection {
	nearest := NoHit()
	for _, shape := range shapes {
		if hit := shape.Intersect(ray); nearest.Closer(hit) {
			nearest = hit
		}
	}
	return nearest
}

// BoundsOf returns the union of the bounding boxes of shapes
func BoundsOf(shapes []Shape) core.AABB {
	box := core.EmptyAABB()
	for _, shape := range shapes {
		box = box.Union(shape.BoundingBox())
	}
	return box
}

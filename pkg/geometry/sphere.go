package geometry

import (
	"math"

	"github.com/df07/go-grid-raytracer/pkg/core"
	"github.com/df07/go-grid-raytracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, material material.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: material,
	}
}

// solveQuadratic returns the ordered real roots of a·t² + b·t + c = 0.
// The sign of b picks the branch of q so the two roots never come from
// subtracting nearly equal values.
func solveQuadratic(a, b, c float64) (x0, x1 float64, ok bool) {
	discriminant := b*b - 4*a*c
	switch {
	case discriminant < 0:
		return 0, 0, false
	case discriminant == 0:
		x0 = -b / (2 * a)
		x1 = x0
	default:
		var q float64
		if b > 0 {
			q = -0.5 * (b + math.Sqrt(discriminant))
		} else {
			q = -0.5 * (b - math.Sqrt(discriminant))
		}
		x0 = q / a
		x1 = c / q
	}

	if x0 > x1 {
		x0, x1 = x1, x0
	}
	return x0, x1, true
}

// Intersect tests if a ray intersects with the sphere
func (s *Sphere) Intersect(ray core.Ray) Intersection {
	// Vector from sphere center to ray origin
	l := ray.Origin.Subtract(s.Center)

	a := ray.Direction.Dot(ray.Direction)
	if a == 0 {
		return NoHit()
	}
	b := 2 * ray.Direction.Dot(l)
	c := l.Dot(l) - s.Radius*s.Radius

	t0, t1, ok := solveQuadratic(a, b, c)
	if !ok {
		return NoHit()
	}

	// Origin inside the sphere: the far root is the visible one
	if t0 < 0 {
		if t1 < 0 {
			return NoHit()
		}
		t0 = t1
	}

	return Intersection{
		Hit:   true,
		Shape: s,
		Point: ray.At(t0),
		T:     t0,
	}
}

// Normal returns the outward unit normal at point
func (s *Sphere) Normal(point core.Vec3) core.Vec3 {
	return point.Subtract(s.Center).Normalize()
}

// BoundingBox returns the axis-aligned bounding box for this sphere
func (s *Sphere) BoundingBox() core.AABB {
	radius := core.NewVec3(s.Radius, s.Radius, s.Radius)
	return core.NewAABB(
		s.Center.Subtract(radius),
		s.Center.Add(radius),
	)
}

// GetMaterial returns the sphere's surface material
func (s *Sphere) GetMaterial() material.Material {
	return s.Material
}

// Albedo returns the sphere's base color
func (s *Sphere) Albedo(hit Intersection) core.Vec3 {
	return s.Material.Color
}

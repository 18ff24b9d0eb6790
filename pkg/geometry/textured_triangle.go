package geometry

import (
	"github.com/df07/go-grid-raytracer/pkg/core"
	"github.com/df07/go-grid-raytracer/pkg/material"
)

// Texture corner assignments for the two halves of a textured quad.
// A quad a,b,c,d (counter-clockwise from bottom-left) splits into the
// lower triangle a,b,c and the upper triangle a,c,d.
var (
	lowerCorners = [3]core.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}}
	upperCorners = [3]core.Vec2{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
)

// TexturedTriangle is a triangle whose diffuse color is modulated by
// a shared image texture
type TexturedTriangle struct {
	Triangle
	Texture *material.ImageTexture
	Upper   bool // Selects the upper-half corner assignment
}

// NewTexturedTriangle creates a textured triangle covering one half of
// the texture
func NewTexturedTriangle(v0, v1, v2 core.Vec3, texture *material.ImageTexture, upper bool, material material.Material) *TexturedTriangle {
	return &TexturedTriangle{
		Triangle: *NewTriangle(v0, v1, v2, material),
		Texture:  texture,
		Upper:    upper,
	}
}

// NewTexturedQuad splits the quad a,b,c,d into two textured triangles
// that together map the full texture
func NewTexturedQuad(a, b, c, d core.Vec3, texture *material.ImageTexture, material material.Material) [2]*TexturedTriangle {
	return [2]*TexturedTriangle{
		NewTexturedTriangle(a, b, c, texture, false, material),
		NewTexturedTriangle(a, c, d, texture, true, material),
	}
}

// Intersect runs the triangle test and records the hit's texture
// coordinates in the returned intersection
func (t *TexturedTriangle) Intersect(ray core.Ray) Intersection {
	tHit, u, v, ok := t.barycentric(ray)
	if !ok {
		return NoHit()
	}

	corners := lowerCorners
	if t.Upper {
		corners = upperCorners
	}
	w := 1 - u - v
	uv := corners[0].Multiply(w).Add(corners[1].Multiply(u)).Add(corners[2].Multiply(v))

	return Intersection{
		Hit:   true,
		Shape: t,
		Point: ray.At(tHit),
		T:     tHit,
		UV:    uv,
	}
}

// Albedo returns the base color modulated by the nearest texel at the
// hit's texture coordinates
func (t *TexturedTriangle) Albedo(hit Intersection) core.Vec3 {
	return t.Material.Color.MultiplyVec(t.Texture.Evaluate(hit.UV))
}

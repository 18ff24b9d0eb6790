package material

import (
	"github.com/df07/go-grid-raytracer/pkg/core"
)

// Material holds the surface parameters shared by every shape.
// Color is the diffuse base color; Lambert and Specular weight the
// diffuse and mirror contributions of the final shaded color.
// Refraction and IOR are carried for transmissive shading, which the
// integrator does not evaluate yet.
type Material struct {
	Color      core.Vec3
	Lambert    float64
	Specular   float64
	Refraction float64
	IOR        float64
}

// NewMaterial creates an opaque material with the given blend weights
func NewMaterial(color core.Vec3, lambert, specular float64) Material {
	return Material{
		Color:    color,
		Lambert:  lambert,
		Specular: specular,
		IOR:      1.0,
	}
}

// NewDiffuse creates a purely diffuse material
func NewDiffuse(color core.Vec3) Material {
	return NewMaterial(color, 1.0, 0.0)
}

// NewMirror creates a perfect mirror with no diffuse contribution
func NewMirror() Material {
	return NewMaterial(core.NewVec3(1, 1, 1), 0.0, 1.0)
}

// WithRefraction returns a copy of m with transmissive parameters set
func (m Material) WithRefraction(refraction, ior float64) Material {
	m.Refraction = refraction
	m.IOR = ior
	return m
}

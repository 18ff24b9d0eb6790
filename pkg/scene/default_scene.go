package scene

import (
	"github.com/df07/go-grid-raytracer/pkg/core"
	"github.com/df07/go-grid-raytracer/pkg/geometry"
	"github.com/df07/go-grid-raytracer/pkg/material"
)

// NewDefaultScene creates a showcase of every shape type: diffuse and
// mirror spheres, a textured back wall and a pyramid mesh on a ground
// plane. The camera avatar is enabled so it shows up in the mirror.
func NewDefaultScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	defaultCameraConfig := geometry.CameraConfig{
		Origin:    core.NewVec3(0, 1, 2),
		Direction: core.NewVec3(0, -1, -8),
		VFov:      45.0,
		Width:     800,
		Height:    450, // 16:9 aspect ratio
	}
	s := New(cameraConfig(defaultCameraConfig, cameraOverrides))
	s.AA = 2
	s.ShowAvatar = true

	// Create materials
	ground := material.NewDiffuse(core.NewVec3(0.6, 0.6, 0.6))
	red := material.NewDiffuse(core.NewVec3(0.8, 0.2, 0.2))
	polished := material.NewMaterial(core.NewVec3(0.9, 0.9, 0.9), 0.2, 0.8)
	gold := material.NewMaterial(core.NewVec3(0.9, 0.7, 0.2), 0.8, 0.2)
	wall := material.NewDiffuse(core.NewVec3(1, 1, 1))

	a, b, c, d := NewGroundQuad(core.NewVec3(0, -1, -6), 40)
	s.AddQuad(a, b, c, d, ground)

	s.Shapes = append(s.Shapes,
		geometry.NewSphere(core.NewVec3(-1.6, 0, -6), 1.0, red),
		geometry.NewSphere(core.NewVec3(1.6, 0, -7), 1.0, polished),
		newPyramid(core.NewVec3(0, -1, -4.5), 0.6, 1.2, gold),
	)

	checker := material.NewCheckerTexture(256, 8,
		core.NewVec3(0.9, 0.9, 0.9),
		core.NewVec3(0.2, 0.2, 0.8),
	)
	s.AddTexturedQuad(
		core.NewVec3(-6, -1, -12),
		core.NewVec3(6, -1, -12),
		core.NewVec3(6, 5, -12),
		core.NewVec3(-6, 5, -12),
		checker, wall,
	)

	s.AddPointLight(core.NewVec3(-4, 6, 0), core.NewVec3(0.8, 0.8, 0.8))
	s.AddPointLight(core.NewVec3(4, 4, -2), core.NewVec3(0.6, 0.5, 0.4))

	return s
}

// newPyramid builds a square pyramid model standing on base with the
// given half-width and height. Every face winds outward.
func newPyramid(base core.Vec3, halfWidth, height float64, m material.Material) *geometry.Model {
	p0 := base.Add(core.NewVec3(-halfWidth, 0, halfWidth))
	p1 := base.Add(core.NewVec3(halfWidth, 0, halfWidth))
	p2 := base.Add(core.NewVec3(halfWidth, 0, -halfWidth))
	p3 := base.Add(core.NewVec3(-halfWidth, 0, -halfWidth))
	apex := base.Add(core.NewVec3(0, height, 0))

	return geometry.NewModel([]*geometry.Triangle{
		geometry.NewTriangle(p0, p1, apex, m),
		geometry.NewTriangle(p1, p2, apex, m),
		geometry.NewTriangle(p2, p3, apex, m),
		geometry.NewTriangle(p3, p0, apex, m),
		geometry.NewTriangle(p0, p3, p2, m),
		geometry.NewTriangle(p0, p2, p1, m),
	}, m)
}

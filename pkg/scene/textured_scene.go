package scene

import (
	"github.com/df07/go-grid-raytracer/pkg/core"
	"github.com/df07/go-grid-raytracer/pkg/geometry"
	"github.com/df07/go-grid-raytracer/pkg/material"
)

// NewTexturedScene creates a checker-textured wall standing on a
// checker-textured floor
func NewTexturedScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	defaultCameraConfig := geometry.CameraConfig{
		Origin:    core.NewVec3(0, 0, 4),
		Direction: core.NewVec3(0, 0, -1),
		VFov:      50.0,
		Width:     640,
		Height:    480,
	}
	s := New(cameraConfig(defaultCameraConfig, cameraOverrides))

	white := material.NewDiffuse(core.NewVec3(1, 1, 1))

	wallTexture := material.NewCheckerTexture(64, 8,
		core.NewVec3(0.9, 0.1, 0.1),
		core.NewVec3(0.1, 0.1, 0.9),
	)
	s.AddTexturedQuad(
		core.NewVec3(-2, -2, -2),
		core.NewVec3(2, -2, -2),
		core.NewVec3(2, 2, -2),
		core.NewVec3(-2, 2, -2),
		wallTexture, white,
	)

	floorTexture := material.NewCheckerTexture(64, 4,
		core.NewVec3(0.8, 0.8, 0.8),
		core.NewVec3(0.1, 0.1, 0.1),
	)
	a, b, c, d := NewGroundQuad(core.NewVec3(0, -2, -2), 8)
	s.AddTexturedQuad(a, b, c, d, floorTexture, white)

	s.AddPointLight(core.NewVec3(0, 2, 2), core.NewVec3(1, 1, 1))

	return s
}

package scene

import (
	"github.com/df07/go-grid-raytracer/pkg/core"
	"github.com/df07/go-grid-raytracer/pkg/geometry"
	"github.com/df07/go-grid-raytracer/pkg/material"
)

// forwardCamera is a 640x480 camera at the origin looking down -z
func forwardCamera() geometry.CameraConfig {
	return geometry.CameraConfig{
		Origin:    core.NewVec3(0, 0, 0),
		Direction: core.NewVec3(0, 0, -1),
		VFov:      40.0,
		Width:     640,
		Height:    480,
	}
}

// NewSphereScene creates a white unit sphere ten units in front of the
// camera, lit from above and to the right
func NewSphereScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	s := New(cameraConfig(forwardCamera(), cameraOverrides))

	white := material.NewDiffuse(core.NewVec3(1, 1, 1))
	s.Shapes = append(s.Shapes, geometry.NewSphere(core.NewVec3(0, 0, -10), 1.0, white))
	s.AddPointLight(core.NewVec3(3, 3, -8), core.NewVec3(1, 1, 1))

	return s
}

// NewOcclusionScene creates a red sphere that completely hides a larger,
// farther green sphere from the camera
func NewOcclusionScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	s := New(cameraConfig(forwardCamera(), cameraOverrides))

	red := material.NewDiffuse(core.NewVec3(1, 0, 0))
	green := material.NewDiffuse(core.NewVec3(0, 1, 0))

	// Angular radius: near asin(1/6) ≈ 9.6°, far asin(1.5/12) ≈ 7.2°
	s.Shapes = append(s.Shapes,
		geometry.NewSphere(core.NewVec3(0, 0, -6), 1.0, red),
		geometry.NewSphere(core.NewVec3(0, 0, -12), 1.5, green),
	)
	s.AddPointLight(core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1))

	return s
}

// NewMirrorScene creates a mirror triangle turned 45° about y, so the
// view straight ahead reflects toward +x where a blue sphere sits
func NewMirrorScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	s := New(cameraConfig(forwardCamera(), cameraOverrides))

	// Plane x + z = -10 with normal (1,0,1)/√2
	s.Shapes = append(s.Shapes,
		geometry.NewTriangle(
			core.NewVec3(-2, -2, -8),
			core.NewVec3(2, -2, -12),
			core.NewVec3(0, 3, -10),
			material.NewMirror(),
		),
		geometry.NewSphere(core.NewVec3(5, 0, -10), 1.0, material.NewDiffuse(core.NewVec3(0.2, 0.4, 1.0))),
	)
	s.AddPointLight(core.NewVec3(2, 3, -8), core.NewVec3(1, 1, 1))

	return s
}

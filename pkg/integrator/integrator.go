package integrator

import (
	"github.com/df07/go-grid-raytracer/pkg/core"
	"github.com/df07/go-grid-raytracer/pkg/geometry"
	"github.com/df07/go-grid-raytracer/pkg/lights"
)

// Scene is the view of a scene an integrator needs. It is declared here
// rather than importing the scene package to avoid an import cycle.
type Scene interface {
	geometry.Intersector
	GetLights() []lights.Light
}

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor computes the linear radiance arriving along ray
	RayColor(ray core.Ray, scene Scene) core.Vec3
}

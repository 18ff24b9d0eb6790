package integrator

import (
	"github.com/df07/go-grid-raytracer/pkg/core"
	"github.com/df07/go-grid-raytracer/pkg/geometry"
	"github.com/df07/go-grid-raytracer/pkg/lights"
)

// DefaultMaxDepth is the deepest recursion level that is still shaded
const DefaultMaxDepth = 4

// ReflectionEpsilon offsets reflected ray origins off the surface
const ReflectionEpsilon = lights.ShadowEpsilon

// WhittedIntegrator shades hits with direct point lighting plus
// recursive mirror reflection
type WhittedIntegrator struct {
	MaxDepth int
}

// NewWhittedIntegrator creates a Whitted integrator. A non-positive
// maxDepth selects DefaultMaxDepth.
func NewWhittedIntegrator(maxDepth int) *WhittedIntegrator {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return &WhittedIntegrator{MaxDepth: maxDepth}
}

// RayColor traces ray through scene. Rays deeper than MaxDepth and rays
// that miss every shape return black.
func (w *WhittedIntegrator) RayColor(ray core.Ray, scene Scene) core.Vec3 {
	if ray.Depth > w.MaxDepth {
		return core.Vec3{}
	}

	hit := scene.Intersect(ray)
	if !hit.Hit {
		return core.Vec3{}
	}

	mat := hit.Shape.GetMaterial()
	normal := hit.Normal()

	var color core.Vec3
	if mat.Lambert != 0 {
		diffuse := w.directLighting(hit, normal, scene)
		color = color.Add(diffuse.Multiply(mat.Lambert))
	}
	if mat.Specular != 0 {
		specular := w.reflection(ray, hit, normal, scene)
		color = color.Add(specular.Multiply(mat.Specular))
	}
	return color
}

// directLighting sums the unoccluded light arriving at the hit and
// modulates it by the shape's albedo
func (w *WhittedIntegrator) directLighting(hit geometry.Intersection, normal core.Vec3, scene Scene) core.Vec3 {
	var irradiance core.Vec3
	for _, light := range scene.GetLights() {
		if !light.Visible(hit.Point, normal, scene) {
			continue
		}
		irradiance = irradiance.Add(light.Irradiance(hit.Point, normal))
	}
	return irradiance.MultiplyVec(hit.Shape.Albedo(hit))
}

// reflection traces the mirror direction one level deeper
func (w *WhittedIntegrator) reflection(ray core.Ray, hit geometry.Intersection, normal core.Vec3, scene Scene) core.Vec3 {
	direction := ray.Direction.Normalize().Reflect(normal)
	origin := hit.Point.Add(normal.Multiply(ReflectionEpsilon))
	return w.RayColor(ray.Spawn(origin, direction), scene)
}

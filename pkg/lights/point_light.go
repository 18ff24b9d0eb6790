package lights

import (
	"github.com/df07/go-grid-raytracer/pkg/core"
	"github.com/df07/go-grid-raytracer/pkg/geometry"
)

// PointLight emits uniformly from a single position
type PointLight struct {
	Position core.Vec3
	Color    core.Vec3
}

// NewPointLight creates a new point light
func NewPointLight(position, color core.Vec3) *PointLight {
	return &PointLight{Position: position, Color: color}
}

// Type returns the light type
func (pl *PointLight) Type() LightType {
	return LightTypePoint
}

// Visible casts a shadow ray toward the light. Surfaces facing away from
// the light are never lit, whatever lies between them.
func (pl *PointLight) Visible(point, normal core.Vec3, scene geometry.Intersector) bool {
	toLight := pl.Position.Subtract(point)
	if toLight.Dot(normal) < 0 {
		return false
	}

	origin := point.Add(normal.Multiply(ShadowEpsilon))
	toLight = pl.Position.Subtract(origin)
	distance := toLight.Length()
	if distance == 0 {
		return true
	}

	shadow := core.NewRay(origin, toLight.Multiply(1/distance))
	hit := scene.Intersect(shadow)
	return !hit.Hit || hit.T >= distance
}

// Irradiance returns color × max(0, cos θ) for the direction to the light
func (pl *PointLight) Irradiance(point, normal core.Vec3) core.Vec3 {
	cosine := pl.Position.Subtract(point).Normalize().Dot(normal)
	if cosine <= 0 {
		return core.Vec3{}
	}
	return pl.Color.Multiply(cosine)
}

package lights

import (
	"github.com/df07/go-grid-raytracer/pkg/core"
	"github.com/df07/go-grid-raytracer/pkg/geometry"
)

type LightType string

const (
	LightTypePoint LightType = "point"
)

// ShadowEpsilon offsets shadow ray origins along the surface normal so
// they do not immediately re-hit the surface they leave
const ShadowEpsilon = 1e-4

// Light is a source of direct illumination. Lights are immutable once
// created and may be shared between workers.
type Light interface {
	Type() LightType

	// Visible reports whether the light reaches point on a surface with
	// the given unit normal, tracing a shadow ray through scene
	Visible(point, normal core.Vec3, scene geometry.Intersector) bool

	// Irradiance returns the unshadowed light arriving at point,
	// weighted by the cosine to normal and clamped at zero
	Irradiance(point, normal core.Vec3) core.Vec3
}

package geometry

import (
	"math"

	"github.com/df07/go-grid-raytracer/pkg/core"
	"github.com/df07/go-grid-raytracer/pkg/material"
)

// CameraConfig contains all camera configuration parameters
type CameraConfig struct {
	Origin        core.Vec3 // Eye position
	Direction     core.Vec3 // View direction, need not be unit length
	VFov          float64   // Vertical field of view in degrees
	Width         int       // Full resolution
	Height        int
	PreviewWidth  int // Preview resolution, defaults to a quarter of full
	PreviewHeight int
}

// MergeCameraConfig returns base with every non-zero field of override
// applied on top
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	result := base
	if !override.Origin.IsZero() {
		result.Origin = override.Origin
	}
	if !override.Direction.IsZero() {
		result.Direction = override.Direction
	}
	if override.VFov != 0 {
		result.VFov = override.VFov
	}
	if override.Width != 0 {
		result.Width = override.Width
	}
	if override.Height != 0 {
		result.Height = override.Height
	}
	if override.PreviewWidth != 0 {
		result.PreviewWidth = override.PreviewWidth
	}
	if override.PreviewHeight != 0 {
		result.PreviewHeight = override.PreviewHeight
	}
	return result
}

// viewport caches the per-resolution sampling parameters
type viewport struct {
	width, height           int
	halfWidth, halfHeight   float64 // Image plane half extents at unit distance
	pixelWidth, pixelHeight float64 // Image plane size of one pixel
}

func newViewport(width, height int, vfov float64) viewport {
	width = max(1, width)
	height = max(1, height)
	halfHeight := math.Tan(vfov * math.Pi / 180 / 2)
	halfWidth := halfHeight * float64(width) / float64(height)
	return viewport{
		width:       width,
		height:      height,
		halfWidth:   halfWidth,
		halfHeight:  halfHeight,
		pixelWidth:  2 * halfWidth / float64(width),
		pixelHeight: 2 * halfHeight / float64(height),
	}
}

// Camera is a pinhole camera generating stratified sample rays.
// Its basis is forward, right = forward × worldUp and
// up = forward × right; up points toward increasing image rows.
type Camera struct {
	origin  core.Vec3
	forward core.Vec3
	right   core.Vec3
	up      core.Vec3

	full      viewport
	preview   viewport
	inPreview bool
}

var worldUp = core.NewVec3(0, 1, 0)

// NewCamera creates a camera and caches both viewports
func NewCamera(config CameraConfig) *Camera {
	forward := config.Direction.Normalize()
	if forward.IsZero() {
		forward = core.NewVec3(0, 0, -1)
	}

	right := forward.Cross(worldUp).Normalize()
	if right.IsZero() {
		// Looking straight up or down
		right = core.NewVec3(1, 0, 0)
	}
	up := forward.Cross(right).Normalize()

	previewWidth, previewHeight := config.PreviewWidth, config.PreviewHeight
	if previewWidth <= 0 || previewHeight <= 0 {
		previewWidth = max(1, config.Width/4)
		previewHeight = max(1, config.Height/4)
	}

	return &Camera{
		origin:  config.Origin,
		forward: forward,
		right:   right,
		up:      up,
		full:    newViewport(config.Width, config.Height, config.VFov),
		preview: newViewport(previewWidth, previewHeight, config.VFov),
	}
}

// SetPreview switches between the preview and full viewports
func (c *Camera) SetPreview(preview bool) {
	c.inPreview = preview
}

// Preview reports whether the camera samples at preview resolution
func (c *Camera) Preview() bool {
	return c.inPreview
}

func (c *Camera) active() *viewport {
	if c.inPreview {
		return &c.preview
	}
	return &c.full
}

// Resolution returns the active image size in pixels
func (c *Camera) Resolution() (width, height int) {
	vp := c.active()
	return vp.width, vp.height
}

// FullResolution returns the full image size regardless of mode
func (c *Camera) FullResolution() (width, height int) {
	return c.full.width, c.full.height
}

// Origin returns the eye position
func (c *Camera) Origin() core.Vec3 {
	return c.origin
}

// Forward returns the unit view direction
func (c *Camera) Forward() core.Vec3 {
	return c.forward
}

// Right returns the unit vector toward increasing image columns
func (c *Camera) Right() core.Vec3 {
	return c.right
}

// Up returns the unit vector toward increasing image rows, which points
// down the screen
func (c *Camera) Up() core.Vec3 {
	return c.up
}

// GetRay returns the ray through sub-pixel stratum (sx, sy) of an aa×aa
// grid inside pixel (x, y). Row 0 is the top of the image.
func (c *Camera) GetRay(x, y, sx, sy, aa int) core.Ray {
	vp := c.active()
	aa = max(1, aa)

	px := (float64(x)+(float64(sx)+0.5)/float64(aa))*vp.pixelWidth - vp.halfWidth
	py := (float64(y)+(float64(sy)+0.5)/float64(aa))*vp.pixelHeight - vp.halfHeight

	direction := c.forward.
		Add(c.right.Multiply(px)).
		Add(c.up.Multiply(py)).
		Normalize()

	return core.NewRay(c.origin, direction)
}

// Avatar returns two billboard triangles of half-size size that depict
// the camera in the scene. They sit just behind the eye and face along
// the view direction, so primary rays cull them while rays reflected
// back toward the camera see them.
func (c *Camera) Avatar(size float64, m material.Material) [2]*Triangle {
	center := c.origin.Subtract(c.forward.Multiply(1e-3))
	r := c.right.Multiply(size)
	u := c.up.Multiply(size)

	a := center.Subtract(r).Subtract(u)
	b := center.Add(r).Subtract(u)
	cc := center.Add(r).Add(u)
	d := center.Subtract(r).Add(u)

	return [2]*Triangle{
		NewTriangle(a, b, cc, m),
		NewTriangle(a, cc, d, m),
	}
}

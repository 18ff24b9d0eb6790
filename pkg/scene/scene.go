package scene

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-grid-raytracer/pkg/core"
	"github.com/df07/go-grid-raytracer/pkg/geometry"
	"github.com/df07/go-grid-raytracer/pkg/grid"
	"github.com/df07/go-grid-raytracer/pkg/lights"
	"github.com/df07/go-grid-raytracer/pkg/material"
)

var (
	// ErrNoCamera is returned by Preprocess when the scene has no camera
	ErrNoCamera = errors.New("scene has no camera")
	// ErrInvalidAA is returned by Preprocess when the sample count is below one
	ErrInvalidAA = errors.New("antialiasing sample count must be at least 1")
)

// AvatarSize is the half-size of the camera avatar billboard
const AvatarSize = 0.25

// Scene contains all the elements needed for rendering
type Scene struct {
	Camera       *geometry.Camera
	CameraConfig geometry.CameraConfig
	Shapes       []geometry.Shape         // Objects in the scene
	Lights       []lights.Light           // Lights in the scene
	Textures     []*material.ImageTexture // Shared by textured shapes
	AA           int                      // Stratified samples per pixel axis
	GridConfig   grid.Config
	ShowAvatar   bool       // Place the camera avatar in the scene before building the grid
	Grid         *grid.Grid // Acceleration structure, built by Preprocess
}

// New creates an empty scene viewed through a camera built from config
func New(config geometry.CameraConfig) *Scene {
	return &Scene{
		Camera:       geometry.NewCamera(config),
		CameraConfig: config,
		Shapes:       make([]geometry.Shape, 0),
		Lights:       make([]lights.Light, 0),
		AA:           1,
	}
}

// Preprocess validates the scene, adds the camera avatar when requested
// and builds the grid. It must be called after the last shape is added
// and before rendering.
func (s *Scene) Preprocess() error {
	if s.Camera == nil {
		return ErrNoCamera
	}
	if s.AA < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidAA, s.AA)
	}

	if s.ShowAvatar {
		avatar := s.Camera.Avatar(AvatarSize, material.NewDiffuse(core.NewVec3(0.9, 0.9, 0.2)))
		s.Shapes = append(s.Shapes, avatar[0], avatar[1])
		s.ShowAvatar = false
	}

	s.Grid = grid.New(s.Shapes, s.GridConfig)

	stats := s.Grid.Stats()
	core.Logger().Info("scene preprocessed",
		"shapes", len(s.Shapes),
		"primitives", s.GetPrimitiveCount(),
		"lights", len(s.Lights),
		"grid", s.Grid.Cells,
		"occupied_cells", stats.Occupied)
	return nil
}

// Intersect returns the nearest hit along ray, through the grid once it
// is built and by linear scan before that
func (s *Scene) Intersect(ray core.Ray) geometry.Intersection {
	if s.Grid != nil {
		return s.Grid.Intersect(ray)
	}
	return geometry.IntersectObjects(s.Shapes, ray)
}

// GetCamera returns the scene camera
func (s *Scene) GetCamera() *geometry.Camera {
	return s.Camera
}

// GetLights returns the scene lights
func (s *Scene) GetLights() []lights.Light {
	return s.Lights
}

// GetAA returns the stratified samples per pixel axis
func (s *Scene) GetAA() int {
	return s.AA
}

// GetPrimitiveCount returns the total number of primitive objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	count := 0
	for _, shape := range s.Shapes {
		count += s.countPrimitivesInShape(shape)
	}
	return count
}

// countPrimitivesInShape counts primitives in a single shape, handling complex objects
func (s *Scene) countPrimitivesInShape(shape geometry.Shape) int {
	switch obj := shape.(type) {
	case *geometry.Model:
		// Models contain multiple triangles
		return len(obj.Triangles)
	default:
		// Regular shapes count as 1 primitive each
		return 1
	}
}

// AddPointLight adds a point light to the scene
func (s *Scene) AddPointLight(position, color core.Vec3) {
	s.Lights = append(s.Lights, lights.NewPointLight(position, color))
}

// AddTexturedQuad adds the quad a,b,c,d (counter-clockwise as seen from
// the lit side) mapped with texture
func (s *Scene) AddTexturedQuad(a, b, c, d core.Vec3, texture *material.ImageTexture, m material.Material) {
	s.addTexture(texture)
	quad := geometry.NewTexturedQuad(a, b, c, d, texture, m)
	s.Shapes = append(s.Shapes, quad[0], quad[1])
}

// AddQuad adds an untextured quad as two triangles
func (s *Scene) AddQuad(a, b, c, d core.Vec3, m material.Material) {
	s.Shapes = append(s.Shapes,
		geometry.NewTriangle(a, b, c, m),
		geometry.NewTriangle(a, c, d, m),
	)
}

// AddBackdrop adds a textured quad facing the camera at distance along
// the view direction, sized to fill the full-resolution frame upright
func (s *Scene) AddBackdrop(texture *material.ImageTexture, distance float64) {
	camera := s.Camera
	width, height := camera.FullResolution()
	halfHeight := distance * math.Tan(s.CameraConfig.VFov*math.Pi/180/2)
	halfWidth := halfHeight * float64(width) / float64(height)

	center := camera.Origin().Add(camera.Forward().Multiply(distance))
	right := camera.Right().Multiply(halfWidth)
	screenUp := camera.Up().Multiply(-halfHeight)

	s.AddTexturedQuad(
		center.Subtract(right).Subtract(screenUp),
		center.Add(right).Subtract(screenUp),
		center.Add(right).Add(screenUp),
		center.Subtract(right).Add(screenUp),
		texture,
		material.NewDiffuse(core.NewVec3(1, 1, 1)),
	)
}

func (s *Scene) addTexture(texture *material.ImageTexture) {
	for _, t := range s.Textures {
		if t == texture {
			return
		}
	}
	s.Textures = append(s.Textures, texture)
}

// NewGroundQuad returns a horizontal square of the given size centered at
// center, facing up
func NewGroundQuad(center core.Vec3, size float64) (a, b, c, d core.Vec3) {
	h := size / 2
	a = core.NewVec3(center.X-h, center.Y, center.Z+h)
	b = core.NewVec3(center.X+h, center.Y, center.Z+h)
	c = core.NewVec3(center.X+h, center.Y, center.Z-h)
	d = core.NewVec3(center.X-h, center.Y, center.Z-h)
	return a, b, c, d
}

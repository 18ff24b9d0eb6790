package scene

import (
	"errors"
	"fmt"
	"sort"

	"github.com/df07/go-grid-raytracer/pkg/geometry"
)

// ErrUnknownScene is returned by Create for names that are not registered
var ErrUnknownScene = errors.New("unknown scene")

// SceneInfo describes a built-in scene
type SceneInfo struct {
	Name        string
	Description string
}

type builtinScene struct {
	info  SceneInfo
	build func(cameraOverrides ...geometry.CameraConfig) *Scene
}

var builtins = map[string]builtinScene{
	"default": {
		info:  SceneInfo{Name: "default", Description: "Spheres, a mirror, a textured wall and a mesh on a ground plane"},
		build: NewDefaultScene,
	},
	"sphere": {
		info:  SceneInfo{Name: "sphere", Description: "A single white sphere lit by one point light"},
		build: NewSphereScene,
	},
	"occlusion": {
		info:  SceneInfo{Name: "occlusion", Description: "A near sphere hiding a farther one"},
		build: NewOcclusionScene,
	},
	"mirror": {
		info:  SceneInfo{Name: "mirror", Description: "A mirror triangle reflecting a colored sphere"},
		build: NewMirrorScene,
	},
	"textured": {
		info:  SceneInfo{Name: "textured", Description: "Checker-textured quads lit from the front"},
		build: NewTexturedScene,
	},
}

// Create builds the named built-in scene. The scene still needs its
// options set and Preprocess called before rendering.
func Create(name string, cameraOverrides ...geometry.CameraConfig) (*Scene, error) {
	builtin, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	return builtin.build(cameraOverrides...), nil
}

// ListScenes returns the built-in scenes sorted by name
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtins))
	for _, builtin := range builtins {
		scenes = append(scenes, builtin.info)
	}
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].Name < scenes[j].Name
	})
	return scenes
}

// cameraConfig applies the first override, if any, to a scene's default
func cameraConfig(defaults geometry.CameraConfig, cameraOverrides []geometry.CameraConfig) geometry.CameraConfig {
	if len(cameraOverrides) > 0 {
		return geometry.MergeCameraConfig(defaults, cameraOverrides[0])
	}
	return defaults
}

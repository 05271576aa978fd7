package scene

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownScene is returned by Create for names that are not built in
var ErrUnknownScene = errors.New("unknown scene")

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string `json:"id"`          // Name passed to Create
	DisplayName string `json:"displayName"` // UI display name
	Description string `json:"description"` // Short description
}

type sceneEntry struct {
	info   SceneInfo
	create func() (*Scene, error)
}

var builtinScenes = map[string]sceneEntry{
	"default": {
		info: SceneInfo{
			ID:          "default",
			DisplayName: "Default",
			Description: "Ivory, glass, rubber and mirror spheres over a checkerboard",
		},
		create: NewDefaultScene,
	},
	"checkerboard": {
		info: SceneInfo{
			ID:          "checkerboard",
			DisplayName: "Checkerboard",
			Description: "The checkerboard alone under one light",
		},
		create: NewCheckerboardScene,
	},
	"mirrors": {
		info: SceneInfo{
			ID:          "mirrors",
			DisplayName: "Mirrors",
			Description: "Two facing mirror spheres sharing one material",
		},
		create: NewMirrorsScene,
	},
}

// Create builds the built-in scene with the given name
func Create(name string) (*Scene, error) {
	entry, ok := builtinScenes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	s, err := entry.create()
	if err != nil {
		return nil, fmt.Errorf("failed to build scene %q: %w", name, err)
	}
	return s, nil
}

// ListScenes returns all built-in scenes sorted by ID
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtinScenes))
	for _, entry := range builtinScenes {
		scenes = append(scenes, entry.info)
	}
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].ID < scenes[j].ID
	})
	return scenes
}

// Names returns the IDs of all built-in scenes
func Names() []string {
	scenes := ListScenes()
	names := make([]string, len(scenes))
	for i, info := range scenes {
		names[i] = info.ID
	}
	return names
}

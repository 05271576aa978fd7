package material

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrUnknownMaterial is returned when a name is not in the registry
	ErrUnknownMaterial = errors.New("unknown material")
	// ErrDuplicateMaterial is returned when a name is registered twice
	ErrDuplicateMaterial = errors.New("duplicate material")
)

// Handle addresses a material inside the Registry that issued it
type Handle int

// InvalidHandle never addresses a material
const InvalidHandle Handle = -1

// Registry owns the materials of a scene. Materials are stored in an arena
// and addressed by Handle, so shapes never hold a material themselves.
// Entries are never removed.
type Registry struct {
	materials []Material
	names     map[string]Handle
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		names: make(map[string]Handle),
	}
}

// Add registers a material under a unique name
func (r *Registry) Add(name string, m Material) (Handle, error) {
	if name == "" {
		return InvalidHandle, fmt.Errorf("material name must not be empty")
	}
	if _, exists := r.names[name]; exists {
		return InvalidHandle, fmt.Errorf("%w: %q", ErrDuplicateMaterial, name)
	}
	h := Handle(len(r.materials))
	r.materials = append(r.materials, m)
	r.names[name] = h
	return h, nil
}

// Lookup returns the handle registered under name
func (r *Registry) Lookup(name string) (Handle, error) {
	h, ok := r.names[name]
	if !ok {
		return InvalidHandle, fmt.Errorf("%w: %q", ErrUnknownMaterial, name)
	}
	return h, nil
}

// Contains reports whether h was issued by this registry
func (r *Registry) Contains(h Handle) bool {
	return h >= 0 && int(h) < len(r.materials)
}

// Get returns the material for h. A handle that was not issued by this
// registry is a scene construction bug and panics.
func (r *Registry) Get(h Handle) Material {
	if !r.Contains(h) {
		panic(fmt.Sprintf("material handle %d not in registry of %d materials", h, len(r.materials)))
	}
	return r.materials[h]
}

// Len returns the number of registered materials
func (r *Registry) Len() int {
	return len(r.materials)
}

// Names returns the registered names in sorted order
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.names))
	for name := range r.names {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Name returns the name h was registered under
func (r *Registry) Name(h Handle) (string, bool) {
	for name, handle := range r.names {
		if handle == h {
			return name, true
		}
	}
	return "", false
}

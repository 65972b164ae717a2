// Package effects holds the catalog of per-frame transformations and the
// registry used to look them up by name.
package effects

import (
	"fmt"
	"image"
	"sync"
)

var _ = fmt.Print

// Effect transforms a single frame. Implementations must not modify img and
// must be safe for concurrent use. scale is only meaningful to effects that
// change the frame size.
type Effect interface {
	Apply(img image.Image, scale float64) (image.Image, error)
}

// EffectFunc adapts a plain function to the Effect interface.
type EffectFunc func(img image.Image, scale float64) (image.Image, error)

func (f EffectFunc) Apply(img image.Image, scale float64) (image.Image, error) {
	return f(img, scale)
}

// Names of the built-in effects, in catalog order.
const (
	Swirl   = "swirl"
	Size    = "size"
	Sepia   = "sepia"
	Invert  = "invert"
	Edge    = "edge"
	Blur    = "blur"
	Mirror  = "mirror"
	Deepfry = "deepfry"
)

// Catalog is the fixed set of built-in effects, in the order batch runs apply them.
var Catalog = []string{Swirl, Size, Sepia, Invert, Edge, Blur, Mirror, Deepfry}

// Registry maps effect names to implementations.
type Registry struct {
	mutex   sync.RWMutex
	effects map[string]Effect
	order   []string
}

func NewRegistry() *Registry {
	return &Registry{effects: make(map[string]Effect)}
}

// Register adds or replaces the effect called name.
func (r *Registry) Register(name string, e Effect) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	if _, exists := r.effects[name]; !exists {
		r.order = append(r.order, name)
	}
	r.effects[name] = e
}

func (r *Registry) Lookup(name string) (e Effect, found bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	e, found = r.effects[name]
	return
}

// Names returns the registered names in registration order.
func (r *Registry) Names() []string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return append([]string(nil), r.order...)
}

// Default returns a registry holding every effect in Catalog.
func Default() *Registry {
	r := NewRegistry()
	r.Register(Swirl, EffectFunc(swirl))
	r.Register(Size, EffectFunc(resize))
	r.Register(Sepia, EffectFunc(sepia))
	r.Register(Invert, EffectFunc(invert))
	r.Register(Edge, EffectFunc(edge))
	r.Register(Blur, EffectFunc(blur))
	r.Register(Mirror, EffectFunc(mirror))
	r.Register(Deepfry, EffectFunc(deepfry))
	return r
}

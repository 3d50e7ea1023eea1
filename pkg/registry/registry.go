package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/aretw0/lattice/pkg/action"
	"github.com/aretw0/lattice/pkg/domain"
	"github.com/aretw0/lattice/pkg/mapmodel"
	"github.com/aretw0/lattice/pkg/ports"
)

// Spec is the declarative description of an action against a dynamic model.
type Spec struct {
	Action   string     `mapstructure:"action" json:"action" yaml:"action"`
	Path     string     `mapstructure:"path" json:"path" yaml:"path"`
	Optional bool       `mapstructure:"optional" json:"optional,omitempty" yaml:"optional,omitempty"`
	Value    any        `mapstructure:"value" json:"value,omitempty" yaml:"value,omitempty"`
	Unset    bool       `mapstructure:"unset" json:"unset,omitempty" yaml:"unset,omitempty"`
	Index    *int       `mapstructure:"index" json:"index,omitempty" yaml:"index,omitempty"`
	Where    *Predicate `mapstructure:"where" json:"where,omitempty" yaml:"where,omitempty"`
}

// Keypath resolves Path, as Optional when requested.
func (s Spec) Keypath() domain.Keypath[mapmodel.Model, any] {
	if s.Optional {
		return mapmodel.Optional(s.Path)
	}
	return mapmodel.Required(s.Path)
}

// Factory builds an action from a spec.
type Factory func(spec Spec) (ports.Action[mapmodel.Model], error)

// Registry manages the available actions.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
	}
}

// Default returns a registry with the built-in actions (assign, filter, remove_at, push).
func Default() *Registry {
	r := NewRegistry()
	r.Register(action.NameAssign, buildAssign)
	r.Register(action.NameFilter, buildFilter)
	r.Register(action.NameRemoveAt, buildRemoveAt)
	r.Register(action.NamePush, buildPush)
	return r
}

// Register adds a factory to the registry.
// If a factory with the same name exists, it is overwritten.
func (r *Registry) Register(name string, fn Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = fn
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.factories[name]
	return ok
}

// Names returns the registered action names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build looks up the factory named by spec.Action and builds the action.
func (r *Registry) Build(spec Spec) (ports.Action[mapmodel.Model], error) {
	r.mu.RLock()
	fn, ok := r.factories[spec.Action]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownAction, spec.Action)
	}
	if spec.Path == "" {
		return nil, fmt.Errorf("%w: action %q requires a path", domain.ErrInvalidStep, spec.Action)
	}

	return fn(spec)
}

func buildAssign(spec Spec) (ports.Action[mapmodel.Model], error) {
	if spec.Unset {
		return action.NewAssign(spec.Keypath(), nil), nil
	}
	if spec.Value == nil {
		return nil, fmt.Errorf("%w: assign requires a value or unset", domain.ErrInvalidStep)
	}
	value := spec.Value
	return action.NewAssign(spec.Keypath(), &value), nil
}

func buildFilter(spec Spec) (ports.Action[mapmodel.Model], error) {
	if spec.Where == nil {
		return nil, fmt.Errorf("%w: filter requires a where clause", domain.ErrInvalidStep)
	}
	include, err := spec.Where.Compile()
	if err != nil {
		return nil, err
	}
	return action.NewFilter(spec.Keypath(), include), nil
}

func buildRemoveAt(spec Spec) (ports.Action[mapmodel.Model], error) {
	if spec.Index == nil || *spec.Index < 0 {
		return nil, fmt.Errorf("%w: remove_at requires a non-negative index", domain.ErrInvalidStep)
	}
	return action.NewRemoveAt[any](spec.Keypath(), *spec.Index), nil
}

func buildPush(spec Spec) (ports.Action[mapmodel.Model], error) {
	return action.NewPush(spec.Keypath(), spec.Value), nil
}

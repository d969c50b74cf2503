package model

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Registry indexes descriptors by model name. Descriptors are immutable once
// registered; the registry itself is safe for concurrent reads.
type Registry struct {
	mu     sync.RWMutex
	models map[string]*Descriptor
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{models: make(map[string]*Descriptor)}
}

// Register validates and stores d. Names must be unique.
func (r *Registry) Register(d *Descriptor) error {
	if r == nil {
		return errors.New("model: registry is nil")
	}
	if err := d.Validate(); err != nil {
		return err
	}
	name := d.Name

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.models[name]; exists {
		return fmt.Errorf("model: duplicate model %q", name)
	}
	r.models[name] = d
	return nil
}

// MustRegister panics when Register fails. Intended for static tables.
func (r *Registry) MustRegister(descriptors ...*Descriptor) *Registry {
	for _, d := range descriptors {
		if err := r.Register(d); err != nil {
			panic(err)
		}
	}
	return r
}

// Lookup returns the descriptor registered under name.
func (r *Registry) Lookup(name string) (*Descriptor, bool) {
	if r == nil {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.models[name]
	return d, ok
}

// Names returns the registered model names in sorted order.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	names := make([]string, 0, len(r.models))
	for name := range r.models {
		names = append(names, name)
	}
	r.mu.RUnlock()
	sort.Strings(names)
	return names
}

// Len returns the number of registered models.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.models)
}

// Validate checks cross-model invariants: every referenced model exists and
// every family variant is registered with the matching discriminator literal.
func (r *Registry) Validate() error {
	var errs []error
	for _, name := range r.Names() {
		d, _ := r.Lookup(name)
		for _, f := range d.Fields {
			if target := referencedModel(f.Type); target != "" {
				if _, ok := r.Lookup(target); !ok {
					errs = append(errs, fmt.Errorf("model: %s.%s references unknown model %q", name, f.ID, target))
				}
			}
		}
		if d.Family == nil {
			continue
		}
		for _, value := range d.Family.Values() {
			variantName := d.Family.Variants[value]
			variant, ok := r.Lookup(variantName)
			if !ok {
				errs = append(errs, fmt.Errorf("model: %s: variant %q maps to unknown model %q", name, value, variantName))
				continue
			}
			disc := variant.Discriminator
			if disc == nil || disc.Field != d.Family.Field || disc.Value != value {
				errs = append(errs, fmt.Errorf("model: %s: variant %q must pin %s to %q", name, variantName, d.Family.Field, value))
			}
		}
	}
	return errors.Join(errs...)
}

func referencedModel(t Type) string {
	if elem, ok := t.Elem(); ok {
		t = elem
	}
	if t.Kind() == KindModel {
		return t.Model()
	}
	return ""
}

// Resolution is the outcome of selecting a concrete model for a payload.
type Resolution struct {
	// Model is the descriptor to hydrate with.
	Model *Descriptor
	// Variant is the discriminator value read from the payload, if any.
	Variant string
	// Known is false when the payload named a base whose discriminator value
	// has no registered variant; Model is then the base itself.
	Known bool
}

// Resolve selects the concrete descriptor for raw when name is a polymorphic
// base. Non-family models resolve to themselves.
func (r *Registry) Resolve(name string, raw map[string]any) (Resolution, error) {
	base, ok := r.Lookup(name)
	if !ok {
		return Resolution{}, fmt.Errorf("%w %q", ErrUnknownModel, name)
	}
	if base.Family == nil {
		return Resolution{Model: base, Known: true}, nil
	}
	selector, _ := base.Field(base.Family.Field)
	value, _ := raw[selector.Key].(string)
	variantName, ok := base.Family.Variants[value]
	if !ok {
		return Resolution{Model: base, Variant: value, Known: false}, nil
	}
	variant, ok := r.Lookup(variantName)
	if !ok {
		return Resolution{Model: base, Variant: value, Known: false}, nil
	}
	return Resolution{Model: variant, Variant: value, Known: true}, nil
}

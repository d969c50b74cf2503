// Package catalog reads and writes model descriptor tables as YAML (or JSON)
// documents so registries can be shipped as data instead of code.
package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/goliatone/go-modelmap/pkg/model"
)

// Catalog is the on-disk form of a registry.
type Catalog struct {
	Version string  `json:"version" yaml:"version"`
	Models  []Model `json:"models" yaml:"models"`
}

// Model is the on-disk form of a model.Descriptor.
type Model struct {
	Name          string         `json:"name" yaml:"name"`
	Description   string         `json:"description,omitempty" yaml:"description,omitempty"`
	Discriminator *Discriminator `json:"discriminator,omitempty" yaml:"discriminator,omitempty"`
	Family        *Family        `json:"family,omitempty" yaml:"family,omitempty"`
	Fields        []Field        `json:"fields" yaml:"fields"`
}

// Discriminator pins a subtype's selector field.
type Discriminator struct {
	Field string `json:"field" yaml:"field"`
	Value string `json:"value" yaml:"value"`
}

// Family declares a polymorphic base.
type Family struct {
	Field    string            `json:"field" yaml:"field"`
	Variants map[string]string `json:"variants" yaml:"variants"`
}

// Field is the on-disk form of a model.Field. Type uses the notation accepted
// by model.ParseType. A nil Default means no default is declared.
type Field struct {
	ID          string   `json:"id" yaml:"id"`
	Key         string   `json:"key" yaml:"key"`
	Type        string   `json:"type" yaml:"type"`
	Default     any      `json:"default,omitempty" yaml:"default,omitempty"`
	Enum        []string `json:"enum,omitempty" yaml:"enum,omitempty"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
}

// Model returns the model named name.
func (c *Catalog) Model(name string) (Model, bool) {
	if c == nil {
		return Model{}, false
	}
	for _, m := range c.Models {
		if m.Name == name {
			return m, true
		}
	}
	return Model{}, false
}

// Descriptors converts every model into a descriptor without cross-model
// validation.
func (c *Catalog) Descriptors() ([]*model.Descriptor, error) {
	if c == nil {
		return nil, errors.New("catalog: catalog is nil")
	}
	out := make([]*model.Descriptor, 0, len(c.Models))
	for _, m := range c.Models {
		d, err := m.Descriptor()
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

// Registry builds and validates a registry from the catalog.
func (c *Catalog) Registry() (*model.Registry, error) {
	descriptors, err := c.Descriptors()
	if err != nil {
		return nil, err
	}
	reg := model.NewRegistry()
	for _, d := range descriptors {
		if err := reg.Register(d); err != nil {
			return nil, fmt.Errorf("catalog: %w", err)
		}
	}
	if err := reg.Validate(); err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	return reg, nil
}

// Descriptor converts m into a model.Descriptor.
func (m Model) Descriptor() (*model.Descriptor, error) {
	name := strings.TrimSpace(m.Name)
	if name == "" {
		return nil, errors.New("catalog: model name is required")
	}
	d := &model.Descriptor{
		Name:        name,
		Description: m.Description,
		Fields:      make([]model.Field, 0, len(m.Fields)),
	}
	for _, raw := range m.Fields {
		f, err := raw.field()
		if err != nil {
			return nil, fmt.Errorf("catalog: model %s: %w", name, err)
		}
		d.Fields = append(d.Fields, f)
	}
	if m.Discriminator != nil {
		d.Discriminator = &model.Discriminator{Field: m.Discriminator.Field, Value: m.Discriminator.Value}
	}
	if m.Family != nil {
		variants := make(map[string]string, len(m.Family.Variants))
		for value, target := range m.Family.Variants {
			variants[value] = target
		}
		d.Family = &model.Family{Field: m.Family.Field, Variants: variants}
	}
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	return d, nil
}

func (f Field) field() (model.Field, error) {
	id := strings.TrimSpace(f.ID)
	key := strings.TrimSpace(f.Key)
	if key == "" {
		key = id
	}
	typ, err := model.ParseType(f.Type)
	if err != nil {
		return model.Field{}, fmt.Errorf("field %q: %w", id, err)
	}
	out := model.Field{
		ID:          id,
		Key:         key,
		Type:        typ,
		Description: f.Description,
	}
	if f.Default != nil {
		out = out.WithDefault(f.Default)
	}
	if len(f.Enum) > 0 {
		out = out.WithEnum(f.Enum...)
	}
	return out, nil
}

// FromRegistry renders reg as a catalog with models sorted by name.
func FromRegistry(reg *model.Registry) *Catalog {
	c := &Catalog{Version: SchemaVersion}
	for _, name := range reg.Names() {
		d, _ := reg.Lookup(name)
		c.Models = append(c.Models, FromDescriptor(d))
	}
	return c
}

// FromDescriptor renders a single descriptor.
func FromDescriptor(d *model.Descriptor) Model {
	m := Model{
		Name:        d.Name,
		Description: d.Description,
		Fields:      make([]Field, 0, len(d.Fields)),
	}
	for _, f := range d.Fields {
		out := Field{
			ID:          f.ID,
			Key:         f.Key,
			Type:        f.Type.String(),
			Description: f.Description,
		}
		if f.HasDefault {
			out.Default = f.Default
		}
		if f.Enum != nil {
			out.Enum = append([]string(nil), f.Enum.Values...)
		}
		m.Fields = append(m.Fields, out)
	}
	if d.Discriminator != nil {
		m.Discriminator = &Discriminator{Field: d.Discriminator.Field, Value: d.Discriminator.Value}
	}
	if d.Family != nil {
		variants := make(map[string]string, len(d.Family.Variants))
		for value, target := range d.Family.Variants {
			variants[value] = target
		}
		m.Family = &Family{Field: d.Family.Field, Variants: variants}
	}
	return m
}

// Merge appends the models of others to c. Duplicate model names fail.
func (c *Catalog) Merge(others ...*Catalog) error {
	seen := make(map[string]struct{}, len(c.Models))
	for _, m := range c.Models {
		seen[m.Name] = struct{}{}
	}
	for _, other := range others {
		if other == nil {
			continue
		}
		for _, m := range other.Models {
			if _, dup := seen[m.Name]; dup {
				return fmt.Errorf("catalog: duplicate model %q", m.Name)
			}
			seen[m.Name] = struct{}{}
			c.Models = append(c.Models, m)
		}
	}
	sort.SliceStable(c.Models, func(i, j int) bool { return c.Models[i].Name < c.Models[j].Name })
	return nil
}

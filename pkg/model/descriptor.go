package model

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Discriminator pins a subtype's selector field to a fixed literal, e.g.
// model_type = "READ_OPERATOR".
type Discriminator struct {
	Field string
	Value string
}

// Family marks a polymorphic base. Field is the discriminator field ID and
// Variants maps discriminator values to concrete model names.
type Family struct {
	Field    string
	Variants map[string]string
}

// Values returns the registered discriminator values in sorted order.
func (f *Family) Values() []string {
	if f == nil {
		return nil
	}
	values := make([]string, 0, len(f.Variants))
	for v := range f.Variants {
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}

// Descriptor is the static field table of one model type. Fields keep
// declaration order, which drives both hydration and dehydration.
type Descriptor struct {
	Name          string
	Description   string
	Fields        []Field
	Discriminator *Discriminator
	Family        *Family
}

// Field returns the field with the given ID.
func (d *Descriptor) Field(id string) (Field, bool) {
	for _, f := range d.Fields {
		if f.ID == id {
			return f, true
		}
	}
	return Field{}, false
}

// FieldByKey returns the field with the given wire key.
func (d *Descriptor) FieldByKey(key string) (Field, bool) {
	for _, f := range d.Fields {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}

// FieldIDs returns field identifiers in declaration order.
func (d *Descriptor) FieldIDs() []string {
	ids := make([]string, len(d.Fields))
	for i, f := range d.Fields {
		ids[i] = f.ID
	}
	return ids
}

// AttributeMap returns field ID → wire key.
func (d *Descriptor) AttributeMap() map[string]string {
	out := make(map[string]string, len(d.Fields))
	for _, f := range d.Fields {
		out[f.ID] = f.Key
	}
	return out
}

// TypeMap returns field ID → declared type.
func (d *Descriptor) TypeMap() map[string]Type {
	out := make(map[string]Type, len(d.Fields))
	for _, f := range d.Fields {
		out[f.ID] = f.Type
	}
	return out
}

// Validate checks the descriptor in isolation. Cross-model references are
// checked by Registry.Validate.
func (d *Descriptor) Validate() error {
	if d == nil {
		return errors.New("model: descriptor is nil")
	}
	if strings.TrimSpace(d.Name) == "" {
		return errors.New("model: descriptor name is required")
	}
	if strings.TrimSpace(d.Name) != d.Name {
		return fmt.Errorf("model: descriptor name %q has surrounding whitespace", d.Name)
	}
	ids := make(map[string]struct{}, len(d.Fields))
	keys := make(map[string]struct{}, len(d.Fields))
	for _, f := range d.Fields {
		if err := f.Validate(); err != nil {
			return fmt.Errorf("%s: %w", d.Name, err)
		}
		if _, dup := ids[f.ID]; dup {
			return fmt.Errorf("model: %s: duplicate field id %q", d.Name, f.ID)
		}
		if _, dup := keys[f.Key]; dup {
			return fmt.Errorf("model: %s: duplicate wire key %q", d.Name, f.Key)
		}
		ids[f.ID] = struct{}{}
		keys[f.Key] = struct{}{}
	}
	if disc := d.Discriminator; disc != nil {
		if err := d.checkSelector(disc.Field); err != nil {
			return err
		}
		if disc.Value == "" {
			return fmt.Errorf("model: %s: discriminator value is required", d.Name)
		}
	}
	if fam := d.Family; fam != nil {
		if err := d.checkSelector(fam.Field); err != nil {
			return err
		}
		if len(fam.Variants) == 0 {
			return fmt.Errorf("model: %s: family declares no variants", d.Name)
		}
	}
	return nil
}

func (d *Descriptor) checkSelector(id string) error {
	f, ok := d.Field(id)
	if !ok {
		return fmt.Errorf("model: %s: discriminator field %q is not declared", d.Name, id)
	}
	if f.Type.Kind() != KindPrimitive || f.Type.Primitive() != String {
		return fmt.Errorf("model: %s: discriminator field %q must be a String", d.Name, id)
	}
	return nil
}

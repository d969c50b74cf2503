package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mohae/deepcopy"

	"github.com/goliatone/go-modelmap/pkg/diag"
)

// Mapper hydrates, dehydrates and constructs records for the models of one
// registry. A Mapper holds no mutable state and can be shared.
type Mapper struct {
	registry *Registry
	sink     diag.Sink
}

// Option configures a Mapper.
type Option func(*Mapper)

// WithSink routes non-fatal diagnostics to sink. Nil restores the default.
func WithSink(sink diag.Sink) Option {
	return func(m *Mapper) {
		m.sink = sink
	}
}

// NewMapper builds a mapper over reg. Without WithSink diagnostics go to
// diag.Default().
func NewMapper(reg *Registry, options ...Option) *Mapper {
	m := &Mapper{registry: reg}
	for _, opt := range options {
		if opt != nil {
			opt(m)
		}
	}
	if m.sink == nil {
		m.sink = diag.Default()
	}
	if m.registry == nil {
		m.registry = NewRegistry()
	}
	return m
}

// Registry returns the registry the mapper resolves models against.
func (m *Mapper) Registry() *Registry {
	return m.registry
}

func (m *Mapper) report(d diag.Diagnostic) {
	m.sink.Report(d)
}

func (m *Mapper) lookup(name string) (*Descriptor, error) {
	d, ok := m.registry.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownModel, name)
	}
	return d, nil
}

// newRecord allocates a record for d with the subtype discriminator pinned.
func (m *Mapper) newRecord(d *Descriptor) *Record {
	rec := &Record{
		desc:     d,
		mapper:   m,
		values:   make(map[string]any, len(d.Fields)),
		assigned: make(map[string]struct{}, len(d.Fields)),
	}
	if disc := d.Discriminator; disc != nil {
		rec.store(disc.Field, disc.Value)
	}
	return rec
}

// Empty returns a record for name with declared defaults applied.
func (m *Mapper) Empty(name string) (*Record, error) {
	return m.New(name, nil)
}

// MustEmpty panics when Empty fails.
func (m *Mapper) MustEmpty(name string) *Record {
	rec, err := m.Empty(name)
	if err != nil {
		panic(err)
	}
	return rec
}

// New constructs a record from caller input keyed by either the wire key or
// the field identifier. Supplying both spellings for one field fails with a
// *ConfigError wrapping ErrAmbiguousField. A present key with a nil value is
// an explicit null assignment. Fields with neither spelling take their
// declared default. Subtype discriminators are pinned before anything else
// and ignore caller input.
func (m *Mapper) New(name string, input map[string]any) (*Record, error) {
	d, err := m.lookup(name)
	if err != nil {
		return nil, err
	}
	rec := m.newRecord(d)
	for _, f := range d.Fields {
		if d.Discriminator != nil && f.ID == d.Discriminator.Field {
			continue
		}
		wireValue, hasWire := input[f.Key]
		idValue, hasID := input[f.ID]
		if f.ID == f.Key {
			hasID = false
		}
		switch {
		case hasWire && hasID:
			return nil, &ConfigError{
				Model: d.Name,
				Field: f.ID,
				Keys:  []string{f.Key, f.ID},
				Err:   ErrAmbiguousField,
			}
		case hasWire:
			m.assign(rec, f, wireValue)
		case hasID:
			m.assign(rec, f, idValue)
		case f.HasDefault:
			m.assign(rec, f, deepcopy.Copy(f.Default))
		}
	}
	return rec, nil
}

// assign stores v on rec, reporting and skipping container shape mismatches.
func (m *Mapper) assign(rec *Record, f Field, v any) {
	converted, ok := m.convertField(rec.desc, f, v)
	if !ok {
		m.reportShape(rec.desc, f, v)
		return
	}
	rec.store(f.ID, converted)
}

func (m *Mapper) reportShape(d *Descriptor, f Field, v any) {
	m.report(diag.Diagnostic{
		Kind:    diag.KindShapeMismatch,
		Model:   d.Name,
		Field:   f.ID,
		Value:   v,
		Message: fmt.Sprintf("%s declared as %s, got %T; field skipped", f.Key, f.Type, v),
	})
}

// Hydrate builds a record for name from raw, a decoded key/value payload.
// When name is a polymorphic base the discriminator selects the concrete
// model; unknown discriminator values fall back to the base. A raw value
// that is not a mapping yields a nil record and no error. The only error is
// an unregistered model name.
func (m *Mapper) Hydrate(name string, raw any) (*Record, error) {
	if _, err := m.lookup(name); err != nil {
		return nil, err
	}
	payload, ok := raw.(map[string]any)
	if !ok {
		return nil, nil
	}
	res, err := m.registry.Resolve(name, payload)
	if err != nil {
		return nil, err
	}
	if !res.Known {
		m.report(diag.Diagnostic{
			Kind:    diag.KindUnknownSubtype,
			Model:   name,
			Field:   res.Model.Family.Field,
			Value:   res.Variant,
			Message: fmt.Sprintf("no variant registered for %q, using %s", res.Variant, name),
		})
	}
	rec, err := m.New(res.Model.Name, nil)
	if err != nil {
		return nil, err
	}
	return m.HydrateInto(rec, payload), nil
}

// HydrateInto populates rec from raw and returns rec. Fields absent from raw
// (or null) are left untouched; unknown keys are ignored. A container field
// whose input has the wrong shape is skipped with a shape_mismatch
// diagnostic. Returns nil when raw is not a mapping or rec is nil.
func (m *Mapper) HydrateInto(rec *Record, raw any) *Record {
	payload, ok := raw.(map[string]any)
	if !ok || rec == nil {
		return nil
	}
	d := rec.desc
	for _, f := range d.Fields {
		if d.Discriminator != nil && f.ID == d.Discriminator.Field {
			continue
		}
		value, present := payload[f.Key]
		if !present || value == nil {
			continue
		}
		m.assign(rec, f, value)
	}
	return rec
}

// Decode parses a JSON object and hydrates it as name. Numbers are decoded
// exactly (json.Number) before conversion.
func (m *Mapper) Decode(name string, data []byte) (*Record, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("model: decode %s: %w", name, err)
	}
	if _, ok := raw.(map[string]any); !ok {
		return nil, fmt.Errorf("model: decode %s: payload is not a JSON object", name)
	}
	return m.Hydrate(name, raw)
}

// Dehydrate converts rec into a wire-keyed map suitable for JSON encoding.
// Fields never assigned are omitted; fields explicitly assigned nil are kept
// as nil. Sequences drop nil elements, nested records are flattened, and the
// result shares no mutable state with rec.
func (m *Mapper) Dehydrate(rec *Record) map[string]any {
	if rec == nil {
		return nil
	}
	out := make(map[string]any, len(rec.values))
	for _, f := range rec.desc.Fields {
		if !rec.IsAssigned(f.ID) {
			continue
		}
		out[f.Key] = m.flatten(f.Type, rec.values[f.ID])
	}
	return out
}

func (m *Mapper) flatten(t Type, v any) any {
	switch value := v.(type) {
	case nil:
		return nil
	case *Record:
		return m.Dehydrate(value)
	case []any:
		elem := elemOf(t)
		out := make([]any, 0, len(value))
		for _, item := range value {
			if item == nil {
				continue
			}
			out = append(out, m.flatten(elem, item))
		}
		return out
	case map[string]any:
		elem := elemOf(t)
		out := make(map[string]any, len(value))
		for k, item := range value {
			out[k] = m.flatten(elem, item)
		}
		return out
	case time.Time:
		if t.Kind() == KindPrimitive && t.Primitive() == Date {
			return value.Format(dateLayout)
		}
		return value.Format(time.RFC3339Nano)
	default:
		return deepcopy.Copy(v)
	}
}

func elemOf(t Type) Type {
	if elem, ok := t.Elem(); ok {
		return elem
	}
	return PrimitiveType(Object)
}

// IsAmbiguous reports whether err came from conflicting constructor keys.
func IsAmbiguous(err error) bool {
	return errors.Is(err, ErrAmbiguousField)
}

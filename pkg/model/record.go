package model

import (
	"encoding/json"
	"reflect"

	"github.com/google/go-cmp/cmp"
)

// Record is a mutable instance of a model. It tracks which fields were
// explicitly assigned so that a nil set by the caller survives dehydration
// while fields never touched are omitted.
type Record struct {
	desc     *Descriptor
	mapper   *Mapper
	values   map[string]any
	assigned map[string]struct{}
}

// Descriptor returns the static field table of the record's model.
func (r *Record) Descriptor() *Descriptor {
	return r.desc
}

// Name returns the model name.
func (r *Record) Name() string {
	if r == nil || r.desc == nil {
		return ""
	}
	return r.desc.Name
}

func (r *Record) store(id string, v any) {
	r.values[id] = v
	r.assigned[id] = struct{}{}
}

// Get returns the stored value for field id and whether it was assigned.
func (r *Record) Get(id string) (any, bool) {
	if r == nil {
		return nil, false
	}
	if _, ok := r.assigned[id]; !ok {
		return nil, false
	}
	return r.values[id], true
}

// IsAssigned reports whether field id was explicitly assigned, even to nil.
func (r *Record) IsAssigned(id string) bool {
	if r == nil {
		return false
	}
	_, ok := r.assigned[id]
	return ok
}

// IsSet reports whether field id holds a non-nil value.
func (r *Record) IsSet(id string) bool {
	v, ok := r.Get(id)
	return ok && v != nil
}

// Set assigns v to field id after the same conversion hydration applies:
// containers are normalised, mapping values for model fields are hydrated
// and enum tokens are coerced. Setting nil records an explicit null. A
// subtype's discriminator only accepts its own literal.
func (r *Record) Set(id string, v any) error {
	f, ok := r.desc.Field(id)
	if !ok {
		return &ConfigError{Model: r.desc.Name, Field: id, Err: ErrUnknownField}
	}
	if disc := r.desc.Discriminator; disc != nil && disc.Field == id {
		if v != disc.Value {
			return &ConfigError{Model: r.desc.Name, Field: id, Err: ErrPinnedDiscriminator}
		}
		return nil
	}
	converted, ok := r.mapper.convertField(r.desc, f, v)
	if !ok {
		return &ConfigError{Model: r.desc.Name, Field: id, Err: ErrShapeMismatch}
	}
	r.store(id, converted)
	return nil
}

// Unset clears field id so it is omitted from dehydration again. A subtype's
// discriminator cannot be cleared.
func (r *Record) Unset(id string) {
	if disc := r.desc.Discriminator; disc != nil && disc.Field == id {
		return
	}
	delete(r.values, id)
	delete(r.assigned, id)
}

// ToMap dehydrates the record.
func (r *Record) ToMap() map[string]any {
	if r == nil {
		return nil
	}
	return r.mapper.Dehydrate(r)
}

// MarshalJSON encodes the dehydrated form.
func (r *Record) MarshalJSON() ([]byte, error) {
	if r == nil {
		return []byte("null"), nil
	}
	return json.Marshal(r.ToMap())
}

// Clone returns a deep copy bound to the same descriptor and mapper.
func (r *Record) Clone() *Record {
	if r == nil {
		return nil
	}
	out := &Record{
		desc:     r.desc,
		mapper:   r.mapper,
		values:   make(map[string]any, len(r.values)),
		assigned: make(map[string]struct{}, len(r.assigned)),
	}
	for id := range r.assigned {
		out.values[id] = cloneValue(r.values[id])
		out.assigned[id] = struct{}{}
	}
	return out
}

// Equal compares models field by field. An unassigned field equals an
// explicit nil. Opaque values held by Object fields are compared including
// their unexported fields.
func (r *Record) Equal(other *Record) bool {
	if r == nil || other == nil {
		return r == other
	}
	if r.Name() != other.Name() {
		return false
	}
	opts := []cmp.Option{cmp.Comparer(equalRecords), cmp.Exporter(exportAll)}
	for _, f := range r.desc.Fields {
		if !cmp.Equal(r.values[f.ID], other.values[f.ID], opts...) {
			return false
		}
	}
	return true
}

func equalRecords(a, b *Record) bool {
	return a.Equal(b)
}

func exportAll(reflect.Type) bool {
	return true
}

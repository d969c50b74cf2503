package model

import "time"

// Typed accessors used by generated wrappers. Each returns the zero value and
// false when the field is unset or holds a value of another type.

// GetString returns a String field.
func (r *Record) GetString(id string) (string, bool) {
	v, _ := r.Get(id)
	s, ok := v.(string)
	return s, ok
}

// GetInt returns an Integer field.
func (r *Record) GetInt(id string) (int64, bool) {
	v, _ := r.Get(id)
	if v == nil {
		return 0, false
	}
	return toInt64(v)
}

// GetFloat returns a Float field.
func (r *Record) GetFloat(id string) (float64, bool) {
	v, _ := r.Get(id)
	if v == nil {
		return 0, false
	}
	return toFloat64(v)
}

// GetBool returns a BOOLEAN field.
func (r *Record) GetBool(id string) (bool, bool) {
	v, _ := r.Get(id)
	b, ok := v.(bool)
	return b, ok
}

// GetTime returns a DateTime or Date field.
func (r *Record) GetTime(id string) (time.Time, bool) {
	v, _ := r.Get(id)
	t, ok := v.(time.Time)
	return t, ok
}

// GetNested returns a model-typed field.
func (r *Record) GetNested(id string) (*Record, bool) {
	v, _ := r.Get(id)
	rec, ok := v.(*Record)
	return rec, ok && rec != nil
}

// GetNestedList returns the records of an Array<Model> field, skipping nil and
// unconverted elements.
func (r *Record) GetNestedList(id string) []*Record {
	v, _ := r.Get(id)
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]*Record, 0, len(items))
	for _, item := range items {
		if rec, ok := item.(*Record); ok && rec != nil {
			out = append(out, rec)
		}
	}
	return out
}

// GetStrings returns the string elements of an Array<String> field.
func (r *Record) GetStrings(id string) []string {
	v, _ := r.Get(id)
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// GetStringMap returns the string entries of a Hash<String, String> field.
func (r *Record) GetStringMap(id string) map[string]string {
	v, _ := r.Get(id)
	entries, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	out := make(map[string]string, len(entries))
	for k, item := range entries {
		if s, ok := item.(string); ok {
			out[k] = s
		}
	}
	return out
}

// GetMap returns a Hash or Object field as a generic mapping.
func (r *Record) GetMap(id string) map[string]any {
	v, _ := r.Get(id)
	entries, _ := v.(map[string]any)
	return entries
}

package model

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"time"

	"github.com/mohae/deepcopy"

	"github.com/goliatone/go-modelmap/pkg/diag"
)

const dateLayout = "2006-01-02"

// Wrapper is implemented by typed models that sit on top of a Record. The
// mapper unwraps them wherever a nested model value is expected.
type Wrapper interface {
	ModelRecord() *Record
}

// convertPrimitive normalises v for p. Values that do not fit the primitive
// are returned unchanged; scalar types are not validated.
func convertPrimitive(p Primitive, v any) any {
	switch p {
	case Integer:
		if n, ok := toInt64(v); ok {
			return n
		}
	case Number:
		if f, ok := toFloat64(v); ok {
			return f
		}
	case DateTime:
		switch t := v.(type) {
		case time.Time:
			return t
		case string:
			if parsed, err := time.Parse(time.RFC3339Nano, t); err == nil {
				return parsed
			}
		}
	case Date:
		switch t := v.(type) {
		case time.Time:
			return truncateDay(t)
		case string:
			if parsed, err := time.Parse(dateLayout, t); err == nil {
				return parsed
			}
			if parsed, err := time.Parse(time.RFC3339Nano, t); err == nil {
				return truncateDay(parsed)
			}
		}
	}
	return v
}

// truncateDay drops the time of day so a Date survives its 2006-01-02 wire
// form unchanged.
func truncateDay(t time.Time) time.Time {
	y, mo, d := t.Date()
	return time.Date(y, mo, d, 0, 0, 0, 0, time.UTC)
}

func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case uint:
		return int64(n), true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		if n > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	case float32:
		return integralFloat(float64(n))
	case float64:
		return integralFloat(n)
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, true
		}
	}
	return 0, false
}

func integralFloat(f float64) (int64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f > math.MaxInt64 || f < math.MinInt64 {
		return 0, false
	}
	return int64(f), true
}

func toFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case json.Number:
		if f, err := n.Float64(); err == nil {
			return f, true
		}
		return 0, false
	}
	if i, ok := toInt64(v); ok {
		return float64(i), true
	}
	return 0, false
}

// asSequence views v as an ordered sequence. Typed slices are accepted so
// callers can assign []string or []*Record directly.
func asSequence(v any) ([]any, bool) {
	switch s := v.(type) {
	case []any:
		return s, true
	case []string:
		out := make([]any, len(s))
		for i, item := range s {
			out[i] = item
		}
		return out, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8 {
		// []byte is a scalar payload, not a sequence.
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

// asMapping views v as a string-keyed mapping.
func asMapping(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[string]string:
		out := make(map[string]any, len(m))
		for k, item := range m {
			out[k] = item
		}
		return out, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}
	return out, true
}

// convertField converts an input value into the stored representation of f.
// The boolean is false when a container field received the wrong shape.
func (m *Mapper) convertField(owner *Descriptor, f Field, v any) (any, bool) {
	out, ok := m.convert(f.Type, v)
	if !ok {
		return nil, false
	}
	if f.Enum != nil {
		out = m.coerceEnum(owner, f, out)
	}
	return out, true
}

func (m *Mapper) convert(t Type, v any) (any, bool) {
	if v == nil {
		return nil, true
	}
	switch t.Kind() {
	case KindPrimitive:
		return convertPrimitive(t.Primitive(), v), true
	case KindModel:
		return m.convertModel(t.Model(), v), true
	case KindSequence:
		items, ok := asSequence(v)
		if !ok {
			return nil, false
		}
		elem, _ := t.Elem()
		out := make([]any, len(items))
		for i, item := range items {
			out[i], _ = m.convert(elem, item)
		}
		return out, true
	case KindMapping:
		entries, ok := asMapping(v)
		if !ok {
			return nil, false
		}
		elem, _ := t.Elem()
		out := make(map[string]any, len(entries))
		for k, item := range entries {
			out[k], _ = m.convert(elem, item)
		}
		return out, true
	default:
		return v, true
	}
}

func (m *Mapper) convertModel(name string, v any) any {
	switch value := v.(type) {
	case *Record:
		return value
	case Wrapper:
		if rec := value.ModelRecord(); rec != nil {
			return rec
		}
		return nil
	case map[string]any:
		rec, err := m.Hydrate(name, value)
		if err != nil || rec == nil {
			return v
		}
		return rec
	default:
		return v
	}
}

func (m *Mapper) coerceEnum(owner *Descriptor, f Field, v any) any {
	switch value := v.(type) {
	case nil:
		return nil
	case []any:
		for i, item := range value {
			if item != nil {
				value[i] = m.coerceToken(owner, f, item)
			}
		}
		return value
	case map[string]any:
		for k, item := range value {
			if item != nil {
				value[k] = m.coerceToken(owner, f, item)
			}
		}
		return value
	default:
		return m.coerceToken(owner, f, value)
	}
}

// coerceToken maps a single enum value. Anything that is not one of the
// allowed strings becomes UnknownEnumValue.
func (m *Mapper) coerceToken(owner *Descriptor, f Field, value any) string {
	if s, ok := value.(string); ok {
		if coerced, known := f.Enum.Coerce(s); known {
			return coerced
		}
	}
	m.report(diag.Diagnostic{
		Kind:    diag.KindUnknownEnum,
		Model:   owner.Name,
		Field:   f.ID,
		Value:   value,
		Message: fmt.Sprintf("unknown value for %s, using %s", f.Key, UnknownEnumValue),
	})
	return UnknownEnumValue
}

// cloneValue deep-copies a stored value; nested records are cloned through
// their own Clone so they keep their descriptor binding.
func cloneValue(v any) any {
	switch value := v.(type) {
	case nil:
		return nil
	case *Record:
		return value.Clone()
	case []any:
		out := make([]any, len(value))
		for i, item := range value {
			out[i] = cloneValue(item)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(value))
		for k, item := range value {
			out[k] = cloneValue(item)
		}
		return out
	case time.Time:
		return value
	default:
		return deepcopy.Copy(v)
	}
}

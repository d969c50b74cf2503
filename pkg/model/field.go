package model

import (
	"errors"
	"fmt"
	"strings"
)

// UnknownEnumValue is substituted for enum values outside the known set so
// newer server-side tokens never break older clients.
const UnknownEnumValue = "UNKNOWN_ENUM_VALUE"

// Enum constrains a string field (or the elements of an Array<String> field)
// to a fixed token set.
type Enum struct {
	Values []string
}

// NewEnum builds an Enum from the allowed tokens.
func NewEnum(values ...string) *Enum {
	return &Enum{Values: append([]string(nil), values...)}
}

// Contains reports whether value is an allowed token.
func (e *Enum) Contains(value string) bool {
	if e == nil {
		return true
	}
	for _, v := range e.Values {
		if v == value {
			return true
		}
	}
	return false
}

// Coerce maps value onto the allowed set. The second result is false when the
// sentinel was substituted.
func (e *Enum) Coerce(value string) (string, bool) {
	if e.Contains(value) {
		return value, true
	}
	return UnknownEnumValue, false
}

// Field declares one attribute of a model. ID is the internal identifier
// (snake_case in generated SDKs) and Key the wire-format JSON key.
type Field struct {
	ID          string
	Key         string
	Type        Type
	Default     any
	HasDefault  bool
	Enum        *Enum
	Description string
}

// WithDefault returns a copy of f carrying a declared default.
func (f Field) WithDefault(value any) Field {
	f.Default = value
	f.HasDefault = true
	return f
}

// WithEnum returns a copy of f constrained to the given tokens.
func (f Field) WithEnum(values ...string) Field {
	f.Enum = NewEnum(values...)
	return f
}

// Validate checks a single field declaration in isolation.
func (f Field) Validate() error {
	if strings.TrimSpace(f.ID) == "" {
		return errors.New("model: field id is required")
	}
	if strings.TrimSpace(f.Key) == "" {
		return fmt.Errorf("model: field %q requires a wire key", f.ID)
	}
	if err := f.Type.Validate(); err != nil {
		return fmt.Errorf("model: field %q: %w", f.ID, err)
	}
	if f.Enum != nil && !f.enumerable() {
		return fmt.Errorf("model: field %q: enum requires String or Array<String>, got %s", f.ID, f.Type)
	}
	return nil
}

func (f Field) enumerable() bool {
	t := f.Type
	if elem, ok := t.Elem(); ok && t.Kind() == KindSequence {
		t = elem
	}
	return t.Kind() == KindPrimitive && t.Primitive() == String
}

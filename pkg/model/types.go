package model

import (
	"errors"
	"fmt"
	"strings"
)

// Kind enumerates the shapes a field type can take.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindPrimitive
	KindModel
	KindSequence
	KindMapping
)

func (k Kind) String() string {
	switch k {
	case KindPrimitive:
		return "primitive"
	case KindModel:
		return "model"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	default:
		return "invalid"
	}
}

// Primitive names the scalar types understood by the mapper.
type Primitive string

const (
	String   Primitive = "String"
	Integer  Primitive = "Integer"
	Number   Primitive = "Float"
	Boolean  Primitive = "BOOLEAN"
	DateTime Primitive = "DateTime"
	Date     Primitive = "Date"
	Object   Primitive = "Object"
)

var primitiveAliases = map[string]Primitive{
	"string":   String,
	"integer":  Integer,
	"int":      Integer,
	"float":    Number,
	"number":   Number,
	"boolean":  Boolean,
	"bool":     Boolean,
	"datetime": DateTime,
	"date":     Date,
	"object":   Object,
	"any":      Object,
}

// LookupPrimitive resolves a primitive name case-insensitively.
func LookupPrimitive(name string) (Primitive, bool) {
	p, ok := primitiveAliases[strings.ToLower(strings.TrimSpace(name))]
	return p, ok
}

// Type is a tagged variant describing a field's semantic type: a primitive, a
// named model, an ordered sequence (Array<T>) or a string-keyed mapping
// (Hash<String, T>). The zero value is invalid.
type Type struct {
	kind      Kind
	primitive Primitive
	model     string
	elem      *Type
}

// PrimitiveType returns the Type for a scalar.
func PrimitiveType(p Primitive) Type {
	return Type{kind: KindPrimitive, primitive: p}
}

// ModelType returns the Type referencing the named model.
func ModelType(name string) Type {
	return Type{kind: KindModel, model: name}
}

// SequenceOf returns Array<elem>.
func SequenceOf(elem Type) Type {
	e := elem
	return Type{kind: KindSequence, elem: &e}
}

// MappingOf returns Hash<String, elem>.
func MappingOf(elem Type) Type {
	e := elem
	return Type{kind: KindMapping, elem: &e}
}

// Kind reports the variant.
func (t Type) Kind() Kind { return t.kind }

// Primitive returns the scalar name for primitive types.
func (t Type) Primitive() Primitive { return t.primitive }

// Model returns the referenced model name for model types.
func (t Type) Model() string { return t.model }

// Elem returns the element type of a sequence or mapping.
func (t Type) Elem() (Type, bool) {
	if t.elem == nil {
		return Type{}, false
	}
	return *t.elem, true
}

// IsContainer reports whether t is a sequence or mapping.
func (t Type) IsContainer() bool {
	return t.kind == KindSequence || t.kind == KindMapping
}

// Equal reports structural equality.
func (t Type) Equal(other Type) bool {
	if t.kind != other.kind || t.primitive != other.primitive || t.model != other.model {
		return false
	}
	if (t.elem == nil) != (other.elem == nil) {
		return false
	}
	if t.elem == nil {
		return true
	}
	return t.elem.Equal(*other.elem)
}

// Validate checks the container invariant: elements are primitives or models.
func (t Type) Validate() error {
	switch t.kind {
	case KindPrimitive:
		if _, ok := LookupPrimitive(string(t.primitive)); !ok {
			return fmt.Errorf("model: unknown primitive %q", t.primitive)
		}
		return nil
	case KindModel:
		if strings.TrimSpace(t.model) == "" {
			return errors.New("model: model type requires a name")
		}
		return nil
	case KindSequence, KindMapping:
		if t.elem == nil {
			return fmt.Errorf("model: %s type requires an element", t.kind)
		}
		if t.elem.IsContainer() {
			return fmt.Errorf("model: nested container %s is not supported", t)
		}
		return t.elem.Validate()
	default:
		return errors.New("model: invalid type")
	}
}

// String renders the wire notation, e.g. "Array<InputPort>" or
// "Hash<String, String>".
func (t Type) String() string {
	switch t.kind {
	case KindPrimitive:
		return string(t.primitive)
	case KindModel:
		return t.model
	case KindSequence:
		if t.elem == nil {
			return "Array<>"
		}
		return "Array<" + t.elem.String() + ">"
	case KindMapping:
		if t.elem == nil {
			return "Hash<String, >"
		}
		return "Hash<String, " + t.elem.String() + ">"
	default:
		return ""
	}
}

// ParseType parses the notation produced by String. Any identifier that is
// not a primitive name is treated as a model reference. It is meant for
// catalog loading; hydration works on already-parsed descriptors.
func ParseType(raw string) (Type, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Type{}, errors.New("model: empty type")
	}
	if inner, ok := unwrap(s, "Array<"); ok {
		elem, err := ParseType(inner)
		if err != nil {
			return Type{}, err
		}
		t := SequenceOf(elem)
		return t, t.Validate()
	}
	if inner, ok := unwrap(s, "Hash<"); ok {
		key, value, found := strings.Cut(inner, ",")
		if !found {
			return Type{}, fmt.Errorf("model: hash type %q requires key and value", raw)
		}
		if p, ok := LookupPrimitive(key); !ok || p != String {
			return Type{}, fmt.Errorf("model: hash type %q must use String keys", raw)
		}
		elem, err := ParseType(value)
		if err != nil {
			return Type{}, err
		}
		t := MappingOf(elem)
		return t, t.Validate()
	}
	if strings.ContainsAny(s, "<>,") {
		return Type{}, fmt.Errorf("model: malformed type %q", raw)
	}
	if p, ok := LookupPrimitive(s); ok {
		return PrimitiveType(p), nil
	}
	return ModelType(s), nil
}

// MustParseType panics when ParseType fails.
func MustParseType(raw string) Type {
	t, err := ParseType(raw)
	if err != nil {
		panic(err)
	}
	return t
}

func unwrap(s, prefix string) (string, bool) {
	if !strings.HasPrefix(s, prefix) || !strings.HasSuffix(s, ">") {
		return "", false
	}
	return s[len(prefix) : len(s)-1], true
}

// MarshalText implements encoding.TextMarshaler.
func (t Type) MarshalText() ([]byte, error) {
	if t.kind == KindInvalid {
		return nil, errors.New("model: cannot marshal invalid type")
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Type) UnmarshalText(text []byte) error {
	parsed, err := ParseType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

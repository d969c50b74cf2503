package model

import (
	"errors"
	"fmt"
)

var (
	// ErrAmbiguousField is returned when constructor input names the same
	// field under both its wire key and its identifier.
	ErrAmbiguousField = errors.New("model: ambiguous field input")
	// ErrUnknownModel is returned for names missing from the registry.
	ErrUnknownModel = errors.New("model: unknown model")
	// ErrUnknownField is returned when setting an undeclared field.
	ErrUnknownField = errors.New("model: unknown field")
	// ErrShapeMismatch is returned by Record.Set when a container field is
	// given a value of the wrong shape.
	ErrShapeMismatch = errors.New("model: value does not match declared shape")
	// ErrPinnedDiscriminator is returned when a subtype's discriminator is
	// set to anything other than its literal.
	ErrPinnedDiscriminator = errors.New("model: discriminator is fixed for this subtype")
)

// ConfigError reports caller input that cannot be applied to a model.
type ConfigError struct {
	Model string
	Field string
	Keys  []string
	Err   error
}

func (e *ConfigError) Error() string {
	switch {
	case len(e.Keys) == 2:
		return fmt.Sprintf("model: %s: cannot provide both %q and %q", e.Model, e.Keys[0], e.Keys[1])
	case e.Field != "":
		return fmt.Sprintf("model: %s: field %q: %v", e.Model, e.Field, e.Err)
	default:
		return fmt.Sprintf("model: %s: %v", e.Model, e.Err)
	}
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

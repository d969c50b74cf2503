package orchestrator

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-modelmap/pkg/catalog"
)

// Transformer mutates an extracted catalog before it becomes a registry.
// Implementations can rename fields, narrow enums or drop models.
type Transformer interface {
	Transform(ctx context.Context, c *catalog.Catalog) error
}

// TransformerFunc adapts plain functions to the Transformer interface.
type TransformerFunc func(ctx context.Context, c *catalog.Catalog) error

// Transform executes the wrapped function when non-nil.
func (fn TransformerFunc) Transform(ctx context.Context, c *catalog.Catalog) error {
	if fn == nil {
		return nil
	}
	return fn(ctx, c)
}

// Chain runs transformers in order, stopping at the first error.
func Chain(transformers ...Transformer) Transformer {
	return TransformerFunc(func(ctx context.Context, c *catalog.Catalog) error {
		for _, t := range transformers {
			if t == nil {
				continue
			}
			if err := t.Transform(ctx, c); err != nil {
				return err
			}
		}
		return nil
	})
}

// PatchTransformer applies declarative overrides loaded from YAML or JSON.
// Patches address fields by their extracted identifier:
//
//	skip: [InternalAudit]
//	models:
//	  InputPort:
//	    description: A port that feeds data into an operator.
//	    fields:
//	      port_type: {enum: [DATA, CONTROL]}
//	      fields: {rename: field_names}
type PatchTransformer struct {
	document patchDocument
}

type patchDocument struct {
	Skip   []string              `yaml:"skip"`
	Models map[string]modelPatch `yaml:"models"`
}

type modelPatch struct {
	Rename      string                `yaml:"rename"`
	Description *string               `yaml:"description"`
	Fields      map[string]fieldPatch `yaml:"fields"`
}

type fieldPatch struct {
	Rename      string   `yaml:"rename"`
	Key         string   `yaml:"key"`
	Type        string   `yaml:"type"`
	Description *string  `yaml:"description"`
	Default     any      `yaml:"default"`
	Enum        []string `yaml:"enum"`
	Drop        bool     `yaml:"drop"`
}

// NewPatchTransformer constructs a transformer from raw YAML or JSON bytes.
func NewPatchTransformer(data []byte) (*PatchTransformer, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New("patch transformer: document is empty")
	}
	var document patchDocument
	if err := yaml.Unmarshal(data, &document); err != nil {
		return nil, fmt.Errorf("patch transformer: parse document: %w", err)
	}
	return &PatchTransformer{document: document}, nil
}

// NewPatchTransformerFromFS loads a patch document from the provided
// filesystem path.
func NewPatchTransformerFromFS(fsys fs.FS, path string) (*PatchTransformer, error) {
	if fsys == nil {
		return nil, errors.New("patch transformer: filesystem is nil")
	}
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("patch transformer: path is required")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("patch transformer: read %s: %w", path, err)
	}
	return NewPatchTransformer(data)
}

// Transform applies the patches onto c. Patching a model or field that does
// not exist is an error. Renamed models are also renamed wherever a field
// type, discriminator family or variant refers to them.
func (t *PatchTransformer) Transform(ctx context.Context, c *catalog.Catalog) error {
	if c == nil {
		return errors.New("patch transformer: catalog is nil")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(t.document.Skip) > 0 {
		skip := make(map[string]bool, len(t.document.Skip))
		for _, name := range t.document.Skip {
			skip[name] = true
		}
		kept := c.Models[:0]
		for _, m := range c.Models {
			if !skip[m.Name] {
				kept = append(kept, m)
			}
		}
		c.Models = kept
	}

	names := make([]string, 0, len(t.document.Models))
	for name := range t.document.Models {
		names = append(names, name)
	}
	sort.Strings(names)

	renames := make(map[string]string)
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return err
		}
		idx := modelIndex(c, name)
		if idx < 0 {
			return fmt.Errorf("patch transformer: model %q not found", name)
		}
		patch := t.document.Models[name]
		if err := applyModelPatch(&c.Models[idx], patch); err != nil {
			return err
		}
		if rename := strings.TrimSpace(patch.Rename); rename != "" {
			renames[name] = rename
		}
	}
	if len(renames) > 0 {
		renameReferences(c, renames)
	}
	return nil
}

func modelIndex(c *catalog.Catalog, name string) int {
	for i := range c.Models {
		if c.Models[i].Name == name {
			return i
		}
	}
	return -1
}

func applyModelPatch(m *catalog.Model, patch modelPatch) error {
	if patch.Description != nil {
		m.Description = *patch.Description
	}
	ids := make([]string, 0, len(patch.Fields))
	for id := range patch.Fields {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		idx := -1
		for i := range m.Fields {
			if m.Fields[i].ID == id {
				idx = i
				break
			}
		}
		if idx < 0 {
			return fmt.Errorf("patch transformer: field %q not found on model %q", id, m.Name)
		}
		fp := patch.Fields[id]
		if fp.Drop {
			m.Fields = append(m.Fields[:idx], m.Fields[idx+1:]...)
			continue
		}
		applyFieldPatch(m, &m.Fields[idx], fp)
	}
	return nil
}

func applyFieldPatch(m *catalog.Model, field *catalog.Field, patch fieldPatch) {
	if rename := strings.TrimSpace(patch.Rename); rename != "" {
		old := field.ID
		field.ID = rename
		switch {
		case m.Discriminator != nil && m.Discriminator.Field == old:
			m.Discriminator.Field = rename
		case m.Family != nil && m.Family.Field == old:
			m.Family.Field = rename
		}
	}
	if patch.Key != "" {
		field.Key = patch.Key
	}
	if patch.Type != "" {
		field.Type = patch.Type
	}
	if patch.Description != nil {
		field.Description = *patch.Description
	}
	if patch.Default != nil {
		field.Default = patch.Default
	}
	if len(patch.Enum) > 0 {
		field.Enum = append([]string(nil), patch.Enum...)
	}
}

func renameReferences(c *catalog.Catalog, renames map[string]string) {
	for i := range c.Models {
		m := &c.Models[i]
		if rename, ok := renames[m.Name]; ok {
			m.Name = rename
		}
		if m.Family != nil {
			for value, variant := range m.Family.Variants {
				if rename, ok := renames[variant]; ok {
					m.Family.Variants[value] = rename
				}
			}
		}
		for j := range m.Fields {
			m.Fields[j].Type = renameType(m.Fields[j].Type, renames)
		}
	}
}

// renameType rewrites model references inside a type expression such as
// "Array<InputPort>" or "Hash<String, InputPort>".
func renameType(expr string, renames map[string]string) string {
	var sb strings.Builder
	start := -1
	flush := func(end int) {
		if start < 0 {
			return
		}
		ident := expr[start:end]
		if rename, ok := renames[ident]; ok {
			ident = rename
		}
		sb.WriteString(ident)
		start = -1
	}
	for i, r := range expr {
		switch r {
		case '<', '>', ',', ' ':
			flush(i)
			sb.WriteRune(r)
		default:
			if start < 0 {
				start = i
			}
		}
	}
	flush(len(expr))
	return sb.String()
}

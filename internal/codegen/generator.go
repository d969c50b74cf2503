// Package codegen renders typed Go wrappers and static descriptor tables for
// the models of a registry.
package codegen

import (
	"errors"
	"fmt"
	"go/format"
	"go/token"
	"io/fs"
	"strings"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-modelmap/pkg/catalog"
	"github.com/goliatone/go-modelmap/pkg/model"
)

const defaultTemplate = "models.go.tpl"

// Option configures a Generator.
type Option func(*config)

type config struct {
	pkg       string
	source    string
	templates fs.FS
	template  string
}

// WithPackage sets the package clause of generated files.
func WithPackage(name string) Option {
	return func(cfg *config) {
		cfg.pkg = strings.TrimSpace(name)
	}
}

// WithSourceName records the catalog origin in the generated header.
func WithSourceName(name string) Option {
	return func(cfg *config) {
		cfg.source = strings.TrimSpace(name)
	}
}

// WithTemplates replaces the built-in templates. The filesystem must provide
// the template named by WithTemplateName (models.go.tpl by default).
func WithTemplates(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templates = files
	}
}

// WithTemplateName selects the entry template.
func WithTemplateName(name string) Option {
	return func(cfg *config) {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			cfg.template = trimmed
		}
	}
}

// Generator renders Go source for a registry.
type Generator struct {
	engine   *engine
	pkg      string
	source   string
	template string
}

// New constructs a Generator. The package name defaults to "models".
func New(options ...Option) (*Generator, error) {
	cfg := &config{pkg: "models", template: defaultTemplate}
	for _, opt := range options {
		if opt != nil {
			opt(cfg)
		}
	}
	if !token.IsIdentifier(cfg.pkg) {
		return nil, fmt.Errorf("codegen: invalid package name %q", cfg.pkg)
	}
	files := cfg.templates
	if files == nil {
		files = Templates()
	}
	eng, err := newEngine(files)
	if err != nil {
		return nil, err
	}
	return &Generator{engine: eng, pkg: cfg.pkg, source: cfg.source, template: cfg.template}, nil
}

// Generate renders and gofmt-formats the source for every model in reg.
// When formatting fails the unformatted output is returned with the error.
func (g *Generator) Generate(reg *model.Registry) ([]byte, error) {
	if g == nil || g.engine == nil {
		return nil, errors.New("codegen: generator is nil")
	}
	if reg == nil || reg.Len() == 0 {
		return nil, errors.New("codegen: registry has no models")
	}
	if err := reg.Validate(); err != nil {
		return nil, fmt.Errorf("codegen: %w", err)
	}

	view, err := buildView(reg, g.pkg, g.source)
	if err != nil {
		return nil, err
	}
	raw, err := g.engine.render(g.template, pongo2.Context{
		"Package":     view.Package,
		"Source":      view.Source,
		"NeedsTime":   view.NeedsTime,
		"Models":      view.Models,
		"Families":    view.Families,
		"Enums":       view.Enums,
		"Descriptors": view.Descriptors,
	})
	if err != nil {
		return nil, err
	}
	formatted, err := format.Source(raw)
	if err != nil {
		return raw, fmt.Errorf("codegen: format generated source: %w", err)
	}
	return formatted, nil
}

// GenerateCatalog builds the registry of c and renders it.
func (g *Generator) GenerateCatalog(c *catalog.Catalog) ([]byte, error) {
	reg, err := c.Registry()
	if err != nil {
		return nil, err
	}
	return g.Generate(reg)
}

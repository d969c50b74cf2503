package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/mohae/deepcopy"
	"github.com/sirupsen/logrus"

	"github.com/goliatone/go-modelmap/internal/codegen"
	"github.com/goliatone/go-modelmap/internal/openapi/extract"
	internalLoader "github.com/goliatone/go-modelmap/internal/openapi/loader"
	"github.com/goliatone/go-modelmap/pkg/catalog"
	"github.com/goliatone/go-modelmap/pkg/model"
	pkgopenapi "github.com/goliatone/go-modelmap/pkg/openapi"
)

const defaultPackage = "models"

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects a custom OpenAPI loader.
func WithLoader(loader pkgopenapi.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithExtractor injects a custom catalog extractor.
func WithExtractor(extractor pkgopenapi.Extractor) Option {
	return func(o *Orchestrator) {
		o.extractor = extractor
	}
}

// WithCatalogTransformer registers a Transformer that can patch the extracted
// catalog before it is validated and rendered.
func WithCatalogTransformer(t Transformer) Option {
	return func(o *Orchestrator) {
		o.transformer = t
	}
}

// WithDefaultPackage overrides the package name used when a request omits
// one.
func WithDefaultPackage(name string) Option {
	return func(o *Orchestrator) {
		o.defaultPackage = name
	}
}

// WithTemplates replaces the built-in code generation templates.
func WithTemplates(files fs.FS) Option {
	return func(o *Orchestrator) {
		o.templates = files
	}
}

// WithLogger routes pipeline progress to logger. The default discards it.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(o *Orchestrator) {
		o.log = logger
	}
}

// Orchestrator coordinates the pipeline from OpenAPI document to generated
// source. Missing stages are filled with the built-in implementations.
type Orchestrator struct {
	loader         pkgopenapi.Loader
	extractor      pkgopenapi.Extractor
	transformer    Transformer
	templates      fs.FS
	defaultPackage string
	log            logrus.FieldLogger
}

// New constructs an Orchestrator applying any provided options.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{defaultPackage: defaultPackage}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	if o.log == nil {
		discard := logrus.New()
		discard.SetLevel(logrus.PanicLevel)
		o.log = discard
	}
	if o.loader == nil {
		o.loader = internalLoader.New(pkgopenapi.NewLoaderOptions())
	}
	if o.extractor == nil {
		o.extractor = extract.New(pkgopenapi.NewExtractOptions(pkgopenapi.WithExtractLogger(o.log)))
	}
	if o.defaultPackage == "" {
		o.defaultPackage = defaultPackage
	}
	return o
}

// Request describes the inputs of one pipeline run. Catalog takes precedence
// over Document, and Document over Source.
type Request struct {
	// Source identifies where the OpenAPI document lives.
	Source pkgopenapi.Source

	// Document bypasses the loader.
	Document *pkgopenapi.Document

	// Catalog bypasses loading and extraction. The transformer still runs on
	// a copy.
	Catalog *catalog.Catalog

	// Package names the generated package. Empty uses the default.
	Package string

	// SourceName is recorded in the generated header. Empty uses the source
	// location when there is one.
	SourceName string
}

// Catalog runs the loader and extractor and applies the transformer.
func (o *Orchestrator) Catalog(ctx context.Context, req Request) (*catalog.Catalog, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var out *catalog.Catalog
	if req.Catalog != nil {
		out = deepcopy.Copy(req.Catalog).(*catalog.Catalog)
	} else {
		doc, err := o.resolveDocument(ctx, req)
		if err != nil {
			return nil, err
		}
		out, err = o.extractor.Catalog(ctx, doc)
		if err != nil {
			return nil, fmt.Errorf("orchestrator: extract catalog: %w", err)
		}
		o.log.WithFields(logrus.Fields{
			"source": doc.Location(),
			"models": len(out.Models),
		}).Debug("extracted catalog")
	}

	if o.transformer != nil {
		if err := o.transformer.Transform(ctx, out); err != nil {
			return nil, fmt.Errorf("orchestrator: transform catalog: %w", err)
		}
	}
	return out, nil
}

// Registry runs Catalog and validates the result as a model registry.
func (o *Orchestrator) Registry(ctx context.Context, req Request) (*model.Registry, error) {
	c, err := o.Catalog(ctx, req)
	if err != nil {
		return nil, err
	}
	reg, err := c.Registry()
	if err != nil {
		return nil, fmt.Errorf("orchestrator: %w", err)
	}
	return reg, nil
}

// Generate runs Registry and renders the typed model source.
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	reg, err := o.Registry(ctx, req)
	if err != nil {
		return nil, err
	}

	pkg := req.Package
	if pkg == "" {
		pkg = o.defaultPackage
	}
	name := req.SourceName
	if name == "" {
		name = requestLocation(req)
	}
	options := []codegen.Option{codegen.WithPackage(pkg), codegen.WithSourceName(name)}
	if o.templates != nil {
		options = append(options, codegen.WithTemplates(o.templates))
	}
	gen, err := codegen.New(options...)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: %w", err)
	}
	src, err := gen.Generate(reg)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: generate: %w", err)
	}
	o.log.WithFields(logrus.Fields{
		"package": pkg,
		"models":  reg.Len(),
		"bytes":   len(src),
	}).Debug("generated models")
	return src, nil
}

func (o *Orchestrator) resolveDocument(ctx context.Context, req Request) (pkgopenapi.Document, error) {
	if req.Document != nil {
		return *req.Document, nil
	}
	if req.Source == nil {
		return pkgopenapi.Document{}, errors.New("orchestrator: source, document or catalog is required")
	}
	doc, err := o.loader.Load(ctx, req.Source)
	if err != nil {
		return pkgopenapi.Document{}, fmt.Errorf("orchestrator: load document: %w", err)
	}
	return doc, nil
}

func requestLocation(req Request) string {
	switch {
	case req.Catalog != nil:
		return ""
	case req.Document != nil:
		return req.Document.Location()
	case req.Source != nil:
		return req.Source.Location()
	default:
		return ""
	}
}

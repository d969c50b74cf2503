// Package modelmap exposes the schema-to-model pipeline from the module root:
// load an OpenAPI document, extract a model catalog and render typed models.
package modelmap

import (
	"context"

	"github.com/goliatone/go-modelmap/internal/openapi/extract"
	internalLoader "github.com/goliatone/go-modelmap/internal/openapi/loader"
	"github.com/goliatone/go-modelmap/pkg/catalog"
	pkgopenapi "github.com/goliatone/go-modelmap/pkg/openapi"
	"github.com/goliatone/go-modelmap/pkg/orchestrator"
)

// Transformer aliases orchestrator.Transformer for callers patching
// extracted catalogs.
type Transformer = orchestrator.Transformer

// TransformerFunc aliases orchestrator.TransformerFunc.
type TransformerFunc = orchestrator.TransformerFunc

// NewLoader constructs a loader using the internal implementation while keeping
// the concrete type hidden from consumers.
func NewLoader(options ...pkgopenapi.LoaderOption) pkgopenapi.Loader {
	cfg := pkgopenapi.NewLoaderOptions(options...)
	return internalLoader.New(cfg)
}

// NewExtractor constructs a catalog extractor backed by kin-openapi.
func NewExtractor(options ...pkgopenapi.ExtractOption) pkgopenapi.Extractor {
	cfg := pkgopenapi.NewExtractOptions(options...)
	return extract.New(cfg)
}

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// ExtractCatalog loads source and returns the catalog of its component
// schemas.
func ExtractCatalog(ctx context.Context, source pkgopenapi.Source, options ...orchestrator.Option) (*catalog.Catalog, error) {
	return orchestrator.New(options...).Catalog(ctx, orchestrator.Request{Source: source})
}

// GenerateModels loads source, extracts its catalog and renders typed models
// into package pkg. It is the simplest entry point for callers that just want
// Go source.
func GenerateModels(ctx context.Context, source pkgopenapi.Source, pkg string, options ...orchestrator.Option) ([]byte, error) {
	return orchestrator.New(options...).Generate(ctx, orchestrator.Request{
		Source:  source,
		Package: pkg,
	})
}

// GenerateModelsFromCatalog renders typed models for a catalog that is
// already loaded, bypassing the loader and extractor.
func GenerateModelsFromCatalog(ctx context.Context, c *catalog.Catalog, pkg string, options ...orchestrator.Option) ([]byte, error) {
	return orchestrator.New(options...).Generate(ctx, orchestrator.Request{
		Catalog: c,
		Package: pkg,
	})
}

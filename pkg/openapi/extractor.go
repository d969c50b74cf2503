package openapi

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/goliatone/go-modelmap/pkg/catalog"
)

// Extractor maps the component schemas of a Document onto catalog models.
type Extractor interface {
	Catalog(ctx context.Context, doc Document) (*catalog.Catalog, error)
}

// ExtractOptions toggles extraction behaviour.
type ExtractOptions struct {
	// ResolveReferences allows external $ref pointers and validates the
	// document before extraction. Defaults to true.
	ResolveReferences bool

	// AllowPartialDocuments accepts documents without paths, such as shared
	// component libraries. Defaults to true.
	AllowPartialDocuments bool

	// Logger receives debug output about skipped schemas. Nil disables it.
	Logger logrus.FieldLogger
}

// ExtractOption mutates ExtractOptions during construction.
type ExtractOption func(*ExtractOptions)

// WithReferenceResolution toggles external references and validation.
func WithReferenceResolution(enabled bool) ExtractOption {
	return func(opts *ExtractOptions) {
		opts.ResolveReferences = enabled
	}
}

// WithPartialDocuments toggles support for component-only documents.
func WithPartialDocuments(enabled bool) ExtractOption {
	return func(opts *ExtractOptions) {
		opts.AllowPartialDocuments = enabled
	}
}

// WithExtractLogger routes extraction debug messages to logger.
func WithExtractLogger(logger logrus.FieldLogger) ExtractOption {
	return func(opts *ExtractOptions) {
		opts.Logger = logger
	}
}

// NewExtractOptions applies ExtractOption functions over the defaults.
func NewExtractOptions(options ...ExtractOption) ExtractOptions {
	cfg := ExtractOptions{
		ResolveReferences:     true,
		AllowPartialDocuments: true,
	}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

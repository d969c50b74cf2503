// Package openapi exposes the public contracts for turning OpenAPI documents
// into model catalogs: sources, the raw Document wrapper, the Loader that
// fetches documents and the Extractor that maps components.schemas onto
// catalog models. Implementations live under internal/openapi so kin-openapi
// types never leak to consumers.
package openapi

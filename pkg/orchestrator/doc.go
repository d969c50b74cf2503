// Package orchestrator wires the loader → extractor → transformer → generator
// pipeline that turns an OpenAPI document into typed model source.
package orchestrator

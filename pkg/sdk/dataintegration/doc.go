// Package dataintegration holds typed models for a small data integration
// API. The models are produced from catalog.yaml by the modelmap generator.
package dataintegration

//go:generate go run ../../../cmd/modelmap generate -catalog catalog.yaml -package dataintegration -out models_gen.go

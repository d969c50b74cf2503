package extract

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-modelmap/pkg/catalog"
	"github.com/goliatone/go-modelmap/pkg/model"
	pkgopenapi "github.com/goliatone/go-modelmap/pkg/openapi"
)

func loadFixture(t *testing.T, name string) pkgopenapi.Document {
	t.Helper()
	path := filepath.Join("testdata", name)
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	return pkgopenapi.MustNewDocument(pkgopenapi.SourceFromFile(path), data)
}

func inlineDocument(raw string) pkgopenapi.Document {
	return pkgopenapi.MustNewDocument(pkgopenapi.SourceFromFS("inline.json"), []byte(raw))
}

func TestCatalog_DataIntegration(t *testing.T) {
	extractor := New(pkgopenapi.NewExtractOptions())
	got, err := extractor.Catalog(context.Background(), loadFixture(t, "dataintegration.yaml"))
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}

	operatorFields := []catalog.Field{
		{ID: "input_ports", Key: "inputPorts", Type: "Array<InputPort>"},
		{ID: "key", Key: "key", Type: "String"},
		{ID: "model_type", Key: "modelType", Type: "String"},
	}
	withOperator := func(extra ...catalog.Field) []catalog.Field {
		out := make([]catalog.Field, 0, len(operatorFields)+len(extra))
		out = append(out, operatorFields...)
		out = append(out, extra...)
		return out
	}

	want := &catalog.Catalog{
		Version: catalog.SchemaVersion,
		Models: []catalog.Model{
			{
				Name: "DataEntity",
				Fields: []catalog.Field{
					{ID: "date_observed", Key: "dateObserved", Type: "Date"},
					{ID: "freeform_tags", Key: "freeformTags", Type: "Hash<String, String>"},
					{ID: "key", Key: "key", Type: "String"},
					{ID: "lifecycle_state", Key: "lifecycleState", Type: "String", Enum: []string{"ACTIVE", "INACTIVE", "DELETING", "DELETED", "FAILED"}},
					{ID: "matrix", Key: "matrix", Type: "Array<Object>"},
					{ID: "metadata", Key: "metadata", Type: "Object"},
					{ID: "time_created", Key: "timeCreated", Type: "DateTime"},
				},
			},
			{
				Name:        "InputPort",
				Description: "A port that feeds data into an operator.",
				Fields: []catalog.Field{
					{ID: "field_names", Key: "fields", Type: "Array<String>"},
					{ID: "key", Key: "key", Type: "String"},
					{ID: "port_type", Key: "portType", Type: "String", Enum: []string{"DATA", "CONTROL", "MODEL"}},
				},
			},
			{
				Name: "Operator",
				Family: &catalog.Family{
					Field: "model_type",
					Variants: map[string]string{
						"READ_OPERATOR":  "ReadOperator",
						"WRITE_OPERATOR": "WriteOperator",
					},
				},
				Fields: withOperator(),
			},
			{
				Name: "ReadAttribute",
				Fields: []catalog.Field{
					{ID: "fetch_size", Key: "fetchSize", Type: "Integer"},
					{ID: "is_distributed", Key: "isDistributed", Type: "BOOLEAN", Default: false},
				},
			},
			{
				Name:          "ReadOperator",
				Discriminator: &catalog.Discriminator{Field: "model_type", Value: "READ_OPERATOR"},
				Fields: []catalog.Field{
					{ID: "entities_by_name", Key: "entitiesByName", Type: "Hash<String, DataEntity>"},
					operatorFields[0],
					operatorFields[1],
					operatorFields[2],
					{ID: "read_attribute", Key: "readAttribute", Type: "ReadAttribute"},
				},
			},
			{
				Name:          "WriteOperator",
				Discriminator: &catalog.Discriminator{Field: "model_type", Value: "WRITE_OPERATOR"},
				Fields: []catalog.Field{
					{ID: "data_entity", Key: "dataEntity", Type: "DataEntity"},
					operatorFields[0],
					operatorFields[1],
					operatorFields[2],
					{ID: "write_mode", Key: "writeMode", Type: "String", Enum: []string{"APPEND", "OVERWRITE"}},
				},
			},
		},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("catalog mismatch (-want +got):\n%s", diff)
	}
}

func TestCatalog_HydratesThroughExtractedRegistry(t *testing.T) {
	extractor := New(pkgopenapi.NewExtractOptions())
	c, err := extractor.Catalog(context.Background(), loadFixture(t, "dataintegration.yaml"))
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	reg, err := c.Registry()
	if err != nil {
		t.Fatalf("registry: %v", err)
	}

	m := model.NewMapper(reg)
	rec, err := m.Decode("Operator", []byte(`{
		"modelType": "WRITE_OPERATOR",
		"writeMode": "MERGE",
		"dataEntity": {"lifecycleState": "ACTIVE", "timeCreated": "2024-05-01T00:00:00Z"}
	}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if rec.Name() != "WriteOperator" {
		t.Fatalf("resolved %s, want WriteOperator", rec.Name())
	}
	if mode, _ := rec.GetString("write_mode"); mode != model.UnknownEnumValue {
		t.Fatalf("write_mode = %q, want sentinel", mode)
	}
	entity, ok := rec.GetNested("data_entity")
	if !ok {
		t.Fatalf("data_entity not hydrated")
	}
	if _, ok := entity.GetTime("time_created"); !ok {
		t.Fatalf("time_created not converted to time")
	}
}

func TestCatalog_ImplicitDiscriminatorMapping(t *testing.T) {
	doc := inlineDocument(`{
  "openapi": "3.0.0",
  "info": {"title": "Shapes", "version": "1"},
  "paths": {},
  "components": {
    "schemas": {
      "Shape": {
        "type": "object",
        "discriminator": {"propertyName": "shapeKind"},
        "properties": {"area": {"type": "number"}}
      },
      "Circle": {
        "allOf": [
          {"$ref": "#/components/schemas/Shape"},
          {"type": "object", "properties": {"radius": {"type": "number"}}}
        ]
      }
    }
  }
}`)

	got, err := New(pkgopenapi.NewExtractOptions()).Catalog(context.Background(), doc)
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	shape, _ := got.Model("Shape")
	if shape.Family == nil || shape.Family.Variants["Circle"] != "Circle" {
		t.Fatalf("expected implicit Circle variant, got %+v", shape.Family)
	}
	wantShapeFields := []catalog.Field{
		{ID: "area", Key: "area", Type: "Float"},
		{ID: "shape_kind", Key: "shapeKind", Type: "String"},
	}
	if diff := cmp.Diff(wantShapeFields, shape.Fields); diff != "" {
		t.Fatalf("base should gain the selector field (-want +got):\n%s", diff)
	}
	circle, _ := got.Model("Circle")
	if circle.Discriminator == nil || circle.Discriminator.Value != "Circle" {
		t.Fatalf("Circle discriminator = %+v", circle.Discriminator)
	}
}

func TestCatalog_Errors(t *testing.T) {
	cases := []struct {
		name    string
		doc     string
		options []pkgopenapi.ExtractOption
		want    string
	}{
		{
			name: "invalid document",
			doc:  `{"openapi": `,
			want: "load document",
		},
		{
			name:    "partial documents disabled",
			doc:     `{"openapi":"3.0.0","info":{"title":"x","version":"1"},"paths":{},"components":{"schemas":{"A":{"type":"object"}}}}`,
			options: []pkgopenapi.ExtractOption{pkgopenapi.WithPartialDocuments(false)},
			want:    "does not contain any paths",
		},
		{
			name: "no schemas",
			doc:  `{"openapi":"3.0.0","info":{"title":"x","version":"1"},"paths":{}}`,
			want: "no component schemas",
		},
		{
			name: "mapping to scalar schema",
			doc: `{"openapi":"3.0.0","info":{"title":"x","version":"1"},"paths":{},"components":{"schemas":{
				"Base":{"type":"object","discriminator":{"propertyName":"kind","mapping":{"S":"#/components/schemas/Name"}},"properties":{"kind":{"type":"string"}}},
				"Name":{"type":"string"}}}}`,
			want: "unknown schema",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			extractor := New(pkgopenapi.NewExtractOptions(tc.options...))
			_, err := extractor.Catalog(context.Background(), inlineDocument(tc.doc))
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error containing %q, got %v", tc.want, err)
			}
		})
	}
}

func TestCatalog_SkipExtension(t *testing.T) {
	doc := inlineDocument(`{"openapi":"3.0.0","info":{"title":"x","version":"1"},"paths":{},"components":{"schemas":{
		"Kept":{"type":"object","properties":{"id":{"type":"string"}}},
		"Internal":{"type":"object","x-modelmap-skip":true,"properties":{"id":{"type":"string"}}}}}}`)

	got, err := New(pkgopenapi.NewExtractOptions()).Catalog(context.Background(), doc)
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	if len(got.Models) != 1 || got.Models[0].Name != "Kept" {
		t.Fatalf("unexpected models: %+v", got.Models)
	}
}

func TestPlainText(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{raw: "", want: ""},
		{raw: "  plain  ", want: "plain"},
		{raw: "<p>Fish &amp; chips</p>", want: "Fish & chips"},
		{raw: "line one\n  <script>x</script>two", want: "line one two"},
	}
	for _, tc := range cases {
		if got := plainText(tc.raw); got != tc.want {
			t.Fatalf("plainText(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

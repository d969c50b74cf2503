package orchestrator_test

import (
	"context"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-modelmap/pkg/catalog"
	"github.com/goliatone/go-modelmap/pkg/orchestrator"
)

const operatorCatalog = `version: 1.0.0
models:
  - name: ReadAttribute
    fields:
      - {id: fetch_size, key: fetchSize, type: Integer}
  - name: Operator
    family: {field: model_type, variants: {READ_OPERATOR: ReadOperator}}
    fields:
      - {id: model_type, key: modelType, type: String}
  - name: ReadOperator
    discriminator: {field: model_type, value: READ_OPERATOR}
    fields:
      - {id: model_type, key: modelType, type: String}
      - {id: attributes, key: attributes, type: "Hash<String, ReadAttribute>"}
      - {id: mode, key: mode, type: String, enum: [FULL, INCREMENTAL, SNAPSHOT]}
      - {id: debug, key: debug, type: BOOLEAN}
  - name: InternalAudit
    fields:
      - {id: actor, key: actor, type: String}
`

const operatorPatch = `skip: [InternalAudit]
models:
  ReadAttribute:
    rename: ReadSettings
    description: Tuning for reads.
    fields:
      fetch_size: {default: 100}
  Operator:
    fields:
      model_type: {rename: kind}
  ReadOperator:
    fields:
      model_type: {rename: kind}
      mode: {enum: [FULL, INCREMENTAL]}
      debug: {drop: true}
`

func decodeCatalog(t *testing.T, doc string) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Decode([]byte(doc), "inline")
	if err != nil {
		t.Fatalf("decode catalog: %v", err)
	}
	return c
}

func TestPatchTransformer(t *testing.T) {
	fsys := fstest.MapFS{"patches/operators.yaml": {Data: []byte(operatorPatch)}}
	transformer, err := orchestrator.NewPatchTransformerFromFS(fsys, "patches/operators.yaml")
	if err != nil {
		t.Fatalf("new transformer: %v", err)
	}

	c := decodeCatalog(t, operatorCatalog)
	if err := transformer.Transform(context.Background(), c); err != nil {
		t.Fatalf("transform: %v", err)
	}

	want := &catalog.Catalog{
		Version: "1.0.0",
		Models: []catalog.Model{
			{
				Name:        "ReadSettings",
				Description: "Tuning for reads.",
				Fields:      []catalog.Field{{ID: "fetch_size", Key: "fetchSize", Type: "Integer", Default: 100}},
			},
			{
				Name:   "Operator",
				Family: &catalog.Family{Field: "kind", Variants: map[string]string{"READ_OPERATOR": "ReadOperator"}},
				Fields: []catalog.Field{{ID: "kind", Key: "modelType", Type: "String"}},
			},
			{
				Name:          "ReadOperator",
				Discriminator: &catalog.Discriminator{Field: "kind", Value: "READ_OPERATOR"},
				Fields: []catalog.Field{
					{ID: "kind", Key: "modelType", Type: "String"},
					{ID: "attributes", Key: "attributes", Type: "Hash<String, ReadSettings>"},
					{ID: "mode", Key: "mode", Type: "String", Enum: []string{"FULL", "INCREMENTAL"}},
				},
			},
		},
	}
	if diff := cmp.Diff(want, c); diff != "" {
		t.Fatalf("patched catalog mismatch (-want +got):\n%s", diff)
	}
	if _, err := c.Registry(); err != nil {
		t.Fatalf("patched catalog should stay valid: %v", err)
	}
}

func TestPatchTransformer_Errors(t *testing.T) {
	cases := []struct {
		name  string
		patch string
		want  string
	}{
		{name: "missing model", patch: "models: {Nope: {description: x}}", want: `model "Nope" not found`},
		{name: "missing field", patch: "models: {ReadAttribute: {fields: {nope: {key: x}}}}", want: `field "nope" not found on model "ReadAttribute"`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			transformer, err := orchestrator.NewPatchTransformer([]byte(tc.patch))
			if err != nil {
				t.Fatalf("new transformer: %v", err)
			}
			err = transformer.Transform(context.Background(), decodeCatalog(t, operatorCatalog))
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error containing %q, got %v", tc.want, err)
			}
		})
	}

	if _, err := orchestrator.NewPatchTransformer([]byte("  \n")); err == nil {
		t.Fatalf("expected empty document error")
	}
	if _, err := orchestrator.NewPatchTransformer([]byte("models: [")); err == nil {
		t.Fatalf("expected parse error")
	}
	if _, err := orchestrator.NewPatchTransformerFromFS(fstest.MapFS{}, "missing.yaml"); err == nil {
		t.Fatalf("expected read error")
	}
}

func TestChain(t *testing.T) {
	var order []string
	step := func(name string) orchestrator.Transformer {
		return orchestrator.TransformerFunc(func(context.Context, *catalog.Catalog) error {
			order = append(order, name)
			return nil
		})
	}
	chain := orchestrator.Chain(step("first"), nil, step("second"))
	if err := chain.Transform(context.Background(), &catalog.Catalog{}); err != nil {
		t.Fatalf("transform: %v", err)
	}
	if diff := cmp.Diff([]string{"first", "second"}, order); diff != "" {
		t.Fatalf("unexpected order (-want +got):\n%s", diff)
	}
}

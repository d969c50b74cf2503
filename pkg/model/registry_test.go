package model

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDescriptor_Maps(t *testing.T) {
	reg := testRegistry(t)
	d, _ := reg.Lookup("ReadAttribute")

	wantAttrs := map[string]string{"fetch_size": "fetchSize", "is_distributed": "isDistributed"}
	if diff := cmp.Diff(wantAttrs, d.AttributeMap()); diff != "" {
		t.Fatalf("attribute map mismatch (-want +got):\n%s", diff)
	}

	types := d.TypeMap()
	if !types["fetch_size"].Equal(PrimitiveType(Integer)) || !types["is_distributed"].Equal(PrimitiveType(Boolean)) {
		t.Fatalf("unexpected type map: %v", types)
	}
	if diff := cmp.Diff([]string{"fetch_size", "is_distributed"}, d.FieldIDs()); diff != "" {
		t.Fatalf("field order mismatch (-want +got):\n%s", diff)
	}
	if f, ok := d.FieldByKey("fetchSize"); !ok || f.ID != "fetch_size" {
		t.Fatalf("FieldByKey(fetchSize) = %+v, %v", f, ok)
	}
}

func TestDescriptor_Validate(t *testing.T) {
	str := PrimitiveType(String)
	cases := []struct {
		name string
		desc *Descriptor
		want string
	}{
		{
			name: "missing name",
			desc: &Descriptor{},
			want: "name is required",
		},
		{
			name: "padded name",
			desc: &Descriptor{Name: " Port "},
			want: "surrounding whitespace",
		},
		{
			name: "duplicate id",
			desc: &Descriptor{Name: "X", Fields: []Field{
				{ID: "a", Key: "a", Type: str},
				{ID: "a", Key: "b", Type: str},
			}},
			want: "duplicate field id",
		},
		{
			name: "duplicate key",
			desc: &Descriptor{Name: "X", Fields: []Field{
				{ID: "a", Key: "k", Type: str},
				{ID: "b", Key: "k", Type: str},
			}},
			want: "duplicate wire key",
		},
		{
			name: "undeclared discriminator",
			desc: &Descriptor{Name: "X", Discriminator: &Discriminator{Field: "kind", Value: "A"}},
			want: "is not declared",
		},
		{
			name: "non string discriminator",
			desc: &Descriptor{
				Name:          "X",
				Fields:        []Field{{ID: "kind", Key: "kind", Type: PrimitiveType(Integer)}},
				Discriminator: &Discriminator{Field: "kind", Value: "A"},
			},
			want: "must be a String",
		},
		{
			name: "empty family",
			desc: &Descriptor{
				Name:   "X",
				Fields: []Field{{ID: "kind", Key: "kind", Type: str}},
				Family: &Family{Field: "kind"},
			},
			want: "no variants",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.desc.Validate()
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error containing %q, got %v", tc.want, err)
			}
		})
	}
}

func TestRegistry_RegisterRejectsDuplicates(t *testing.T) {
	reg := testRegistry(t)
	err := reg.Register(&Descriptor{Name: "InputPort"})
	if err == nil || !strings.Contains(err.Error(), "duplicate model") {
		t.Fatalf("expected duplicate model error, got %v", err)
	}
	if reg.Len() != len(testDescriptors()) {
		t.Fatalf("registry length changed: %d", reg.Len())
	}
}

func TestRegistry_ValidateCrossReferences(t *testing.T) {
	str := PrimitiveType(String)
	reg := NewRegistry().MustRegister(
		&Descriptor{Name: "Holder", Fields: []Field{{ID: "items", Key: "items", Type: SequenceOf(ModelType("Missing"))}}},
		&Descriptor{
			Name:   "Base",
			Fields: []Field{{ID: "kind", Key: "kind", Type: str}},
			Family: &Family{Field: "kind", Variants: map[string]string{"A": "VariantA", "B": "Ghost"}},
		},
		&Descriptor{
			Name:          "VariantA",
			Fields:        []Field{{ID: "kind", Key: "kind", Type: str}},
			Discriminator: &Discriminator{Field: "kind", Value: "WRONG"},
		},
	)

	err := reg.Validate()
	if err == nil {
		t.Fatalf("expected validation errors")
	}
	for _, want := range []string{`unknown model "Missing"`, `unknown model "Ghost"`, `must pin kind to "A"`} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("expected %q in %v", want, err)
		}
	}
}

func TestRegistry_Resolve(t *testing.T) {
	reg := testRegistry(t)

	cases := []struct {
		name    string
		model   string
		raw     map[string]any
		want    string
		variant string
		known   bool
	}{
		{name: "plain model", model: "InputPort", raw: map[string]any{}, want: "InputPort", known: true},
		{name: "read variant", model: "Operator", raw: map[string]any{"modelType": "READ_OPERATOR"}, want: "ReadOperator", variant: "READ_OPERATOR", known: true},
		{name: "write variant", model: "Operator", raw: map[string]any{"modelType": "WRITE_OPERATOR"}, want: "WriteOperator", variant: "WRITE_OPERATOR", known: true},
		{name: "unknown variant", model: "Operator", raw: map[string]any{"modelType": "NEW"}, want: "Operator", variant: "NEW"},
		{name: "identifier spelling is not a wire key", model: "Operator", raw: map[string]any{"model_type": "READ_OPERATOR"}, want: "Operator"},
		{name: "non string selector", model: "Operator", raw: map[string]any{"modelType": 3}, want: "Operator"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := reg.Resolve(tc.model, tc.raw)
			if err != nil {
				t.Fatalf("resolve: %v", err)
			}
			if res.Model.Name != tc.want || res.Variant != tc.variant || res.Known != tc.known {
				t.Fatalf("resolve = {%s %q %v}, want {%s %q %v}", res.Model.Name, res.Variant, res.Known, tc.want, tc.variant, tc.known)
			}
		})
	}

	if _, err := reg.Resolve("Nope", nil); !errors.Is(err, ErrUnknownModel) {
		t.Fatalf("expected ErrUnknownModel, got %v", err)
	}
}

func TestRegistry_Names(t *testing.T) {
	reg := testRegistry(t)
	want := []string{"DataEntity", "InputPort", "Operator", "Pipeline", "ReadAttribute", "ReadOperator", "WriteOperator"}
	if diff := cmp.Diff(want, reg.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
}

package model

import (
	"testing"

	"github.com/goliatone/go-modelmap/pkg/diag"
)

func operatorFields(extra ...Field) []Field {
	fields := []Field{
		{ID: "model_type", Key: "modelType", Type: PrimitiveType(String)},
		{ID: "key", Key: "key", Type: PrimitiveType(String)},
		{ID: "name", Key: "name", Type: PrimitiveType(String)},
		{ID: "input_ports", Key: "inputPorts", Type: SequenceOf(ModelType("InputPort"))},
	}
	return append(fields, extra...)
}

func testDescriptors() []*Descriptor {
	return []*Descriptor{
		{
			Name: "InputPort",
			Fields: []Field{
				{ID: "key", Key: "key", Type: PrimitiveType(String)},
				{ID: "name", Key: "name", Type: PrimitiveType(String)},
				Field{ID: "port_type", Key: "portType", Type: PrimitiveType(String)}.WithEnum("DATA", "CONTROL", "MODEL"),
				{ID: "fields", Key: "fields", Type: SequenceOf(PrimitiveType(String))},
				Field{ID: "categories", Key: "categories", Type: SequenceOf(PrimitiveType(String))}.WithEnum("SOURCE", "TARGET"),
			},
		},
		{
			Name: "ReadAttribute",
			Fields: []Field{
				{ID: "fetch_size", Key: "fetchSize", Type: PrimitiveType(Integer)},
				Field{ID: "is_distributed", Key: "isDistributed", Type: PrimitiveType(Boolean)}.WithDefault(false),
			},
		},
		{
			Name: "DataEntity",
			Fields: []Field{
				{ID: "key", Key: "key", Type: PrimitiveType(String)},
				Field{ID: "lifecycle_state", Key: "lifecycleState", Type: PrimitiveType(String)}.
					WithEnum("ACTIVE", "INACTIVE", "DELETING", "DELETED", "FAILED"),
				{ID: "time_created", Key: "timeCreated", Type: PrimitiveType(DateTime)},
				{ID: "date_observed", Key: "dateObserved", Type: PrimitiveType(Date)},
				{ID: "ratio", Key: "ratio", Type: PrimitiveType(Number)},
				{ID: "freeform_tags", Key: "freeformTags", Type: MappingOf(PrimitiveType(String))},
				{ID: "metadata", Key: "metadata", Type: PrimitiveType(Object)},
			},
		},
		{
			Name: "Operator",
			Family: &Family{
				Field: "model_type",
				Variants: map[string]string{
					"READ_OPERATOR":  "ReadOperator",
					"WRITE_OPERATOR": "WriteOperator",
				},
			},
			Fields: operatorFields(),
		},
		{
			Name:          "ReadOperator",
			Discriminator: &Discriminator{Field: "model_type", Value: "READ_OPERATOR"},
			Fields:        operatorFields(Field{ID: "read_attribute", Key: "readAttribute", Type: ModelType("ReadAttribute")}),
		},
		{
			Name:          "WriteOperator",
			Discriminator: &Discriminator{Field: "model_type", Value: "WRITE_OPERATOR"},
			Fields: operatorFields(
				Field{ID: "write_mode", Key: "writeMode", Type: PrimitiveType(String)}.WithEnum("APPEND", "OVERWRITE"),
			),
		},
		{
			Name: "Pipeline",
			Fields: []Field{
				{ID: "key", Key: "key", Type: PrimitiveType(String)},
				{ID: "operators", Key: "operators", Type: SequenceOf(ModelType("Operator"))},
				{ID: "entity", Key: "entity", Type: ModelType("DataEntity")},
				{ID: "ports_by_name", Key: "portsByName", Type: MappingOf(ModelType("InputPort"))},
			},
		},
	}
}

func testRegistry(t *testing.T) *Registry {
	t.Helper()
	reg := NewRegistry()
	for _, d := range testDescriptors() {
		if err := reg.Register(d); err != nil {
			t.Fatalf("register %s: %v", d.Name, err)
		}
	}
	if err := reg.Validate(); err != nil {
		t.Fatalf("validate registry: %v", err)
	}
	return reg
}

func testMapper(t *testing.T) (*Mapper, *diag.Collector) {
	t.Helper()
	collector := &diag.Collector{}
	return NewMapper(testRegistry(t), WithSink(collector)), collector
}

func mustHydrate(t *testing.T, m *Mapper, name string, raw map[string]any) *Record {
	t.Helper()
	rec, err := m.Hydrate(name, raw)
	if err != nil {
		t.Fatalf("hydrate %s: %v", name, err)
	}
	if rec == nil {
		t.Fatalf("hydrate %s returned nil record", name)
	}
	return rec
}

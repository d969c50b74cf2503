package model

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestRecord_SetErrors(t *testing.T) {
	m, _ := testMapper(t)
	rec := m.MustEmpty("InputPort")

	err := rec.Set("missing", "x")
	if !errors.Is(err, ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}

	err = rec.Set("fields", "not-a-list")
	if !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("expected ErrShapeMismatch, got %v", err)
	}
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) || cfgErr.Field != "fields" {
		t.Fatalf("expected ConfigError for fields, got %v", err)
	}
	if rec.IsAssigned("fields") {
		t.Fatalf("failed Set should not assign")
	}
}

func TestRecord_SetConvertsValues(t *testing.T) {
	m, collector := testMapper(t)
	rec := m.MustEmpty("ReadOperator")

	if err := rec.Set("input_ports", []map[string]any{{"key": "a"}}); err != nil {
		t.Fatalf("set input_ports: %v", err)
	}
	if ports := rec.GetNestedList("input_ports"); len(ports) != 1 || ports[0].Name() != "InputPort" {
		t.Fatalf("typed slices should hydrate into records, got %v", rec.ToMap())
	}

	port := m.MustEmpty("InputPort")
	if err := rec.Set("input_ports", []*Record{port}); err != nil {
		t.Fatalf("set records: %v", err)
	}
	if ports := rec.GetNestedList("input_ports"); len(ports) != 1 || ports[0] != port {
		t.Fatalf("records should be stored as given")
	}

	if err := port.Set("port_type", "WHATEVER"); err != nil {
		t.Fatalf("set port_type: %v", err)
	}
	if got, _ := port.GetString("port_type"); got != UnknownEnumValue {
		t.Fatalf("Set should coerce enums, got %q", got)
	}
	if len(collector.Diagnostics()) != 1 {
		t.Fatalf("expected one diagnostic, got %d", len(collector.Diagnostics()))
	}
}

func TestRecord_CloneIsDeep(t *testing.T) {
	m, _ := testMapper(t)
	original := populatedPipeline(t, m)

	clone := original.Clone()
	if !clone.Equal(original) {
		t.Fatalf("clone should equal original")
	}

	entity, _ := clone.GetNested("entity")
	if err := entity.Set("key", "changed"); err != nil {
		t.Fatalf("set: %v", err)
	}
	clone.GetMap("ports_by_name")["extra"] = nil

	originalEntity, _ := original.GetNested("entity")
	if key, _ := originalEntity.GetString("key"); key != "entity-1" {
		t.Fatalf("clone shares nested record with original")
	}
	if _, leaked := original.GetMap("ports_by_name")["extra"]; leaked {
		t.Fatalf("clone shares mapping storage with original")
	}
	if clone.Equal(original) {
		t.Fatalf("modified clone should differ")
	}
}

func TestRecord_EqualTreatsUnassignedAsNil(t *testing.T) {
	m, _ := testMapper(t)
	a := m.MustEmpty("InputPort")
	b := m.MustEmpty("InputPort")
	if err := b.Set("name", nil); err != nil {
		t.Fatalf("set: %v", err)
	}
	if !a.Equal(b) {
		t.Fatalf("unassigned and explicit nil should compare equal")
	}

	other := m.MustEmpty("ReadAttribute")
	if a.Equal(other) {
		t.Fatalf("records of different models must differ")
	}
	var nilRec *Record
	if a.Equal(nilRec) || !nilRec.Equal(nil) {
		t.Fatalf("nil record comparison is wrong")
	}
}

func TestRecord_MarshalJSON(t *testing.T) {
	m, _ := testMapper(t)
	rec, err := m.New("ReadAttribute", map[string]any{"fetch_size": 25})
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	payload, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(payload) != `{"fetchSize":25,"isDistributed":false}` {
		t.Fatalf("unexpected payload %s", payload)
	}

	var nilRec *Record
	payload, _ = json.Marshal(nilRec)
	if string(payload) != "null" {
		t.Fatalf("nil record should marshal as null, got %s", payload)
	}
}

func TestRecord_DiscriminatorIsPinned(t *testing.T) {
	m, _ := testMapper(t)
	rec := m.MustEmpty("ReadOperator")

	if err := rec.Set("model_type", "WRITE_OPERATOR"); !errors.Is(err, ErrPinnedDiscriminator) {
		t.Fatalf("expected ErrPinnedDiscriminator, got %v", err)
	}
	if err := rec.Set("model_type", "READ_OPERATOR"); err != nil {
		t.Fatalf("setting the literal should succeed: %v", err)
	}
	rec.Unset("model_type")
	if got, _ := rec.GetString("model_type"); got != "READ_OPERATOR" {
		t.Fatalf("model_type = %q after unset", got)
	}
}

type opaqueBlob struct {
	Label  string
	weight int
}

func TestRecord_EqualComparesOpaqueObjects(t *testing.T) {
	m, _ := testMapper(t)
	build := func(label string) *Record {
		rec, err := m.New("DataEntity", map[string]any{"metadata": opaqueBlob{Label: label, weight: 1}})
		if err != nil {
			t.Fatalf("new: %v", err)
		}
		return rec
	}

	if !build("x").Equal(build("x")) {
		t.Fatalf("records holding equal opaque values should compare equal")
	}
	if build("x").Equal(build("y")) {
		t.Fatalf("records holding different opaque values should differ")
	}
}

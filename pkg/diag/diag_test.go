package diag

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
)

func TestTee_FansOutAndSkipsNil(t *testing.T) {
	var a, b Collector
	sink := Tee(&a, nil, &b)

	sink.Report(Diagnostic{Kind: KindUnknownEnum, Model: "DataEntity", Field: "lifecycle_state"})

	if a.Count(KindUnknownEnum) != 1 || b.Count(KindUnknownEnum) != 1 {
		t.Fatalf("expected both collectors to receive the diagnostic, got %d and %d",
			a.Count(KindUnknownEnum), b.Count(KindUnknownEnum))
	}
	if Tee() != Discard {
		t.Fatalf("expected empty tee to discard")
	}
	if Tee(&a) != Sink(&a) {
		t.Fatalf("expected single sink tee to return the sink itself")
	}
}

func TestCollector_Reset(t *testing.T) {
	var c Collector
	c.Report(Diagnostic{Kind: KindShapeMismatch})
	c.Report(Diagnostic{Kind: KindUnknownSubtype})
	if got := len(c.Diagnostics()); got != 2 {
		t.Fatalf("expected 2 diagnostics, got %d", got)
	}
	c.Reset()
	if got := len(c.Diagnostics()); got != 0 {
		t.Fatalf("expected empty collector after reset, got %d", got)
	}
}

func TestLogrusSink_WritesStructuredEntry(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetFormatter(&logrus.JSONFormatter{})

	NewLogrusSink(logger).Report(Diagnostic{
		Kind:    KindUnknownEnum,
		Model:   "DataEntity",
		Field:   "lifecycle_state",
		Value:   "SOME_FUTURE_STATE",
		Message: "unknown enum value",
	})

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("decode log entry: %v (%s)", err, buf.String())
	}
	if entry["level"] != "warning" {
		t.Fatalf("level = %v, want warning", entry["level"])
	}
	if entry["kind"] != "unknown_enum" || entry["model"] != "DataEntity" || entry["field"] != "lifecycle_state" {
		t.Fatalf("unexpected fields: %#v", entry)
	}
	if entry["value"] != "SOME_FUTURE_STATE" {
		t.Fatalf("value = %v", entry["value"])
	}
}

func TestMetrics_CountsByKindAndModel(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics, err := NewMetrics(reg)
	if err != nil {
		t.Fatalf("new metrics: %v", err)
	}

	metrics.Report(Diagnostic{Kind: KindUnknownEnum, Model: "DataEntity"})
	metrics.Report(Diagnostic{Kind: KindUnknownEnum, Model: "DataEntity"})
	metrics.Report(Diagnostic{Kind: KindShapeMismatch, Model: "Operator"})

	if got := testutil.ToFloat64(metrics.Counter(KindUnknownEnum, "DataEntity")); got != 2 {
		t.Fatalf("unknown_enum counter = %v, want 2", got)
	}
	if got := testutil.ToFloat64(metrics.Counter(KindShapeMismatch, "Operator")); got != 1 {
		t.Fatalf("shape_mismatch counter = %v, want 1", got)
	}

	again, err := NewMetrics(reg)
	if err != nil {
		t.Fatalf("re-register metrics: %v", err)
	}
	again.Report(Diagnostic{Kind: KindUnknownEnum, Model: "DataEntity"})
	if got := testutil.ToFloat64(metrics.Counter(KindUnknownEnum, "DataEntity")); got != 3 {
		t.Fatalf("expected shared collector after re-registration, got %v", got)
	}
}

func TestDiagnosticString(t *testing.T) {
	d := Diagnostic{Kind: KindUnknownSubtype, Model: "Operator", Value: "FUTURE"}
	if got := d.String(); got != "unknown_subtype Operator: FUTURE" {
		t.Fatalf("String() = %q", got)
	}
	d.Field = "model_type"
	d.Message = "no variant"
	if got := d.String(); got != "unknown_subtype Operator.model_type: no variant" {
		t.Fatalf("String() = %q", got)
	}
}

// Package diag carries the non-fatal diagnostics produced while mapping raw
// payloads onto models. Mapping never fails on unknown enum tokens, malformed
// array shapes or unrecognised subtypes; it reports them to a Sink instead.
package diag

import (
	"fmt"
	"sync"
)

// Kind classifies a diagnostic.
type Kind string

const (
	// KindUnknownEnum marks a value that was not in the allowed token set and
	// was replaced by the unknown sentinel.
	KindUnknownEnum Kind = "unknown_enum"
	// KindShapeMismatch marks a container field whose input had the wrong
	// shape (e.g. a scalar where a sequence was declared). The field is skipped.
	KindShapeMismatch Kind = "shape_mismatch"
	// KindUnknownSubtype marks a discriminator value with no registered
	// variant. Hydration falls back to the polymorphic base.
	KindUnknownSubtype Kind = "unknown_subtype"
)

// Diagnostic describes a single degraded mapping decision.
type Diagnostic struct {
	Kind    Kind
	Model   string
	Field   string
	Value   any
	Message string
}

// String renders the diagnostic for logs and CLI summaries.
func (d Diagnostic) String() string {
	target := d.Model
	if d.Field != "" {
		target += "." + d.Field
	}
	if d.Message == "" {
		return fmt.Sprintf("%s %s: %v", d.Kind, target, d.Value)
	}
	return fmt.Sprintf("%s %s: %s", d.Kind, target, d.Message)
}

// Sink receives diagnostics. Implementations must be safe for concurrent use
// when shared between mappers.
type Sink interface {
	Report(d Diagnostic)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(Diagnostic)

// Report calls f(d).
func (f SinkFunc) Report(d Diagnostic) {
	if f != nil {
		f(d)
	}
}

type discard struct{}

func (discard) Report(Diagnostic) {}

// Discard drops every diagnostic.
var Discard Sink = discard{}

type tee []Sink

func (t tee) Report(d Diagnostic) {
	for _, sink := range t {
		sink.Report(d)
	}
}

// Tee fans a diagnostic out to every non-nil sink in order.
func Tee(sinks ...Sink) Sink {
	out := make(tee, 0, len(sinks))
	for _, sink := range sinks {
		if sink != nil {
			out = append(out, sink)
		}
	}
	switch len(out) {
	case 0:
		return Discard
	case 1:
		return out[0]
	default:
		return out
	}
}

// Collector records diagnostics in memory.
type Collector struct {
	mu    sync.Mutex
	items []Diagnostic
}

// Report appends d.
func (c *Collector) Report(d Diagnostic) {
	c.mu.Lock()
	c.items = append(c.items, d)
	c.mu.Unlock()
}

// Diagnostics returns a copy of everything reported so far.
func (c *Collector) Diagnostics() []Diagnostic {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Diagnostic(nil), c.items...)
}

// Count returns how many diagnostics of the given kind were reported.
func (c *Collector) Count(kind Kind) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, item := range c.items {
		if item.Kind == kind {
			n++
		}
	}
	return n
}

// Reset clears the collector.
func (c *Collector) Reset() {
	c.mu.Lock()
	c.items = nil
	c.mu.Unlock()
}

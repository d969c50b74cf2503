package diag

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts diagnostics by kind and model.
type Metrics struct {
	total *prometheus.CounterVec
}

// NewMetrics registers the diagnostic counter on reg. A nil registerer uses
// prometheus.DefaultRegisterer. Registering twice on the same registry reuses
// the existing collector.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	total := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "modelmap",
		Name:      "diagnostics_total",
		Help:      "Non-fatal mapping diagnostics by kind and model.",
	}, []string{"kind", "model"})

	if err := reg.Register(total); err != nil {
		var already prometheus.AlreadyRegisteredError
		if !errors.As(err, &already) {
			return nil, err
		}
		existing, ok := already.ExistingCollector.(*prometheus.CounterVec)
		if !ok {
			return nil, err
		}
		total = existing
	}
	return &Metrics{total: total}, nil
}

// Report increments the counter for d.
func (m *Metrics) Report(d Diagnostic) {
	if m == nil {
		return
	}
	m.total.WithLabelValues(string(d.Kind), d.Model).Inc()
}

// Counter exposes the labelled counter, mainly for tests.
func (m *Metrics) Counter(kind Kind, model string) prometheus.Counter {
	return m.total.WithLabelValues(string(kind), model)
}

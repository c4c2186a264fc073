// Package metrics defines the domain Prometheus metrics of the records API.
// HTTP request metrics come from the echoprometheus middleware; this package
// only covers what the middleware cannot see.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/recordhub/records-api/internal/core/domain"
)

const namespace = "records"

// Operation labels.
const (
	OpCreate = "create"
	OpUpdate = "update"
	OpDelete = "delete"
)

type Metrics struct {
	// MutationsTotal counts successful writes.
	// Labels:
	//   - resource: "user", "order" or "offer"
	//   - operation: "create", "update" or "delete"
	MutationsTotal *prometheus.CounterVec

	// FailuresTotal counts requests that ended in an error response.
	// Labels:
	//   - resource: the resource involved, "none" for router errors
	//   - kind: "not_found", "malformed_input", "duplicate_key", "store_failure", "http"
	FailuresTotal *prometheus.CounterVec
}

// New registers the metrics with reg. Each registerer can only hold one set.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		MutationsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "mutations_total",
				Help:      "Total number of records created, updated or deleted.",
			},
			[]string{"resource", "operation"},
		),
		FailuresTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "failures_total",
				Help:      "Total number of failed requests, by resource and error kind.",
			},
			[]string{"resource", "kind"},
		),
	}
}

func (m *Metrics) RecordMutation(resource domain.Resource, operation string) {
	m.MutationsTotal.WithLabelValues(string(resource), operation).Inc()
}

func (m *Metrics) RecordFailure(resource domain.Resource, kind string) {
	if resource == "" {
		resource = "none"
	}
	m.FailuresTotal.WithLabelValues(string(resource), kind).Inc()
}

// Package prompush implements a Prometheus Pushgateway backend for the
// metrics package.
//
// It adapts the generic metrics.Backend interface to Prometheus by:
//
//   - Using client_golang CounterVec and SummaryVec collectors on a private
//     registry.
//   - Mapping the pipeline labels (step, status, kind) onto Prometheus
//     labels, with the job name used as the Pushgateway grouping key.
//   - Pushing on Flush instead of exposing a scrape endpoint, since the
//     flights binary is a short-lived batch process.
//
// All Prometheus-specific dependencies stay in this package so the rest of
// the project can swap backends without changes.
package prompush

import (
	"fmt"

	"flights/internal/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

// Backend is a Prometheus Pushgateway metrics backend.
type Backend struct {
	gatewayURL string // e.g. http://pushgateway:9091
	jobName    string // Pushgateway "job" group
	reg        *prometheus.Registry

	stepCounter  *prometheus.CounterVec // "flights_step_total"
	stepDuration *prometheus.SummaryVec // "flights_step_duration_seconds"
	rowCounter   *prometheus.CounterVec // "flights_rows_total"
	queryCounter prometheus.Counter     // "flights_queries_total"
}

// NewBackend constructs a Pushgateway backend. jobName becomes the
// Pushgateway "job" grouping; gatewayURL is the base URL and is required.
func NewBackend(jobName, gatewayURL string) (*Backend, error) {
	if gatewayURL == "" {
		return nil, fmt.Errorf("prompush: gateway URL is required")
	}
	if jobName == "" {
		jobName = "flights"
	}

	reg := prometheus.NewRegistry()

	stepCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "flights_step_total",
			Help: "Total pipeline step executions, partitioned by step and status.",
		},
		[]string{"step", "status"},
	)
	stepDuration := prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name:       "flights_step_duration_seconds",
			Help:       "Duration of pipeline steps in seconds, partitioned by step and status.",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
		},
		[]string{"step", "status"},
	)
	rowCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "flights_rows_total",
			Help: "Row-level counts per kind (valid, rejected).",
		},
		[]string{"kind"},
	)
	queryCounter := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "flights_queries_total",
			Help: "Total queries executed against the canonical record set.",
		},
	)

	if err := reg.Register(stepCounter); err != nil {
		return nil, fmt.Errorf("prompush: register step counter: %w", err)
	}
	if err := reg.Register(stepDuration); err != nil {
		return nil, fmt.Errorf("prompush: register step summary: %w", err)
	}
	if err := reg.Register(rowCounter); err != nil {
		return nil, fmt.Errorf("prompush: register row counter: %w", err)
	}
	if err := reg.Register(queryCounter); err != nil {
		return nil, fmt.Errorf("prompush: register query counter: %w", err)
	}

	return &Backend{
		gatewayURL:   gatewayURL,
		jobName:      jobName,
		reg:          reg,
		stepCounter:  stepCounter,
		stepDuration: stepDuration,
		rowCounter:   rowCounter,
		queryCounter: queryCounter,
	}, nil
}

// IncCounter implements metrics.Backend.IncCounter by dispatching on the
// metric name. Unknown names are ignored.
func (b *Backend) IncCounter(name string, delta float64, labels metrics.Labels) {
	switch name {
	case "flights_step_total":
		if b.stepCounter == nil {
			return
		}
		b.stepCounter.WithLabelValues(labels["step"], labels["status"]).Add(delta)

	case "flights_rows_total":
		if b.rowCounter == nil {
			return
		}
		b.rowCounter.WithLabelValues(labels["kind"]).Add(delta)

	case "flights_queries_total":
		if b.queryCounter == nil {
			return
		}
		b.queryCounter.Add(delta)
	}
}

// ObserveHistogram implements metrics.Backend.ObserveHistogram for the step
// duration summary; other names are ignored.
func (b *Backend) ObserveHistogram(name string, value float64, labels metrics.Labels) {
	if name != "flights_step_duration_seconds" || b.stepDuration == nil {
		return
	}
	b.stepDuration.WithLabelValues(labels["step"], labels["status"]).Observe(value)
}

// Flush pushes the current registry to the Pushgateway.
func (b *Backend) Flush() error {
	return push.New(b.gatewayURL, b.jobName).
		Gatherer(b.reg).
		Push()
}

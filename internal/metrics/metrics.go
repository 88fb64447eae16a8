// Package metrics provides a small, backend-agnostic abstraction for
// recording operational metrics from the flight pipeline.
//
// The package is intentionally minimal:
//
//   - It exposes a narrow interface (Backend) focused on counters and
//     duration observations.
//   - It holds a global, pluggable backend defaulting to a no-op, so metric
//     calls are always safe even when no real backend is configured.
//   - Concrete metric systems (Prometheus Pushgateway, Datadog) live in
//     subpackages; the rest of the codebase depends only on this interface.
//
// Instrumented points are the ingest and query phases: rows accepted or
// rejected, queries executed, and per-step durations.
package metrics

import "time"

// Labels are string key/value pairs attached to a metric.
type Labels map[string]string

// Backend is the minimal interface for metrics backends.
type Backend interface {
	// IncCounter increments a counter by delta.
	IncCounter(name string, delta float64, labels Labels)
	// ObserveHistogram records a value in a duration-style metric.
	ObserveHistogram(name string, value float64, labels Labels)
	// Flush pushes or flushes metrics if the backend needs it.
	Flush() error
}

// nopBackend is used by default so metrics stay optional.
type nopBackend struct{}

func (nopBackend) IncCounter(name string, delta float64, labels Labels)       {}
func (nopBackend) ObserveHistogram(name string, value float64, labels Labels) {}
func (nopBackend) Flush() error                                               { return nil }

var backend Backend = nopBackend{}

// SetBackend installs a concrete backend. Passing nil keeps the existing one.
func SetBackend(b Backend) {
	if b == nil {
		return
	}
	backend = b
}

// Flush delegates to the current backend.
func Flush() error {
	return backend.Flush()
}

// RecordStep measures one pipeline step: latency plus success/failure.
// Typical steps: "build" (parse or snapshot load) and "query".
func RecordStep(job, step string, err error, d time.Duration) {
	status := "success"
	if err != nil {
		status = "failure"
	}

	lbls := Labels{
		"job":    job,
		"step":   step,
		"status": status,
	}

	backend.IncCounter("flights_step_total", 1, lbls)
	backend.ObserveHistogram("flights_step_duration_seconds", d.Seconds(), lbls)
}

// RecordRows increments the row counter for the given kind.
//
// Kinds mirror the ingest outcomes:
//   - "valid"    rows accepted into the canonical set
//   - "rejected" rows excluded with defects (comment entries included)
func RecordRows(job, kind string, delta int64) {
	if delta <= 0 {
		return
	}
	backend.IncCounter("flights_rows_total", float64(delta), Labels{
		"job":  job,
		"kind": kind,
	})
}

// RecordQueries increments the executed-query counter.
func RecordQueries(job string, delta int64) {
	if delta <= 0 {
		return
	}
	backend.IncCounter("flights_queries_total", float64(delta), Labels{
		"job": job,
	})
}

// Package config models the command-line run options for the flights binary
// and provides a static linter over them.
//
// The model is intentionally small, explicit, and dependency-free: options
// arrive from stdlib flag parsing (or tests) and pass through the program
// without additional glue code. Validation does not mutate anything; it
// returns a list of issues the caller can surface, so argument-contract
// decisions (exit codes, usage output) stay in the command layer.
package config

import "fmt"

// Options describes one run of the flights tool.
type Options struct {
	// Input is a path to a single CSV file of flights.
	Input string

	// Dir is a path to a directory of CSV files, ingested in lexicographic
	// filename order. Mutually exclusive with Input.
	Dir string

	// Snapshot loads an existing JSON record snapshot instead of parsing CSV.
	// Mutually exclusive with both Input and Dir.
	Snapshot string

	// Output overrides the snapshot path written after parsing
	// (default db.json); the error report is written beside it.
	Output string

	// Query is a path to a query JSON file; when set, the query phase runs
	// after the record set is built.
	Query string

	// Ident overrides the identity token in the response filename.
	Ident string

	// MetricsBackend selects the metrics sink: "pushgateway", "datadog",
	// or "none".
	MetricsBackend string

	// PushGatewayURL is the Prometheus Pushgateway base URL.
	PushGatewayURL string

	// DogStatsDAddr is the DogStatsD address, e.g. "127.0.0.1:8125".
	DogStatsDAddr string
}

// IssueSeverity represents the severity of an options issue.
type IssueSeverity string

const (
	// SeverityError indicates a contract violation that should block the run.
	SeverityError IssueSeverity = "error"
	// SeverityWarning indicates something worth surfacing that does not block.
	SeverityWarning IssueSeverity = "warning"
)

// Issue describes a single validation finding. Path names the offending
// option; Message is human-readable.
type Issue struct {
	Severity IssueSeverity
	Path     string
	Message  string
}

// Error implements the error interface so an Issue can be treated as a
// single error where convenient.
func (i Issue) Error() string {
	return fmt.Sprintf("%s at %s: %s", i.Severity, i.Path, i.Message)
}

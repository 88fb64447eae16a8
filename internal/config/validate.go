package config

// ValidateOptions performs static validation of run options. It returns a
// slice of issues; callers decide whether warnings block execution.
//
// The contract: exactly one way of obtaining a record set must be selected
// (a CSV file, a CSV directory, or an existing snapshot), and
// snapshot-loading excludes parsing entirely.
func ValidateOptions(o Options) []Issue {
	var issues []Issue

	sources := 0
	if o.Input != "" {
		sources++
	}
	if o.Dir != "" {
		sources++
	}

	switch {
	case o.Snapshot != "" && sources > 0:
		issues = append(issues, Issue{
			Severity: SeverityError,
			Path:     "snapshot",
			Message:  "use either -snapshot or -input/-dir, not both",
		})
	case o.Snapshot == "" && sources == 0:
		issues = append(issues, Issue{
			Severity: SeverityError,
			Path:     "input",
			Message:  "one of -input, -dir, or -snapshot is required",
		})
	}

	if sources == 2 {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Path:     "input",
			Message:  "-input and -dir are mutually exclusive",
		})
	}

	if o.Ident != "" && o.Query == "" {
		issues = append(issues, Issue{
			Severity: SeverityWarning,
			Path:     "ident",
			Message:  "-ident has no effect without -q; it only names the query response file",
		})
	}
	if o.Output != "" && o.Snapshot != "" {
		issues = append(issues, Issue{
			Severity: SeverityWarning,
			Path:     "o",
			Message:  "-o is ignored when loading a snapshot; nothing is written",
		})
	}

	switch o.MetricsBackend {
	case "", "none", "pushgateway", "datadog":
	default:
		issues = append(issues, Issue{
			Severity: SeverityWarning,
			Path:     "metrics-backend",
			Message:  "unknown metrics backend " + o.MetricsBackend + "; metrics will be disabled",
		})
	}

	return issues
}

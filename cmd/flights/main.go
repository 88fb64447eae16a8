// Command flights ingests flight records from delimited text files,
// validates them into a canonical JSON snapshot, and optionally answers
// structured queries against the record set.
//
// Exactly one record-set source must be selected: -input (one CSV file),
// -dir (a directory of CSV files), or -snapshot (a previously written JSON
// snapshot, loaded without re-parsing). When parsing, the snapshot is
// written to -o (default db.json) with an errors.txt report beside it. With
// -q, the query phase runs afterwards and writes a response file named from
// an identity token and the generation timestamp.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"flights/internal/config"
	"flights/internal/ingest"
	"flights/internal/metrics"
	"flights/internal/metrics/datadog"
	"flights/internal/metrics/prompush"
	"flights/internal/query"
	"flights/internal/respname"
	"flights/internal/schema"
	"flights/internal/store"
)

const job = "flights"

func main() {
	var opts config.Options

	flag.StringVar(&opts.Input, "input", "", "path to a CSV file with flights")
	flag.StringVar(&opts.Dir, "dir", "", "path to a directory of CSV files")
	flag.StringVar(&opts.Snapshot, "snapshot", "", "load an existing JSON snapshot instead of parsing CSV")
	flag.StringVar(&opts.Output, "o", "", "output JSON path for valid flights (default db.json)")
	flag.StringVar(&opts.Query, "q", "", "path to a query JSON file")
	flag.StringVar(&opts.Ident, "ident", "", "identity token override for the response filename")
	flag.StringVar(&opts.MetricsBackend, "metrics-backend", "", "metrics backend to use (pushgateway, datadog, none)")
	flag.StringVar(&opts.PushGatewayURL, "pushgateway-url", "", "Pushgateway base URL (overrides env PUSHGATEWAY_URL)")
	flag.StringVar(&opts.DogStatsDAddr, "dogstatsd-addr", "", "DogStatsD address (overrides env DOGSTATSD_ADDR)")
	verbose := flag.Bool("v", false, "enable verbose logs")

	flag.Parse()

	issues := config.ValidateOptions(opts)
	hasError := false
	for _, iss := range issues {
		fmt.Fprintf(os.Stderr, "%s: %s: %s\n", iss.Severity, iss.Path, iss.Message)
		if iss.Severity == config.SeverityError {
			hasError = true
		}
	}
	if hasError {
		if opts.Input == "" && opts.Dir == "" && opts.Snapshot == "" {
			flag.Usage()
		}
		os.Exit(1)
	}

	setupMetrics(opts, *verbose)
	defer func() {
		if err := metrics.Flush(); err != nil {
			log.Printf("metrics: flush error: %v", err)
		}
	}()

	ctx := context.Background()
	start := time.Now()

	db, buildErr := buildRecordSet(ctx, opts)
	metrics.RecordStep(job, "build", buildErr, time.Since(start))

	if opts.Query != "" {
		qStart := time.Now()
		err := runQueries(db, opts)
		metrics.RecordStep(job, "query", err, time.Since(qStart))
		if err != nil {
			metrics.Flush()
			fatalf("%v", err)
		}
	}

	if *verbose {
		log.Printf("completed in %s", time.Since(start).Truncate(time.Millisecond))
	}
}

// buildRecordSet loads or parses the canonical record set and, when parsing,
// writes the snapshot and error report. Source-access failures are reported
// and leave the set empty rather than aborting; only write failures are
// fatal here.
func buildRecordSet(ctx context.Context, opts config.Options) ([]schema.FlightRecord, error) {
	if opts.Snapshot != "" {
		recs, err := store.LoadRecords(opts.Snapshot)
		if err != nil {
			log.Printf("snapshot: %v", err)
		}
		if len(recs) == 0 {
			log.Printf("no flights loaded from snapshot %s", opts.Snapshot)
		}
		return recs, err
	}

	var res ingest.Result
	var err error
	if opts.Input != "" {
		res, err = ingest.File(ctx, opts.Input)
	} else {
		res, err = ingest.Dir(ctx, opts.Dir)
	}
	if err != nil {
		// Proceed with whatever was ingested; an empty set is still written.
		log.Printf("ingest: %v", err)
	}

	metrics.RecordRows(job, "valid", int64(len(res.Records)))
	metrics.RecordRows(job, "rejected", int64(len(res.ErrorLines)))

	outPath := opts.Output
	if outPath == "" {
		outPath = "db.json"
	}
	errPath := filepath.Join(filepath.Dir(outPath), "errors.txt")

	if werr := store.SaveRecords(outPath, res.Records); werr != nil {
		fatalf("write snapshot: %v", werr)
	}
	log.Printf("saved %d valid flights to %s", len(res.Records), outPath)

	if werr := store.WriteErrorReport(errPath, res.ErrorLines); werr != nil {
		fatalf("write error report: %v", werr)
	}
	log.Printf("saved error report to %s", errPath)

	return res.Records, err
}

// runQueries executes the query phase against the built record set.
func runQueries(db []schema.FlightRecord, opts config.Options) error {
	if len(db) == 0 {
		return fmt.Errorf("no database loaded to run queries on")
	}

	queries, err := store.LoadQueries(opts.Query)
	if err != nil {
		log.Printf("query file: %v", err)
	}
	if len(queries) == 0 {
		return fmt.Errorf("no valid queries loaded")
	}

	results := query.Run(db, queries)
	metrics.RecordQueries(job, int64(len(queries)))

	name := respname.Build(respname.IdentToken(opts.Ident, opts.Query), time.Now())
	if err := store.SaveResponses(name, results); err != nil {
		return fmt.Errorf("write responses: %w", err)
	}
	log.Printf("saved query responses to %s", name)
	return nil
}

// setupMetrics installs the selected metrics backend. Resolution order for
// each setting: flag, then environment, then default (disabled).
func setupMetrics(opts config.Options, verbose bool) {
	backendName := opts.MetricsBackend
	if backendName == "" {
		backendName = os.Getenv("METRICS_BACKEND")
	}

	switch backendName {
	case "pushgateway":
		gwURL := opts.PushGatewayURL
		if gwURL == "" {
			gwURL = os.Getenv("PUSHGATEWAY_URL")
		}
		if gwURL == "" {
			gwURL = "http://localhost:9091"
		}
		b, err := prompush.NewBackend(job, gwURL)
		if err != nil {
			log.Printf("metrics: failed to init pushgateway backend: %v; using nop", err)
			return
		}
		if verbose {
			log.Printf("metrics: backend=pushgateway url=%s", gwURL)
		}
		metrics.SetBackend(b)

	case "datadog":
		addr := opts.DogStatsDAddr
		if addr == "" {
			addr = os.Getenv("DOGSTATSD_ADDR")
		}
		if addr == "" {
			addr = "127.0.0.1:8125"
		}
		b, err := datadog.NewBackend(datadog.Config{Addr: addr, Namespace: "flights."})
		if err != nil {
			log.Printf("metrics: failed to init datadog backend: %v; using nop", err)
			return
		}
		if verbose {
			log.Printf("metrics: backend=datadog addr=%s", addr)
		}
		metrics.SetBackend(b)

	case "", "none":
		if verbose {
			log.Printf("metrics: disabled")
		}

	default:
		log.Printf("metrics: unknown backend %q; metrics disabled", backendName)
	}
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}

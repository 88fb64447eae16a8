// Package store reads and writes the flat JSON artifacts at the pipeline
// boundary: the canonical record snapshot, query batches, query responses,
// and the plain-text error report. Snapshots are complete dumps; writing one
// replaces any previous file, never merges.
package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"flights/internal/query"
	"flights/internal/schema"
)

// NoErrorsLine is the single line written to an error report when every row
// validated cleanly.
const NoErrorsLine = "No errors found."

// SaveRecords writes the full record set to path as an indented JSON array,
// creating parent directories as needed. An empty set serializes as [].
func SaveRecords(path string, recs []schema.FlightRecord) error {
	if recs == nil {
		recs = []schema.FlightRecord{}
	}
	return writeJSON(path, recs)
}

// LoadRecords reads a snapshot written by SaveRecords. Records are trusted
// verbatim; they are not re-validated. A structurally invalid file (not a
// JSON array of record objects) is an error.
func LoadRecords(path string) ([]schema.FlightRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var recs []schema.FlightRecord
	if err := json.Unmarshal(data, &recs); err != nil {
		return nil, fmt.Errorf("snapshot %s: %w", path, err)
	}
	return recs, nil
}

// LoadQueries reads a query file holding either a single JSON object or an
// array of objects; the single-object form is returned as a one-element
// batch. Any other top-level shape is an error.
func LoadQueries(path string) ([]query.Query, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch firstByte(data) {
	case '{':
		var q query.Query
		if err := json.Unmarshal(data, &q); err != nil {
			return nil, fmt.Errorf("query file %s: %w", path, err)
		}
		return []query.Query{q}, nil
	case '[':
		var qs []query.Query
		if err := json.Unmarshal(data, &qs); err != nil {
			return nil, fmt.Errorf("query file %s: %w", path, err)
		}
		return qs, nil
	default:
		return nil, fmt.Errorf("query file %s: must contain an object or a list of objects", path)
	}
}

// SaveResponses writes the query results to path as an indented JSON array
// of {query, matches} pairs.
func SaveResponses(path string, results []query.Result) error {
	if results == nil {
		results = []query.Result{}
	}
	return writeJSON(path, results)
}

// WriteErrorReport writes one line per report entry, or the literal
// NoErrorsLine when there were none.
func WriteErrorReport(path string, lines []string) error {
	var buf bytes.Buffer
	if len(lines) == 0 {
		buf.WriteString(NoErrorsLine + "\n")
	} else {
		for _, l := range lines {
			buf.WriteString(l + "\n")
		}
	}
	if err := ensureDir(path); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

func writeJSON(path string, v any) error {
	if err := ensureDir(path); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

// firstByte returns the first non-whitespace byte of data, or 0.
func firstByte(data []byte) byte {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 {
		return 0
	}
	return trimmed[0]
}

// Package ingest reads delimited flight sources line by line, runs each data
// row through the validator, and accumulates normalized records alongside a
// human-readable error report. It never aborts on bad rows: rejected rows
// become report entries and the scan continues.
package ingest

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"flights/internal/schema"
	"flights/internal/validate"
)

// Delimiter is the fixed field separator for flight sources.
const Delimiter = ","

// headerPrefix identifies an optional header on the first physical line,
// matched case-insensitively.
const headerPrefix = "flight_id,origin,destination"

// Result is the outcome of ingesting one source: the accepted records in
// input order and one report entry per rejected or ignored row. Line numbers
// in entries are local to the source.
type Result struct {
	Records    []schema.FlightRecord
	ErrorLines []string
}

// Ingest scans one source. Per physical line (1-based):
//   - whitespace-only lines are skipped silently;
//   - line 1 is skipped without an entry when it looks like the header;
//   - lines whose trimmed text starts with "#" produce an informational
//     entry and are not parsed;
//   - everything else is split on the delimiter and validated.
//
// A read error mid-stream is returned along with whatever was accumulated
// before it.
func Ingest(r io.Reader) (Result, error) {
	var res Result

	sc := bufio.NewScanner(normalizeReader(r))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for lineNum := 1; sc.Scan(); lineNum++ {
		line := strings.TrimRight(sc.Text(), "\r")
		trimmed := strings.TrimSpace(line)

		if trimmed == "" {
			continue
		}
		if lineNum == 1 && strings.HasPrefix(strings.ToLower(trimmed), headerPrefix) {
			continue
		}
		if strings.HasPrefix(trimmed, "#") {
			res.ErrorLines = append(res.ErrorLines,
				fmt.Sprintf("Line %d: %s → comment line, ignored for data parsing", lineNum, line))
			continue
		}

		fields := strings.Split(line, Delimiter)
		for i, f := range fields {
			fields[i] = strings.TrimSpace(f)
		}

		rec, defects := validate.Validate(fields)
		if len(defects) == 0 {
			res.Records = append(res.Records, rec)
			continue
		}
		res.ErrorLines = append(res.ErrorLines,
			fmt.Sprintf("Line %d: %s → %s", lineNum, line, strings.Join(defects, ", ")))
	}
	if err := sc.Err(); err != nil {
		return res, fmt.Errorf("read source: %w", err)
	}
	return res, nil
}

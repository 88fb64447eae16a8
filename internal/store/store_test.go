package store

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"flights/internal/query"
	"flights/internal/schema"
)

var sampleRecords = []schema.FlightRecord{
	{FlightID: "AB12", Origin: "JFK", Destination: "LAX", DepartureDateTime: "2024-03-01 10:00", ArrivalDateTime: "2024-03-01 14:00", Price: 250.5},
	{FlightID: "XY99", Origin: "AMS", Destination: "RIX", DepartureDateTime: "2024-04-02 08:30", ArrivalDateTime: "2024-04-02 11:05", Price: 99.99},
}

func TestRecords_RoundTrip(t *testing.T) {
	t.Parallel()

	// Nested path exercises parent directory creation.
	path := filepath.Join(t.TempDir(), "out", "db.json")
	if err := SaveRecords(path, sampleRecords); err != nil {
		t.Fatalf("SaveRecords: %v", err)
	}
	got, err := LoadRecords(path)
	if err != nil {
		t.Fatalf("LoadRecords: %v", err)
	}
	if !reflect.DeepEqual(got, sampleRecords) {
		t.Fatalf("round trip changed records: %+v", got)
	}
}

func TestSaveRecords_EmptySetIsArray(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "db.json")
	if err := SaveRecords(path, nil); err != nil {
		t.Fatalf("SaveRecords: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(string(data)); got != "[]" {
		t.Fatalf("empty snapshot=%q; want []", got)
	}
}

func TestLoadRecords_Malformed(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "db.json")
	if err := os.WriteFile(path, []byte(`{"not":"a list"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadRecords(path); err == nil {
		t.Fatal("LoadRecords on a non-array file: err=nil; want error")
	}
}

func TestLoadQueries_Shapes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		body    string
		want    int
		wantErr bool
	}{
		{"single object", `{"origin": "JFK", "price": 300}`, 1, false},
		{"list of objects", `[{"origin": "JFK"}, {}]`, 2, false},
		{"empty list", `[]`, 0, false},
		{"scalar", `42`, 0, true},
		{"truncated", `[{"origin": "JFK"`, 0, true},
		{"empty file", ``, 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "q.json")
			if err := os.WriteFile(path, []byte(tc.body), 0o644); err != nil {
				t.Fatal(err)
			}
			qs, err := LoadQueries(path)
			if (err != nil) != tc.wantErr {
				t.Fatalf("err=%v; wantErr=%v", err, tc.wantErr)
			}
			if len(qs) != tc.want {
				t.Fatalf("queries=%d; want %d", len(qs), tc.want)
			}
		})
	}
}

func TestLoadQueries_SingleObjectValues(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "q.json")
	if err := os.WriteFile(path, []byte(`{"price": 300, "origin": "JFK"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	qs, err := LoadQueries(path)
	if err != nil {
		t.Fatalf("LoadQueries: %v", err)
	}
	if qs[0]["origin"] != "JFK" {
		t.Errorf("origin=%v; want JFK", qs[0]["origin"])
	}
	if qs[0]["price"] != 300.0 {
		// JSON numbers decode as float64; the price comparator relies on it.
		t.Errorf("price=%v (%T); want 300.0", qs[0]["price"], qs[0]["price"])
	}
}

func TestSaveResponses_Shape(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "resp.json")
	results := []query.Result{
		{Query: query.Query{"origin": "JFK"}, Matches: sampleRecords[:1]},
		{Query: query.Query{}, Matches: []schema.FlightRecord{}},
	}
	if err := SaveResponses(path, results); err != nil {
		t.Fatalf("SaveResponses: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	body := string(data)
	for _, want := range []string{`"query"`, `"matches"`, `"flight_id": "AB12"`, `"matches": []`} {
		if !strings.Contains(body, want) {
			t.Errorf("response file missing %q:\n%s", want, body)
		}
	}
}

func TestWriteErrorReport(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	empty := filepath.Join(dir, "errors_empty.txt")
	if err := WriteErrorReport(empty, nil); err != nil {
		t.Fatalf("WriteErrorReport: %v", err)
	}
	data, err := os.ReadFile(empty)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != NoErrorsLine+"\n" {
		t.Fatalf("empty report=%q; want %q", data, NoErrorsLine+"\n")
	}

	full := filepath.Join(dir, "errors.txt")
	lines := []string{
		"Line 2: broken → missing required fields",
		"Line 3: # note → comment line, ignored for data parsing",
	}
	if err := WriteErrorReport(full, lines); err != nil {
		t.Fatalf("WriteErrorReport: %v", err)
	}
	data, err = os.ReadFile(full)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != strings.Join(lines, "\n")+"\n" {
		t.Fatalf("report=%q; want the two entries, newline-terminated", data)
	}
}

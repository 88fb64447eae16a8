package query

import (
	"reflect"
	"testing"

	"flights/internal/schema"
)

var testRecord = schema.FlightRecord{
	FlightID:          "AB12",
	Origin:            "JFK",
	Destination:       "LAX",
	DepartureDateTime: "2024-01-10 08:00",
	ArrivalDateTime:   "2024-01-10 12:00",
	Price:             100.0,
}

/*
TestMatches_Table covers the per-field comparator semantics:
  - identity fields match on exact string equality only,
  - departure is an inclusive lower bound, arrival an inclusive upper bound,
  - price is an inclusive ceiling, accepting numbers and numeric strings,
  - unparseable datetime/price constraints match nothing,
  - unknown keys are ignored and the empty query matches everything.
*/
func TestMatches_Table(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		q    Query
		want bool
	}{
		{"empty query", Query{}, true},
		{"unknown key ignored", Query{"airline": "oceanic", "cabin": 1}, true},

		{"flight_id equal", Query{"flight_id": "AB12"}, true},
		{"flight_id different", Query{"flight_id": "AB13"}, false},
		{"origin case-sensitive", Query{"origin": "jfk"}, false},
		{"destination equal", Query{"destination": "LAX"}, true},

		{"departure before bound", Query{"departure_datetime": "2024-01-10 09:00"}, false},
		{"departure after bound", Query{"departure_datetime": "2024-01-10 07:00"}, true},
		{"departure at bound", Query{"departure_datetime": "2024-01-10 08:00"}, true},
		{"departure bound unparseable", Query{"departure_datetime": "soon"}, false},

		{"arrival under bound", Query{"arrival_datetime": "2024-01-10 13:00"}, true},
		{"arrival at bound", Query{"arrival_datetime": "2024-01-10 12:00"}, true},
		{"arrival over bound", Query{"arrival_datetime": "2024-01-10 11:00"}, false},

		{"price at ceiling", Query{"price": 100.0}, true},
		{"price under ceiling", Query{"price": 150.0}, true},
		{"price over ceiling", Query{"price": 99.99}, false},
		{"price ceiling as string", Query{"price": "100"}, true},
		{"price ceiling unparseable", Query{"price": "cheap"}, false},

		{"all constraints pass", Query{
			"flight_id":          "AB12",
			"origin":             "JFK",
			"departure_datetime": "2024-01-10 08:00",
			"arrival_datetime":   "2024-01-10 12:00",
			"price":              100.0,
		}, true},
		{"one failing constraint rejects", Query{
			"flight_id": "AB12",
			"price":     50.0,
		}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Matches(tc.q, testRecord); got != tc.want {
				t.Fatalf("Matches(%v)=%v; want %v", tc.q, got, tc.want)
			}
		})
	}
}

/*
TestRun_OrderAndShape checks the batch runner:
  - one Result per query, in query order,
  - matches in record iteration order, never re-sorted,
  - a query with no matches still yields a Result with an empty (non-nil)
    match list so it serializes as [] rather than null.
*/
func TestRun_OrderAndShape(t *testing.T) {
	t.Parallel()

	records := []schema.FlightRecord{
		{FlightID: "ZZ9", Origin: "RIX", Destination: "AMS", DepartureDateTime: "2024-01-10 06:00", ArrivalDateTime: "2024-01-10 09:00", Price: 80},
		testRecord,
		{FlightID: "CC3", Origin: "JFK", Destination: "AMS", DepartureDateTime: "2024-01-11 08:00", ArrivalDateTime: "2024-01-11 12:00", Price: 300},
	}

	results := Run(records, []Query{
		{"origin": "JFK"},
		{"flight_id": "none"},
		{},
	})
	if len(results) != 3 {
		t.Fatalf("results=%d; want 3", len(results))
	}

	ids := func(res Result) []string {
		out := []string{}
		for _, m := range res.Matches {
			out = append(out, m.FlightID)
		}
		return out
	}
	if got := ids(results[0]); !reflect.DeepEqual(got, []string{"AB12", "CC3"}) {
		t.Errorf("query 0 matches=%v; want [AB12 CC3]", got)
	}
	if results[1].Matches == nil || len(results[1].Matches) != 0 {
		t.Errorf("query 1 matches=%#v; want empty non-nil slice", results[1].Matches)
	}
	if got := ids(results[2]); !reflect.DeepEqual(got, []string{"ZZ9", "AB12", "CC3"}) {
		t.Errorf("query 2 matches=%v; want all records in order", got)
	}
}

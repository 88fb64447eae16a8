// Package query implements partial-match queries over the canonical flight
// record set.
//
// A query is a partial field→value mapping; a record matches when every
// recognized key passes its field-specific comparator. Identity fields
// compare by exact string equality, datetime fields treat the query value as
// an inclusive lower bound (departure) or upper bound (arrival), and price
// treats it as an inclusive budget ceiling. Unrecognized keys are ignored, so
// an empty query matches everything.
package query

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"flights/internal/schema"
)

// Query is a partial field→value specification decoded from JSON. Values may
// be strings or JSON numbers; each comparator stringifies or parses as it
// needs. Queries are transient and never persisted by the core.
type Query map[string]any

// Result pairs one query with every record that matched it, in record-set
// iteration order.
type Result struct {
	Query   Query                 `json:"query"`
	Matches []schema.FlightRecord `json:"matches"`
}

// comparator selects the matching rule for a recognized query key.
type comparator int

const (
	// cmpEquals compares by exact string equality.
	cmpEquals comparator = iota
	// cmpAtOrAfter matches when the record datetime is >= the query value.
	cmpAtOrAfter
	// cmpAtOrBefore matches when the record datetime is <= the query value.
	cmpAtOrBefore
	// cmpPriceCeiling matches when the record price is <= the query value.
	cmpPriceCeiling
)

// comparators keys the dispatch table by field name. Keys absent from this
// table do not affect the match decision.
var comparators = map[string]comparator{
	schema.FieldFlightID:          cmpEquals,
	schema.FieldOrigin:            cmpEquals,
	schema.FieldDestination:       cmpEquals,
	schema.FieldDepartureDateTime: cmpAtOrAfter,
	schema.FieldArrivalDateTime:   cmpAtOrBefore,
	schema.FieldPrice:             cmpPriceCeiling,
}

// Matches reports whether rec satisfies every recognized constraint in q.
// A datetime or price constraint whose value fails to parse matches nothing.
func Matches(q Query, rec schema.FlightRecord) bool {
	for key, val := range q {
		cmp, ok := comparators[key]
		if !ok {
			continue
		}
		switch cmp {
		case cmpEquals:
			if stringify(val) != identityField(rec, key) {
				return false
			}
		case cmpAtOrAfter:
			qt, rt, err := parseBound(val, rec.DepartureDateTime)
			if err != nil || rt.Before(qt) {
				return false
			}
		case cmpAtOrBefore:
			qt, rt, err := parseBound(val, rec.ArrivalDateTime)
			if err != nil || rt.After(qt) {
				return false
			}
		case cmpPriceCeiling:
			ceiling, err := toFloat(val)
			if err != nil || rec.Price > ceiling {
				return false
			}
		}
	}
	return true
}

// Run applies each query in order against the full record set. Every query
// gets a Result; matches keep record iteration order and are never re-sorted.
func Run(records []schema.FlightRecord, queries []Query) []Result {
	out := make([]Result, 0, len(queries))
	for _, q := range queries {
		matches := []schema.FlightRecord{}
		for _, rec := range records {
			if Matches(q, rec) {
				matches = append(matches, rec)
			}
		}
		out = append(out, Result{Query: q, Matches: matches})
	}
	return out
}

// identityField returns the record's value for an equality-compared key.
func identityField(rec schema.FlightRecord, key string) string {
	switch key {
	case schema.FieldFlightID:
		return rec.FlightID
	case schema.FieldOrigin:
		return rec.Origin
	default:
		return rec.Destination
	}
}

// parseBound parses both sides of a datetime comparison.
func parseBound(queryVal any, recordVal string) (qt, rt time.Time, err error) {
	qt, err = time.Parse(schema.DateTimeLayout, stringify(queryVal))
	if err != nil {
		return
	}
	rt, err = time.Parse(schema.DateTimeLayout, recordVal)
	return
}

// stringify renders a query value for string comparison or datetime parsing.
func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}

// toFloat extracts a numeric query value; JSON numbers decode as float64,
// but numeric strings are accepted too.
func toFloat(v any) (float64, error) {
	switch t := v.(type) {
	case float64:
		return t, nil
	case json.Number:
		return t.Float64()
	case string:
		return strconv.ParseFloat(t, 64)
	case int:
		return float64(t), nil
	default:
		return 0, fmt.Errorf("value %v (%T) is not numeric", v, v)
	}
}

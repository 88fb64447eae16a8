// Package validate implements the flight row validator.
//
// A raw comma-split row passes through two sequential passes:
//
//  1. Presence: every one of the six required fields must be non-blank.
//     Blank fields each produce a "missing <field> field" defect and
//     short-circuit the format pass entirely, so a row with missing fields
//     is only ever reported for those.
//  2. Format: each field is checked independently and all applicable
//     defects are accumulated in field order; nothing stops at the first
//     failure.
//
// Defects are ordered human-readable strings; a row is valid iff its defect
// list is empty, and only then is a record constructed.
package validate

import (
	"strconv"
	"strings"
	"time"
	"unicode"

	"flights/internal/schema"
)

// Defect texts. These appear verbatim in error reports, so they are fixed
// strings rather than formatted messages.
const (
	DefectMissingFields   = "missing required fields"
	DefectFlightIDTooLong = "flight_id too long (more than 8 characters)"
	DefectFlightIDFormat  = "flight_id must be 2–8 alphanumeric characters"
	DefectOrigin          = "invalid origin code"
	DefectDestination     = "invalid destination code"
	DefectDeparture       = "invalid departure datetime"
	DefectArrival         = "invalid arrival datetime"
	DefectArrivalOrder    = "arrival before departure"
	DefectPriceInvalid    = "invalid price value"
	DefectPriceNegative   = "negative price value"
	DefectPriceZero       = "non-positive price value"
)

// Validate checks one raw row and returns either a normalized record or the
// ordered list of defects that rejected it. The row is valid iff the
// returned defect list is empty.
//
// Only the first six fields are considered; extra trailing fields are
// ignored. Fields are trimmed before any check, so already-normalized values
// re-validate to the same record.
func Validate(fields []string) (schema.FlightRecord, []string) {
	if len(fields) < 6 {
		return schema.FlightRecord{}, []string{DefectMissingFields}
	}

	vals := make([]string, 6)
	for i := range vals {
		vals[i] = strings.TrimSpace(fields[i])
	}

	// Presence pass. Any blank field short-circuits the format pass.
	var defects []string
	for i, v := range vals {
		if v == "" {
			defects = append(defects, "missing "+schema.FieldNames[i]+" field")
		}
	}
	if len(defects) > 0 {
		return schema.FlightRecord{}, defects
	}

	flightID, origin, destination := vals[0], vals[1], vals[2]
	depStr, arrStr, priceStr := vals[3], vals[4], vals[5]

	// Format pass. Checks run in field order and accumulate.
	if !isFlightID(flightID) {
		if len([]rune(flightID)) > 8 {
			defects = append(defects, DefectFlightIDTooLong)
		} else {
			defects = append(defects, DefectFlightIDFormat)
		}
	}
	if !isAirportCode(origin) {
		defects = append(defects, DefectOrigin)
	}
	if !isAirportCode(destination) {
		defects = append(defects, DefectDestination)
	}

	dep, depErr := time.Parse(schema.DateTimeLayout, depStr)
	if depErr != nil {
		defects = append(defects, DefectDeparture)
	}
	arr, arrErr := time.Parse(schema.DateTimeLayout, arrStr)
	if arrErr != nil {
		defects = append(defects, DefectArrival)
	}
	if depErr == nil && arrErr == nil && !arr.After(dep) {
		defects = append(defects, DefectArrivalOrder)
	}

	price, priceErr := strconv.ParseFloat(priceStr, 64)
	switch {
	case priceErr != nil:
		defects = append(defects, DefectPriceInvalid)
	case price < 0:
		defects = append(defects, DefectPriceNegative)
	case price == 0:
		defects = append(defects, DefectPriceZero)
	}

	if len(defects) > 0 {
		return schema.FlightRecord{}, defects
	}

	return schema.FlightRecord{
		FlightID:          flightID,
		Origin:            origin,
		Destination:       destination,
		DepartureDateTime: depStr,
		ArrivalDateTime:   arrStr,
		Price:             price,
	}, nil
}

// isFlightID reports whether s is 2–8 alphanumeric characters.
func isFlightID(s string) bool {
	n := 0
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
		n++
	}
	return n >= 2 && n <= 8
}

// isAirportCode reports whether s is exactly 3 uppercase letters.
func isAirportCode(s string) bool {
	n := 0
	for _, r := range s {
		if !unicode.IsUpper(r) {
			return false
		}
		n++
	}
	return n == 3
}

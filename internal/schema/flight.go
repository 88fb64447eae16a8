// Package schema defines the canonical flight record model shared by the
// validator, the query engine, and the snapshot store.
package schema

import "strconv"

// DateTimeLayout is the fixed layout for departure and arrival timestamps.
const DateTimeLayout = "2006-01-02 15:04"

// Canonical field names, in input column order. These are also the JSON keys
// of a serialized record and the recognized keys of a query.
const (
	FieldFlightID          = "flight_id"
	FieldOrigin            = "origin"
	FieldDestination       = "destination"
	FieldDepartureDateTime = "departure_datetime"
	FieldArrivalDateTime   = "arrival_datetime"
	FieldPrice             = "price"
)

// FieldNames lists the six canonical fields in column order.
var FieldNames = []string{
	FieldFlightID,
	FieldOrigin,
	FieldDestination,
	FieldDepartureDateTime,
	FieldArrivalDateTime,
	FieldPrice,
}

// FlightRecord is one validated flight in the canonical set. Records are
// never mutated after construction; every stored record satisfies all field
// constraints and arrival > departure.
type FlightRecord struct {
	FlightID          string  `json:"flight_id"`
	Origin            string  `json:"origin"`
	Destination       string  `json:"destination"`
	DepartureDateTime string  `json:"departure_datetime"`
	ArrivalDateTime   string  `json:"arrival_datetime"`
	Price             float64 `json:"price"`
}

// Fields returns the record's values as strings in canonical column order,
// suitable for re-feeding through the validator.
func (r FlightRecord) Fields() []string {
	return []string{
		r.FlightID,
		r.Origin,
		r.Destination,
		r.DepartureDateTime,
		r.ArrivalDateTime,
		strconv.FormatFloat(r.Price, 'f', -1, 64),
	}
}

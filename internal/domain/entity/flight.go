package entity

// Connection describes a layover on a segment. A direct flight carries no
// connection at all; a populated connection always has both fields.
type Connection struct {
	Duration     string `json:"duration" bson:"duration"`
	FlightNumber string `json:"flightNumber" bson:"flightNumber"`
}

// FlightSegment is one directional flight leg
type FlightSegment struct {
	FlightNumber string      `json:"flightNumber" bson:"flightNumber"`
	Date         string      `json:"date" bson:"date"` // dd/mm/yyyy
	Time         string      `json:"time" bson:"time"` // hh:mm
	Origin       string      `json:"origin" bson:"origin"`
	Destination  string      `json:"destination" bson:"destination"`
	Airline      string      `json:"airline" bson:"airline"`
	PNR          string      `json:"pnr" bson:"pnr"`
	Seat         string      `json:"seat,omitempty" bson:"seat,omitempty"`
	BoardingTime string      `json:"boardingTime,omitempty" bson:"boardingTime,omitempty"` // hh:mm
	Connection   *Connection `json:"connection,omitempty" bson:"connection,omitempty"`
}

// ExtractedFlightData is one itinerary as returned by the extraction
// provider and edited by the user.
//
// Leg layout: a one-leg trip fills Outbound only. A two-leg trip fills
// Outbound and Inbound. A trip with N>2 legs puts leg 1 in Outbound, leg N
// in Inbound and legs 2..N-1 in AdditionalSegments in chronological order.
type ExtractedFlightData struct {
	PassengerNames     string          `json:"passengerNames" bson:"passengerNames"`
	GreetingTitle      string          `json:"greetingTitle" bson:"greetingTitle"` // Prezado, Prezada, Prezados, Prezadas
	Pronoun            string          `json:"pronoun" bson:"pronoun"`             // o, a, os, as
	Outbound           FlightSegment   `json:"outbound" bson:"outbound"`
	Inbound            *FlightSegment  `json:"inbound,omitempty" bson:"inbound,omitempty"`
	AdditionalSegments []FlightSegment `json:"additionalSegments,omitempty" bson:"additionalSegments,omitempty"`
}

// LegCount returns the total number of legs in canonical order
func (d *ExtractedFlightData) LegCount() int {
	count := 1 + len(d.AdditionalSegments)
	if d.Inbound != nil {
		count++
	}
	return count
}

// Segments returns all legs in canonical order: outbound, additional
// segments in array order, inbound.
func (d *ExtractedFlightData) Segments() []FlightSegment {
	segments := make([]FlightSegment, 0, d.LegCount())
	segments = append(segments, d.Outbound)
	segments = append(segments, d.AdditionalSegments...)
	if d.Inbound != nil {
		segments = append(segments, *d.Inbound)
	}
	return segments
}

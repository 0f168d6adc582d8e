package entity

import "fmt"

// FlightOffer is the first segment of a flight offer returned by the flight provider
type FlightOffer struct {
	CarrierCode string `json:"carrier_code"`
	Number      string `json:"number"`
	DepartureAt string `json:"departure_at"`
	Origin      string `json:"origin,omitempty"`
	Destination string `json:"destination,omitempty"`
}

// Descriptor renders the offer as a short fact, e.g. "UA1234 on 2024-09-01T08:00:00"
func (f FlightOffer) Descriptor() string {
	return fmt.Sprintf("%s%s on %s", f.CarrierCode, f.Number, f.DepartureAt)
}

// Event is an event returned by the event provider
type Event struct {
	Name       string `json:"name"`
	LocalStart string `json:"local_start"`
}

// Descriptor renders the event as a short fact
func (e Event) Descriptor() string {
	return fmt.Sprintf("%s at %s", e.Name, e.LocalStart)
}

// Coordinates is a geocoded position
type Coordinates struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
}

// PointOfInterest is a tagged map element; Name is empty for unnamed elements
type PointOfInterest struct {
	ID   int64             `json:"id"`
	Name string            `json:"name,omitempty"`
	Tags map[string]string `json:"tags,omitempty"`
}

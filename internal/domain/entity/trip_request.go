package entity

import "time"

// TripRequest is the structured form of a free-form travel request.
// Dates are calendar dates held as UTC midnight.
type TripRequest struct {
	Origin      string     `json:"origin" bson:"origin"`
	Destination string     `json:"destination" bson:"destination"`
	StartDate   *time.Time `json:"start_date,omitempty" bson:"startDate,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty" bson:"endDate,omitempty"`
	Budget      *float64   `json:"budget,omitempty" bson:"budget,omitempty"`
	Interests   []string   `json:"interests,omitempty" bson:"interests,omitempty"`
}

// HasDates reports whether both trip dates are set
func (r TripRequest) HasDates() bool {
	return r.StartDate != nil && r.EndDate != nil
}

// Nights returns the number of nights between the trip dates, or 0 when unset
func (r TripRequest) Nights() int {
	if !r.HasDates() {
		return 0
	}
	return int(r.EndDate.Sub(*r.StartDate).Hours() / 24)
}

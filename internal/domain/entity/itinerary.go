package entity

import "time"

// Itinerary is the presented result of one successful pipeline run
type Itinerary struct {
	RunID       string          `json:"run_id"`
	Query       string          `json:"query"`
	Request     TripRequest     `json:"request"`
	Origin      Airport         `json:"origin"`
	Destination Airport         `json:"destination"`
	Facts       AggregatedFacts `json:"facts"`
	Text        string          `json:"itinerary"`
	GeneratedAt time.Time       `json:"generated_at"`
}

// ItineraryRecord is the persisted history entry of a run.
// Aggregated facts are deliberately not part of it.
type ItineraryRecord struct {
	ID              string      `bson:"_id,omitempty" json:"id,omitempty"`
	RunID           string      `bson:"runId" json:"run_id"`
	Query           string      `bson:"query" json:"query"`
	Request         TripRequest `bson:"request" json:"request"`
	OriginCode      string      `bson:"originCode" json:"origin_code"`
	DestinationCode string      `bson:"destinationCode" json:"destination_code"`
	Text            string      `bson:"text" json:"itinerary"`
	CreatedAt       time.Time   `bson:"createdAt" json:"created_at"`
}

// NewItineraryRecord builds the history entry for an itinerary
func NewItineraryRecord(it *Itinerary) *ItineraryRecord {
	return &ItineraryRecord{
		RunID:           it.RunID,
		Query:           it.Query,
		Request:         it.Request,
		OriginCode:      it.Origin.Code,
		DestinationCode: it.Destination.Code,
		Text:            it.Text,
		CreatedAt:       it.GeneratedAt,
	}
}

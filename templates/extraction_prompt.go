package templates

import (
	"fmt"
	"time"

	"travel-agent-service/internal/domain/entity"
	"travel-agent-service/pkg/utils"
)

const extractionSystemPrompt = "Extract origin, destination, start_date (YYYY-MM-DD), end_date (YYYY-MM-DD), " +
	"budget (number) and interests (list of keywords) from the user's travel request. " +
	"Today is %s; resolve relative dates such as \"next Friday\" against it. " +
	"If the request gives no dates at all, leave start_date and end_date empty. " +
	"If it gives a length of stay but no start, start 14 days from today and add that length. " +
	"Correct the spelling of place names when they are misspelled. " +
	"Return JSON matching the trip_request schema."

// ExtractionSystemPrompt returns the system instruction for trip request extraction
func ExtractionSystemPrompt(today time.Time) string {
	return fmt.Sprintf(extractionSystemPrompt, today.Format(utils.ISO_DATE_LAYOUT))
}

// TripRequestSchema describes the structured output of the extraction step
func TripRequestSchema() *entity.OutputSchema {
	return &entity.OutputSchema{
		Name:        "trip_request",
		Description: "Structured form of a travel request",
		Fields: []entity.SchemaField{
			{Name: "origin", Type: entity.FieldString, Description: "City the traveller departs from", Required: true},
			{Name: "destination", Type: entity.FieldString, Description: "City the traveller goes to", Required: true},
			{Name: "start_date", Type: entity.FieldString, Format: "date", Description: "Departure date as YYYY-MM-DD"},
			{Name: "end_date", Type: entity.FieldString, Format: "date", Description: "Return date as YYYY-MM-DD"},
			{Name: "budget", Type: entity.FieldNumber, Description: "Total budget"},
			{Name: "interests", Type: entity.FieldStringList, Description: "Interest keywords"},
		},
	}
}

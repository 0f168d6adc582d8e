package templates

import (
	"fmt"
	"strconv"
	"strings"

	"travel-agent-service/internal/domain/entity"
	"travel-agent-service/pkg/utils"
)

// ItinerarySystemPrompt is the system instruction for narrative synthesis
const ItinerarySystemPrompt = "You are a helpful travel planner."

const itineraryInstructions = "Do not return JSON. Write clear day-by-day bullet points. " +
	"Only give the itinerary for the trip, do not ask anything back. " +
	"Do not use decorators like *'s, instead make use of whitespace to make it look cleaner."

// ItineraryPrompt renders the synthesis prompt for a normalized request and its facts.
// Empty fact sequences render as "none".
func ItineraryPrompt(req entity.TripRequest, facts entity.AggregatedFacts) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Plan a friendly, detailed itinerary for a trip from %s to %s, departing %s and returning %s. ",
		req.Origin, req.Destination, utils.FormatISODate(req.StartDate), utils.FormatISODate(req.EndDate))
	fmt.Fprintf(&b, "Flights: %s. ", utils.JoinOrNone(facts.Flights.Items))
	fmt.Fprintf(&b, "Events: %s. ", utils.JoinOrNone(facts.Events.Items))
	fmt.Fprintf(&b, "Restaurants: %s. ", utils.JoinOrNone(facts.Restaurants.Items))

	if req.Budget != nil {
		fmt.Fprintf(&b, "Budget: %s. ", strconv.FormatFloat(*req.Budget, 'f', -1, 64))
	}
	if len(req.Interests) > 0 {
		fmt.Fprintf(&b, "Interests: %s. ", strings.Join(req.Interests, ", "))
	}

	b.WriteString(itineraryInstructions)
	return b.String()
}

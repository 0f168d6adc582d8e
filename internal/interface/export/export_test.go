package export

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel-agent-service/internal/domain/entity"
	"travel-agent-service/pkg/logger"
	"travel-agent-service/pkg/utils"
)

func sampleItinerary() *entity.Itinerary {
	budget := 1000.0
	return &entity.Itinerary{
		RunID: "run-1",
		Request: entity.TripRequest{
			Origin:      "Boston",
			Destination: "Denver",
			StartDate:   utils.DatePtr(time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)),
			EndDate:     utils.DatePtr(time.Date(2024, 9, 8, 0, 0, 0, 0, time.UTC)),
			Budget:      &budget,
			Interests:   []string{"skiing"},
		},
		Origin:      entity.Airport{Code: "BOS", Name: "Logan International", City: "Boston", TzName: "America/New_York"},
		Destination: entity.Airport{Code: "DEN", Name: "Denver International", City: "Denver", TzName: "America/Denver"},
		Facts: entity.AggregatedFacts{
			Flights:     entity.OKResult(entity.SourceFlights, []string{"UA1234 on 2024-09-01T08:00:00", "XX on soon"}),
			Events:      entity.DegradedResult(entity.SourceEvents, "event provider not configured"),
			Restaurants: entity.OKResult(entity.SourceRestaurants, []string{"Snooze – an A.M. Eatery"}),
		},
		Text:        "Day 1: Arrive in Denver\n\nDay 2: Ski",
		GeneratedAt: time.Date(2024, 8, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestCanHandle(t *testing.T) {
	pdf := NewPDFExporter(logger.NewNopLogger())
	cal := NewICSExporter(logger.NewNopLogger())

	assert.True(t, pdf.CanHandle("trip.pdf"))
	assert.True(t, pdf.CanHandle("/tmp/TRIP.PDF"))
	assert.False(t, pdf.CanHandle("trip.ics"))
	assert.True(t, cal.CanHandle("out/trip.ics"))
	assert.False(t, cal.CanHandle("trip.ics.txt"))
}

func TestPDFExporter_Export(t *testing.T) {
	var buf bytes.Buffer

	err := NewPDFExporter(logger.NewNopLogger()).Export(context.Background(), sampleItinerary(), &buf)

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
	assert.Greater(t, buf.Len(), 500)
}

func TestPDFExporter_FooterOnEveryPage(t *testing.T) {
	it := sampleItinerary()
	it.Text = strings.Repeat("Day 1: Arrive in Denver and check in.\n", 200)

	pdf := NewPDFExporter(logger.NewNopLogger()).render(it)
	pdf.SetCompression(false)
	var buf bytes.Buffer
	require.NoError(t, pdf.Output(&buf))

	require.Greater(t, pdf.PageCount(), 1)
	assert.Equal(t, pdf.PageCount(), strings.Count(buf.String(), "Run run-1 - generated"))
}

func TestICSExporter_Export(t *testing.T) {
	var buf bytes.Buffer

	err := NewICSExporter(logger.NewNopLogger()).Export(context.Background(), sampleItinerary(), &buf)

	require.NoError(t, err)
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "BEGIN:VCALENDAR"))
	assert.Equal(t, 2, strings.Count(out, "BEGIN:VEVENT"))
	assert.Contains(t, out, "UID:run-1-trip")
	assert.Contains(t, out, "DTSTART;VALUE=DATE:20240901")
	assert.Contains(t, out, "DTEND;VALUE=DATE:20240909")
	assert.Contains(t, out, "UID:run-1-flight-1")
	// 08:00 in Boston is 12:00 UTC
	assert.Contains(t, out, "DTSTART:20240901T120000Z")
	assert.NotContains(t, out, "run-1-flight-2")
}

func TestICSExporter_RequiresDates(t *testing.T) {
	it := sampleItinerary()
	it.Request.EndDate = nil

	err := NewICSExporter(logger.NewNopLogger()).Export(context.Background(), it, &bytes.Buffer{})

	assert.Error(t, err)
}

func TestFlightDeparture(t *testing.T) {
	ts, ok := flightDeparture("UA1234 on 2024-09-01T08:00:00", time.UTC)
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 9, 1, 8, 0, 0, 0, time.UTC), ts)

	_, ok = flightDeparture("UA1234", time.UTC)
	assert.False(t, ok)
}

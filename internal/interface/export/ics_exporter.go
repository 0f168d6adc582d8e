package export

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"
	_ "time/tzdata"

	"travel-agent-service/internal/domain/entity"
	"travel-agent-service/pkg/logger"
	"travel-agent-service/pkg/utils"

	ics "github.com/arran4/golang-ical"
)

const (
	icsProductID       = "-//travel-agent-service//itinerary//EN"
	flightTimeLayout   = "2006-01-02T15:04:05"
	flightDescriptorOn = " on "
)

// ICSExporter renders an itinerary as an iCalendar file: one all-day event
// spanning the trip plus one event per flight departure.
type ICSExporter struct {
	logger logger.Logger
}

// NewICSExporter creates a new iCalendar exporter
func NewICSExporter(logger logger.Logger) *ICSExporter {
	return &ICSExporter{logger: logger}
}

// CanHandle determines if the path names an iCalendar file
func (e *ICSExporter) CanHandle(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".ics")
}

// Export writes the calendar to w
func (e *ICSExporter) Export(ctx context.Context, it *entity.Itinerary, w io.Writer) error {
	if !it.Request.HasDates() {
		return fmt.Errorf("itinerary %s has no trip dates", it.RunID)
	}

	stamp := it.GeneratedAt
	if stamp.IsZero() {
		stamp = time.Now()
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(icsProductID)

	trip := cal.AddEvent(it.RunID + "-trip")
	trip.SetDtStampTime(stamp)
	trip.SetSummary(fmt.Sprintf("Trip from %s to %s", it.Request.Origin, it.Request.Destination))
	trip.SetLocation(it.Request.Destination)
	trip.SetDescription(it.Text)
	trip.SetAllDayStartAt(*it.Request.StartDate)
	// DTEND is exclusive for all-day events
	trip.SetAllDayEndAt(utils.AddDays(*it.Request.EndDate, 1))

	loc := airportLocation(it.Origin)
	for i, descriptor := range it.Facts.Flights.Items {
		departure, ok := flightDeparture(descriptor, loc)
		if !ok {
			e.logger.Debug("Skipping flight without departure time", "flight", descriptor)
			continue
		}
		flight := cal.AddEvent(fmt.Sprintf("%s-flight-%d", it.RunID, i+1))
		flight.SetDtStampTime(stamp)
		flight.SetSummary("Flight option " + descriptor)
		flight.SetLocation(fmt.Sprintf("%s (%s)", it.Origin.Name, it.Origin.Code))
		flight.SetStartAt(departure)
		flight.SetEndAt(departure)
	}

	if _, err := io.WriteString(w, cal.Serialize()); err != nil {
		return fmt.Errorf("failed to write calendar: %w", err)
	}
	return nil
}

// flightDeparture reads the local departure time from a "<carrier><number> on <time>" descriptor
func flightDeparture(descriptor string, loc *time.Location) (time.Time, bool) {
	i := strings.LastIndex(descriptor, flightDescriptorOn)
	if i < 0 {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(flightTimeLayout, strings.TrimSpace(descriptor[i+len(flightDescriptorOn):]), loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func airportLocation(airport entity.Airport) *time.Location {
	if airport.TzName == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(airport.TzName)
	if err != nil {
		return time.UTC
	}
	return loc
}

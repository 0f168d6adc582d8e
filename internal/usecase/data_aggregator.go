package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"travel-agent-service/internal/domain/entity"
	"travel-agent-service/internal/domain/repository"
	"travel-agent-service/pkg/logger"
	"travel-agent-service/pkg/metrics"
	"travel-agent-service/pkg/utils"

	"github.com/samber/lo"
)

// RestaurantRadiusMeters is the search radius around the geocoded destination
const RestaurantRadiusMeters = 5000

// DataAggregator queries the flight, event and dining providers for a trip.
// Every sub-operation degrades to an empty result instead of failing.
type DataAggregator struct {
	flightRepo repository.FlightRepository
	eventRepo  repository.EventRepository
	geocoder   repository.GeocodingRepository
	placeRepo  repository.PlaceRepository
	metrics    *metrics.Metrics
	logger     logger.Logger
}

// NewDataAggregator creates a new data aggregator. Any repository may be nil,
// in which case its source is reported as degraded.
func NewDataAggregator(
	flightRepo repository.FlightRepository,
	eventRepo repository.EventRepository,
	geocoder repository.GeocodingRepository,
	placeRepo repository.PlaceRepository,
	metrics *metrics.Metrics,
	logger logger.Logger,
) *DataAggregator {
	return &DataAggregator{
		flightRepo: flightRepo,
		eventRepo:  eventRepo,
		geocoder:   geocoder,
		placeRepo:  placeRepo,
		metrics:    metrics,
		logger:     logger,
	}
}

// Aggregate runs the three searches concurrently for a normalized request
func (a *DataAggregator) Aggregate(ctx context.Context, req entity.TripRequest, origin, destination entity.Airport) entity.AggregatedFacts {
	var (
		facts entity.AggregatedFacts
		wg    sync.WaitGroup
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		facts.Flights = a.guard(entity.SourceFlights, func() entity.SourceResult {
			return a.SearchFlights(ctx, origin.Code, destination.Code, *req.StartDate, *req.EndDate)
		})
	}()
	go func() {
		defer wg.Done()
		facts.Events = a.guard(entity.SourceEvents, func() entity.SourceResult {
			return a.SearchEvents(ctx, req.Destination, *req.StartDate, *req.EndDate, req.Interests)
		})
	}()
	go func() {
		defer wg.Done()
		facts.Restaurants = a.guard(entity.SourceRestaurants, func() entity.SourceResult {
			return a.SearchRestaurants(ctx, req.Destination)
		})
	}()
	wg.Wait()

	return facts
}

// SearchFlights returns up to three flight descriptors in provider order
func (a *DataAggregator) SearchFlights(ctx context.Context, originCode, destinationCode string, start, end time.Time) entity.SourceResult {
	defer a.observe(entity.SourceFlights, time.Now())

	if a.flightRepo == nil {
		a.logger.Warn("No flight provider credentials; skipping flights")
		return a.degraded(entity.SourceFlights, "flight provider not configured")
	}

	offers, err := a.flightRepo.SearchOffers(ctx, originCode, destinationCode, start, end, entity.MaxFactsPerSource)
	if err != nil {
		a.logger.Warn("Flight search error", "origin", originCode, "destination", destinationCode, "error", err)
		return a.degraded(entity.SourceFlights, err.Error())
	}

	descriptors := lo.Map(offers, func(o entity.FlightOffer, _ int) string { return o.Descriptor() })
	return a.finish(entity.SourceFlights, descriptors, "No flights found")
}

// SearchEvents returns up to three event descriptors at the destination.
// Without an event provider credential it short-circuits to a degraded result.
func (a *DataAggregator) SearchEvents(ctx context.Context, destination string, start, end time.Time, interests []string) entity.SourceResult {
	defer a.observe(entity.SourceEvents, time.Now())

	if a.eventRepo == nil || !a.eventRepo.Configured() {
		a.logger.Warn("No event provider token; skipping events")
		return a.degraded(entity.SourceEvents, "event provider not configured")
	}

	events, err := a.eventRepo.Search(ctx, destination, start, end, strings.Join(interests, " "))
	if err != nil {
		a.logger.Warn("Event search error", "destination", destination, "error", err)
		return a.degraded(entity.SourceEvents, err.Error())
	}

	descriptors := lo.Map(events, func(e entity.Event, _ int) string { return e.Descriptor() })
	return a.finish(entity.SourceEvents, descriptors, "No events found")
}

// SearchRestaurants returns up to three distinct restaurant names within
// RestaurantRadiusMeters of the geocoded destination
func (a *DataAggregator) SearchRestaurants(ctx context.Context, destination string) entity.SourceResult {
	defer a.observe(entity.SourceRestaurants, time.Now())

	if a.geocoder == nil || a.placeRepo == nil {
		a.logger.Warn("No map provider; skipping restaurants")
		return a.degraded(entity.SourceRestaurants, "map provider not configured")
	}

	center, err := a.geocoder.Geocode(ctx, destination)
	if err != nil {
		if errors.Is(err, entity.ErrNoResults) {
			a.logger.Warn("Could not geocode destination; skipping restaurants", "destination", destination)
			return a.degraded(entity.SourceRestaurants, fmt.Sprintf("could not geocode %s", destination))
		}
		a.logger.Warn("Geocoding error", "destination", destination, "error", err)
		return a.degraded(entity.SourceRestaurants, err.Error())
	}

	pois, err := a.placeRepo.NearbyRestaurants(ctx, *center, RestaurantRadiusMeters)
	if err != nil {
		a.logger.Warn("Restaurant search error", "destination", destination, "error", err)
		return a.degraded(entity.SourceRestaurants, err.Error())
	}

	names := utils.UniqueTake(lo.Map(pois, func(p entity.PointOfInterest, _ int) string {
		return p.Name
	}), entity.MaxFactsPerSource)
	return a.finish(entity.SourceRestaurants, names, "No restaurants found")
}

func (a *DataAggregator) finish(source entity.Source, items []string, emptyMsg string) entity.SourceResult {
	result := entity.OKResult(source, items)
	if result.Status == entity.StatusEmpty {
		a.logger.Warn(emptyMsg)
	}
	a.count(result)
	return result
}

func (a *DataAggregator) degraded(source entity.Source, reason string) entity.SourceResult {
	result := entity.DegradedResult(source, reason)
	a.count(result)
	return result
}

// guard turns a panicking sub-operation into a degraded result
func (a *DataAggregator) guard(source entity.Source, fn func() entity.SourceResult) (result entity.SourceResult) {
	defer func() {
		if r := recover(); r != nil {
			a.logger.Error("Provider sub-operation panicked", "source", source, "panic", r)
			result = a.degraded(source, fmt.Sprintf("panic: %v", r))
		}
	}()
	return fn()
}

func (a *DataAggregator) count(result entity.SourceResult) {
	if a.metrics == nil {
		return
	}
	a.metrics.ProviderOutcomes.WithLabelValues(string(result.Source), string(result.Status)).Inc()
}

func (a *DataAggregator) observe(source entity.Source, start time.Time) {
	if a.metrics == nil {
		return
	}
	a.metrics.ProviderDuration.WithLabelValues(string(source)).Observe(time.Since(start).Seconds())
}

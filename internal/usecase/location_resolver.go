package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"travel-agent-service/internal/domain/entity"
	"travel-agent-service/internal/domain/repository"
	"travel-agent-service/pkg/logger"
	"travel-agent-service/pkg/utils"
)

// LocationResolver maps place names to airports using a directory loaded once.
// It is read-only after construction and safe for concurrent use.
type LocationResolver struct {
	byPlace map[string]entity.Airport
	byCode  map[string]entity.Airport
	logger  logger.Logger
}

// NewLocationResolver loads the airport directory and builds the lookup index.
// timezoneRepo may be nil; airports without a timezone keep an empty TzName.
func NewLocationResolver(
	ctx context.Context,
	airportRepo repository.AirportRepository,
	timezoneRepo repository.TimezoneRepository,
	logger logger.Logger,
) (*LocationResolver, error) {
	airports, err := airportRepo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load airport directory: %w", err)
	}

	// Lowest code first so the first insert for a shared city is deterministic
	sort.SliceStable(airports, func(i, j int) bool {
		return airports[i].Code < airports[j].Code
	})

	r := &LocationResolver{
		byPlace: make(map[string]entity.Airport, len(airports)),
		byCode:  make(map[string]entity.Airport, len(airports)),
		logger:  logger,
	}

	for _, airport := range airports {
		airport.Code = strings.ToUpper(strings.TrimSpace(airport.Code))
		if airport.Code == "" {
			continue
		}
		if airport.TzName == "" && timezoneRepo != nil {
			if tz, err := timezoneRepo.GetTimezoneName(airport.Latitude, airport.Longitude); err == nil {
				airport.TzName = tz
			} else {
				logger.Debug("No timezone for airport", "code", airport.Code, "error", err)
			}
		}

		if _, exists := r.byCode[airport.Code]; !exists {
			r.byCode[airport.Code] = airport
		}

		place := utils.NormalizePlace(airport.City)
		if place == "" {
			continue
		}
		if first, exists := r.byPlace[place]; exists {
			logger.Debug("City served by several airports", "city", airport.City, "using", first.Code, "ignored", airport.Code)
			continue
		}
		r.byPlace[place] = airport
	}

	logger.Info("Airport directory loaded", "airports", len(r.byCode), "cities", len(r.byPlace))
	return r, nil
}

// Resolve returns the airport serving place. Matching is exact after trimming
// and lowercasing; an unknown place yields a *entity.ResolutionError.
func (r *LocationResolver) Resolve(place string) (entity.Airport, error) {
	airport, ok := r.byPlace[utils.NormalizePlace(place)]
	if !ok {
		return entity.Airport{}, &entity.ResolutionError{Place: place}
	}
	return airport, nil
}

// Lookup returns the airport with the given code
func (r *LocationResolver) Lookup(code string) (entity.Airport, bool) {
	airport, ok := r.byCode[strings.ToUpper(strings.TrimSpace(code))]
	return airport, ok
}

// Size returns the number of airports in the directory
func (r *LocationResolver) Size() int {
	return len(r.byCode)
}

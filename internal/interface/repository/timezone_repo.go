package repository

import (
	"fmt"

	"travel-agent-service/internal/domain/entity"
	"travel-agent-service/internal/domain/repository"

	"github.com/ringsaturn/tzf"
)

// TimezoneFinder is the subset of tzf.F used for lookups
type TimezoneFinder interface {
	GetTimezoneName(lng float64, lat float64) string
}

// TzfTimezoneRepository implements the TimezoneRepository interface on tzf
type TzfTimezoneRepository struct {
	finder TimezoneFinder
}

// NewTzfTimezoneRepository creates a timezone repository backed by the tzf default dataset
func NewTzfTimezoneRepository() (repository.TimezoneRepository, error) {
	finder, err := tzf.NewDefaultFinder()
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone finder: %w", err)
	}
	return NewTimezoneRepository(finder), nil
}

// NewTimezoneRepository wraps an existing finder
func NewTimezoneRepository(finder TimezoneFinder) repository.TimezoneRepository {
	return &TzfTimezoneRepository{
		finder: finder,
	}
}

// GetTimezoneName returns the IANA timezone name at the given coordinates
func (r *TzfTimezoneRepository) GetTimezoneName(lat, lon float64) (string, error) {
	name := r.finder.GetTimezoneName(lon, lat)
	if name == "" {
		return "", fmt.Errorf("timezone at %f,%f: %w", lat, lon, entity.ErrNoResults)
	}
	return name, nil
}

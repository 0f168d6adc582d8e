package repository

import (
	"context"

	"travel-agent-service/internal/domain/entity"
)

// ItineraryRepository stores the history of generated itineraries
type ItineraryRepository interface {
	Save(ctx context.Context, record *entity.ItineraryRecord) error
	FindByRunID(ctx context.Context, runID string) (*entity.ItineraryRecord, error)
	FindRecent(ctx context.Context, limit int) ([]*entity.ItineraryRecord, error)
}

package repository

import (
	"context"
	"time"

	"travel-agent-service/internal/domain/entity"
)

// EventRepository searches events near a location inside a date range
type EventRepository interface {
	// Configured reports whether the provider credential is present
	Configured() bool
	Search(ctx context.Context, location string, start, end time.Time, query string) ([]entity.Event, error)
}

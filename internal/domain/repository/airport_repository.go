package repository

import (
	"context"

	"travel-agent-service/internal/domain/entity"
)

// AirportRepository is a source of airport directory records
type AirportRepository interface {
	LoadAll(ctx context.Context) ([]entity.Airport, error)
}

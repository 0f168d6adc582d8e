package repository

import (
	"context"
	"time"

	"travel-agent-service/internal/domain/entity"
)

// FlightRepository searches round-trip flight offers between two airports
type FlightRepository interface {
	SearchOffers(ctx context.Context, originCode, destinationCode string, departure, returnDate time.Time, max int) ([]entity.FlightOffer, error)
}

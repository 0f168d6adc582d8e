package repository

import (
	"context"

	"travel-agent-service/internal/domain/entity"
)

// Generator is the narrow interface to a text generation model
type Generator interface {
	// GenerateJSON returns a JSON document matching req.Schema
	GenerateJSON(ctx context.Context, req entity.GenerationRequest) (string, error)
	// GenerateText returns free text
	GenerateText(ctx context.Context, req entity.GenerationRequest) (string, error)
}

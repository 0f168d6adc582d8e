package usecase

import (
	"context"
	"fmt"
	"strings"

	"travel-agent-service/internal/domain/entity"
	"travel-agent-service/internal/domain/repository"
	"travel-agent-service/pkg/logger"
	"travel-agent-service/templates"
)

const synthesisTemperature = float32(0.7)

// ItinerarySynthesizer turns a request and its aggregated facts into narrative text
type ItinerarySynthesizer struct {
	generator repository.Generator
	logger    logger.Logger
}

// NewItinerarySynthesizer creates a new itinerary synthesizer
func NewItinerarySynthesizer(generator repository.Generator, logger logger.Logger) *ItinerarySynthesizer {
	return &ItinerarySynthesizer{
		generator: generator,
		logger:    logger,
	}
}

// BuildPrompt renders the generation prompt for a normalized request
func (s *ItinerarySynthesizer) BuildPrompt(req entity.TripRequest, facts entity.AggregatedFacts) string {
	return templates.ItineraryPrompt(req, facts)
}

// Synthesize generates the itinerary text. Any failure is a generation error.
func (s *ItinerarySynthesizer) Synthesize(ctx context.Context, req entity.TripRequest, facts entity.AggregatedFacts) (string, error) {
	temperature := synthesisTemperature
	text, err := s.generator.GenerateText(ctx, entity.GenerationRequest{
		System:      templates.ItinerarySystemPrompt,
		Prompt:      s.BuildPrompt(req, facts),
		Temperature: &temperature,
	})
	if err != nil {
		return "", asGenerationError("itinerary synthesis", err)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("itinerary synthesis: %w: empty itinerary", entity.ErrGeneration)
	}

	s.logger.Debug("Itinerary synthesized", "length", len(text))
	return text, nil
}

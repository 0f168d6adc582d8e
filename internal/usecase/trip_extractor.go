package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"travel-agent-service/internal/domain/entity"
	"travel-agent-service/internal/domain/repository"
	"travel-agent-service/pkg/logger"
	"travel-agent-service/pkg/utils"
	"travel-agent-service/templates"

	"github.com/samber/lo"
)

// extractedTrip is the raw JSON shape returned by the extraction generator
type extractedTrip struct {
	Origin      string   `json:"origin"`
	Destination string   `json:"destination"`
	StartDate   *string  `json:"start_date"`
	EndDate     *string  `json:"end_date"`
	Budget      *float64 `json:"budget"`
	Interests   []string `json:"interests"`
}

// TripExtractor turns a free-form travel request into a TripRequest
type TripExtractor struct {
	generator repository.Generator
	now       func() time.Time
	logger    logger.Logger
}

// NewTripExtractor creates a new trip extractor. now defaults to time.Now.
func NewTripExtractor(generator repository.Generator, now func() time.Time, logger logger.Logger) *TripExtractor {
	if now == nil {
		now = time.Now
	}
	return &TripExtractor{
		generator: generator,
		now:       now,
		logger:    logger,
	}
}

// Extract asks the generator for a structured trip request and validates it
func (e *TripExtractor) Extract(ctx context.Context, query string) (entity.TripRequest, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return entity.TripRequest{}, fmt.Errorf("%w: empty travel request", entity.ErrInvalidExtraction)
	}

	temperature := float32(0)
	raw, err := e.generator.GenerateJSON(ctx, entity.GenerationRequest{
		System:      templates.ExtractionSystemPrompt(e.now()),
		Prompt:      query,
		Schema:      templates.TripRequestSchema(),
		Temperature: &temperature,
	})
	if err != nil {
		return entity.TripRequest{}, asGenerationError("trip extraction", err)
	}

	req, err := decodeTripRequest(raw)
	if err != nil {
		e.logger.Warn("Extraction output rejected", "error", err, "output", raw)
		return entity.TripRequest{}, err
	}

	e.logger.Info("Trip request extracted",
		"origin", req.Origin,
		"destination", req.Destination,
		"start_date", utils.FormatISODate(req.StartDate),
		"end_date", utils.FormatISODate(req.EndDate))

	return req, nil
}

func decodeTripRequest(raw string) (entity.TripRequest, error) {
	var out extractedTrip
	if err := json.Unmarshal([]byte(utils.CleanJSONResponse(raw)), &out); err != nil {
		return entity.TripRequest{}, fmt.Errorf("%w: %v", entity.ErrInvalidExtraction, err)
	}

	req := entity.TripRequest{
		Origin:      strings.TrimSpace(out.Origin),
		Destination: strings.TrimSpace(out.Destination),
		Budget:      out.Budget,
		Interests:   lo.Compact(lo.Map(out.Interests, func(s string, _ int) string { return strings.TrimSpace(s) })),
	}
	if req.Origin == "" || req.Destination == "" {
		return entity.TripRequest{}, fmt.Errorf("%w: origin and destination are required", entity.ErrInvalidExtraction)
	}

	var err error
	if req.StartDate, err = optionalDate(out.StartDate); err != nil {
		return entity.TripRequest{}, err
	}
	if req.EndDate, err = optionalDate(out.EndDate); err != nil {
		return entity.TripRequest{}, err
	}
	if req.HasDates() && req.EndDate.Before(*req.StartDate) {
		return entity.TripRequest{}, fmt.Errorf("%w: end_date %s is before start_date %s",
			entity.ErrInvalidExtraction, utils.FormatISODate(req.EndDate), utils.FormatISODate(req.StartDate))
	}
	if len(req.Interests) == 0 {
		req.Interests = nil
	}

	return req, nil
}

func optionalDate(s *string) (*time.Time, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	d, err := utils.ParseISODate(*s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrInvalidExtraction, err)
	}
	return &d, nil
}

// asGenerationError makes sure err is classified as a generation failure
func asGenerationError(op string, err error) error {
	if errors.Is(err, entity.ErrGeneration) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%s: %w: %v", op, entity.ErrGeneration, err)
}

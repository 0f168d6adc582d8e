package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"travel-agent-service/internal/domain/entity"
	"travel-agent-service/internal/domain/repository"
	"travel-agent-service/pkg/logger"
	"travel-agent-service/pkg/metrics"

	"github.com/google/uuid"
)

// State is a step of an itinerary pipeline run
type State string

const (
	StateReceived    State = "received"
	StateParsed      State = "parsed"
	StateNormalized  State = "normalized"
	StateResolved    State = "resolved"
	StateAggregated  State = "aggregated"
	StateSynthesized State = "synthesized"
	StatePresented   State = "presented"
)

// StageError is a fatal pipeline failure at the named state
type StageError struct {
	State State
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s stage failed: %v", e.State, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// Presenter delivers a finished itinerary
type Presenter interface {
	Present(ctx context.Context, itinerary *entity.Itinerary) error
}

// Result is the outcome of a successful run
type Result struct {
	entity.Itinerary
	State State
}

// Pipeline sequences extraction, normalization, resolution, aggregation,
// synthesis and presentation. Nothing is retried.
type Pipeline struct {
	extractor   *TripExtractor
	normalizer  *RequestNormalizer
	resolver    *LocationResolver
	aggregator  *DataAggregator
	synthesizer *ItinerarySynthesizer
	history     repository.ItineraryRepository
	metrics     *metrics.Metrics
	logger      logger.Logger
	newRunID    func() string
	now         func() time.Time
}

// NewPipeline creates a new pipeline. history may be nil.
func NewPipeline(
	extractor *TripExtractor,
	normalizer *RequestNormalizer,
	resolver *LocationResolver,
	aggregator *DataAggregator,
	synthesizer *ItinerarySynthesizer,
	history repository.ItineraryRepository,
	metrics *metrics.Metrics,
	logger logger.Logger,
) *Pipeline {
	return &Pipeline{
		extractor:   extractor,
		normalizer:  normalizer,
		resolver:    resolver,
		aggregator:  aggregator,
		synthesizer: synthesizer,
		history:     history,
		metrics:     metrics,
		logger:      logger,
		newRunID:    uuid.NewString,
		now:         time.Now,
	}
}

// Run executes one invocation for a free-form query. presenter may be nil.
// On failure the returned error is a *StageError.
func (p *Pipeline) Run(ctx context.Context, query string, presenter Presenter) (*Result, error) {
	runID := p.newRunID()
	log := p.logger.With("runId", runID)
	state := StateReceived
	advance := func(next State) {
		state = next
		log.Debug("Pipeline state changed", "state", state)
	}
	log.Info("Pipeline run received")

	fail := func(at State, err error) (*Result, error) {
		log.Error("Pipeline run failed", "state", at, "error", err)
		p.countRun(at, "failure")
		return nil, &StageError{State: at, Err: err}
	}

	// Parsed
	started := time.Now()
	req, err := p.extractor.Extract(ctx, query)
	p.observe(StateParsed, started)
	if err != nil {
		return fail(StateParsed, err)
	}
	advance(StateParsed)

	// Normalized
	req = p.normalizer.Normalize(req)
	advance(StateNormalized)

	// Resolved
	started = time.Now()
	origin, destination, err := p.resolve(req)
	p.observe(StateResolved, started)
	if err != nil {
		return fail(StateResolved, err)
	}
	advance(StateResolved)
	log.Info("Locations resolved", "origin", origin.Code, "destination", destination.Code)

	// Aggregated
	started = time.Now()
	facts := p.aggregator.Aggregate(ctx, req, origin, destination)
	p.observe(StateAggregated, started)
	advance(StateAggregated)

	// Synthesized
	started = time.Now()
	text, err := p.synthesizer.Synthesize(ctx, req, facts)
	p.observe(StateSynthesized, started)
	if err != nil {
		return fail(StateSynthesized, err)
	}
	advance(StateSynthesized)

	itinerary := entity.Itinerary{
		RunID:       runID,
		Query:       query,
		Request:     req,
		Origin:      origin,
		Destination: destination,
		Facts:       facts,
		Text:        text,
		GeneratedAt: p.now(),
	}

	// Presented
	if presenter != nil {
		if err := presenter.Present(ctx, &itinerary); err != nil {
			return fail(StatePresented, err)
		}
	}
	advance(StatePresented)

	p.saveHistory(ctx, &itinerary, log)
	p.countRun(state, "success")
	log.Info("Pipeline run completed")

	return &Result{Itinerary: itinerary, State: state}, nil
}

func (p *Pipeline) resolve(req entity.TripRequest) (entity.Airport, entity.Airport, error) {
	origin, err := p.resolver.Resolve(req.Origin)
	if err != nil {
		return entity.Airport{}, entity.Airport{}, err
	}
	destination, err := p.resolver.Resolve(req.Destination)
	if err != nil {
		return entity.Airport{}, entity.Airport{}, err
	}
	return origin, destination, nil
}

func (p *Pipeline) saveHistory(ctx context.Context, itinerary *entity.Itinerary, log logger.Logger) {
	if p.history == nil {
		return
	}
	if err := p.history.Save(ctx, entity.NewItineraryRecord(itinerary)); err != nil {
		log.Warn("Failed to save itinerary history", "error", err)
	}
}

func (p *Pipeline) observe(state State, started time.Time) {
	if p.metrics == nil {
		return
	}
	p.metrics.StageDuration.WithLabelValues(string(state)).Observe(time.Since(started).Seconds())
}

func (p *Pipeline) countRun(state State, result string) {
	if p.metrics == nil {
		return
	}
	p.metrics.RunsTotal.WithLabelValues(string(state), result).Inc()
}

// IsResolutionError reports whether err stopped a run at location resolution
func IsResolutionError(err error) bool {
	var resErr *entity.ResolutionError
	return errors.As(err, &resErr)
}

// IsGenerationError reports whether err came from a generation backend
func IsGenerationError(err error) bool {
	return errors.Is(err, entity.ErrGeneration)
}

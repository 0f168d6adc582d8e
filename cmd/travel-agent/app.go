package main

import (
	"context"
	"fmt"
	"os"

	"travel-agent-service/internal/domain/repository"
	"travel-agent-service/internal/infrastructure/airports"
	"travel-agent-service/internal/infrastructure/config"
	"travel-agent-service/internal/infrastructure/oauth"
	"travel-agent-service/internal/infrastructure/persistence"
	"travel-agent-service/internal/infrastructure/router"
	"travel-agent-service/internal/interface/export"
	"travel-agent-service/internal/interface/llm"
	repo "travel-agent-service/internal/interface/repository"
	"travel-agent-service/internal/usecase"
	"travel-agent-service/pkg/logger"
	"travel-agent-service/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "travel_agent"

// app holds the wired pipeline and the resources it owns
type app struct {
	cfg      *config.Config
	log      *logger.ZapLogger
	metrics  *metrics.Metrics
	pipeline *usecase.Pipeline
	history  repository.ItineraryRepository
	exports  *router.ExportRouter
	closers  []func(context.Context) error
}

// loadConfig reads the environment and applies command line overrides
func loadConfig() (*config.Config, *logger.ZapLogger, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	if modelOverride != "" {
		cfg.GenerationModel = modelOverride
	}
	if logLevelOverride != "" {
		cfg.LogLevel = logLevelOverride
	}
	return cfg, logger.NewLogger(cfg.LogLevel), nil
}

// newApp wires repositories, usecases and exporters from configuration
func newApp(ctx context.Context, cfg *config.Config, log *logger.ZapLogger, reg prometheus.Registerer) (*app, error) {
	a := &app{
		cfg:     cfg,
		log:     log,
		metrics: metrics.NewMetrics(metricsNamespace, reg),
	}

	generator, err := llm.NewGenerator(ctx, cfg.GenerationModel, llm.Credentials{
		GeminiAPIKey: cfg.GeminiAPIKey,
		OpenAIAPIKey: cfg.OpenAIAPIKey,
	}, log)
	if err != nil {
		return nil, fmt.Errorf("failed to set up generation backend: %w", err)
	}

	resolver, err := a.newResolver(ctx)
	if err != nil {
		a.Close(ctx)
		return nil, err
	}

	// Flight credentials are optional; without them the flight source degrades
	amadeusOAuth := oauth.NewAmadeusOAuth(cfg.AmadeusAPIKey, cfg.AmadeusAPISecret, cfg.AmadeusBaseURL, log)
	var flightRepo repository.FlightRepository
	if httpClient := amadeusOAuth.HTTPClient(context.Background(), cfg.HTTPTimeout); httpClient != nil {
		flightRepo = repo.NewAmadeusFlightRepository(cfg.AmadeusBaseURL, httpClient, log)
	}

	eventRepo := repo.NewEventbriteRepository(cfg.EventbriteURL, cfg.EventbriteToken, cfg.HTTPTimeout, log)
	geocoder := repo.NewNominatimRepository(cfg.NominatimURL, cfg.UserAgent, cfg.GeocodeTimeout)
	placeRepo := repo.NewOverpassRepository(cfg.OverpassURL, cfg.HTTPTimeout)

	a.history = a.newHistory(ctx)

	a.exports = router.NewExportRouter(log)
	a.exports.Register(export.NewPDFExporter(log))
	a.exports.Register(export.NewICSExporter(log))

	a.pipeline = usecase.NewPipeline(
		usecase.NewTripExtractor(generator, nil, log),
		usecase.NewRequestNormalizer(nil, log),
		resolver,
		usecase.NewDataAggregator(flightRepo, eventRepo, geocoder, placeRepo, a.metrics, log),
		usecase.NewItinerarySynthesizer(generator, log),
		a.history,
		a.metrics,
		log,
	)

	return a, nil
}

func (a *app) newResolver(ctx context.Context) (*usecase.LocationResolver, error) {
	var airportRepo repository.AirportRepository
	if a.cfg.AirportsPostgresDSN != "" {
		a.log.Info("Loading airport directory from PostgreSQL")
		db, err := persistence.NewPostgresDB(a.cfg.AirportsPostgresDSN)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, func(context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		})
		airportRepo = repo.NewGormAirportRepository(db)
	} else if a.cfg.AirportsFile != "" {
		a.log.Info("Loading airport directory from file", "path", a.cfg.AirportsFile)
		data, err := os.ReadFile(a.cfg.AirportsFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read airport directory: %w", err)
		}
		airportRepo = airports.NewYAMLRepository(data)
	} else {
		airportRepo = airports.NewEmbeddedRepository()
	}

	var timezoneRepo repository.TimezoneRepository
	if tz, err := repo.NewTzfTimezoneRepository(); err != nil {
		a.log.Warn("Timezone finder unavailable, airports keep their stored timezone", "error", err)
	} else {
		timezoneRepo = tz
	}

	return usecase.NewLocationResolver(ctx, airportRepo, timezoneRepo, a.log)
}

// newHistory connects the optional itinerary history. Failures disable it.
func (a *app) newHistory(ctx context.Context) repository.ItineraryRepository {
	if a.cfg.MongoURI == "" {
		return nil
	}

	a.log.Info("Connecting to MongoDB")
	client, err := persistence.NewMongoClient(ctx, a.cfg.MongoURI, a.cfg.MongoUser, a.cfg.MongoPassword)
	if err != nil {
		a.log.Warn("Itinerary history disabled", "error", err)
		return nil
	}
	a.closers = append(a.closers, client.Disconnect)

	return repo.NewMongoItineraryRepository(persistence.GetDatabase(client, a.cfg.MongoDB))
}

// Close releases database connections and flushes logs
func (a *app) Close(ctx context.Context) {
	for _, closeFn := range a.closers {
		if err := closeFn(ctx); err != nil {
			a.log.Error("Failed to close resource", "error", err)
		}
	}
	a.closers = nil
	a.log.Sync()
}

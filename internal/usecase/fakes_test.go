package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"travel-agent-service/internal/domain/entity"
	"travel-agent-service/pkg/logger"
	"travel-agent-service/pkg/metrics"
)

var (
	fixedNow = time.Date(2025, 3, 10, 15, 30, 0, 0, time.UTC)
	nopLog   = logger.NewNopLogger()
)

func clock() time.Time { return fixedNow }

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

// recordingLogger keeps warning messages
type recordingLogger struct {
	mu    sync.Mutex
	warns []string
}

func (l *recordingLogger) Debug(msg string, keysAndValues ...interface{}) {}
func (l *recordingLogger) Info(msg string, keysAndValues ...interface{})  {}
func (l *recordingLogger) Error(msg string, keysAndValues ...interface{}) {}
func (l *recordingLogger) Fatal(msg string, keysAndValues ...interface{}) {}
func (l *recordingLogger) With(keysAndValues ...interface{}) logger.Logger {
	return l
}

func (l *recordingLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warns = append(l.warns, msg)
}

func (l *recordingLogger) warnings() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.warns...)
}

// fakeGenerator returns canned outputs and records the requests it saw
type fakeGenerator struct {
	mu       sync.Mutex
	json     string
	jsonErr  error
	text     string
	textErr  error
	requests []entity.GenerationRequest
}

func (g *fakeGenerator) GenerateJSON(ctx context.Context, req entity.GenerationRequest) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.requests = append(g.requests, req)
	return g.json, g.jsonErr
}

func (g *fakeGenerator) GenerateText(ctx context.Context, req entity.GenerationRequest) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.requests = append(g.requests, req)
	return g.text, g.textErr
}

func (g *fakeGenerator) lastPrompt() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	if len(g.requests) == 0 {
		return ""
	}
	return g.requests[len(g.requests)-1].Prompt
}

type fakeAirportRepo struct {
	airports []entity.Airport
	err      error
}

func (r *fakeAirportRepo) LoadAll(ctx context.Context) ([]entity.Airport, error) {
	out := make([]entity.Airport, len(r.airports))
	copy(out, r.airports)
	return out, r.err
}

type fakeTimezoneRepo struct{}

func (fakeTimezoneRepo) GetTimezoneName(lat, lon float64) (string, error) {
	if lat == 0 && lon == 0 {
		return "", entity.ErrNoResults
	}
	return "Test/Zone", nil
}

type fakeFlightRepo struct {
	offers []entity.FlightOffer
	err    error
	calls  int
	max    int
}

func (r *fakeFlightRepo) SearchOffers(ctx context.Context, originCode, destinationCode string, departure, returnDate time.Time, max int) ([]entity.FlightOffer, error) {
	r.calls++
	r.max = max
	return r.offers, r.err
}

type fakeEventRepo struct {
	configured bool
	events     []entity.Event
	err        error
	calls      int
	query      string
}

func (r *fakeEventRepo) Configured() bool { return r.configured }

func (r *fakeEventRepo) Search(ctx context.Context, location string, start, end time.Time, query string) ([]entity.Event, error) {
	r.calls++
	r.query = query
	return r.events, r.err
}

type fakeGeocoder struct {
	coords *entity.Coordinates
	err    error
}

func (g *fakeGeocoder) Geocode(ctx context.Context, place string) (*entity.Coordinates, error) {
	return g.coords, g.err
}

type fakePlaceRepo struct {
	pois   []entity.PointOfInterest
	err    error
	radius int
	panics bool
}

func (r *fakePlaceRepo) NearbyRestaurants(ctx context.Context, center entity.Coordinates, radiusMeters int) ([]entity.PointOfInterest, error) {
	if r.panics {
		panic("boom")
	}
	r.radius = radiusMeters
	return r.pois, r.err
}

type fakeHistory struct {
	mu      sync.Mutex
	records []*entity.ItineraryRecord
	err     error
}

func (h *fakeHistory) Save(ctx context.Context, record *entity.ItineraryRecord) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.err != nil {
		return h.err
	}
	h.records = append(h.records, record)
	return nil
}

func (h *fakeHistory) FindByRunID(ctx context.Context, runID string) (*entity.ItineraryRecord, error) {
	for _, r := range h.records {
		if r.RunID == runID {
			return r, nil
		}
	}
	return nil, errors.New("not found")
}

func (h *fakeHistory) FindRecent(ctx context.Context, limit int) ([]*entity.ItineraryRecord, error) {
	return h.records, nil
}

func testAirports() []entity.Airport {
	return []entity.Airport{
		{Code: "ORY", Name: "Paris Orly", City: "Paris", Country: "FR", Latitude: 48.72, Longitude: 2.38},
		{Code: "CDG", Name: "Charles de Gaulle", City: "Paris", Country: "FR", Latitude: 49.01, Longitude: 2.55},
		{Code: "BOS", Name: "Logan International", City: "Boston", Country: "US", Latitude: 42.36, Longitude: -71.01},
		{Code: "DEN", Name: "Denver International", City: "Denver", Country: "US", Latitude: 39.86, Longitude: -104.67},
		{Code: "XXX", Name: "Nowhere Field", City: "", Country: "ZZ"},
	}
}

func newTestResolver() *LocationResolver {
	r, err := NewLocationResolver(context.Background(), &fakeAirportRepo{airports: testAirports()}, fakeTimezoneRepo{}, nopLog)
	if err != nil {
		panic(err)
	}
	return r
}

func newTestMetrics() *metrics.Metrics {
	return metrics.NewNopMetrics()
}

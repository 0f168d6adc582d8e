package repository_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel-agent-service/internal/domain/entity"
	repo "travel-agent-service/internal/interface/repository"
	"travel-agent-service/pkg/logger"
)

var (
	sept1 = time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)
	sept8 = time.Date(2024, 9, 8, 0, 0, 0, 0, time.UTC)
)

func serve(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

// ---- Amadeus ---------------------------------------------------------------

func TestAmadeusFlightRepository_SearchOffers(t *testing.T) {
	srv := serve(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/shopping/flight-offers", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "BOS", q.Get("originLocationCode"))
		assert.Equal(t, "DEN", q.Get("destinationLocationCode"))
		assert.Equal(t, "2024-09-01", q.Get("departureDate"))
		assert.Equal(t, "2024-09-08", q.Get("returnDate"))
		assert.Equal(t, "1", q.Get("adults"))
		assert.Equal(t, "3", q.Get("max"))
		_, _ = w.Write([]byte(`{"data":[
			{"itineraries":[{"segments":[{"carrierCode":"UA","number":"1234","departure":{"iataCode":"BOS","at":"2024-09-01T08:00:00"},"arrival":{"iataCode":"DEN"}}]}]},
			{"itineraries":[]},
			{"itineraries":[{"segments":[{"carrierCode":"B6","number":"77","departure":{"iataCode":"BOS","at":"2024-09-01T12:30:00"},"arrival":{"iataCode":"DEN"}}]}]}
		]}`))
	})

	r := repo.NewAmadeusFlightRepository(srv.URL+"/", srv.Client(), logger.NewNopLogger())
	offers, err := r.SearchOffers(context.Background(), "BOS", "DEN", sept1, sept8, 3)

	require.NoError(t, err)
	require.Len(t, offers, 2)
	assert.Equal(t, "UA1234 on 2024-09-01T08:00:00", offers[0].Descriptor())
	assert.Equal(t, "B6", offers[1].CarrierCode)
}

func TestAmadeusFlightRepository_ErrorStatus(t *testing.T) {
	srv := serve(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"errors":[{"title":"invalid"}]}`, http.StatusBadRequest)
	})

	r := repo.NewAmadeusFlightRepository(srv.URL, srv.Client(), logger.NewNopLogger())
	_, err := r.SearchOffers(context.Background(), "BOS", "DEN", sept1, sept8, 3)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "amadeus error (400)")
}

func TestAmadeusFlightRepository_NoCredentials(t *testing.T) {
	r := repo.NewAmadeusFlightRepository("https://example.invalid", nil, logger.NewNopLogger())
	_, err := r.SearchOffers(context.Background(), "BOS", "DEN", sept1, sept8, 3)

	assert.True(t, errors.Is(err, entity.ErrProviderNotConfigured))
}

// ---- Eventbrite ------------------------------------------------------------

func TestEventbriteRepository_Search(t *testing.T) {
	srv := serve(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "Denver", q.Get("location.address"))
		assert.Equal(t, "2024-09-01", q.Get("start_date.range_start"))
		assert.Equal(t, "2024-09-08", q.Get("start_date.range_end"))
		assert.Equal(t, "tkn", q.Get("token"))
		assert.Equal(t, "date", q.Get("sort_by"))
		assert.Equal(t, "skiing hiking", q.Get("q"))
		_, _ = w.Write([]byte(`{"events":[{"name":{"text":"Ski Expo"},"start":{"local":"2024-09-02T10:00:00"}}]}`))
	})

	r := repo.NewEventbriteRepository(srv.URL, "tkn", time.Second, logger.NewNopLogger())
	events, err := r.Search(context.Background(), "Denver", sept1, sept8, "skiing hiking")

	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Ski Expo at 2024-09-02T10:00:00", events[0].Descriptor())
}

func TestEventbriteRepository_Unconfigured(t *testing.T) {
	r := repo.NewEventbriteRepository("https://example.invalid", "", time.Second, logger.NewNopLogger())

	assert.False(t, r.Configured())
	_, err := r.Search(context.Background(), "Denver", sept1, sept8, "")
	assert.True(t, errors.Is(err, entity.ErrProviderNotConfigured))
}

func TestEventbriteRepository_BadJSON(t *testing.T) {
	srv := serve(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>`))
	})

	r := repo.NewEventbriteRepository(srv.URL, "tkn", time.Second, logger.NewNopLogger())
	_, err := r.Search(context.Background(), "Denver", sept1, sept8, "")

	assert.Error(t, err)
}

// ---- Nominatim -------------------------------------------------------------

func TestNominatimRepository_Geocode(t *testing.T) {
	srv := serve(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "Denver", r.URL.Query().Get("q"))
		assert.Equal(t, "test-agent", r.Header.Get("User-Agent"))
		_, _ = w.Write([]byte(`[{"lat":"39.7392","lon":"-104.9849","display_name":"Denver"}]`))
	})

	r := repo.NewNominatimRepository(srv.URL, "test-agent", time.Second)
	c, err := r.Geocode(context.Background(), "Denver")

	require.NoError(t, err)
	assert.InDelta(t, 39.7392, c.Latitude, 1e-6)
	assert.InDelta(t, -104.9849, c.Longitude, 1e-6)
}

func TestNominatimRepository_NotFound(t *testing.T) {
	srv := serve(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})

	r := repo.NewNominatimRepository(srv.URL, "test-agent", time.Second)
	_, err := r.Geocode(context.Background(), "Atlantis")

	assert.True(t, errors.Is(err, entity.ErrNoResults))
}

// ---- Overpass --------------------------------------------------------------

func TestOverpassRepository_NearbyRestaurants(t *testing.T) {
	srv := serve(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Query().Get("data"), "node[amenity=restaurant](around:5000,39.739200,-104.984900)")
		_, _ = w.Write([]byte(`{"elements":[
			{"id":1,"tags":{"name":"Snooze","amenity":"restaurant"}},
			{"id":2,"tags":{"amenity":"restaurant"}},
			{"id":3}
		]}`))
	})

	r := repo.NewOverpassRepository(srv.URL, time.Second)
	pois, err := r.NearbyRestaurants(context.Background(), entity.Coordinates{Latitude: 39.7392, Longitude: -104.9849}, 5000)

	require.NoError(t, err)
	require.Len(t, pois, 3)
	assert.Equal(t, "Snooze", pois[0].Name)
	assert.Empty(t, pois[1].Name)
	assert.Empty(t, pois[2].Name)
}

func TestOverpassRepository_ServerError(t *testing.T) {
	srv := serve(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusGatewayTimeout)
	})

	r := repo.NewOverpassRepository(srv.URL, time.Second)
	_, err := r.NearbyRestaurants(context.Background(), entity.Coordinates{}, 5000)

	assert.Error(t, err)
}

// ---- Timezone --------------------------------------------------------------

type fakeFinder map[[2]float64]string

func (f fakeFinder) GetTimezoneName(lng, lat float64) string {
	return f[[2]float64{lng, lat}]
}

func TestTimezoneRepository(t *testing.T) {
	r := repo.NewTimezoneRepository(fakeFinder{{-104.6731, 39.8617}: "America/Denver"})

	name, err := r.GetTimezoneName(39.8617, -104.6731)
	require.NoError(t, err)
	assert.Equal(t, "America/Denver", name)

	_, err = r.GetTimezoneName(0, 0)
	assert.True(t, errors.Is(err, entity.ErrNoResults))
}

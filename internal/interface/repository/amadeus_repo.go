package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"travel-agent-service/internal/domain/entity"
	"travel-agent-service/internal/domain/repository"
	"travel-agent-service/pkg/logger"
	"travel-agent-service/pkg/utils"
)

// AmadeusFlightRepository searches flight offers through the Amadeus Self-Service API
type AmadeusFlightRepository struct {
	baseURL    string
	httpClient *http.Client
	logger     logger.Logger
}

// NewAmadeusFlightRepository creates a new Amadeus flight repository.
// httpClient must attach the OAuth bearer token; nil means no credentials.
func NewAmadeusFlightRepository(baseURL string, httpClient *http.Client, logger logger.Logger) repository.FlightRepository {
	return &AmadeusFlightRepository{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		logger:     logger,
	}
}

// Amadeus flight offers response structures
type amadeusFlightOffersResponse struct {
	Data []amadeusFlightOffer `json:"data"`
}

type amadeusFlightOffer struct {
	Itineraries []struct {
		Segments []struct {
			Departure struct {
				IataCode string `json:"iataCode"`
				At       string `json:"at"`
			} `json:"departure"`
			Arrival struct {
				IataCode string `json:"iataCode"`
			} `json:"arrival"`
			CarrierCode string `json:"carrierCode"`
			Number      string `json:"number"`
		} `json:"segments"`
	} `json:"itineraries"`
}

// SearchOffers searches round-trip offers for one adult
func (r *AmadeusFlightRepository) SearchOffers(ctx context.Context, originCode, destinationCode string, departure, returnDate time.Time, max int) ([]entity.FlightOffer, error) {
	if r.httpClient == nil {
		return nil, fmt.Errorf("amadeus: %w", entity.ErrProviderNotConfigured)
	}

	params := url.Values{}
	params.Set("originLocationCode", originCode)
	params.Set("destinationLocationCode", destinationCode)
	params.Set("departureDate", departure.Format(utils.ISO_DATE_LAYOUT))
	params.Set("returnDate", returnDate.Format(utils.ISO_DATE_LAYOUT))
	params.Set("adults", "1")
	params.Set("max", strconv.Itoa(max))

	endpoint := r.baseURL + "/v2/shopping/flight-offers?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("flight search failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read flight offers: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("amadeus error (%d): %s", resp.StatusCode, string(body))
	}

	offers, err := parseFlightOffers(body)
	if err != nil {
		return nil, err
	}

	r.logger.Debug("Amadeus flight offers received",
		"origin", originCode,
		"destination", destinationCode,
		"count", len(offers))

	return offers, nil
}

func parseFlightOffers(data []byte) ([]entity.FlightOffer, error) {
	var resp amadeusFlightOffersResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse flight offers: %w", err)
	}

	offers := make([]entity.FlightOffer, 0, len(resp.Data))
	for _, offer := range resp.Data {
		if len(offer.Itineraries) == 0 || len(offer.Itineraries[0].Segments) == 0 {
			continue
		}
		seg := offer.Itineraries[0].Segments[0]
		offers = append(offers, entity.FlightOffer{
			CarrierCode: seg.CarrierCode,
			Number:      seg.Number,
			DepartureAt: seg.Departure.At,
			Origin:      seg.Departure.IataCode,
			Destination: seg.Arrival.IataCode,
		})
	}
	return offers, nil
}

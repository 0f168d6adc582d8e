package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"travel-agent-service/internal/domain/entity"
	"travel-agent-service/internal/domain/repository"
)

// OverpassRepository queries OpenStreetMap map elements through the Overpass API
type OverpassRepository struct {
	endpoint   string
	httpClient *http.Client
}

// NewOverpassRepository creates a new Overpass repository
func NewOverpassRepository(endpoint string, timeout time.Duration) repository.PlaceRepository {
	return &OverpassRepository{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type overpassResponse struct {
	Elements []struct {
		ID   int64             `json:"id"`
		Tags map[string]string `json:"tags"`
	} `json:"elements"`
}

// NearbyRestaurants returns restaurant nodes within radiusMeters of center,
// in provider order. Unnamed nodes are kept with an empty Name.
func (r *OverpassRepository) NearbyRestaurants(ctx context.Context, center entity.Coordinates, radiusMeters int) ([]entity.PointOfInterest, error) {
	query := fmt.Sprintf("[out:json]; node[amenity=restaurant](around:%d,%f,%f); out;",
		radiusMeters, center.Latitude, center.Longitude)

	params := url.Values{}
	params.Set("data", query)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("overpass returned status %d", resp.StatusCode)
	}

	var response overpassResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	pois := make([]entity.PointOfInterest, 0, len(response.Elements))
	for _, el := range response.Elements {
		pois = append(pois, entity.PointOfInterest{
			ID:   el.ID,
			Name: el.Tags["name"],
			Tags: el.Tags,
		})
	}
	return pois, nil
}

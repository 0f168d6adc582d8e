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
	"travel-agent-service/pkg/logger"
	"travel-agent-service/pkg/utils"
)

// EventbriteRepository searches events through the Eventbrite API
type EventbriteRepository struct {
	endpoint   string
	token      string
	httpClient *http.Client
	logger     logger.Logger
}

// NewEventbriteRepository creates a new Eventbrite repository. An empty token
// leaves the repository unconfigured.
func NewEventbriteRepository(endpoint, token string, timeout time.Duration, logger logger.Logger) repository.EventRepository {
	return &EventbriteRepository{
		endpoint:   endpoint,
		token:      token,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

type eventbriteSearchResponse struct {
	Events []struct {
		Name struct {
			Text string `json:"text"`
		} `json:"name"`
		Start struct {
			Local string `json:"local"`
		} `json:"start"`
	} `json:"events"`
}

// Configured reports whether a token is present
func (r *EventbriteRepository) Configured() bool {
	return r.token != ""
}

// Search returns events at location starting inside [start, end], sorted by date
func (r *EventbriteRepository) Search(ctx context.Context, location string, start, end time.Time, query string) ([]entity.Event, error) {
	if !r.Configured() {
		return nil, fmt.Errorf("eventbrite: %w", entity.ErrProviderNotConfigured)
	}

	params := url.Values{}
	params.Set("location.address", location)
	params.Set("start_date.range_start", start.Format(utils.ISO_DATE_LAYOUT))
	params.Set("start_date.range_end", end.Format(utils.ISO_DATE_LAYOUT))
	params.Set("token", r.token)
	params.Set("sort_by", "date")
	params.Set("q", query)

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
		return nil, fmt.Errorf("eventbrite returned status %d", resp.StatusCode)
	}

	var response eventbriteSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	events := make([]entity.Event, 0, len(response.Events))
	for _, ev := range response.Events {
		events = append(events, entity.Event{
			Name:       ev.Name.Text,
			LocalStart: ev.Start.Local,
		})
	}

	r.logger.Debug("Eventbrite events received", "location", location, "count", len(events))
	return events, nil
}

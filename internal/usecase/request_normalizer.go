package usecase

import (
	"time"

	"travel-agent-service/internal/domain/entity"
	"travel-agent-service/pkg/logger"
	"travel-agent-service/pkg/utils"
)

const (
	// DefaultLeadDays is how far ahead a trip starts when no start date is given
	DefaultLeadDays = 14
	// DefaultTripDays is the trip length when no end date is given
	DefaultTripDays = 7
)

// RequestNormalizer fills in missing trip dates
type RequestNormalizer struct {
	now    func() time.Time
	logger logger.Logger
}

// NewRequestNormalizer creates a new request normalizer. now defaults to time.Now.
func NewRequestNormalizer(now func() time.Time, logger logger.Logger) *RequestNormalizer {
	if now == nil {
		now = time.Now
	}
	return &RequestNormalizer{
		now:    now,
		logger: logger,
	}
}

// Normalize returns req with both dates set. Dates already present are kept.
// A defaulted start never falls after an explicit end date.
func (n *RequestNormalizer) Normalize(req entity.TripRequest) entity.TripRequest {
	if req.StartDate == nil {
		start := utils.AddDays(n.now(), DefaultLeadDays)
		if req.EndDate != nil && req.EndDate.Before(start) {
			start = *req.EndDate
		}
		req.StartDate = utils.DatePtr(start)
		n.logger.Info("No start_date: applying default", "start_date", utils.FormatISODate(req.StartDate))
	}
	if req.EndDate == nil {
		req.EndDate = utils.DatePtr(utils.AddDays(*req.StartDate, DefaultTripDays))
		n.logger.Info("No end_date: applying default", "end_date", utils.FormatISODate(req.EndDate))
	}
	return req
}

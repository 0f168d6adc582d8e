package httpapi

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"travel-agent-service/internal/domain/entity"
	"travel-agent-service/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	maxBodySize      = 10 * 1024
	defaultListLimit = 20
	maxListLimit     = 100
)

type createItineraryRequest struct {
	Query string `json:"query"`
}

type itineraryResponse struct {
	RunID       string                `json:"run_id"`
	Request     entity.TripRequest    `json:"request"`
	Origin      entity.Airport        `json:"origin"`
	Destination entity.Airport        `json:"destination"`
	Flights     []string              `json:"flights"`
	Events      []string              `json:"events"`
	Restaurants []string              `json:"restaurants"`
	Sources     []entity.SourceResult `json:"sources"`
	Itinerary   string                `json:"itinerary"`
}

func newItineraryResponse(it *entity.Itinerary) itineraryResponse {
	return itineraryResponse{
		RunID:       it.RunID,
		Request:     it.Request,
		Origin:      it.Origin,
		Destination: it.Destination,
		Flights:     it.Facts.Flights.Items,
		Events:      it.Facts.Events.Items,
		Restaurants: it.Facts.Restaurants.Items,
		Sources:     it.Facts.All(),
		Itinerary:   it.Text,
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"history": s.history != nil,
	})
}

// handleCreateItinerary runs the pipeline. ?format=pdf|ics returns the
// rendered document instead of JSON.
func (s *Server) handleCreateItinerary(c *gin.Context) {
	if c.Request.ContentLength > maxBodySize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "request body exceeds maximum size of 10KB"})
		return
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodySize)

	var body createItineraryRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "request body exceeds maximum size of 10KB"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	query := strings.TrimSpace(body.Query)
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query is required"})
		return
	}

	format := strings.ToLower(c.Query("format"))
	var exporter usecase.Exporter
	if format != "" {
		if s.exports != nil {
			exporter = s.exports.GetExporter("itinerary." + format)
		}
		if exporter == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unsupported format %q", format)})
			return
		}
	}

	result, err := s.runner.Run(c.Request.Context(), query, nil)
	if err != nil {
		status := statusForError(err)
		s.logger.Warn("Itinerary request failed", "status", status, "error", err)
		c.JSON(status, gin.H{"error": errorMessage(err)})
		return
	}

	if exporter != nil {
		var buf bytes.Buffer
		if err := exporter.Export(c.Request.Context(), &result.Itinerary, &buf); err != nil {
			s.logger.Error("Export failed", "runId", result.RunID, "format", format, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render itinerary"})
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=itinerary-%s.%s", result.RunID, format))
		c.Data(http.StatusOK, contentType(format), buf.Bytes())
		return
	}

	c.JSON(http.StatusOK, newItineraryResponse(&result.Itinerary))
}

func (s *Server) handleGetItinerary(c *gin.Context) {
	if s.history == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "itinerary history is disabled"})
		return
	}

	record, err := s.history.FindByRunID(c.Request.Context(), c.Param("runId"))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "itinerary not found"})
			return
		}
		s.logger.Error("Failed to load itinerary", "runId", c.Param("runId"), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load itinerary"})
		return
	}

	c.JSON(http.StatusOK, record)
}

func (s *Server) handleListItineraries(c *gin.Context) {
	if s.history == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "itinerary history is disabled"})
		return
	}

	limit := defaultListLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = min(n, maxListLimit)
	}

	records, err := s.history.FindRecent(c.Request.Context(), limit)
	if err != nil {
		s.logger.Error("Failed to list itineraries", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list itineraries"})
		return
	}
	if records == nil {
		records = []*entity.ItineraryRecord{}
	}

	c.JSON(http.StatusOK, gin.H{
		"count":       len(records),
		"itineraries": records,
	})
}

func statusForError(err error) int {
	switch {
	case usecase.IsResolutionError(err):
		return http.StatusUnprocessableEntity
	case usecase.IsGenerationError(err):
		return http.StatusBadGateway
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func errorMessage(err error) string {
	var stageErr *usecase.StageError
	if errors.As(err, &stageErr) {
		return stageErr.Err.Error()
	}
	return err.Error()
}

func contentType(format string) string {
	switch format {
	case "pdf":
		return "application/pdf"
	case "ics":
		return "text/calendar; charset=utf-8"
	default:
		return "application/octet-stream"
	}
}

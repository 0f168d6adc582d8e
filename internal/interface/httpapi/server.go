package httpapi

import (
	"context"
	"net/http"
	"time"

	"travel-agent-service/internal/domain/repository"
	"travel-agent-service/internal/usecase"
	"travel-agent-service/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// ItineraryRunner runs the itinerary pipeline for one query
type ItineraryRunner interface {
	Run(ctx context.Context, query string, presenter usecase.Presenter) (*usecase.Result, error)
}

// Server exposes the itinerary pipeline over HTTP
type Server struct {
	runner  ItineraryRunner
	history repository.ItineraryRepository
	exports usecase.ExportRouter
	logger  logger.Logger
	router  *gin.Engine
}

// NewServer creates the HTTP API. history and exports may be nil.
func NewServer(
	runner ItineraryRunner,
	history repository.ItineraryRepository,
	exports usecase.ExportRouter,
	metricsHandler http.Handler,
	allowedOrigins []string,
	logger logger.Logger,
) *Server {
	router := gin.New()
	router.Use(gin.Recovery())

	if len(allowedOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     allowedOrigins,
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
			ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
			AllowCredentials: false,
			MaxAge:           12 * time.Hour,
		}))
	}

	s := &Server{
		runner:  runner,
		history: history,
		exports: exports,
		logger:  logger,
		router:  router,
	}

	router.GET("/health", s.handleHealth)
	if metricsHandler != nil {
		router.GET("/metrics", gin.WrapH(metricsHandler))
	}

	api := router.Group("/api")
	{
		api.POST("/itinerary", s.handleCreateItinerary)
		api.GET("/itinerary/:runId", s.handleGetItinerary)
		api.GET("/itineraries", s.handleListItineraries)
	}

	return s
}

// Handler returns the http.Handler serving all routes
func (s *Server) Handler() http.Handler {
	return s.router
}

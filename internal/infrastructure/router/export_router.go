package router

import (
	"fmt"

	"travel-agent-service/internal/usecase"
	"travel-agent-service/pkg/logger"
)

// ExportRouter routes export paths to the exporter for their format
type ExportRouter struct {
	exporters []usecase.Exporter
	logger    logger.Logger
}

// NewExportRouter creates a new export router
func NewExportRouter(logger logger.Logger) *ExportRouter {
	return &ExportRouter{
		exporters: make([]usecase.Exporter, 0),
		logger:    logger,
	}
}

// Register registers an exporter. Earlier registrations win on overlap.
func (r *ExportRouter) Register(exporter usecase.Exporter) {
	r.exporters = append(r.exporters, exporter)
	r.logger.Debug("Registered exporter", "exporter", fmt.Sprintf("%T", exporter))
}

// GetExporter returns the exporter for a given path, or nil
func (r *ExportRouter) GetExporter(path string) usecase.Exporter {
	for _, exporter := range r.exporters {
		if exporter.CanHandle(path) {
			return exporter
		}
	}
	return nil
}

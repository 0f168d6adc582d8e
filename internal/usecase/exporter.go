package usecase

import (
	"context"
	"io"

	"travel-agent-service/internal/domain/entity"
)

// Exporter writes an itinerary in one file format
type Exporter interface {
	// CanHandle determines if this exporter produces the format of the given path
	CanHandle(path string) bool

	// Export writes the itinerary to w
	Export(ctx context.Context, itinerary *entity.Itinerary, w io.Writer) error
}

// ExportRouter routes export paths to the appropriate exporter
type ExportRouter interface {
	// Register registers an exporter
	Register(exporter Exporter)

	// GetExporter returns the exporter for a given path, or nil
	GetExporter(path string) Exporter
}

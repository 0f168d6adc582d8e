package usecase

import (
	"context"
	"fmt"
	"io"
	"os"

	"travel-agent-service/internal/domain/entity"
	"travel-agent-service/pkg/logger"
)

// ItineraryHeader precedes the itinerary text on the output channel
const ItineraryHeader = "\n--- Your Itinerary ---\n\n"

// ExportFailure describes one export that could not be written
type ExportFailure struct {
	Path string
	Err  error
}

// ItineraryPresenter prints the itinerary and writes any requested exports
type ItineraryPresenter struct {
	out         io.Writer
	router      ExportRouter
	exportPaths []string
	failures    []ExportFailure
	logger      logger.Logger
}

// NewItineraryPresenter creates a presenter writing to out. router may be nil
// when no exports are requested.
func NewItineraryPresenter(out io.Writer, router ExportRouter, exportPaths []string, logger logger.Logger) *ItineraryPresenter {
	return &ItineraryPresenter{
		out:         out,
		router:      router,
		exportPaths: exportPaths,
		logger:      logger,
	}
}

// Present writes the header and itinerary text, then the exports.
// Export failures are recorded but never fail the presentation.
func (p *ItineraryPresenter) Present(ctx context.Context, itinerary *entity.Itinerary) error {
	if _, err := fmt.Fprint(p.out, ItineraryHeader+itinerary.Text+"\n"); err != nil {
		return fmt.Errorf("failed to write itinerary: %w", err)
	}

	for _, path := range p.exportPaths {
		if err := p.export(ctx, itinerary, path); err != nil {
			p.logger.Error("Export failed", "path", path, "error", err)
			p.failures = append(p.failures, ExportFailure{Path: path, Err: err})
			continue
		}
		p.logger.Info("Itinerary exported", "path", path)
	}
	return nil
}

// Failures returns the exports that could not be written
func (p *ItineraryPresenter) Failures() []ExportFailure {
	return p.failures
}

func (p *ItineraryPresenter) export(ctx context.Context, itinerary *entity.Itinerary, path string) error {
	if p.router == nil {
		return fmt.Errorf("no exporters registered")
	}
	exporter := p.router.GetExporter(path)
	if exporter == nil {
		return fmt.Errorf("unsupported export format for %s", path)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}

	if err := exporter.Export(ctx, itinerary, f); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}

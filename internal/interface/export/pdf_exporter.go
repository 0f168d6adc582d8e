package export

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"travel-agent-service/internal/domain/entity"
	"travel-agent-service/pkg/logger"
	"travel-agent-service/pkg/utils"

	"github.com/jung-kurt/gofpdf"
)

// PDFExporter renders an itinerary as an A4 PDF document
type PDFExporter struct {
	logger logger.Logger
}

// NewPDFExporter creates a new PDF exporter
func NewPDFExporter(logger logger.Logger) *PDFExporter {
	return &PDFExporter{logger: logger}
}

// CanHandle determines if the path names a PDF file
func (e *PDFExporter) CanHandle(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".pdf")
}

func (e *PDFExporter) render(it *entity.Itinerary) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 20)

	// core fonts are cp1252
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	// Footer on every page, including auto page breaks
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetTextColor(150, 150, 150)
		pdf.CellFormat(0, 8, tr(fmt.Sprintf("Run %s - generated %s", it.RunID, it.GeneratedAt.UTC().Format("02 Jan 2006, 15:04 UTC"))),
			"", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	// Header bar
	pdf.SetFillColor(13, 24, 37)
	pdf.Rect(0, 0, 210, 28, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetXY(20, 8)
	pdf.CellFormat(170, 10, tr(fmt.Sprintf("%s to %s", it.Request.Origin, it.Request.Destination)), "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(212, 168, 67)
	pdf.SetXY(20, 18)
	pdf.CellFormat(170, 6, "Travel Itinerary", "", 1, "L", false, 0, "")

	pdf.SetY(35)
	pdf.SetTextColor(0, 0, 0)

	sectionHeader := func(title string) {
		pdf.SetFillColor(13, 24, 37)
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(170, 8, "  "+tr(title), "", 1, "L", true, 0, "")
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(2)
	}

	row := func(label, value string) {
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(100, 100, 100)
		pdf.CellFormat(45, 7, tr(label), "", 0, "L", false, 0, "")
		pdf.SetTextColor(20, 20, 20)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.MultiCell(125, 7, tr(value), "", "L", false)
	}

	// Trip overview
	sectionHeader("Trip Overview")
	row("Route", fmt.Sprintf("%s (%s) - %s (%s)",
		it.Request.Origin, it.Origin.Code, it.Request.Destination, it.Destination.Code))
	row("Departure", utils.FormatISODate(it.Request.StartDate))
	row("Return", utils.FormatISODate(it.Request.EndDate))
	row("Duration", fmt.Sprintf("%d nights", it.Request.Nights()))
	if it.Request.Budget != nil {
		row("Budget", fmt.Sprintf("%.2f", *it.Request.Budget))
	}
	if len(it.Request.Interests) > 0 {
		row("Interests", strings.Join(it.Request.Interests, ", "))
	}
	pdf.Ln(4)

	// Facts
	sectionHeader("Highlights")
	row("Flights", factLines(it.Facts.Flights))
	row("Events", factLines(it.Facts.Events))
	row("Restaurants", factLines(it.Facts.Restaurants))
	pdf.Ln(4)

	// Narrative
	sectionHeader("Day by Day")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(40, 40, 40)
	pdf.MultiCell(170, 5, tr(it.Text), "", "L", false)

	return pdf
}

// Export writes the PDF document to w
func (e *PDFExporter) Export(ctx context.Context, it *entity.Itinerary, w io.Writer) error {
	pdf := e.render(it)
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("PDF output failed: %w", err)
	}

	e.logger.Debug("PDF itinerary rendered", "runId", it.RunID, "pages", pdf.PageCount())
	return nil
}

func factLines(res entity.SourceResult) string {
	if len(res.Items) == 0 {
		return utils.NoneLiteral
	}
	return strings.Join(res.Items, "\n")
}

package router

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"travel-agent-service/internal/interface/export"
	"travel-agent-service/pkg/logger"
)

func TestExportRouter_GetExporter(t *testing.T) {
	log := logger.NewNopLogger()
	r := NewExportRouter(log)
	pdf := export.NewPDFExporter(log)
	ics := export.NewICSExporter(log)
	r.Register(pdf)
	r.Register(ics)

	assert.Same(t, pdf, r.GetExporter("trip.pdf"))
	assert.Same(t, ics, r.GetExporter("/tmp/Trip.ICS"))
	assert.Nil(t, r.GetExporter("trip.docx"))
	assert.Nil(t, r.GetExporter("pdf"))
}

func TestExportRouter_Empty(t *testing.T) {
	r := NewExportRouter(logger.NewNopLogger())

	assert.Nil(t, r.GetExporter("trip.pdf"))
}

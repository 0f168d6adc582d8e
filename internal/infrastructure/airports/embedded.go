// Package airports provides the built-in airport directory dataset.
package airports

import (
	"context"
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"travel-agent-service/internal/domain/entity"
	"travel-agent-service/internal/domain/repository"
)

//go:embed airports.yaml
var dataset []byte

// EmbeddedRepository serves the airport directory compiled into the binary
type EmbeddedRepository struct {
	data []byte
}

// NewEmbeddedRepository creates a repository over the built-in dataset.
// It only covers major airports; load a full IATA directory through
// AIRPORTS_FILE or AIRPORTS_POSTGRES_DSN for wider coverage.
func NewEmbeddedRepository() repository.AirportRepository {
	return &EmbeddedRepository{data: dataset}
}

// NewYAMLRepository creates a repository over an arbitrary YAML document
// with the same layout as the built-in dataset
func NewYAMLRepository(data []byte) repository.AirportRepository {
	return &EmbeddedRepository{data: data}
}

// LoadAll decodes every airport record
func (r *EmbeddedRepository) LoadAll(_ context.Context) ([]entity.Airport, error) {
	var records []entity.Airport
	if err := yaml.Unmarshal(r.data, &records); err != nil {
		return nil, fmt.Errorf("failed to decode airport dataset: %w", err)
	}
	return records, nil
}

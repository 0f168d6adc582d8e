package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel-agent-service/internal/infrastructure/config"
	"travel-agent-service/pkg/logger"
)

const springfieldAirports = `
- code: SGF
  name: "Springfield-Branson National Airport"
  city: "Springfield"
  country: "US"
  lat: 37.2457
  lon: -93.3886
`

func TestNewResolver_AirportsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "airports.yaml")
	require.NoError(t, os.WriteFile(path, []byte(springfieldAirports), 0o600))
	a := &app{cfg: &config.Config{AirportsFile: path}, log: logger.NewNopLogger()}

	resolver, err := a.newResolver(context.Background())

	require.NoError(t, err)
	airport, err := resolver.Resolve("Springfield")
	require.NoError(t, err)
	assert.Equal(t, "SGF", airport.Code)
	assert.Equal(t, "America/Chicago", airport.TzName)
	_, err = resolver.Resolve("Paris")
	assert.Error(t, err)
}

func TestNewResolver_MissingAirportsFile(t *testing.T) {
	a := &app{cfg: &config.Config{AirportsFile: filepath.Join(t.TempDir(), "missing.yaml")}, log: logger.NewNopLogger()}

	_, err := a.newResolver(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "airport directory")
}

func TestNewResolver_EmbeddedDefault(t *testing.T) {
	a := &app{cfg: &config.Config{}, log: logger.NewNopLogger()}

	resolver, err := a.newResolver(context.Background())

	require.NoError(t, err)
	airport, err := resolver.Resolve("Paris")
	require.NoError(t, err)
	assert.Equal(t, "CDG", airport.Code)
}

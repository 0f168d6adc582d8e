package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel-agent-service/internal/domain/entity"
)

func TestTripExtractor_Extract(t *testing.T) {
	gen := &fakeGenerator{json: "```json\n" + `{"origin":" Boston ","destination":"Denver","start_date":"2024-09-01","end_date":"2024-09-08","budget":1000,"interests":["skiing",""," hiking "]}` + "\n```"}
	e := NewTripExtractor(gen, clock, nopLog)

	req, err := e.Extract(context.Background(), "Flight from Boston to Denver Sept 1-8, budget $1000, interests skiing")

	require.NoError(t, err)
	assert.Equal(t, "Boston", req.Origin)
	assert.Equal(t, "Denver", req.Destination)
	assert.Equal(t, *date(2024, 9, 1), *req.StartDate)
	assert.Equal(t, *date(2024, 9, 8), *req.EndDate)
	require.NotNil(t, req.Budget)
	assert.Equal(t, 1000.0, *req.Budget)
	assert.Equal(t, []string{"skiing", "hiking"}, req.Interests)

	require.Len(t, gen.requests, 1)
	sent := gen.requests[0]
	assert.Contains(t, sent.System, "2025-03-10")
	require.NotNil(t, sent.Schema)
	assert.Equal(t, "trip_request", sent.Schema.Name)
	require.NotNil(t, sent.Temperature)
	assert.Zero(t, *sent.Temperature)
}

func TestTripExtractor_OptionalFieldsAbsent(t *testing.T) {
	gen := &fakeGenerator{json: `{"origin":"Boston","destination":"Denver","start_date":null,"end_date":"","budget":null,"interests":[]}`}
	e := NewTripExtractor(gen, clock, nopLog)

	req, err := e.Extract(context.Background(), "Boston to Denver")

	require.NoError(t, err)
	assert.Nil(t, req.StartDate)
	assert.Nil(t, req.EndDate)
	assert.Nil(t, req.Budget)
	assert.Nil(t, req.Interests)
}

func TestTripExtractor_InvalidOutput(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{"not json", "I think you want to go to Denver"},
		{"missing destination", `{"origin":"Boston","destination":"  "}`},
		{"missing origin", `{"destination":"Denver"}`},
		{"bad date", `{"origin":"Boston","destination":"Denver","start_date":"Sept 1"}`},
		{"end before start", `{"origin":"Boston","destination":"Denver","start_date":"2024-09-08","end_date":"2024-09-01"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewTripExtractor(&fakeGenerator{json: tt.json}, clock, nopLog)

			_, err := e.Extract(context.Background(), "a trip")

			assert.True(t, errors.Is(err, entity.ErrInvalidExtraction))
			assert.True(t, errors.Is(err, entity.ErrGeneration))
		})
	}
}

func TestTripExtractor_GeneratorFailure(t *testing.T) {
	e := NewTripExtractor(&fakeGenerator{jsonErr: errors.New("connection reset")}, clock, nopLog)

	_, err := e.Extract(context.Background(), "Boston to Denver")

	assert.True(t, errors.Is(err, entity.ErrGeneration))
	assert.ErrorContains(t, err, "connection reset")
}

func TestTripExtractor_EmptyQuery(t *testing.T) {
	gen := &fakeGenerator{}
	e := NewTripExtractor(gen, clock, nopLog)

	_, err := e.Extract(context.Background(), "   ")

	assert.True(t, errors.Is(err, entity.ErrInvalidExtraction))
	assert.Empty(t, gen.requests)
}

package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel-agent-service/internal/domain/entity"
)

func TestRequestNormalizer_KeepsExplicitDates(t *testing.T) {
	n := NewRequestNormalizer(clock, nopLog)
	req := entity.TripRequest{Origin: "Boston", Destination: "Denver", StartDate: date(2024, 9, 1), EndDate: date(2024, 9, 8)}

	out := n.Normalize(req)

	assert.Equal(t, *date(2024, 9, 1), *out.StartDate)
	assert.Equal(t, *date(2024, 9, 8), *out.EndDate)
}

func TestRequestNormalizer_DefaultsBothDates(t *testing.T) {
	n := NewRequestNormalizer(clock, nopLog)

	out := n.Normalize(entity.TripRequest{Origin: "Boston", Destination: "Denver"})

	require.True(t, out.HasDates())
	assert.Equal(t, *date(2025, 3, 24), *out.StartDate)
	assert.Equal(t, *date(2025, 3, 31), *out.EndDate)
	assert.Equal(t, 7, out.Nights())
}

func TestRequestNormalizer_EndFollowsExplicitStart(t *testing.T) {
	n := NewRequestNormalizer(clock, nopLog)

	out := n.Normalize(entity.TripRequest{StartDate: date(2025, 6, 1)})

	assert.Equal(t, *date(2025, 6, 1), *out.StartDate)
	assert.Equal(t, *date(2025, 6, 8), *out.EndDate)
}

func TestRequestNormalizer_StartDefaultsWhenOnlyEndGiven(t *testing.T) {
	n := NewRequestNormalizer(clock, nopLog)

	out := n.Normalize(entity.TripRequest{EndDate: date(2025, 12, 31)})

	assert.Equal(t, *date(2025, 3, 24), *out.StartDate)
	assert.Equal(t, *date(2025, 12, 31), *out.EndDate)
}

func TestRequestNormalizer_StartClampedToEarlyEnd(t *testing.T) {
	n := NewRequestNormalizer(clock, nopLog)

	out := n.Normalize(entity.TripRequest{Origin: "Boston", Destination: "Denver", EndDate: date(2025, 3, 15)})

	assert.Equal(t, *date(2025, 3, 15), *out.StartDate)
	assert.Equal(t, *date(2025, 3, 15), *out.EndDate)
	assert.False(t, out.EndDate.Before(*out.StartDate))
}

func TestRequestNormalizer_DoesNotMutateInput(t *testing.T) {
	n := NewRequestNormalizer(clock, nopLog)
	req := entity.TripRequest{}

	_ = n.Normalize(req)

	assert.Nil(t, req.StartDate)
	assert.Nil(t, req.EndDate)
}

func TestRequestNormalizer_DefaultClock(t *testing.T) {
	n := NewRequestNormalizer(nil, nopLog)

	out := n.Normalize(entity.TripRequest{})

	today := time.Now()
	expected := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, DefaultLeadDays)
	assert.Equal(t, expected, *out.StartDate)
}

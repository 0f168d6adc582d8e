package utils_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel-agent-service/pkg/utils"
)

func TestParseISODate(t *testing.T) {
	got, err := utils.ParseISODate(" 2024-09-01 ")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC), got)

	_, err = utils.ParseISODate("Sept 1")
	assert.Error(t, err)
}

func TestAddDays_CrossesMonth(t *testing.T) {
	start := time.Date(2024, 8, 28, 15, 30, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 9, 4, 0, 0, 0, 0, time.UTC), utils.AddDays(start, 7))
}

func TestFormatISODate(t *testing.T) {
	assert.Equal(t, "", utils.FormatISODate(nil))
	d := time.Date(2024, 9, 8, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-09-08", utils.FormatISODate(&d))
}

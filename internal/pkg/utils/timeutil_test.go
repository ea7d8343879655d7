//go:build unit
// +build unit

package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOptionalTime(t *testing.T) {
	zero, err := ParseOptionalTime("")
	require.NoError(t, err)
	assert.True(t, zero.IsZero())

	parsed, err := ParseOptionalTime("2026-01-02T03:04:05Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC), parsed)

	_, err = ParseOptionalTime("02/01/2026")
	require.Error(t, err)
}

func TestStartOfDay(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// 03:00 UTC is still the previous evening in New York
	ts := time.Date(2026, 5, 10, 3, 0, 0, 0, time.UTC)
	start := StartOfDay(ts, loc)

	assert.Equal(t, time.Date(2026, 5, 9, 0, 0, 0, 0, loc), start)
	assert.Equal(t, time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC), StartOfDay(ts, time.UTC))
}

func TestDayBounds_DaylightSavingEnd(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	// clocks go back at 03:00 CEST, so the day lasts 25h
	ts := time.Date(2026, 10, 25, 23, 15, 0, 0, loc)
	start, end := DayBounds(ts, loc)

	assert.Equal(t, time.Date(2026, 10, 24, 22, 0, 0, 0, time.UTC), start.UTC())
	assert.Equal(t, time.Date(2026, 10, 25, 23, 0, 0, 0, time.UTC), end.UTC())
	assert.Equal(t, 25*time.Hour, end.Sub(start))
}

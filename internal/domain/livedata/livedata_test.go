//go:build unit
// +build unit

package livedata

import (
	"testing"
	"time"

	"github.com/pandamaske/biibii-sub002/internal/domain/care"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestSummarize(t *testing.T) {
	day := time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC)
	now := day.Add(14 * time.Hour)

	feedings := []*care.FeedingEntry{
		{Type: care.FeedingBottle, StartTime: day.Add(2 * time.Hour), AmountMl: ptr(120.0)},
		{Type: care.FeedingBreast, StartTime: day.Add(6 * time.Hour), Side: ptr(care.SideLeft)},
		{Type: care.FeedingBottle, StartTime: day.Add(10 * time.Hour), AmountMl: ptr(90.0)},
		{Type: care.FeedingBottle, StartTime: day.Add(-1 * time.Hour), AmountMl: ptr(60.0)},
	}
	diapers := []*care.DiaperEntry{
		{Type: care.DiaperWet, OccurredAt: day.Add(1 * time.Hour)},
		{Type: care.DiaperMixed, OccurredAt: day.Add(5 * time.Hour)},
		{Type: care.DiaperDirty, OccurredAt: day.Add(9 * time.Hour)},
		{Type: care.DiaperDry, OccurredAt: day.Add(11 * time.Hour)},
		{Type: care.DiaperWet, OccurredAt: day.Add(-30 * time.Minute)},
	}
	sleeps := []*care.SleepEntry{
		// overnight sleep: only the 3h after midnight count
		{Type: care.SleepNight, StartTime: day.Add(-4 * time.Hour), EndTime: ptr(day.Add(3 * time.Hour))},
		{Type: care.SleepNap, StartTime: day.Add(8 * time.Hour), EndTime: ptr(day.Add(9*time.Hour + 30*time.Minute))},
		// ongoing nap, counted until now
		{Type: care.SleepNap, StartTime: day.Add(13 * time.Hour)},
	}

	s := Summarize(day, day.AddDate(0, 0, 1), now, feedings, diapers, sleeps)

	assert.Equal(t, day, s.Date)
	assert.Equal(t, 3, s.Feedings)
	assert.InDelta(t, 210.0, s.BottleMl, 0.001)
	require.NotNil(t, s.LastFeedingAt)
	assert.Equal(t, day.Add(10*time.Hour), *s.LastFeedingAt)
	assert.Equal(t, 4, s.Diapers)
	assert.Equal(t, 2, s.WetDiapers)
	assert.Equal(t, 2, s.DirtyDiapers)
	assert.Equal(t, 180+90+60, s.SleepMinutes)
	assert.Equal(t, 2, s.Naps)
}

func TestSummarize_Empty(t *testing.T) {
	day := time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC)
	s := Summarize(day, day.AddDate(0, 0, 1), day.Add(time.Hour), nil, nil, nil)

	assert.Zero(t, s.Feedings)
	assert.Zero(t, s.SleepMinutes)
	assert.Nil(t, s.LastFeedingAt)
}

func TestSummarize_LongLocalDay(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	// 2026-10-25 has 25 hours in Berlin
	dayStart := time.Date(2026, 10, 25, 0, 0, 0, 0, loc).UTC()
	dayEnd := time.Date(2026, 10, 26, 0, 0, 0, 0, loc).UTC()
	lateFeed := time.Date(2026, 10, 25, 23, 15, 0, 0, loc).UTC()
	now := time.Date(2026, 10, 25, 23, 40, 0, 0, loc).UTC()

	feedings := []*care.FeedingEntry{
		{Type: care.FeedingBottle, StartTime: lateFeed, AmountMl: ptr(100.0)},
	}
	diapers := []*care.DiaperEntry{
		{Type: care.DiaperWet, OccurredAt: lateFeed.Add(5 * time.Minute)},
	}
	sleeps := []*care.SleepEntry{
		{Type: care.SleepNap, StartTime: time.Date(2026, 10, 25, 22, 30, 0, 0, loc).UTC(), EndTime: ptr(time.Date(2026, 10, 25, 23, 30, 0, 0, loc).UTC())},
	}

	s := Summarize(dayStart, dayEnd, now, feedings, diapers, sleeps)

	assert.Equal(t, 1, s.Feedings)
	assert.InDelta(t, 100.0, s.BottleMl, 0.001)
	assert.Equal(t, 1, s.Diapers)
	assert.Equal(t, 1, s.Naps)
	assert.Equal(t, 60, s.SleepMinutes)
}

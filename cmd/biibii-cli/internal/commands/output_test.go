//go:build unit
// +build unit

package commands

import (
	"bytes"
	"errors"
	"testing"
	"time"

	v1 "github.com/pandamaske/biibii-sub002/internal/api/rest/v1"
	"github.com/pandamaske/biibii-sub002/internal/client"

	"github.com/stretchr/testify/assert"
)

func TestFormatMinutes(t *testing.T) {
	tests := []struct {
		minutes  int
		expected string
	}{
		{0, "0m"},
		{59, "59m"},
		{60, "1h00m"},
		{135, "2h15m"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, formatMinutes(tt.minutes))
	}
}

func TestFormatAge(t *testing.T) {
	assert.Equal(t, "1 day", formatAge(1, 0))
	assert.Equal(t, "45 days", formatAge(45, 1))
	assert.Equal(t, "5 months", formatAge(160, 5))
}

func TestPrintBabies_MarksActive(t *testing.T) {
	var buf bytes.Buffer
	printBabies(&buf, []v1.BabyResponse{
		{ID: "a", Name: "Mia", AgeDays: 3},
		{ID: "b", Name: "Noah", AgeDays: 400, AgeMonths: 13},
	}, "b")

	out := buf.String()
	assert.Contains(t, out, "  a  Mia")
	assert.Contains(t, out, "* b  Noah")
	assert.Contains(t, out, "13 months")

	buf.Reset()
	printBabies(&buf, nil, "")
	assert.Equal(t, "no babies\n", buf.String())
}

func TestPrintPollState(t *testing.T) {
	now := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)
	snapshot := &v1.LiveDataResponse{
		Baby:        v1.BabyResponse{Name: "Mia", AgeDays: 12},
		GeneratedAt: now,
		LastFeeding: &v1.FeedingResponse{Type: "bottle", StartTime: now.Add(-95 * time.Minute)},
		ActiveSleep: &v1.SleepResponse{StartTime: now.Add(-20 * time.Minute)},
		Today:       v1.DailySummaryResponse{Date: "2026-04-01", Feedings: 5, BottleMl: 300, Naps: 2, SleepMinutes: 130},
	}

	var buf bytes.Buffer
	printPollState(&buf, client.PollState[*v1.LiveDataResponse]{Data: snapshot, Loading: true})
	assert.Empty(t, buf.String(), "loading states are not printed")

	printPollState(&buf, client.PollState[*v1.LiveDataResponse]{Data: snapshot, UpdatedAt: now})
	out := buf.String()
	assert.Contains(t, out, "== Mia (12 days) 2026-04-01 ==")
	assert.Contains(t, out, "feedings: 5 (300 ml bottle)")
	assert.Contains(t, out, "sleep: 2h10m in 2 naps")
	assert.Contains(t, out, "last feeding: bottle 1h35m ago")
	assert.Contains(t, out, "sleeping for 20m")

	buf.Reset()
	printPollState(&buf, client.PollState[*v1.LiveDataResponse]{Data: snapshot, Err: errors.New("offline"), UpdatedAt: now})
	assert.Contains(t, buf.String(), "refresh failed: offline (showing data from 12:00PM)")
	assert.Contains(t, buf.String(), "== Mia")

	buf.Reset()
	printPollState(&buf, client.PollState[*v1.LiveDataResponse]{Err: errors.New("offline")})
	assert.Equal(t, "refresh failed: offline\n", buf.String())
}

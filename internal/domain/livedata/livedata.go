// Package livedata defines the denormalized snapshot polled by clients to show
// what is happening with a baby right now.
package livedata

import (
	"context"
	"time"

	"github.com/pandamaske/biibii-sub002/internal/domain/activity"
	"github.com/pandamaske/biibii-sub002/internal/domain/care"
	"github.com/pandamaske/biibii-sub002/internal/domain/family"
	"github.com/pandamaske/biibii-sub002/internal/domain/health"
)

// Snapshot limits
const (
	UpcomingWindow       = 7 * 24 * time.Hour
	MaxUpcoming          = 5
	MaxRecentActivity    = 10
	SleepLookbackForDays = 24 * time.Hour
)

// Snapshot is everything the dashboard needs in one payload.
type Snapshot struct {
	Baby                 *family.Baby
	GeneratedAt          time.Time
	TimeZone             string
	LastFeeding          *care.FeedingEntry
	LastDiaper           *care.DiaperEntry
	ActiveSleep          *care.SleepEntry
	LastSleep            *care.SleepEntry
	Today                DailySummary
	UpcomingAppointments []*health.Appointment
	ActiveMedications    []*health.Medication
	RecentActivity       []*activity.Log
}

// DailySummary aggregates one calendar day of care entries.
type DailySummary struct {
	Date          time.Time
	Feedings      int
	BottleMl      float64
	Diapers       int
	WetDiapers    int
	DirtyDiapers  int
	SleepMinutes  int
	Naps          int
	LastFeedingAt *time.Time
}

// Summarize aggregates the entries falling in [dayStart, dayEnd). The bounds
// are local midnights, so a day may last 23 or 25 hours.
// Sleeps may start before the day; only the overlapping part counts, and an
// ongoing sleep counts up to now.
func Summarize(dayStart, dayEnd, now time.Time, feedings []*care.FeedingEntry, diapers []*care.DiaperEntry, sleeps []*care.SleepEntry) DailySummary {
	inDay := func(t time.Time) bool { return !t.Before(dayStart) && t.Before(dayEnd) }

	summary := DailySummary{Date: dayStart}

	for _, f := range feedings {
		if !inDay(f.StartTime) {
			continue
		}
		summary.Feedings++
		if f.AmountMl != nil && f.Type == care.FeedingBottle {
			summary.BottleMl += *f.AmountMl
		}
		if summary.LastFeedingAt == nil || f.StartTime.After(*summary.LastFeedingAt) {
			start := f.StartTime
			summary.LastFeedingAt = &start
		}
	}

	for _, d := range diapers {
		if !inDay(d.OccurredAt) {
			continue
		}
		summary.Diapers++
		if d.IsWet() {
			summary.WetDiapers++
		}
		if d.IsDirty() {
			summary.DirtyDiapers++
		}
	}

	var slept time.Duration
	for _, s := range sleeps {
		slept += s.OverlapWith(dayStart, dayEnd, now)
		if s.Type == care.SleepNap && inDay(s.StartTime) {
			summary.Naps++
		}
	}
	summary.SleepMinutes = int(slept / time.Minute)

	return summary
}

// Service builds snapshots.
type Service interface {
	// Get returns the snapshot for babyID with "today" computed in loc
	Get(ctx context.Context, babyID string, loc *time.Location) (*Snapshot, error)
}

// Cache stores snapshots per baby and time zone.
type Cache interface {
	// Get returns the cached snapshot and whether it was present
	Get(ctx context.Context, babyID, tz string) (*Snapshot, bool, error)
	// Set stores a snapshot
	Set(ctx context.Context, snapshot *Snapshot) error
	// Invalidate drops every cached snapshot of babyID
	Invalidate(ctx context.Context, babyID string) error
}

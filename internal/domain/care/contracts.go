package care

import (
	"context"

	"github.com/pandamaske/biibii-sub002/internal/domain/records"
)

// FeedingService manages feeding entries.
type FeedingService = records.Service[FeedingEntry]

// FeedingRepository persists feeding entries.
type FeedingRepository = records.Repository[FeedingEntry]

// SleepService manages sleep entries.
type SleepService = records.Service[SleepEntry]

// SleepRepository persists sleep entries.
type SleepRepository interface {
	records.Repository[SleepEntry]
	// FindOngoing returns the baby's sleep without an end time, or ErrNotFound
	FindOngoing(ctx context.Context, babyID string) (*SleepEntry, error)
}

// DiaperService manages diaper entries.
type DiaperService = records.Service[DiaperEntry]

// DiaperRepository persists diaper entries.
type DiaperRepository = records.Repository[DiaperEntry]

package care

import (
	"time"

	"github.com/pandamaske/biibii-sub002/internal/domain/records"
)

// Feeding types
const (
	FeedingBreast = "breast"
	FeedingBottle = "bottle"
	FeedingSolid  = "solid"
)

// Breast sides
const (
	SideLeft  = "left"
	SideRight = "right"
	SideBoth  = "both"
)

// FeedingEntry records one feed.
type FeedingEntry struct {
	records.Base
	BabyID    string     `validate:"required,uuid4"`
	Type      string     `validate:"required,oneof=breast bottle solid"`
	StartTime time.Time  `validate:"required,notfuture"`
	EndTime   *time.Time `validate:"omitempty,gtfield=StartTime,notfuture"`
	Side      *string    `validate:"omitempty,oneof=left right both"`
	AmountMl  *float64   `validate:"omitempty,gt=0,lte=1000"`
	Food      string     `validate:"max=200"`
	Notes     string     `validate:"max=2000"`
}

// Validate checks the struct tags and that side is only set for breast feeds.
func (f *FeedingEntry) Validate() error {
	if err := records.Check(f); err != nil {
		return err
	}
	if f.Side != nil && f.Type != FeedingBreast {
		return records.Invalidf("Side is only valid for breast feedings")
	}
	return nil
}

// OwnerBabyID returns the baby the feed belongs to.
func (f *FeedingEntry) OwnerBabyID() string { return f.BabyID }

// Duration returns the feed length, or zero when it has no end.
func (f *FeedingEntry) Duration() time.Duration {
	if f.EndTime == nil {
		return 0
	}
	return f.EndTime.Sub(f.StartTime)
}

// FeedingPatch carries the optional fields of a feeding update.
type FeedingPatch struct {
	Type      *string
	StartTime *time.Time
	EndTime   *time.Time
	Side      *string
	AmountMl  *float64
	Food      *string
	Notes     *string
}

// Apply copies supplied fields onto f. Switching away from a breast feed
// drops the side unless the patch sets one.
func (p FeedingPatch) Apply(f *FeedingEntry) {
	if p.Type != nil {
		f.Type = *p.Type
		if f.Type != FeedingBreast {
			f.Side = nil
		}
	}
	if p.StartTime != nil {
		f.StartTime = *p.StartTime
	}
	if p.EndTime != nil {
		f.EndTime = p.EndTime
	}
	if p.Side != nil {
		f.Side = p.Side
	}
	if p.AmountMl != nil {
		f.AmountMl = p.AmountMl
	}
	if p.Food != nil {
		f.Food = *p.Food
	}
	if p.Notes != nil {
		f.Notes = *p.Notes
	}
}

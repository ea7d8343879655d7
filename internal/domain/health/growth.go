package health

import (
	"time"

	"github.com/pandamaske/biibii-sub002/internal/domain/records"
)

// GrowthEntry is one set of body measurements.
type GrowthEntry struct {
	records.Base
	BabyID              string    `validate:"required,uuid4"`
	MeasuredAt          time.Time `validate:"required,notfuture"`
	WeightGrams         *float64  `validate:"omitempty,gt=0,lt=50000"`
	LengthCm            *float64  `validate:"omitempty,gt=0,lt=200"`
	HeadCircumferenceCm *float64  `validate:"omitempty,gt=0,lt=100"`
	Notes               string    `validate:"max=2000"`
}

// Validate checks the struct tags and that at least one measurement is present.
func (g *GrowthEntry) Validate() error {
	if err := records.Check(g); err != nil {
		return err
	}
	if g.WeightGrams == nil && g.LengthCm == nil && g.HeadCircumferenceCm == nil {
		return records.Invalidf("at least one of weight, length or head circumference is required")
	}
	return nil
}

// OwnerBabyID returns the measured baby.
func (g *GrowthEntry) OwnerBabyID() string { return g.BabyID }

// GrowthPatch carries the optional fields of a growth update.
type GrowthPatch struct {
	MeasuredAt          *time.Time
	WeightGrams         *float64
	LengthCm            *float64
	HeadCircumferenceCm *float64
	Notes               *string
}

// Apply copies supplied fields onto g.
func (p GrowthPatch) Apply(g *GrowthEntry) {
	if p.MeasuredAt != nil {
		g.MeasuredAt = *p.MeasuredAt
	}
	if p.WeightGrams != nil {
		g.WeightGrams = p.WeightGrams
	}
	if p.LengthCm != nil {
		g.LengthCm = p.LengthCm
	}
	if p.HeadCircumferenceCm != nil {
		g.HeadCircumferenceCm = p.HeadCircumferenceCm
	}
	if p.Notes != nil {
		g.Notes = *p.Notes
	}
}

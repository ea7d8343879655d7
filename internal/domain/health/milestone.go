package health

import (
	"time"

	"github.com/pandamaske/biibii-sub002/internal/domain/records"
)

// DevelopmentalMilestone is a skill the baby is expected to reach or has reached.
type DevelopmentalMilestone struct {
	records.Base
	BabyID            string     `validate:"required,uuid4"`
	Category          string     `validate:"required,oneof=motor cognitive social language other"`
	Title             string     `validate:"required,min=1,max=200"`
	ExpectedAgeMonths *int       `validate:"omitempty,gte=0,lte=72"`
	AchievedAt        *time.Time `validate:"omitempty,notfuture"`
	Notes             string     `validate:"max=2000"`
}

// Validate checks the struct tags.
func (m *DevelopmentalMilestone) Validate() error { return records.Check(m) }

// OwnerBabyID returns the baby the milestone is tracked for.
func (m *DevelopmentalMilestone) OwnerBabyID() string { return m.BabyID }

// Achieved reports whether the milestone has been reached.
func (m *DevelopmentalMilestone) Achieved() bool { return m.AchievedAt != nil }

// MilestonePatch carries the optional fields of a milestone update.
type MilestonePatch struct {
	Category          *string
	Title             *string
	ExpectedAgeMonths *int
	AchievedAt        *time.Time
	Notes             *string
}

// Apply copies supplied fields onto m.
func (p MilestonePatch) Apply(m *DevelopmentalMilestone) {
	if p.Category != nil {
		m.Category = *p.Category
	}
	if p.Title != nil {
		m.Title = *p.Title
	}
	if p.ExpectedAgeMonths != nil {
		m.ExpectedAgeMonths = p.ExpectedAgeMonths
	}
	if p.AchievedAt != nil {
		m.AchievedAt = p.AchievedAt
	}
	if p.Notes != nil {
		m.Notes = *p.Notes
	}
}

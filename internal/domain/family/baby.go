package family

import (
	"time"

	"github.com/pandamaske/biibii-sub002/internal/domain/records"
)

// Gender values
const (
	GenderFemale = "female"
	GenderMale   = "male"
	GenderOther  = "other"
)

// Baby is a child whose care is tracked. Every care and health entry belongs to one baby.
type Baby struct {
	records.Base
	UserID           string    `validate:"required,uuid4"`
	Name             string    `validate:"required,min=1,max=100"`
	BirthDate        time.Time `validate:"required,notfuture"`
	Gender           string    `validate:"omitempty,oneof=female male other"`
	BirthWeightGrams *float64  `validate:"omitempty,gt=0,lt=10000"`
	BirthLengthCm    *float64  `validate:"omitempty,gt=0,lt=100"`
	Notes            string    `validate:"max=2000"`
}

// Validate checks the struct tags.
func (b *Baby) Validate() error { return records.Check(b) }

// OwnerUserID returns the parent account owning the baby.
func (b *Baby) OwnerUserID() string { return b.UserID }

// OwnerBabyID lets babies share the activity and cache plumbing of their entries.
func (b *Baby) OwnerBabyID() string { return b.ID }

// AgeAt returns the age in whole days and months at t.
func (b *Baby) AgeAt(t time.Time) (days int, months int) {
	if t.Before(b.BirthDate) {
		return 0, 0
	}
	days = int(t.Sub(b.BirthDate).Hours() / 24)

	by, bm, bd := b.BirthDate.Date()
	ty, tm, td := t.In(b.BirthDate.Location()).Date()
	months = (ty-by)*12 + int(tm-bm)
	if td < bd {
		months--
	}
	return days, months
}

// BabyPatch carries the optional fields of a baby update.
type BabyPatch struct {
	Name             *string
	BirthDate        *time.Time
	Gender           *string
	BirthWeightGrams *float64
	BirthLengthCm    *float64
	Notes            *string
}

// Apply copies supplied fields onto b.
func (p BabyPatch) Apply(b *Baby) {
	if p.Name != nil {
		b.Name = *p.Name
	}
	if p.BirthDate != nil {
		b.BirthDate = *p.BirthDate
	}
	if p.Gender != nil {
		b.Gender = *p.Gender
	}
	if p.BirthWeightGrams != nil {
		b.BirthWeightGrams = p.BirthWeightGrams
	}
	if p.BirthLengthCm != nil {
		b.BirthLengthCm = p.BirthLengthCm
	}
	if p.Notes != nil {
		b.Notes = *p.Notes
	}
}

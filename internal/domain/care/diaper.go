package care

import (
	"time"

	"github.com/pandamaske/biibii-sub002/internal/domain/records"
)

// Diaper types
const (
	DiaperWet   = "wet"
	DiaperDirty = "dirty"
	DiaperMixed = "mixed"
	DiaperDry   = "dry"
)

// DiaperEntry records one diaper change.
type DiaperEntry struct {
	records.Base
	BabyID      string    `validate:"required,uuid4"`
	Type        string    `validate:"required,oneof=wet dirty mixed dry"`
	OccurredAt  time.Time `validate:"required,notfuture"`
	Color       string    `validate:"max=50"`
	Consistency string    `validate:"max=50"`
	Notes       string    `validate:"max=2000"`
}

// Validate checks the struct tags.
func (d *DiaperEntry) Validate() error { return records.Check(d) }

// OwnerBabyID returns the baby the change belongs to.
func (d *DiaperEntry) OwnerBabyID() string { return d.BabyID }

// IsWet reports whether the diaper counts towards wet totals.
func (d *DiaperEntry) IsWet() bool { return d.Type == DiaperWet || d.Type == DiaperMixed }

// IsDirty reports whether the diaper counts towards dirty totals.
func (d *DiaperEntry) IsDirty() bool { return d.Type == DiaperDirty || d.Type == DiaperMixed }

// DiaperPatch carries the optional fields of a diaper update.
type DiaperPatch struct {
	Type        *string
	OccurredAt  *time.Time
	Color       *string
	Consistency *string
	Notes       *string
}

// Apply copies supplied fields onto d.
func (p DiaperPatch) Apply(d *DiaperEntry) {
	if p.Type != nil {
		d.Type = *p.Type
	}
	if p.OccurredAt != nil {
		d.OccurredAt = *p.OccurredAt
	}
	if p.Color != nil {
		d.Color = *p.Color
	}
	if p.Consistency != nil {
		d.Consistency = *p.Consistency
	}
	if p.Notes != nil {
		d.Notes = *p.Notes
	}
}

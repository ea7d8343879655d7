package health

import (
	"time"

	"github.com/pandamaske/biibii-sub002/internal/domain/records"
)

// Vaccine statuses
const (
	VaccineScheduled    = "scheduled"
	VaccineAdministered = "administered"
	VaccineSkipped      = "skipped"
)

// VaccineEntry tracks one dose of a vaccine, planned or given.
type VaccineEntry struct {
	records.Base
	BabyID         string `validate:"required,uuid4"`
	Name           string `validate:"required,min=1,max=100"`
	Dose           int    `validate:"required,min=1,max=10"`
	Status         string `validate:"required,oneof=scheduled administered skipped"`
	DueAt          *time.Time
	AdministeredAt *time.Time `validate:"omitempty,notfuture"`
	ProviderID     *string    `validate:"omitempty,uuid4"`
	LotNumber      string     `validate:"max=50"`
	Reaction       string     `validate:"max=500"`
	Notes          string     `validate:"max=2000"`
}

// Validate checks the struct tags and that administered doses carry a date.
func (v *VaccineEntry) Validate() error {
	if err := records.Check(v); err != nil {
		return err
	}
	if v.Status == VaccineAdministered && v.AdministeredAt == nil {
		return records.Invalidf("AdministeredAt is required when status is administered")
	}
	if v.Status == VaccineScheduled && v.DueAt == nil {
		return records.Invalidf("DueAt is required when status is scheduled")
	}
	return nil
}

// OwnerBabyID returns the vaccinated baby.
func (v *VaccineEntry) OwnerBabyID() string { return v.BabyID }

// VaccinePatch carries the optional fields of a vaccine update.
type VaccinePatch struct {
	Name           *string
	Dose           *int
	Status         *string
	DueAt          *time.Time
	AdministeredAt *time.Time
	ProviderID     *string
	LotNumber      *string
	Reaction       *string
	Notes          *string
}

// Apply copies supplied fields onto v.
func (p VaccinePatch) Apply(v *VaccineEntry) {
	if p.Name != nil {
		v.Name = *p.Name
	}
	if p.Dose != nil {
		v.Dose = *p.Dose
	}
	if p.Status != nil {
		v.Status = *p.Status
	}
	if p.DueAt != nil {
		v.DueAt = p.DueAt
	}
	if p.AdministeredAt != nil {
		v.AdministeredAt = p.AdministeredAt
	}
	if p.ProviderID != nil {
		v.ProviderID = p.ProviderID
	}
	if p.LotNumber != nil {
		v.LotNumber = *p.LotNumber
	}
	if p.Reaction != nil {
		v.Reaction = *p.Reaction
	}
	if p.Notes != nil {
		v.Notes = *p.Notes
	}
}

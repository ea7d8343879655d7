package health

import (
	"time"

	"github.com/google/uuid"

	"github.com/pandamaske/biibii-sub002/internal/domain/records"
)

// Medication units
const (
	UnitMl     = "ml"
	UnitMg     = "mg"
	UnitDrops  = "drops"
	UnitTablet = "tablet"
	UnitPuff   = "puff"
)

// Medication is a course of medicine prescribed to a baby, with its daily dose schedule.
type Medication struct {
	records.Base
	BabyID       string     `validate:"required,uuid4"`
	Name         string     `validate:"required,min=1,max=200"`
	Dosage       string     `validate:"required,max=50"`
	Unit         string     `validate:"required,oneof=ml mg drops tablet puff"`
	Frequency    string     `validate:"max=100"`
	StartDate    time.Time  `validate:"required"`
	EndDate      *time.Time `validate:"omitempty,gtfield=StartDate"`
	Active       bool
	PrescribedBy *string          `validate:"omitempty,uuid4"`
	Notes        string           `validate:"max=2000"`
	Doses        []MedicationDose `validate:"max=24,dive"`
}

// MedicationDose is one scheduled administration time of a medication.
type MedicationDose struct {
	ID           string `validate:"required,uuid4"`
	MedicationID string `validate:"required,uuid4"`
	TimeOfDay    string `validate:"required,timeofday"`
	Amount       string `validate:"max=50"`
}

// Validate checks the struct tags and that no dose time repeats.
func (m *Medication) Validate() error {
	if err := records.Check(m); err != nil {
		return err
	}
	seen := make(map[string]bool, len(m.Doses))
	for _, d := range m.Doses {
		if seen[d.TimeOfDay] {
			return records.Invalidf("dose time %s is scheduled twice", d.TimeOfDay)
		}
		seen[d.TimeOfDay] = true
	}
	return nil
}

// OwnerBabyID returns the baby the medication is prescribed to.
func (m *Medication) OwnerBabyID() string { return m.BabyID }

// ActiveOn reports whether the course is active and covers t.
func (m *Medication) ActiveOn(t time.Time) bool {
	if !m.Active || t.Before(m.StartDate) {
		return false
	}
	return m.EndDate == nil || !t.After(*m.EndDate)
}

// MedicationPatch carries the optional fields of a medication update.
// A non-nil Doses replaces the whole schedule.
type MedicationPatch struct {
	Name         *string
	Dosage       *string
	Unit         *string
	Frequency    *string
	StartDate    *time.Time
	EndDate      *time.Time
	Active       *bool
	PrescribedBy *string
	Notes        *string
	Doses        *[]MedicationDose
}

// Apply copies supplied fields onto m.
func (p MedicationPatch) Apply(m *Medication) {
	if p.Name != nil {
		m.Name = *p.Name
	}
	if p.Dosage != nil {
		m.Dosage = *p.Dosage
	}
	if p.Unit != nil {
		m.Unit = *p.Unit
	}
	if p.Frequency != nil {
		m.Frequency = *p.Frequency
	}
	if p.StartDate != nil {
		m.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		m.EndDate = p.EndDate
	}
	if p.Active != nil {
		m.Active = *p.Active
	}
	if p.PrescribedBy != nil {
		m.PrescribedBy = p.PrescribedBy
	}
	if p.Notes != nil {
		m.Notes = *p.Notes
	}
	if p.Doses != nil {
		m.Doses = *p.Doses
	}
}

// MedicationEntry records one administered dose.
type MedicationEntry struct {
	records.Base
	BabyID       string    `validate:"required,uuid4"`
	MedicationID string    `validate:"required,uuid4"`
	GivenAt      time.Time `validate:"required,notfuture"`
	Amount       string    `validate:"max=50"`
	Notes        string    `validate:"max=2000"`
}

// Validate checks the struct tags.
func (e *MedicationEntry) Validate() error { return records.Check(e) }

// OwnerBabyID returns the baby that received the dose.
func (e *MedicationEntry) OwnerBabyID() string { return e.BabyID }

// MedicationEntryPatch carries the optional fields of a medication entry update.
type MedicationEntryPatch struct {
	GivenAt *time.Time
	Amount  *string
	Notes   *string
}

// Apply copies supplied fields onto e.
func (p MedicationEntryPatch) Apply(e *MedicationEntry) {
	if p.GivenAt != nil {
		e.GivenAt = *p.GivenAt
	}
	if p.Amount != nil {
		e.Amount = *p.Amount
	}
	if p.Notes != nil {
		e.Notes = *p.Notes
	}
}

// Prepare links the dose schedule to the medication, assigning IDs to new doses.
func (m *Medication) Prepare() {
	for i := range m.Doses {
		if m.Doses[i].ID == "" {
			m.Doses[i].ID = uuid.NewString()
		}
		m.Doses[i].MedicationID = m.ID
	}
}

package health

import (
	"time"

	"github.com/pandamaske/biibii-sub002/internal/domain/records"
)

// Appointment statuses
const (
	AppointmentScheduled = "scheduled"
	AppointmentCompleted = "completed"
	AppointmentCancelled = "cancelled"
)

// Appointment is a visit with a healthcare provider.
type Appointment struct {
	records.Base
	BabyID          string    `validate:"required,uuid4"`
	ProviderID      *string   `validate:"omitempty,uuid4"`
	Title           string    `validate:"required,min=1,max=200"`
	Type            string    `validate:"required,oneof=checkup vaccination specialist emergency other"`
	ScheduledAt     time.Time `validate:"required"`
	DurationMinutes int       `validate:"gte=0,lte=1440"`
	Status          string    `validate:"required,oneof=scheduled completed cancelled"`
	Location        string    `validate:"max=200"`
	Notes           string    `validate:"max=2000"`
}

// Validate checks the struct tags.
func (a *Appointment) Validate() error { return records.Check(a) }

// OwnerBabyID returns the baby the appointment is for.
func (a *Appointment) OwnerBabyID() string { return a.BabyID }

// Upcoming reports whether the appointment is still scheduled and starts after now.
func (a *Appointment) Upcoming(now time.Time) bool {
	return a.Status == AppointmentScheduled && a.ScheduledAt.After(now)
}

// AppointmentPatch carries the optional fields of an appointment update.
type AppointmentPatch struct {
	ProviderID      *string
	Title           *string
	Type            *string
	ScheduledAt     *time.Time
	DurationMinutes *int
	Status          *string
	Location        *string
	Notes           *string
}

// Apply copies supplied fields onto a.
func (p AppointmentPatch) Apply(a *Appointment) {
	if p.ProviderID != nil {
		a.ProviderID = p.ProviderID
	}
	if p.Title != nil {
		a.Title = *p.Title
	}
	if p.Type != nil {
		a.Type = *p.Type
	}
	if p.ScheduledAt != nil {
		a.ScheduledAt = *p.ScheduledAt
	}
	if p.DurationMinutes != nil {
		a.DurationMinutes = *p.DurationMinutes
	}
	if p.Status != nil {
		a.Status = *p.Status
	}
	if p.Location != nil {
		a.Location = *p.Location
	}
	if p.Notes != nil {
		a.Notes = *p.Notes
	}
}

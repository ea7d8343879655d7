package health

import (
	"github.com/pandamaske/biibii-sub002/internal/domain/records"
)

// HealthcareProvider is a doctor, clinic or other caregiver saved by a user.
type HealthcareProvider struct {
	records.Base
	UserID    string `validate:"required,uuid4"`
	Name      string `validate:"required,min=1,max=200"`
	Specialty string `validate:"max=100"`
	Phone     string `validate:"omitempty,max=30"`
	Email     string `validate:"omitempty,email,max=255"`
	Address   string `validate:"max=500"`
	Notes     string `validate:"max=2000"`
}

// Validate checks the struct tags.
func (h *HealthcareProvider) Validate() error { return records.Check(h) }

// OwnerUserID returns the account that saved the provider.
func (h *HealthcareProvider) OwnerUserID() string { return h.UserID }

// ProviderPatch carries the optional fields of a provider update.
type ProviderPatch struct {
	Name      *string
	Specialty *string
	Phone     *string
	Email     *string
	Address   *string
	Notes     *string
}

// Apply copies supplied fields onto h.
func (p ProviderPatch) Apply(h *HealthcareProvider) {
	if p.Name != nil {
		h.Name = *p.Name
	}
	if p.Specialty != nil {
		h.Specialty = *p.Specialty
	}
	if p.Phone != nil {
		h.Phone = *p.Phone
	}
	if p.Email != nil {
		h.Email = *p.Email
	}
	if p.Address != nil {
		h.Address = *p.Address
	}
	if p.Notes != nil {
		h.Notes = *p.Notes
	}
}

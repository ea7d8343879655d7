package parent

import (
	"time"

	"github.com/pandamaske/biibii-sub002/internal/domain/records"
)

// Delivery types
const (
	DeliveryVaginal  = "vaginal"
	DeliveryCesarean = "cesarean"
)

// HealthProfile is the parent's postpartum recovery record, one per user.
type HealthProfile struct {
	records.Base
	UserID        string     `validate:"required,uuid4"`
	DeliveryDate  *time.Time `validate:"omitempty,notfuture"`
	DeliveryType  string     `validate:"omitempty,oneof=vaginal cesarean"`
	PainLevel     *int       `validate:"omitempty,gte=0,lte=10"`
	Mood          string     `validate:"omitempty,oneof=great good okay low struggling"`
	SleepHours    *float64   `validate:"omitempty,gte=0,lte=24"`
	RecoveryNotes string     `validate:"max=4000"`
}

// Validate checks the struct tags.
func (p *HealthProfile) Validate() error { return records.Check(p) }

// OwnerUserID returns the parent the profile belongs to.
func (p *HealthProfile) OwnerUserID() string { return p.UserID }

// RecoveryWeek returns the 1-based week since delivery at t, or 0 when unknown.
func (p *HealthProfile) RecoveryWeek(t time.Time) int {
	if p.DeliveryDate == nil || t.Before(*p.DeliveryDate) {
		return 0
	}
	return int(t.Sub(*p.DeliveryDate).Hours()/(24*7)) + 1
}

package family

import (
	"github.com/pandamaske/biibii-sub002/internal/domain/records"
)

// Unit systems
const (
	UnitsMetric   = "metric"
	UnitsImperial = "imperial"
)

// UserSettings holds per-user preferences. There is at most one row per user.
type UserSettings struct {
	records.Base
	UserID        string `validate:"required,uuid4"`
	Units         string `validate:"required,oneof=metric imperial"`
	TimeZone      string `validate:"required,timezone"`
	Language      string `validate:"required,bcp47_language_tag"`
	Notifications bool
	ActiveBabyID  *string `validate:"omitempty,uuid4"`
}

// DefaultSettings returns the settings a user gets before saving any.
func DefaultSettings(userID string) *UserSettings {
	return &UserSettings{
		UserID:        userID,
		Units:         UnitsMetric,
		TimeZone:      "UTC",
		Language:      "en",
		Notifications: true,
	}
}

// Validate checks the struct tags.
func (s *UserSettings) Validate() error { return records.Check(s) }

// OwnerUserID returns the account the settings belong to.
func (s *UserSettings) OwnerUserID() string { return s.UserID }
